// Package formatter runs cosmetic tooling over generated modules.
package formatter

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/example/acacia/internal/logging"
	"github.com/example/acacia/internal/ports/secondary"
)

// Command runs an external formatter (prettier by default) over a module.
// The command runs in workDir and receives the module path relative to it.
type Command struct {
	workDir string
	name    string
	args    []string
	logger  *zap.Logger
}

// NewCommand creates a formatter running name with args in workDir.
func NewCommand(workDir, name string, args []string, logger *zap.Logger) *Command {
	return &Command{workDir: workDir, name: name, args: args, logger: logging.OrNop(logger)}
}

// PostProcess formats every file below path.
func (c *Command) PostProcess(ctx context.Context, path string) error {
	target := path
	if rel, err := filepath.Rel(c.workDir, path); err == nil && !strings.HasPrefix(rel, "..") {
		target = rel + string(filepath.Separator)
	}

	args := append(append([]string(nil), c.args...), target)
	cmd := exec.CommandContext(ctx, c.name, args...)
	cmd.Dir = c.workDir

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	c.logger.Debug("running formatter",
		zap.String("command", c.name),
		zap.Strings("args", args),
		zap.String("dir", c.workDir),
	)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s failed: %w: %s", c.name, strings.Join(args, " "), err, strings.TrimSpace(out.String()))
	}
	return nil
}

// Noop is a PostProcessor that does nothing.
type Noop struct{}

// PostProcess does nothing.
func (Noop) PostProcess(ctx context.Context, path string) error {
	return nil
}

var (
	_ secondary.PostProcessor = (*Command)(nil)
	_ secondary.PostProcessor = Noop{}
)
