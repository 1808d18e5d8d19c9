package sqlite

import (
	"context"

	"github.com/example/acacia/internal/ports/secondary"
)

// LogWriterAdapter implements secondary.LogWriter using ModuleLogRepository.
type LogWriterAdapter struct {
	logRepo secondary.ModuleLogRepository
}

// NewLogWriterAdapter creates a new LogWriterAdapter.
func NewLogWriterAdapter(logRepo secondary.ModuleLogRepository) *LogWriterAdapter {
	return &LogWriterAdapter{
		logRepo: logRepo,
	}
}

// LogCreate logs the generation of a module.
func (w *LogWriterAdapter) LogCreate(ctx context.Context, module string) error {
	return w.writeLog(ctx, module, "create", "", "", "")
}

// LogUpdate logs a change to one module attribute.
func (w *LogWriterAdapter) LogUpdate(ctx context.Context, module, fieldName, oldValue, newValue string) error {
	return w.writeLog(ctx, module, "update", fieldName, oldValue, newValue)
}

// LogDelete logs the removal of a module.
func (w *LogWriterAdapter) LogDelete(ctx context.Context, module string) error {
	return w.writeLog(ctx, module, "delete", "", "", "")
}

// writeLog writes a log entry with common logic.
func (w *LogWriterAdapter) writeLog(ctx context.Context, module, action, fieldName, oldValue, newValue string) error {
	// Nothing to attribute the entry to
	if module == "" {
		return nil
	}

	return w.logRepo.Create(ctx, &secondary.ModuleLogRecord{
		Module:    module,
		Action:    action,
		FieldName: fieldName,
		OldValue:  oldValue,
		NewValue:  newValue,
	})
}

// Ensure LogWriterAdapter implements the interface
var _ secondary.LogWriter = (*LogWriterAdapter)(nil)
