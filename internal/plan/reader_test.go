package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/acacia/internal/config"
)

func TestListFolders_SkipsDisabled(t *testing.T) {
	cfg := &config.Config{Paths: config.PathsConfig{Generator: []config.GeneratorPath{
		{Key: "config", Path: "Config", Generate: true},
		{Key: "command", Path: "Console", Generate: false},
		{Key: "seeder", Path: "Database/Seeders", Generate: true, Namespace: `Database\Seeders`},
		{Key: "model", Path: "Entities", Generate: true},
	}}}

	folders := NewReader(config.NewStaticProvider(cfg)).ListFolders()

	require.Len(t, folders, 3)
	assert.Equal(t, "config", folders[0].Key)
	assert.Equal(t, "seeder", folders[1].Key)
	assert.Equal(t, `Database\Seeders`, folders[1].Namespace)
	assert.Equal(t, "Entities", folders[2].Path)
}

func TestListFiles_SkipsDisabledAndEmptyTargets(t *testing.T) {
	off := false
	cfg := &config.Config{Stubs: config.StubsConfig{Files: []config.StubFile{
		{Stub: "routes/web", Target: "Routes/web.php"},
		{Stub: "routes/api", Target: "Routes/api.php", Generate: &off},
		{Stub: "package", Target: ""},
		{Stub: "js/index", Target: "Resources/js/Pages/Index.vue"},
	}}}

	files := NewReader(config.NewStaticProvider(cfg)).ListFiles()

	assert.Equal(t, []FileEntry{
		{StubID: "routes/web", Target: "Routes/web.php"},
		{StubID: "js/index", Target: "Resources/js/Pages/Index.vue"},
	}, files)
}

func TestMissingTablesAreEmpty(t *testing.T) {
	r := NewReader(config.NewStaticProvider(&config.Config{}))
	assert.Empty(t, r.ListFolders())
	assert.Empty(t, r.ListFiles())
	assert.False(t, r.Enabled("model"))

	r = NewReader(nil)
	assert.Empty(t, r.ListFolders())
	assert.Empty(t, r.ListFiles())
	assert.Equal(t, FolderEntry{Key: "model"}, r.Folder("model"))
}

func TestFolder_NamespaceFromPath(t *testing.T) {
	r := NewReader(config.NewStaticProvider(nil))

	provider := r.Folder("provider")
	assert.True(t, provider.Generate)
	assert.Equal(t, "Providers", provider.Namespace)

	assert.Equal(t, `Http\Controllers`, r.Folder("controller").Namespace)
	assert.False(t, r.Enabled("api-controller"))
}

func TestToggleReadAtReadTime(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	require.NoError(t, config.Save(dir, cfg))

	r := NewReader(config.NewFileProvider(dir))
	assert.True(t, r.Enabled("model"))

	for i := range cfg.Paths.Generator {
		if cfg.Paths.Generator[i].Key == "model" {
			cfg.Paths.Generator[i].Generate = false
		}
	}
	require.NoError(t, config.Save(dir, cfg))

	assert.False(t, r.Enabled("model"))
	for _, f := range r.ListFolders() {
		assert.NotEqual(t, "model", f.Key)
	}
}

func TestToggleKeepsLastGoodConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, config.Save(dir, config.Default()))

	r := NewReader(config.NewFileProvider(dir))
	require.NotEmpty(t, r.ListFolders())

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".acacia", "config.yaml"), []byte("paths: [broken"), 0644))
	assert.NotEmpty(t, r.ListFolders())
}
