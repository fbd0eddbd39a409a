package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Listen)
	require.Equal(t, "file", cfg.Storage.Backend)
	require.Equal(t, "boards.json", cfg.Storage.File)
}

func TestLoadReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
listen: ":9090"
storage:
  backend: s3
  s3:
    endpoint: http://minio:9000
    bucket: kanban
    region: us-east-1
    use_path_style: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Listen)
	require.Equal(t, "s3", cfg.Storage.Backend)
	require.Equal(t, "kanban", cfg.Storage.S3.Bucket)
	require.True(t, cfg.Storage.S3.UsePathStyle)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("listen: \":9090\"\n"), 0o644))
	t.Setenv("KANBAN_LISTEN", ":7070")
	t.Setenv("KANBAN_STORAGE_FILE", "/data/boards.json")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.Listen)
	require.Equal(t, "/data/boards.json", cfg.Storage.File)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("KANBAN_STORAGE_BACKEND", "carrier-pigeon")

	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
}
