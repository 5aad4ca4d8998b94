package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/gridgallery/internal/config"
)

// newDefaultTarget returns a Config with known non-zero values so tests can
// verify that absent overlay keys leave the original values intact.
func newDefaultTarget() *config.Config {
	return &config.Config{
		Output: config.OutputConfig{
			DefaultFormat: "table",
			PageSize:      20,
			ExportDir:     "/tmp/exports",
		},
		Logging: config.LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Datasets: map[string]int{"ag-grid": 200, "react-window": 500},
	}
}

// writeOverlay is a test helper that writes YAML content to a temp file
// and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
output:
  default_format: json
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	// The whole section is replaced, so unset keys become zero.
	assert.Equal(t, "json", target.Output.DefaultFormat)
	assert.Zero(t, target.Output.PageSize)
	assert.Empty(t, target.Output.ExportDir)

	assert.Equal(t, "info", target.Logging.Level)
	assert.Equal(t, 200, target.Datasets["ag-grid"])
}

func TestShallowMergeYAML_DatasetsReplacedWhole(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
datasets:
  mui-datagrid: 1000
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, map[string]int{"mui-datagrid": 1000}, target.Datasets)
	assert.Equal(t, "table", target.Output.DefaultFormat)
}

func TestShallowMergeYAML_MultipleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
output:
  default_format: ndjson
  page_size: 50
logging:
  level: debug
  format: json
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "ndjson", target.Output.DefaultFormat)
	assert.Equal(t, 50, target.Output.PageSize)
	assert.Equal(t, "debug", target.Logging.Level)
	assert.Equal(t, "json", target.Logging.Format)
	assert.Len(t, target.Datasets, 2)
}

func TestShallowMergeYAML_EmptyAndCommentOnly(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty", content: ""},
		{name: "comments", content: "# nothing here\n# at all\n"},
		{name: "unknown keys", content: "plugins:\n  foo: bar\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := newDefaultTarget()
			require.NoError(t, config.ShallowMergeYAML(target, writeOverlay(t, tt.content)))
			assert.Equal(t, newDefaultTarget(), target)
		})
	}
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	t.Run("nil target", func(t *testing.T) {
		require.Error(t, config.ShallowMergeYAML(nil, "whatever.yaml"))
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), filepath.Join(t.TempDir(), "absent.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), writeOverlay(t, "output: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing overlay YAML")
	})

	t.Run("wrong section type", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), writeOverlay(t, "datasets:\n  ag-grid: many\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `applying overlay section "datasets"`)
	})
}
