package ops

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadEmptyPathYieldsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "input", cfg.InputDir)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, 300*time.Millisecond, cfg.Throttle)
	assert.Equal(t, int64(1), cfg.Seed)
	assert.Equal(t, AllPipelines, cfg.Pipelines)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `{
		"inputDir": "feeds",
		"outputDir": "journals",
		"pipelines": ["positions", "inquiries"],
		"throttleMs": 50,
		"seed": 9
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "feeds", cfg.InputDir)
	assert.Equal(t, "journals", cfg.OutputDir)
	assert.Equal(t, 50*time.Millisecond, cfg.Throttle)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, []string{"positions", "inquiries"}, cfg.Pipelines)
	assert.True(t, cfg.Enabled(PipelinePositions))
	assert.False(t, cfg.Enabled(PipelineRisk))
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{"seed": 3}`))
	require.NoError(t, err)

	assert.Equal(t, "input", cfg.InputDir)
	assert.Equal(t, int64(3), cfg.Seed)
	assert.Equal(t, AllPipelines, cfg.Pipelines)
}

func TestLoadRejectsUnknownPipeline(t *testing.T) {
	_, err := Load(writeConfig(t, `{"pipelines": ["positions", "settlement"]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "settlement")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestLoadBadJSON(t *testing.T) {
	_, err := Load(writeConfig(t, `{"inputDir": `))
	require.Error(t, err)
}
