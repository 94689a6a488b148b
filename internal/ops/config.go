// Package ops loads the runtime configuration for a back-office run.
package ops

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Pipeline names accepted in the config.
const (
	PipelinePositions  = "positions"
	PipelineRisk       = "risk"
	PipelineGUI        = "gui"
	PipelineStreaming  = "streaming"
	PipelineExecutions = "executions"
	PipelineInquiries  = "inquiries"
)

// AllPipelines is the default selection, in wiring order.
var AllPipelines = []string{
	PipelinePositions,
	PipelineRisk,
	PipelineGUI,
	PipelineStreaming,
	PipelineExecutions,
	PipelineInquiries,
}

// FileConfig mirrors the JSON config layout. Zero values select defaults.
type FileConfig struct {
	InputDir   string   `json:"inputDir"`
	OutputDir  string   `json:"outputDir"`
	Pipelines  []string `json:"pipelines"`
	ThrottleMS int64    `json:"throttleMs"`
	Seed       int64    `json:"seed"`
}

// Loaded is the resolved configuration ready for use.
type Loaded struct {
	InputDir  string
	OutputDir string
	Pipelines []string
	Throttle  time.Duration
	Seed      int64
}

// Enabled reports whether the named pipeline was selected.
func (l Loaded) Enabled(name string) bool {
	for _, p := range l.Pipelines {
		if p == name {
			return true
		}
	}
	return false
}

// Default returns the configuration used when no file is given.
func Default() Loaded {
	return Loaded{
		InputDir:  "input",
		OutputDir: "output",
		Pipelines: AllPipelines,
		Throttle:  300 * time.Millisecond,
		Seed:      1,
	}
}

// Load reads a JSON config file and resolves defaults. An empty path
// yields the default configuration.
func Load(path string) (Loaded, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Loaded{}, err
	}
	var cfg FileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Loaded{}, err
	}
	return resolve(cfg)
}

func resolve(cfg FileConfig) (Loaded, error) {
	loaded := Default()
	if cfg.InputDir != "" {
		loaded.InputDir = cfg.InputDir
	}
	if cfg.OutputDir != "" {
		loaded.OutputDir = cfg.OutputDir
	}
	if cfg.ThrottleMS > 0 {
		loaded.Throttle = time.Duration(cfg.ThrottleMS) * time.Millisecond
	}
	if cfg.Seed != 0 {
		loaded.Seed = cfg.Seed
	}
	if len(cfg.Pipelines) > 0 {
		for _, name := range cfg.Pipelines {
			if !knownPipeline(name) {
				return Loaded{}, fmt.Errorf("unknown pipeline: %s", name)
			}
		}
		loaded.Pipelines = cfg.Pipelines
	}
	return loaded, nil
}

func knownPipeline(name string) bool {
	for _, p := range AllPipelines {
		if p == name {
			return true
		}
	}
	return false
}
