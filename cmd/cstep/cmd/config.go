package cmd

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// runConfig holds the run command's defaults read from ~/.cstep.yaml or
// --config (the step command does not read it),
// mirroring the teacher's habit of layering a config file under cobra
// flags rather than replacing them.
type runConfig struct {
	MaxSteps       int      `yaml:"maxSteps"`
	TraceByDefault bool     `yaml:"traceByDefault"`
	BuiltinAllow   []string `yaml:"builtinAllow"`
}

func defaultRunConfig() runConfig {
	return runConfig{MaxSteps: 100000}
}

// loadConfig reads path (or ~/.cstep.yaml if path is empty and that file
// exists), returning defaults unchanged when no config file is found.
func loadConfig(path string) (runConfig, error) {
	cfg := defaultRunConfig()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		candidate := filepath.Join(home, ".cstep.yaml")
		if _, err := os.Stat(candidate); err != nil {
			return cfg, nil
		}
		path = candidate
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// allows reports whether the builtin name is permitted to run, per
// BuiltinAllow. An empty allow-list permits everything.
func (c runConfig) allows(name string) bool {
	if len(c.BuiltinAllow) == 0 {
		return true
	}
	for _, n := range c.BuiltinAllow {
		if n == name {
			return true
		}
	}
	return false
}
