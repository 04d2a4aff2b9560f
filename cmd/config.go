package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/mlfq-sim/sim"
)

// FileConfig mirrors the optional --config YAML file.
// Zero-valued fields keep the defaults from sim.DefaultSimConfig.
type FileConfig struct {
	Quantums        []int `yaml:"quantums"`          // exactly one per level: [2, 4, 8]
	BoostInterval   int64 `yaml:"boost_interval"`    // 25
	BoostQuantumCap int   `yaml:"boost_quantum_cap"` // 2
	MaxTasks        int   `yaml:"max_tasks"`         // 10
	StartTick       int64 `yaml:"start_tick"`        // 0
	Horizon         int64 `yaml:"horizon"`           // 0 = unlimited
	CheckInvariants bool  `yaml:"check_invariants"`
}

// parseFileConfig decodes YAML with strict field checking: typos are errors.
func parseFileConfig(data []byte) (FileConfig, error) {
	var fc FileConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return FileConfig{}, fmt.Errorf("parsing config YAML: %w", err)
	}
	return fc, nil
}

// apply overlays the non-zero file values onto cfg.
func (fc FileConfig) apply(cfg sim.SimConfig) (sim.SimConfig, error) {
	if len(fc.Quantums) > 0 {
		if len(fc.Quantums) != sim.NumLevels {
			return cfg, fmt.Errorf("quantums: expected %d values, got %d", sim.NumLevels, len(fc.Quantums))
		}
		copy(cfg.Quantums[:], fc.Quantums)
	}
	if fc.BoostInterval != 0 {
		cfg.BoostInterval = fc.BoostInterval
	}
	if fc.BoostQuantumCap != 0 {
		cfg.BoostQuantumCap = fc.BoostQuantumCap
	}
	if fc.MaxTasks != 0 {
		cfg.MaxTasks = fc.MaxTasks
	}
	if fc.StartTick != 0 {
		cfg.StartTick = fc.StartTick
	}
	if fc.Horizon != 0 {
		cfg.Horizon = fc.Horizon
	}
	if fc.CheckInvariants {
		cfg.CheckInvariants = true
	}
	return cfg, nil
}

// loadSimConfig returns the defaults overlaid with the YAML file at path.
// An empty path yields the defaults.
func loadSimConfig(path string) (sim.SimConfig, error) {
	cfg := sim.DefaultSimConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	fc, err := parseFileConfig(data)
	if err != nil {
		return cfg, err
	}
	cfg, err = fc.apply(cfg)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
