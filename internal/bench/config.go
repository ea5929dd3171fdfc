package bench

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Scenario describes one benchmark run over a segmented array.
type Scenario struct {
	Name        string `toml:"name"`
	SegmentSize int64  `toml:"segment_size"`
	Length      int64  `toml:"length"`
	Workers     int    `toml:"workers"` // parallel scan workers; 0 means GOMAXPROCS
}

// Config is the root of a scenarios file: a list of [[scenario]] tables.
type Config struct {
	Scenarios []Scenario `toml:"scenario"`
}

// LoadConfig reads scenarios from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	if len(cfg.Scenarios) == 0 {
		return nil, errors.New("bench: no [[scenario]] tables")
	}
	for i := range cfg.Scenarios {
		if err := cfg.Scenarios[i].validate(); err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i, err)
		}
	}
	return &cfg, nil
}

// DefaultConfig returns the built-in scenarios used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Scenarios: []Scenario{
			{Name: "small", SegmentSize: 1024, Length: 1 << 16},
			{Name: "medium", SegmentSize: 4096, Length: 1 << 20},
			{Name: "large", SegmentSize: 8192, Length: 1 << 23},
		},
	}
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return errors.New("missing name")
	}
	if s.SegmentSize < 2 || s.SegmentSize&(s.SegmentSize-1) != 0 {
		return fmt.Errorf("segment_size %d is not a power of two > 1", s.SegmentSize)
	}
	if s.Length < 0 {
		return fmt.Errorf("negative length %d", s.Length)
	}
	if s.Workers < 0 {
		return fmt.Errorf("negative workers %d", s.Workers)
	}
	return nil
}
