package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, an optional YAML file, and
// environment variables. Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) at path, or $SCOUTMETRICS_CONFIG when path is empty
//  3. env (prefix SCOUTMETRICS_, double underscore as the key separator,
//     e.g. SCOUTMETRICS_SCORING__POINTS_PER_PIECE)
func Load(path string) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path == "" {
		path = os.Getenv("SCOUTMETRICS_CONFIG")
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	envProvider := env.Provider("SCOUTMETRICS_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "SCOUTMETRICS_"))
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Scoring.PointsPerPiece < 1 {
		return errors.New("scoring.points_per_piece must be at least 1")
	}
	for category, pts := range c.Scoring.EndgamePoints {
		if pts < 0 {
			return fmt.Errorf("scoring.endgame_points[%q] must not be negative", category)
		}
	}
	if c.Output.SummaryFile == "" || c.Output.DetailFile == "" {
		return errors.New("output file names must not be empty")
	}
	return nil
}
