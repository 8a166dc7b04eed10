package config

import (
	"fmt"
	"os"
	"strconv"

	"gamepack/games/chess"
	"gamepack/games/colograph"
	"gamepack/games/connectfour"
	"gamepack/games/mancala"
	"gamepack/games/reversi"
	"gamepack/meta"
	"gopkg.in/yaml.v3"
)

// Variants lists the identifiers of every rule engine.
var Variants = []string{
	connectfour.Identifier,
	reversi.Reversi,
	reversi.Othello,
	mancala.Identifier,
	colograph.Identifier,
	chess.Identifier,
}

type Config struct {
	Variant    string `yaml:"variant"`
	Goroutines int    `yaml:"goroutines"`
	Matches    int    `yaml:"matches"`
	MaxPlies   int    `yaml:"maxPlies"`
	Seed       uint64 `yaml:"seed"`
	InPlace    bool   `yaml:"inPlace"`
	OutputDir  string `yaml:"outputDir"`
	LogLevel   string `yaml:"logLevel"`

	ConnectFour connectfour.Params     `yaml:"connectFour"`
	Reversi     reversi.Params         `yaml:"reversi"`
	Mancala     mancala.Params         `yaml:"mancala"`
	Colograph   colograph.RandomParams `yaml:"colograph"`
}

func Default() Config {
	return Config{
		Variant:     connectfour.Identifier,
		Goroutines:  meta.GO_ROUTINES,
		Matches:     meta.MATCHES,
		MaxPlies:    meta.MAX_PLIES,
		Seed:        1,
		OutputDir:   "experiments/playouts",
		LogLevel:    "info",
		ConnectFour: connectfour.DefaultParams(),
		Reversi:     reversi.DefaultParams(),
		Mancala:     mancala.DefaultParams(),
		Colograph:   colograph.DefaultRandomParams(),
	}
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads the YAML file at path over the defaults, then applies the
// GAMEPACK_* environment overrides. An empty path only uses the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return c, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	c.Variant = getenv("GAMEPACK_VARIANT", c.Variant)
	c.Goroutines = getenvInt("GAMEPACK_GOROUTINES", c.Goroutines)
	c.Matches = getenvInt("GAMEPACK_MATCHES", c.Matches)
	c.MaxPlies = getenvInt("GAMEPACK_MAX_PLIES", c.MaxPlies)
	c.Seed = uint64(getenvInt("GAMEPACK_SEED", int(c.Seed)))
	c.OutputDir = getenv("GAMEPACK_OUTPUT_DIR", c.OutputDir)
	c.LogLevel = getenv("GAMEPACK_LOG_LEVEL", c.LogLevel)

	return c, c.Validate()
}

func (c Config) Validate() error {
	known := false
	for _, v := range Variants {
		known = known || v == c.Variant
	}
	if !known {
		return fmt.Errorf("unknown variant %q", c.Variant)
	}
	if c.Goroutines < 1 {
		return fmt.Errorf("goroutines must be positive, got %d", c.Goroutines)
	}
	if c.Matches < 0 {
		return fmt.Errorf("matches must not be negative, got %d", c.Matches)
	}
	if c.MaxPlies < 1 {
		return fmt.Errorf("max plies must be positive, got %d", c.MaxPlies)
	}
	return nil
}
