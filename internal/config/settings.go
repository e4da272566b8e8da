package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"usn_tail/internal/pipefs"
)

// EnvConfig holds configuration read from environment variables.
type EnvConfig struct {
	PipePath string `env:"USN_TAIL_PIPE_PATH" envDefault:""`
	ReadSize int    `env:"USN_TAIL_READ_SIZE" envDefault:"0"`
	MaxFrame int    `env:"USN_TAIL_MAX_FRAME" envDefault:"0"`
}

// ParseEnv parses environment configuration, honoring a .env file in the
// working directory when present.
func ParseEnv() (*EnvConfig, error) {
	_ = godotenv.Load()

	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing environment config: %w", err)
	}
	return &cfg, nil
}

// FileConfig holds configuration read from a YAML file.
type FileConfig struct {
	PipePath string `yaml:"pipe_path"`
	ReadSize int    `yaml:"read_size"`
	MaxFrame int    `yaml:"max_frame"`
	Filter   string `yaml:"filter"`
}

// LoadFile reads and parses a YAML configuration file.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Settings is the fully resolved runtime configuration.
type Settings struct {
	UsePipe  bool
	PipePath string
	ReadSize int
	MaxFrame int
	Filter   string
	Trace    bool
}

// Resolve merges flags, the optional config file, and the environment into
// final settings. Flags win over the file, the file wins over the
// environment, and built-in defaults fill the rest.
func Resolve(opts *Options) (*Settings, error) {
	envCfg, err := ParseEnv()
	if err != nil {
		return nil, err
	}

	settings := &Settings{
		UsePipe:  opts.UsePipe,
		PipePath: envCfg.PipePath,
		ReadSize: envCfg.ReadSize,
		MaxFrame: envCfg.MaxFrame,
		Trace:    opts.Trace,
	}

	if opts.ConfigFile != "" {
		fileCfg, err := LoadFile(opts.ConfigFile)
		if err != nil {
			return nil, err
		}
		if fileCfg.PipePath != "" {
			settings.PipePath = fileCfg.PipePath
		}
		if fileCfg.ReadSize > 0 {
			settings.ReadSize = fileCfg.ReadSize
		}
		if fileCfg.MaxFrame > 0 {
			settings.MaxFrame = fileCfg.MaxFrame
		}
		if fileCfg.Filter != "" {
			settings.Filter = fileCfg.Filter
		}
	}

	if opts.PipePath != "" {
		settings.PipePath = opts.PipePath
	}
	if opts.Filter != "" {
		settings.Filter = opts.Filter
	}
	if settings.PipePath == "" {
		settings.PipePath = pipefs.DefaultPath
	}

	return settings, nil
}
