package main

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config represents the seqgen configuration file
// (~/.config/seqgen/config.yaml). Fields are pointers where zero values are
// meaningful, so "not set" stays distinguishable.
type Config struct {
	Vocab     string `yaml:"vocab"`
	VocabSize *int64 `yaml:"vocab_size"`
	Hidden    *int64 `yaml:"hidden"`
	Seed      *int64 `yaml:"seed"`

	Search    string   `yaml:"search"`
	BeamWidth *int64   `yaml:"beam_width"`
	MaxLen    *int64   `yaml:"max_len"`
	MaxRepeat *int64   `yaml:"max_repeat"`
	MinLength *int64   `yaml:"min_length"`
	Alpha     *float64 `yaml:"alpha"`
	Parallel  *int64   `yaml:"parallel"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	ServerAddress string `yaml:"server_address"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "seqgen", "config.yaml")
}

// LoadConfig reads the config file. Returns a zero Config if the file
// doesn't exist or doesn't parse.
func LoadConfig() Config {
	path := configPath()
	if path == "" {
		return Config{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}

// applyEngineConfig merges config file defaults into the engine and search
// flag variables wherever the corresponding flag was not explicitly set.
func applyEngineConfig(c *cli.Command, cfg Config) {
	if cfg.Vocab != "" && !c.IsSet("vocab") {
		vocabPath = cfg.Vocab
	}
	if cfg.VocabSize != nil && !c.IsSet("vocab-size") {
		vocabSize = *cfg.VocabSize
	}
	if cfg.Hidden != nil && !c.IsSet("hidden") {
		hidden = *cfg.Hidden
	}
	if cfg.Seed != nil && !c.IsSet("seed") {
		seed = *cfg.Seed
	}
	if cfg.Search != "" && !c.IsSet("search") {
		searchMode = cfg.Search
	}
	if cfg.BeamWidth != nil && !c.IsSet("beam-width") {
		beamWidth = *cfg.BeamWidth
	}
	if cfg.MaxLen != nil && !c.IsSet("max-len") {
		maxLen = *cfg.MaxLen
	}
	if cfg.MaxRepeat != nil && !c.IsSet("max-repeat") {
		maxRepeat = *cfg.MaxRepeat
	}
	if cfg.MinLength != nil && !c.IsSet("min-length") {
		minLength = *cfg.MinLength
	}
	if cfg.Alpha != nil && !c.IsSet("alpha") {
		alpha = *cfg.Alpha
	}
	if cfg.Parallel != nil && !c.IsSet("parallel") {
		parallel = *cfg.Parallel
	}
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		logFormat = cfg.LogFormat
	}
}
