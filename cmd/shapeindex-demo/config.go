package main

import (
	"github.com/BurntSushi/toml"
	"github.com/pingcap/errors"
	"github.com/spf13/pflag"
)

// Config holds the demo driver's settings. Values can come from a toml file,
// from command line flags, or both; flags win.
type Config struct {
	Count      int    `toml:"count"`
	MaxEntries int    `toml:"max-entries"`
	Seed       int64  `toml:"seed"`
	DumpFile   string `toml:"dump-file"`
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Count:      1000,
		MaxEntries: 8,
		Seed:       1,
		DumpFile:   "tree-dump.json",
	}
}

// Parse loads the config file named by the --config flag, if any, and then
// lets explicitly set flags override the file's values.
func (c *Config) Parse(flags *pflag.FlagSet) error {
	configFile, err := flags.GetString("config")
	if err != nil {
		return errors.WithStack(err)
	}
	if configFile != "" {
		if _, err := toml.DecodeFile(configFile, c); err != nil {
			return errors.Annotatef(err, "decode config file %s", configFile)
		}
	}

	if flags.Changed("count") {
		c.Count, _ = flags.GetInt("count")
	}
	if flags.Changed("max-entries") {
		c.MaxEntries, _ = flags.GetInt("max-entries")
	}
	if flags.Changed("seed") {
		c.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("dump") {
		c.DumpFile, _ = flags.GetString("dump")
	}

	if c.Count < 1 {
		return errors.Errorf("count must be positive, got %d", c.Count)
	}
	return nil
}
