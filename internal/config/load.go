package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vancomm/sweeper/internal/mines"
)

const EnvPrefix = "SWEEPER"

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", ModeDevelopment)
	v.SetDefault("board.height", mines.DefaultParams.Height)
	v.SetDefault("board.width", mines.DefaultParams.Width)
	v.SetDefault("board.mines", mines.DefaultParams.Mines)
	v.SetDefault("timer.interval", time.Second)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 7)
}

func NewFlagSet(name string) *pflag.FlagSet {
	const usage = "config file path"
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP("config", "c", "", usage)
	fs.String("mode", ModeDevelopment, "development or production")
	fs.Int("height", mines.DefaultParams.Height, "board height")
	fs.Int("width", mines.DefaultParams.Width, "board width")
	fs.Int("mines", mines.DefaultParams.Mines, "number of mines")
	fs.Duration("tick", time.Second, "elapsed-time counter interval")
	fs.String("log-file", "", "rotated log file; logs go to stderr when empty")
	return fs
}

var flagKeys = map[string]string{
	"mode":     "mode",
	"height":   "board.height",
	"width":    "board.width",
	"mines":    "board.mines",
	"tick":     "timer.interval",
	"log-file": "log.file",
}

// Load resolves the configuration from defaults, an optional config file,
// SWEEPER_* environment variables and command-line flags, in increasing
// order of precedence.
func Load(args []string) (*Config, error) {
	fs := NewFlagSet("mines")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, fmt.Errorf("unable to bind flag %s: %w", name, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath, err := fs.GetString("config")
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
