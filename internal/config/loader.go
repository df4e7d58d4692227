package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/rrwatch/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// GlobalConfigDir is the directory for the user config, relative to $HOME.
	GlobalConfigDir = ".config/rrwatch"
	// GlobalConfigFile is the user config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. RRWATCH_INTERVAL.
	EnvPrefix = "RRWATCH"
)

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"interval":    "interval",
	"color":       "color",
	"line-number": "line_number",
	"diff":        "diff",
	"output":      "output",
	"shell":       "shell",
	"limit":       "limit",
	"log-file":    "log_file",
}

// Find locates the config file:
//  1. Explicit path (from --config flag)
//  2. ~/.config/rrwatch/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", nil
	}

	global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
	if _, err := os.Stat(global); err == nil {
		return global, nil
	}

	return "", nil
}

// Load reads config from path, layered as defaults < file < environment.
func Load(path string) (*Config, error) {
	return load(path, nil)
}

// LoadWithFlags resolves the config file (see Find) and layers it as
// defaults < file < environment < flags. Only flags the user actually set
// override lower layers.
func LoadWithFlags(explicit string, flags *pflag.FlagSet) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}
	return load(path, flags)
}

func load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.WrapWithCode(err, errors.ErrConfig,
					"Config file not found",
					"Create "+filepath.Join("~", GlobalConfigDir, GlobalConfigFile)+" or pass --config")
			}
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file",
				"Check the file exists and is valid YAML")
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.WrapWithCode(err, errors.ErrConfig,
						"Couldn't bind flag --"+name, "")
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	return cfg, nil
}

// newViper returns a viper instance with defaults and env overrides wired.
func newViper() *viper.Viper {
	v := viper.New()

	d := DefaultConfig()
	v.SetDefault("interval", d.Interval)
	v.SetDefault("color", d.Color)
	v.SetDefault("line_number", d.LineNumber)
	v.SetDefault("diff", d.Diff)
	v.SetDefault("output", d.Output)
	v.SetDefault("shell", d.Shell)
	v.SetDefault("limit", d.Limit)
	v.SetDefault("log_file", d.LogFile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Marshal renders cfg as YAML, in the same shape the loader reads.
func Marshal(cfg *Config) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't render config as YAML", "")
	}
	return out, nil
}
