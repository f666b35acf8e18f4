package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tinytelemetry/ciphered/internal/model"
)

// cliConfig holds everything the TUI reads at startup.
type cliConfig struct {
	Sample      string `mapstructure:"sample"`
	Probe       string `mapstructure:"probe"`
	XORKey      string `mapstructure:"xor-key"`
	Skin        string `mapstructure:"skin"`
	LogFile     string `mapstructure:"log-file"`
	AllowNonTTY bool   `mapstructure:"allow-non-tty"`
	ConfigDir   string `mapstructure:"-"`
}

func defaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "ciphered"), nil
}

// loadCLIConfig layers defaults, the config file, CIPHERED_* environment
// variables and changed flags, in increasing priority. A missing config
// file is not an error.
func loadCLIConfig(configPath string, flags *pflag.FlagSet) (cliConfig, error) {
	var cfg cliConfig

	configDir, err := defaultConfigDir()
	if err != nil {
		return cfg, err
	}

	v := viper.New()
	v.SetEnvPrefix("CIPHERED")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("sample", model.DefaultSample)
	v.SetDefault("probe", model.DefaultProbe)
	v.SetDefault("xor-key", model.DefaultXORKey)
	v.SetDefault("skin", model.DefaultSkin)
	v.SetDefault("log-file", "")
	v.SetDefault("allow-non-tty", false)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return cfg, fmt.Errorf("binding flags: %w", err)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		configDir = filepath.Dir(configPath)
	} else {
		v.SetConfigFile(filepath.Join(configDir, "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.ConfigDir = configDir

	return cfg, nil
}
