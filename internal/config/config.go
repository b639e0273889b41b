// Package config resolves the runtime settings from defaults, an optional
// config file and STOCKKEEPER_* environment variables, in that order.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the file locations the application works with.
type Config struct {
	DataFile     string `mapstructure:"data_file"`
	MovementFile string `mapstructure:"movement_file"`
	BackupSuffix string `mapstructure:"backup_suffix"`
}

// Load reads stockkeeper.yaml from the working directory or ~/.stockkeeper
// when present. A missing config file is fine; defaults and environment
// variables still apply.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("data_file", "inventory_data.json")
	v.SetDefault("movement_file", "inventory_movements.json")
	v.SetDefault("backup_suffix", ".backup")

	v.SetConfigName("stockkeeper")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".stockkeeper"))
	}

	v.SetEnvPrefix("STOCKKEEPER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
