// Package config centralizes application settings, defaults, and the
// viper-based configuration engine.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Name is the application name, used for the config file and the
// environment variable prefix.
const Name = "dashgallery"

// Configuration keys.
const (
	Root          = "root"
	Port          = "port"
	Reserved      = "reserved"
	PruneEnable   = "prune.enable"
	PruneInterval = "prune.interval"
	PruneMaxAge   = "prune.max_age"
	LogLevel      = "log.level"
)

// Default holds the factory value for every key.
var Default = map[string]any{
	Root:          "videos",
	Port:          8000,
	Reserved:      "export",
	PruneEnable:   false,
	PruneInterval: time.Minute,
	PruneMaxAge:   8 * time.Minute,
	LogLevel:      "info",
}

// EnvKeyReplacer normalizes configuration keys into environment
// variable naming conventions (DASHGALLERY_PRUNE_MAX_AGE).
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes defaults, environment bindings, and the optional
// config file. A missing config file is not an error.
func Setup() error {
	viper.SetConfigName(Name)
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix(Name)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	viper.AutomaticEnv()

	viper.SetTypeByDefaultValue(true)
	for name, value := range Default {
		viper.SetDefault(name, value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}
	return nil
}
