// Package config registers every setting with viper and reads the TOML config file.
package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/anisan-cli/seriesdex/constant"
	"github.com/anisan-cli/seriesdex/filesystem"
	"github.com/anisan-cli/seriesdex/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps "search.limit" to "search_limit" for environment lookups.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup installs defaults and environment bindings, then reads the config file if there is one.
// A missing file is not an error.
func Setup() error {
	viper.SetConfigName(constant.Seriesdex)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Seriesdex)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}

// File is where the config file lives, whether or not it exists yet.
func File() string {
	return filepath.Join(where.Config(), constant.Seriesdex+".toml")
}

// Write saves the current settings, creating the file on first use.
func Write() error {
	err := viper.WriteConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}
	return err
}
