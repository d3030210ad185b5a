// Package where resolves the directories and files seriesdex keeps its state in.
// Every directory returned is created on first use.
package where

import (
	"os"
	"path/filepath"

	"github.com/anisan-cli/seriesdex/constant"
	"github.com/anisan-cli/seriesdex/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the config directory.
const EnvConfigPath = "SERIESDEX_CONFIG_PATH"

func mkdir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the config directory, $SERIESDEX_CONFIG_PATH when set.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return mkdir(custom)
	}

	return mkdir(filepath.Join(lo.Must(os.UserConfigDir()), constant.Seriesdex))
}

func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return mkdir(filepath.Join(base, constant.Seriesdex))
}

func Logs() string {
	return mkdir(filepath.Join(Config(), "logs"))
}

// Series holds organized series, one file per catalog digest.
func Series() string {
	return mkdir(filepath.Join(Cache(), "series"))
}

// Catalog is the catalog used when neither a flag nor the config names one.
func Catalog() string {
	return filepath.Join(Config(), "catalog"+constant.CatalogExtension)
}

func History() string {
	return filepath.Join(Config(), "history.json")
}

func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}
