// Package cache memoizes organized series on disk, one file per catalog digest.
package cache

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/anisan-cli/seriesdex/filesystem"
	"github.com/anisan-cli/seriesdex/key"
	"github.com/anisan-cli/seriesdex/series"
	"github.com/anisan-cli/seriesdex/where"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// TTL is how long an entry stays fresh.
func TTL() time.Duration {
	return time.Duration(viper.GetInt(key.CatalogCacheTTL)) * time.Hour
}

func path(digest string) string {
	return filepath.Join(where.Series(), digest+".json")
}

// Read returns the series memoized for digest, if present and fresh.
func Read(digest string) mo.Option[map[string]*series.SeriesInfo] {
	fs := filesystem.API()
	p := path(digest)

	info, err := fs.Stat(p)
	if err != nil || time.Since(info.ModTime()) > TTL() {
		return mo.None[map[string]*series.SeriesInfo]()
	}

	data, err := fs.ReadFile(p)
	if err != nil {
		return mo.None[map[string]*series.SeriesInfo]()
	}

	var organized map[string]*series.SeriesInfo
	if err := json.Unmarshal(data, &organized); err != nil {
		return mo.None[map[string]*series.SeriesInfo]()
	}
	return mo.Some(organized)
}

// Write memoizes organized under digest. The file is swapped in whole.
func Write(digest string, organized map[string]*series.SeriesInfo) error {
	data, err := json.Marshal(organized)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", digest, err)
	}
	if err := filesystem.WriteAtomic(path(digest), data); err != nil {
		return fmt.Errorf("cache: write %s: %w", digest, err)
	}
	return nil
}

// CollectGarbage removes expired entries and returns how many were removed.
func CollectGarbage() (int, error) {
	fs := filesystem.API()
	files, err := fs.ReadDir(where.Series())
	if err != nil {
		return 0, err
	}

	var removed int
	for _, file := range files {
		if file.IsDir() || time.Since(file.ModTime()) <= TTL() {
			continue
		}
		if err := fs.Remove(filepath.Join(where.Series(), file.Name())); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
