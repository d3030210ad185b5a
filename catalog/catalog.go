// Package catalog loads content and playlist records from disk and organizes them into series.
package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/anisan-cli/seriesdex/constant"
	"github.com/anisan-cli/seriesdex/content"
	"github.com/anisan-cli/seriesdex/filesystem"
	"github.com/anisan-cli/seriesdex/internal/cache"
	"github.com/anisan-cli/seriesdex/key"
	"github.com/anisan-cli/seriesdex/log"
	"github.com/anisan-cli/seriesdex/series"
	"github.com/anisan-cli/seriesdex/version"
	"github.com/anisan-cli/seriesdex/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Catalog is a validated set of content items and playlists.
type Catalog struct {
	// Format is the document format version, see version.Supports.
	Format    string              `json:"format,omitempty"`
	Content   []*content.Item     `json:"content"`
	Playlists []*content.Playlist `json:"playlists"`

	digest  string
	byClaim map[string]*content.Item
}

// Path resolves the catalog to use: explicit if given, else the configured default.
func Path(explicit string) (string, error) {
	path := explicit
	if path == "" {
		path = viper.GetString(key.CatalogPath)
	}
	if path == "" {
		if fallback := where.Catalog(); lo.Must(filesystem.API().Exists(fallback)) {
			path = fallback
		}
	}
	if path == "" {
		return "", fmt.Errorf("no catalog given: pass --catalog, set %s or create %s", key.CatalogPath, where.Catalog())
	}

	if ext := filepath.Ext(path); ext != constant.CatalogExtension {
		log.Warnf("catalog %s has extension %q, expected %s", path, ext, constant.CatalogExtension)
	}

	exists, err := filesystem.API().Exists(path)
	if err != nil {
		return "", fmt.Errorf("catalog: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("catalog %s does not exist", path)
	}
	return path, nil
}

// Load reads the catalog document at path.
func Load(path string) (*Catalog, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	c, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Decode parses a catalog document and drops records that cannot be identified:
// items and playlist entries without a claim, playlists without an id.
func Decode(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	if err := version.Supports(c.Format); err != nil {
		return nil, err
	}

	c.Content = lo.Filter(c.Content, func(item *content.Item, i int) bool {
		if item == nil || strings.TrimSpace(item.ClaimID) == "" {
			log.Warnf("dropping content record %d: missing claim_id", i)
			return false
		}
		return true
	})

	c.Playlists = lo.Filter(c.Playlists, func(p *content.Playlist, i int) bool {
		if p == nil || strings.TrimSpace(p.ID) == "" {
			log.Warnf("dropping playlist record %d: missing id", i)
			return false
		}

		before := len(p.Items)
		p.Items = lo.Filter(p.Items, func(entry content.PlaylistItem, _ int) bool {
			return strings.TrimSpace(entry.ClaimID) != ""
		})
		if dropped := before - len(p.Items); dropped > 0 {
			log.Warnf("playlist %s: dropping %d entries without claim_id", p.ID, dropped)
		}
		return true
	})

	sum := sha256.Sum256(data)
	c.digest = hex.EncodeToString(sum[:])
	c.byClaim = content.Index(c.Content)

	return &c, nil
}

// Digest identifies the exact document the catalog was decoded from.
func (c *Catalog) Digest() string {
	return c.digest
}

// ByClaim indexes the content by claim id.
func (c *Catalog) ByClaim() map[string]*content.Item {
	if c.byClaim == nil {
		c.byClaim = content.Index(c.Content)
	}
	return c.byClaim
}

// Series organizes the catalog, reusing a memoized result for the same document when caching is on.
func (c *Catalog) Series() map[string]*series.SeriesInfo {
	useCache := viper.GetBool(key.CatalogCache) && c.digest != ""

	if useCache {
		if cached, ok := cache.Read(c.digest).Get(); ok {
			log.Debugf("series for catalog %s read from cache", c.digest[:12])
			return cached
		}
	}

	organized := series.Merge(c.Playlists, c.Content)

	if useCache {
		if err := cache.Write(c.digest, organized); err != nil {
			log.Warn(err)
		}
	}
	return organized
}

// SeriesFor organizes only the series the claim belongs to.
func (c *Catalog) SeriesFor(claimID string) (*series.SeriesInfo, bool) {
	return series.ForClaim(claimID, c.Playlists, c.Content).Get()
}
