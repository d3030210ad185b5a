package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/anisan-cli/seriesdex/filesystem"
	"github.com/anisan-cli/seriesdex/key"
	"github.com/anisan-cli/seriesdex/series"
	"github.com/anisan-cli/seriesdex/where"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func organized() map[string]*series.SeriesInfo {
	return map[string]*series.SeriesInfo{
		"firefly": {
			Key:   "firefly",
			Title: "Firefly",
			Seasons: []series.Season{{
				Number:     1,
				PlaylistID: mo.Some("pl-1"),
				Episodes: []series.Episode{
					{ClaimID: "a", Title: "Serenity", Number: 1, Season: 1, Duration: mo.Some(5400)},
					{ClaimID: "b", Title: "The Train Job", Number: 2, Season: 1},
				},
			}},
		},
	}
}

func TestCache(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		viper.Set(key.CatalogCacheTTL, 24)

		Convey("Unknown digests miss", func() {
			So(Read("missing").IsAbsent(), ShouldBeTrue)
		})

		Convey("Written series read back intact", func() {
			So(Write("abc", organized()), ShouldBeNil)

			cached := Read("abc").MustGet()
			So(cached, ShouldContainKey, "firefly")
			firefly := cached["firefly"]
			So(firefly.TotalEpisodes(), ShouldEqual, 2)
			So(firefly.Seasons[0].PlaylistID.MustGet(), ShouldEqual, "pl-1")
			So(firefly.Seasons[0].Episodes[0].Duration.MustGet(), ShouldEqual, 5400)
			So(firefly.Seasons[0].Episodes[1].Duration.IsAbsent(), ShouldBeTrue)
		})

		Convey("Expired entries miss and are collected", func() {
			So(Write("old", organized()), ShouldBeNil)
			stale := time.Now().Add(-48 * time.Hour)
			So(filesystem.API().Chtimes(filepath.Join(where.Series(), "old.json"), stale, stale), ShouldBeNil)

			So(Read("old").IsAbsent(), ShouldBeTrue)

			removed, err := CollectGarbage()
			So(err, ShouldBeNil)
			So(removed, ShouldEqual, 1)
		})
	})
}
