package catalog

import (
	"testing"

	"github.com/anisan-cli/seriesdex/filesystem"
	"github.com/anisan-cli/seriesdex/internal/cache"
	"github.com/anisan-cli/seriesdex/key"
	"github.com/anisan-cli/seriesdex/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

const document = `{
  "content": [
    {"claim_id": "a", "title": "Firefly S01E01 - Serenity", "release_time": "2002-09-20T00:00:00Z", "duration_seconds": 5400},
    {"claim_id": "b", "title": "Firefly S01E02 - The Train Job", "release_time": "2002-09-27T00:00:00Z"},
    {"claim_id": "", "title": "Orphan S01E01"},
    {"title": "Nameless S01E01"},
    {"claim_id": "m", "title": "Serenity", "release_time": "2005-09-30T00:00:00Z"}
  ],
  "playlists": [
    {"id": "pl", "title": "Firefly - Season 1", "items": [
      {"claim_id": "b", "position": 0},
      {"claim_id": "a", "position": 1},
      {"claim_id": "", "position": 2}
    ]},
    {"title": "No id"}
  ]
}`

func TestDecode(t *testing.T) {
	Convey("Decode", t, func() {
		c, err := Decode([]byte(document))
		So(err, ShouldBeNil)

		Convey("Drops unidentifiable records", func() {
			So(c.Content, ShouldHaveLength, 3)
			So(c.Playlists, ShouldHaveLength, 1)
			So(c.Playlists[0].Items, ShouldHaveLength, 2)
		})

		Convey("Indexes content by claim", func() {
			So(c.ByClaim(), ShouldContainKey, "m")
			So(c.ByClaim()["a"].Duration.MustGet(), ShouldEqual, 5400)
		})

		Convey("Digests the raw document", func() {
			So(c.Digest(), ShouldHaveLength, 64)
			again, _ := Decode([]byte(document))
			So(again.Digest(), ShouldEqual, c.Digest())
		})

		Convey("Rejects malformed documents", func() {
			_, err := Decode([]byte(`{"content": 3}`))
			So(err, ShouldNotBeNil)
		})

		Convey("Checks the document format", func() {
			_, err := Decode([]byte(`{"format": "1.0.0", "content": []}`))
			So(err, ShouldBeNil)
			_, err = Decode([]byte(`{"format": "2.0.0", "content": []}`))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSeries(t *testing.T) {
	Convey("Given a catalog on disk", t, func() {
		filesystem.SetMemMapFs()
		So(filesystem.API().WriteFile("/catalog.json", []byte(document), 0o644), ShouldBeNil)
		viper.Set(key.CatalogCache, true)
		viper.Set(key.CatalogCacheTTL, 24)
		viper.Set(key.CatalogPath, "")

		c, err := Load("/catalog.json")
		So(err, ShouldBeNil)

		Convey("Series follow playlist order", func() {
			organized := c.Series()
			So(organized, ShouldHaveLength, 1)
			firefly := organized["firefly"]
			So(firefly.TotalEpisodes(), ShouldEqual, 2)
			So(firefly.Seasons[0].Episodes[0].ClaimID, ShouldEqual, "b")
		})

		Convey("Series are memoized by digest", func() {
			_ = c.Series()
			So(cache.Read(c.Digest()).IsPresent(), ShouldBeTrue)
			So(c.Series()["firefly"].Seasons[0].Inferred, ShouldBeFalse)
		})

		Convey("SeriesFor finds the series of a claim", func() {
			s, ok := c.SeriesFor("a")
			So(ok, ShouldBeTrue)
			So(s.Key, ShouldEqual, "firefly")

			_, ok = c.SeriesFor("m")
			So(ok, ShouldBeFalse)
		})

		Convey("Path prefers the explicit catalog", func() {
			path, err := Path("/catalog.json")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, "/catalog.json")
		})

		Convey("Path falls back to configuration", func() {
			_, err := Path("")
			So(err, ShouldNotBeNil)

			viper.Set(key.CatalogPath, "/catalog.json")
			path, err := Path("")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, "/catalog.json")
		})

		Convey("Path finds a catalog in the config directory", func() {
			So(filesystem.API().WriteFile(where.Catalog(), []byte(document), 0o644), ShouldBeNil)
			path, err := Path("")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, where.Catalog())
		})

		Convey("Missing files are reported", func() {
			_, err := Load("/nope.json")
			So(err, ShouldNotBeNil)
			_, err = Path("/nope.json")
			So(err, ShouldNotBeNil)
		})
	})
}
