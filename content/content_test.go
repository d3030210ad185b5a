package content

import (
	"encoding/json"
	"testing"

	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestItem(t *testing.T) {
	Convey("Given an item", t, func() {
		item := &Item{
			ClaimID: "abc",
			Title:   "Doctor Who S01E01 - Rose",
			Tags:    []string{"SciFi", "bbc"},
			VideoURLs: map[string]VideoURL{
				"720p":  {URL: "http://x/720.mp4", Quality: "720p"},
				"1080p": {URL: "http://x/1080.mp4", Quality: "1080p"},
				"sd":    {URL: "http://x/sd.mp4", Quality: "sd"},
			},
		}

		Convey("String returns the title", func() {
			So(item.String(), ShouldEqual, "Doctor Who S01E01 - Rose")
		})

		Convey("HasTag ignores case", func() {
			So(item.HasTag("scifi"), ShouldBeTrue)
			So(item.HasTag(" BBC "), ShouldBeTrue)
			So(item.HasTag("drama"), ShouldBeFalse)
			So(item.HasTag(""), ShouldBeFalse)
		})

		Convey("PreferredVideo picks the tallest rendition", func() {
			video, ok := item.PreferredVideo().Get()
			So(ok, ShouldBeTrue)
			So(video.Quality, ShouldEqual, "1080p")
		})

		Convey("PreferredVideo is absent without renditions", func() {
			So((&Item{}).PreferredVideo().IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestVideoURL(t *testing.T) {
	Convey("VideoURL", t, func() {
		So(VideoURL{Quality: "1080p"}.Height(), ShouldEqual, 1080)
		So(VideoURL{Quality: "4K"}.Height(), ShouldEqual, 2160)
		So(VideoURL{Quality: "weird"}.Height(), ShouldEqual, 0)
		So(VideoURL{URL: "http://x"}.String(), ShouldEqual, "http://x")
	})
}

func TestIndex(t *testing.T) {
	Convey("Index keeps the first item per claim", t, func() {
		first := &Item{ClaimID: "a", Title: "first"}
		index := Index([]*Item{first, nil, {ClaimID: "a", Title: "second"}, {ClaimID: "b"}})
		So(index, ShouldHaveLength, 2)
		So(index["a"], ShouldEqual, first)
	})
}

func TestPlaylist(t *testing.T) {
	Convey("Given a playlist with unsorted positions", t, func() {
		p := &Playlist{
			ID: "pl",
			Items: []PlaylistItem{
				{ClaimID: "ep3", Position: 2},
				{ClaimID: "ep1", Position: 0},
				{ClaimID: "ep2", Position: 1},
			},
		}

		Convey("Ordered sorts by position without touching the input", func() {
			ordered := p.Ordered()
			So(lo.Map(ordered, func(i PlaylistItem, _ int) string { return i.ClaimID }), ShouldResemble, []string{"ep1", "ep2", "ep3"})
			So(p.Items[0].ClaimID, ShouldEqual, "ep3")
		})

		Convey("Contains finds members", func() {
			So(p.Contains("ep2"), ShouldBeTrue)
			So(p.Contains("ep9"), ShouldBeFalse)
		})
	})

	Convey("Given playlist JSON with optional numbers", t, func() {
		raw := `{"id":"pl","title":"Show","season_number":2,"items":[{"claim_id":"a","position":0,"episode_number":5},{"claim_id":"b","position":1}]}`

		var p Playlist
		So(json.Unmarshal([]byte(raw), &p), ShouldBeNil)

		Convey("Present fields decode as Some", func() {
			So(p.SeasonNumber, ShouldResemble, mo.Some(2))
			So(p.Items[0].EpisodeNumber, ShouldResemble, mo.Some(5))
		})

		Convey("Missing fields decode as None", func() {
			So(p.Items[1].EpisodeNumber.IsAbsent(), ShouldBeTrue)
			So(p.Items[0].SeasonNumber.IsAbsent(), ShouldBeTrue)
		})
	})
}
