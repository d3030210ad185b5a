package series

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func showWithSeasons() *SeriesInfo {
	return &SeriesInfo{
		Key:   "show",
		Title: "Show",
		Seasons: []Season{
			inferredSeason(1, []Episode{
				{ClaimID: "s1e1", Number: 1, Season: 1},
				{ClaimID: "s1e2", Number: 2, Season: 1},
			}),
			{Number: 2},
			inferredSeason(3, []Episode{
				{ClaimID: "s3e1", Number: 1, Season: 3},
				{ClaimID: "s3e2", Number: 2, Season: 3},
			}),
		},
	}
}

func TestNavigate(t *testing.T) {
	Convey("Given a series with an empty middle season", t, func() {
		show := showWithSeasons()
		episode := func(claimID string) Episode {
			return show.Episode(claimID).MustGet()
		}

		Convey("Next stays within the season", func() {
			So(Next(episode("s1e1"), show).MustGet().ClaimID, ShouldEqual, "s1e2")
		})

		Convey("Next crosses into the next non-empty season", func() {
			So(Next(episode("s1e2"), show).MustGet().ClaimID, ShouldEqual, "s3e1")
		})

		Convey("Previous crosses into the last episode of the previous season", func() {
			So(Previous(episode("s3e1"), show).MustGet().ClaimID, ShouldEqual, "s1e2")
		})

		Convey("Previous stays within the season", func() {
			So(Previous(episode("s3e2"), show).MustGet().ClaimID, ShouldEqual, "s3e1")
		})

		Convey("The ends of the series have no neighbour", func() {
			So(Next(episode("s3e2"), show).IsAbsent(), ShouldBeTrue)
			So(Previous(episode("s1e1"), show).IsAbsent(), ShouldBeTrue)
		})

		Convey("Unknown episodes have no neighbour", func() {
			stranger := Episode{ClaimID: "nope", Number: 1, Season: 1}
			So(Next(stranger, show).IsAbsent(), ShouldBeTrue)
			So(Previous(stranger, show).IsAbsent(), ShouldBeTrue)
		})

		Convey("Season order is used even when seasons are stored out of order", func() {
			show.Seasons[0], show.Seasons[2] = show.Seasons[2], show.Seasons[0]
			So(Next(episode("s1e2"), show).MustGet().ClaimID, ShouldEqual, "s3e1")
			So(Previous(episode("s3e1"), show).MustGet().ClaimID, ShouldEqual, "s1e2")
		})

		Convey("Traversal follows position rather than episode numbers", func() {
			show.Seasons[0].Episodes[0].Number = 7
			So(Next(episode("s1e1"), show).MustGet().ClaimID, ShouldEqual, "s1e2")
		})
	})

	Convey("A nil series has no neighbours", t, func() {
		So(Next(Episode{ClaimID: "x"}, nil).IsAbsent(), ShouldBeTrue)
	})
}
