package title

import (
	"testing"

	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Given episode titles in every supported notation", t, func() {
		cases := []struct {
			title string
			want  Match
		}{
			{"Doctor Who S01E01 - Rose", Match{"Doctor Who", 1, 1, "Rose"}},
			{"Doctor Who s1e1 - Rose", Match{"Doctor Who", 1, 1, "Rose"}},
			{"Doctor Who S01E01 – Rose", Match{"Doctor Who", 1, 1, "Rose"}},
			{"Doctor Who S01E01 Rose", Match{"Doctor Who", 1, 1, "Rose"}},
			{"Doctor Who S01E01", Match{"Doctor Who", 1, 1, ""}},
			{"Doctor Who - S01E01 - Rose", Match{"Doctor Who", 1, 1, "Rose"}},
			{"Doctor Who.S01E01.Rose", Match{"Doctor Who", 1, 1, "Rose"}},
			{"Breaking.Bad.S05E16.Felina", Match{"Breaking Bad", 5, 16, "Felina"}},
			{"Doctor Who S01 E02", Match{"Doctor Who", 1, 2, ""}},
			{"Show S100E123 - Long", Match{"Show", 100, 123, "Long"}},
			{"Doctor Who 1x01 - Rose", Match{"Doctor Who", 1, 1, "Rose"}},
			{"Doctor Who 2X13", Match{"Doctor Who", 2, 13, ""}},
			{"Doctor Who Season 1 Episode 1 - Rose", Match{"Doctor Who", 1, 1, "Rose"}},
			{"doctor who season one episode two - The End of the World", Match{"doctor who", 1, 2, "The End of the World"}},
			{"Doctor Who Season 3 Episode twelve", Match{"Doctor Who", 3, 12, ""}},
			{"Doctor Who Season seventeen Episode 4", Match{"Doctor Who", 17, 4, ""}},
			{"Doctor Who S1 ep 3 - Pilot", Match{"Doctor Who", 1, 3, "Pilot"}},
			{"Doctor Who S1 ep. 3", Match{"Doctor Who", 1, 3, ""}},
			{"  Doctor   Who \t S01E01  -  Rose  ", Match{"Doctor Who", 1, 1, "Rose"}},
			{"Doctor Who S01E05 - Rose - Part 1", Match{"Doctor Who", 1, 5, "Rose - Part 1"}},
			{"S01E01 - Pilot", Match{"", 1, 1, "Pilot"}},
		}

		for _, c := range cases {
			c := c
			Convey(c.title, func() {
				So(Parse(c.title), ShouldResemble, mo.Some(c.want))
			})
		}
	})

	Convey("Given titles that are not episodes", t, func() {
		for _, title := range []string{"", "   ", "S01", "Show S01x01", "Show 1E01", "Movie (2020)", "Season 2", "Show S01E0001"} {
			title := title
			Convey("'"+title+"'", func() {
				So(Parse(title).IsAbsent(), ShouldBeTrue)
			})
		}
	})

	Convey("Given a title matching several grammars", t, func() {
		Convey("The earlier grammar wins", func() {
			m := Parse("Show 2x03 S04E05").MustGet()
			So(m.Season, ShouldEqual, 4)
			So(m.Episode, ShouldEqual, 5)
			So(m.SeriesName, ShouldEqual, "Show 2x03")
		})
	})

	Convey("Match helpers", t, func() {
		m := Parse("Grey's Anatomy S2E7").MustGet()
		So(m.Key(), ShouldEqual, "greys-anatomy")
		So(m.Token().String(), ShouldEqual, "S02E07")
	})
}

func TestScan(t *testing.T) {
	Convey("Scan", t, func() {
		Convey("Finds designations anywhere in the text", func() {
			tokens := Scan("watch s1e1 then 2x03 and season four episode nine")
			So(lo.Map(tokens, func(t Token, _ int) string { return t.String() }), ShouldResemble, []string{"S01E01", "S02E03", "S04E09"})
		})

		Convey("Reports the span of the designation only", func() {
			tokens := Scan("bad s5e16")
			So(tokens, ShouldHaveLength, 1)
			So(tokens[0].Start, ShouldEqual, 4)
			So(tokens[0].End, ShouldEqual, 9)
		})

		Convey("Returns nothing for plain text", func() {
			So(Scan("breaking bad"), ShouldBeEmpty)
			So(Scan(""), ShouldBeEmpty)
		})
	})
}
