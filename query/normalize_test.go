package query

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalize(t *testing.T) {
	Convey("Normalize", t, func() {
		Convey("Splits designations from terms", func() {
			q := Normalize("breaking bad s5e16")
			So(q.Tokens, ShouldResemble, []string{"S05E16"})
			So(q.Terms, ShouldResemble, []string{"breaking", "bad"})
			So(q.OriginalText, ShouldEqual, "breaking bad s5e16")
			So(q.NormalizedText, ShouldEqual, "breaking bad s5e16")
		})

		Convey("De-duplicates equivalent designations", func() {
			q := Normalize("s1e1 S01E01 1x01")
			So(q.Tokens, ShouldResemble, []string{"S01E01"})
			So(q.Terms, ShouldBeEmpty)
		})

		Convey("Recognizes designations anywhere", func() {
			q := Normalize("doctor who season two episode three and 4x05 please")
			So(q.Tokens, ShouldResemble, []string{"S02E03", "S04E05"})
			So(q.Terms, ShouldResemble, []string{"doctor", "who", "please"})
		})

		Convey("Recognizes abbreviations", func() {
			So(Normalize("office s2 ep. 4").Tokens, ShouldResemble, []string{"S02E04"})
			So(Normalize("office S2 ep 4").Tokens, ShouldResemble, []string{"S02E04"})
		})

		Convey("Drops short words and stop words", func() {
			q := Normalize("The Lord of the Rings season")
			So(q.Terms, ShouldResemble, []string{"lord", "rings"})
		})

		Convey("Trims punctuation and folds accents", func() {
			q := Normalize("Pokémon: \"Indigo\" league!")
			So(q.Terms, ShouldResemble, []string{"pokemon", "indigo", "league"})
		})

		Convey("Handles tabs and newlines", func() {
			q := Normalize("\tfirefly\n\ns01e02\r\n")
			So(q.Tokens, ShouldResemble, []string{"S01E02"})
			So(q.Terms, ShouldResemble, []string{"firefly"})
			So(q.NormalizedText, ShouldEqual, "firefly s01e02")
		})

		Convey("Returns an empty result for blank input", func() {
			for _, text := range []string{"", "   ", "\t\n"} {
				q := Normalize(text)
				So(q.Empty(), ShouldBeTrue)
				So(q.Tokens, ShouldNotBeNil)
				So(q.Terms, ShouldNotBeNil)
				So(q.NormalizedText, ShouldEqual, "")
			}
		})

		Convey("Keeps non-latin words", func() {
			So(Normalize("進撃の巨人").Terms, ShouldResemble, []string{"進撃の巨人"})
		})

		Convey("Caps very long input", func() {
			long := strings.Repeat("abcd ", 1000)
			q := Normalize(long)
			So(len([]rune(q.NormalizedText)), ShouldBeLessThanOrEqualTo, DefaultOptions.MaxQueryLength)
			So(q.Terms, ShouldResemble, []string{"abcd"})
		})
	})

	Convey("NormalizeWith honours the term threshold", t, func() {
		q := NormalizeWith("ab abc abcd", Options{MinTermLength: 3})
		So(q.Terms, ShouldResemble, []string{"abcd"})

		q = NormalizeWith("ab abc", Options{})
		So(q.Terms, ShouldResemble, []string{"ab", "abc"})
	})

	Convey("HasToken", t, func() {
		q := Normalize("show 2x03")
		So(q.HasToken("S02E03"), ShouldBeTrue)
		So(q.HasToken("S02E04"), ShouldBeFalse)
	})
}
