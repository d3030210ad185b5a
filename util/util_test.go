package util

import (
	"regexp"
	"testing"

	"github.com/anisan-cli/seriesdex/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "season", "seasons"), ShouldEqual, "1 season")
		So(Quantify(0, "season", "seasons"), ShouldEqual, "0 seasons")
		So(Quantify(12, "episode", "episodes"), ShouldEqual, "12 episodes")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("watch history"), ShouldEqual, "Watch history")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestReGroups(t *testing.T) {
	Convey("ReGroups", t, func() {
		re := regexp.MustCompile(`(?P<name>\w+) (?:s(?P<season>\d+))?`)

		groups := ReGroups(re, "firefly s1")
		So(groups["name"], ShouldEqual, "firefly")
		So(groups["season"], ShouldEqual, "1")

		groups = ReGroups(re, "firefly ")
		So(groups, ShouldContainKey, "season")
		So(groups["season"], ShouldEqual, "")

		So(ReGroups(re, "!"), ShouldBeEmpty)
	})
}

func TestClamp(t *testing.T) {
	Convey("Clamp", t, func() {
		So(Clamp(5, 0, 3), ShouldEqual, 3)
		So(Clamp(-1, 0, 3), ShouldEqual, 0)
		So(Clamp(2, 0, 3), ShouldEqual, 2)
		So(Clamp(uint64(9), 0, 0), ShouldEqual, uint64(0))
	})
}

func TestDelete(t *testing.T) {
	Convey("Given files in memory", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()
		So(fs.MkdirAll("/cache/series", 0o755), ShouldBeNil)
		So(fs.WriteFile("/cache/series/a.json", []byte("{}"), 0o644), ShouldBeNil)
		So(fs.WriteFile("/cache/queries.json", []byte("{}"), 0o644), ShouldBeNil)

		Convey("Delete removes single files", func() {
			So(Delete("/cache/queries.json"), ShouldBeNil)
			exists, _ := fs.Exists("/cache/queries.json")
			So(exists, ShouldBeFalse)
		})

		Convey("Delete removes directories recursively", func() {
			So(Delete("/cache/series"), ShouldBeNil)
			exists, _ := fs.Exists("/cache/series/a.json")
			So(exists, ShouldBeFalse)
		})

		Convey("Delete reports missing paths", func() {
			So(Delete("/nope"), ShouldNotBeNil)
		})
	})
}
