package where

import (
	"path/filepath"
	"testing"

	"github.com/anisan-cli/seriesdex/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Series() lives under Cache()", func() {
			path := Series()
			So(filepath.Dir(path), ShouldEqual, Cache())
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Config override", func() {
			t.Setenv(EnvConfigPath, "/tmp/seriesdex-test-config")
			So(Config(), ShouldEqual, "/tmp/seriesdex-test-config")
			So(History(), ShouldEqual, "/tmp/seriesdex-test-config/history.json")
		})
	})
}
