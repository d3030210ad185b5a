package log

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/anisan-cli/seriesdex/filesystem"
	"github.com/anisan-cli/seriesdex/key"
	"github.com/anisan-cli/seriesdex/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)

		Convey("Setup should be a no-op", func() {
			So(Setup(), ShouldBeNil)
			So(enabled, ShouldBeFalse)

			Convey("And emissions should not panic", func() {
				So(func() { With(Fields{"series": "x"}).Debugf("%d", 1) }, ShouldNotPanic)
			})
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "not-a-level")
		defer func() {
			viper.Set(key.LogsWrite, false)
			enabled = false
		}()

		Convey("Setup should create the log directory", func() {
			So(Setup(), ShouldBeNil)
			So(enabled, ShouldBeTrue)
			So(lo.Must(filesystem.API().IsDir(where.Logs())), ShouldBeTrue)
		})
	})
}

func TestPrune(t *testing.T) {
	Convey("Given a log directory with old and fresh files", t, func() {
		filesystem.SetMemMapFs()
		dir := "/logs"
		old := filename(time.Now().AddDate(0, 0, -30))
		fresh := filename(time.Now())
		for _, name := range []string{old, fresh, "notes.txt"} {
			So(filesystem.API().WriteFile(filepath.Join(dir, name), []byte("x"), 0o644), ShouldBeNil)
		}

		Convey("Files past the retention are removed", func() {
			So(prune(dir, 14), ShouldBeNil)
			So(lo.Must(filesystem.API().Exists(filepath.Join(dir, old))), ShouldBeFalse)
			So(lo.Must(filesystem.API().Exists(filepath.Join(dir, fresh))), ShouldBeTrue)
			So(lo.Must(filesystem.API().Exists(filepath.Join(dir, "notes.txt"))), ShouldBeTrue)
		})

		Convey("Zero retention keeps everything", func() {
			So(prune(dir, 0), ShouldBeNil)
			So(lo.Must(filesystem.API().Exists(filepath.Join(dir, old))), ShouldBeTrue)
		})
	})
}
