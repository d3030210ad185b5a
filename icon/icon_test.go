package icon

import (
	"testing"

	"github.com/anisan-cli/seriesdex/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Every icon renders in every variant", t, func() {
		for i := range icons {
			for _, variant := range AvailableVariants() {
				viper.Set(key.IconsVariant, variant)
				So(Get(i), ShouldNotBeEmpty)
			}
		}
	})

	Convey("Unknown variants render nothing", t, func() {
		viper.Set(key.IconsVariant, "")
		So(Get(Series), ShouldBeEmpty)
	})

	Convey("Plain icons are ASCII", t, func() {
		viper.Set(key.IconsVariant, "plain")
		So(Get(Fail), ShouldEqual, "X")
		So(Get(Next), ShouldEqual, ">")
	})
}

func TestCurrent(t *testing.T) {
	Convey("Current follows icons.variant", t, func() {
		viper.Set(key.IconsVariant, "kaomoji")
		So(Current(), ShouldEqual, Kaomoji)
		So(Success.String(), ShouldEqual, Get(Success))
	})

	Convey("Every variant is defined for every icon", t, func() {
		for i, f := range icons {
			So(f, ShouldHaveLength, len(variants))
			So(i.String(), ShouldEqual, Get(i))
		}
	})
}
