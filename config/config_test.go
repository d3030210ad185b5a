package config

import (
	"testing"

	"github.com/anisan-cli/seriesdex/filesystem"
	"github.com/anisan-cli/seriesdex/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetInt(key.SearchMinTermLength), ShouldEqual, 2)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("search.min_term_length")
			So(result, ShouldEqual, "search_min_term_length")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.SearchLimit]

		Convey("Env should carry the application prefix", func() {
			So(field.Env(), ShouldEqual, "SERIESDEX_SEARCH_LIMIT")
		})

		Convey("typeName should reflect the default value", func() {
			catalogPath := Default[key.CatalogPath]
			catalogCache := Default[key.CatalogCache]
			So(field.typeName(), ShouldEqual, "int")
			So(catalogPath.typeName(), ShouldEqual, "string")
			So(catalogCache.typeName(), ShouldEqual, "bool")
		})
	})
}

func TestWrite(t *testing.T) {
	Convey("Given a fresh setup on an empty filesystem", t, func() {
		filesystem.SetMemMapFs()
		viper.Reset()
		So(Setup(), ShouldBeNil)

		Convey("Write should create the config file", func() {
			viper.Set(key.SearchLimit, 7)
			So(Write(), ShouldBeNil)

			exists, err := filesystem.API().Exists(File())
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)

			Convey("And Setup should read it back", func() {
				viper.Reset()
				So(Setup(), ShouldBeNil)
				So(viper.GetInt(key.SearchLimit), ShouldEqual, 7)
			})
		})
	})
}
