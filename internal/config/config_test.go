package config

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		viper.Reset()

		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should populate every default", func() {
			_ = Setup()
			for name, field := range Default {
				So(viper.Get(name), ShouldEqual, field.Value)
			}
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("matrix.arena_chunk"), ShouldEqual, "matrix_arena_chunk")
			So(Default[KeySize].Env(), ShouldEqual, "MATMUL_MATRIX_SIZE")
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Config Load", t, func() {
		viper.Reset()
		So(Setup(), ShouldBeNil)

		Convey("Defaults are valid", func() {
			s, err := Load()
			So(err, ShouldBeNil)
			So(s.Size, ShouldEqual, 10)
			So(s.ArenaChunk, ShouldEqual, 0)
			So(s.LogLevel, ShouldEqual, logrus.InfoLevel)
			So(s.LogJSON, ShouldBeFalse)
			So(s.Output, ShouldBeEmpty)
		})

		Convey("Environment overrides defaults", func() {
			t.Setenv("MATMUL_MATRIX_SIZE", "12")
			t.Setenv("MATMUL_LOGS_LEVEL", "debug")
			s, err := Load()
			So(err, ShouldBeNil)
			So(s.Size, ShouldEqual, 12)
			So(s.LogLevel, ShouldEqual, logrus.DebugLevel)
		})

		Convey("Too small a matrix is rejected", func() {
			viper.Set(KeySize, MinSize-1)
			_, err := Load()
			So(errors.Is(err, ErrInvalid), ShouldBeTrue)
		})

		Convey("Negative arena chunk is rejected", func() {
			viper.Set(KeyArenaChunk, -4)
			_, err := Load()
			So(errors.Is(err, ErrInvalid), ShouldBeTrue)
		})

		Convey("Unknown log level is rejected", func() {
			viper.Set(KeyLogsLevel, "loud")
			_, err := Load()
			So(errors.Is(err, ErrInvalid), ShouldBeTrue)
		})
	})
}
