package config_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/aretw0/notestats/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.NotesDir, convey.ShouldEqual, ".")
			convey.So(cfg.OutputPath, convey.ShouldEqual, "notes.html")
			convey.So(cfg.TemplatePath, convey.ShouldBeEmpty)
			convey.So(cfg.Extensions, convey.ShouldResemble, []string{".md"})
			convey.So(cfg.Exclude, convey.ShouldBeEmpty)
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Debounce, convey.ShouldEqual, 500*time.Millisecond)
		})

		convey.Convey("Then it should validate", func() {
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given an otherwise valid config", t, func() {
		cases := []struct {
			name   string
			mutate func(*config.Config)
		}{
			{"empty notes dir", func(c *config.Config) { c.NotesDir = " " }},
			{"empty output path", func(c *config.Config) { c.OutputPath = "" }},
			{"no extensions", func(c *config.Config) { c.Extensions = nil }},
			{"blank extension", func(c *config.Config) { c.Extensions = []string{".md", ""} }},
			{"negative debounce", func(c *config.Config) { c.Debounce = -time.Second }},
			{"unknown log level", func(c *config.Config) { c.LogLevel = "loud" }},
		}

		for _, tc := range cases {
			convey.Convey("When it has "+tc.name, func() {
				cfg := config.New()
				tc.mutate(cfg)
				err := cfg.Validate()

				convey.Convey("Then validation fails with ErrInvalidConfig", func() {
					convey.So(err, convey.ShouldNotBeNil)
					convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				})
			})
		}
	})
}

func TestParseLevel(t *testing.T) {
	convey.Convey("Given log level names", t, func() {
		tests := map[string]slog.Level{
			"debug":   slog.LevelDebug,
			"":        slog.LevelInfo,
			"INFO":    slog.LevelInfo,
			"warning": slog.LevelWarn,
			" warn ":  slog.LevelWarn,
			"error":   slog.LevelError,
		}
		for in, want := range tests {
			got, err := config.ParseLevel(in)
			convey.So(err, convey.ShouldBeNil)
			convey.So(got, convey.ShouldEqual, want)
		}

		_, err := config.ParseLevel("verbose")
		convey.So(err, convey.ShouldNotBeNil)
	})
}
