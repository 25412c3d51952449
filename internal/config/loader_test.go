package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/notestats/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars(t)

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx, "")

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldResemble, config.New())
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			path := createTempConfigFile(t, `
notes_dir: /srv/notes
template_path: /srv/notes-template.html
output_path: /var/www/notes.html
extensions: [".md", ".markdown"]
exclude: ["archive/**"]
log_level: debug
debounce: 2s
`)
			cfg, err := config.Load(ctx, path)

			convey.Convey("Then it should load from the YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.NotesDir, convey.ShouldEqual, "/srv/notes")
				convey.So(cfg.TemplatePath, convey.ShouldEqual, "/srv/notes-template.html")
				convey.So(cfg.OutputPath, convey.ShouldEqual, "/var/www/notes.html")
				convey.So(cfg.Extensions, convey.ShouldResemble, []string{".md", ".markdown"})
				convey.So(cfg.Exclude, convey.ShouldResemble, []string{"archive/**"})
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.Debounce, convey.ShouldEqual, 2*time.Second)
			})
		})

		convey.Convey("When the file path comes from NOTESTATS_CONFIG", func() {
			path := createTempConfigFile(t, "notes_dir: /from/env/file\n")
			t.Setenv("NOTESTATS_CONFIG", path)

			cfg, err := config.Load(ctx, "")

			convey.Convey("Then that file is used", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.NotesDir, convey.ShouldEqual, "/from/env/file")
			})
		})

		convey.Convey("When environment variables are set on top of a file", func() {
			path := createTempConfigFile(t, "notes_dir: /from/file\noutput_path: out.html\n")
			t.Setenv("NOTESTATS_NOTES_DIR", "/from/env")
			t.Setenv("NOTESTATS_EXCLUDE", "drafts/**, .trash/**")

			cfg, err := config.Load(ctx, path)

			convey.Convey("Then env vars win over the file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.NotesDir, convey.ShouldEqual, "/from/env")
				convey.So(cfg.OutputPath, convey.ShouldEqual, "out.html")
				convey.So(cfg.Exclude, convey.ShouldResemble, []string{"drafts/**", ".trash/**"})
			})
		})

		convey.Convey("When the file does not exist", func() {
			_, err := config.Load(ctx, filepath.Join(t.TempDir(), "missing.yaml"))

			convey.Convey("Then it fails with ErrLoadConfig", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the merged config is invalid", func() {
			path := createTempConfigFile(t, "log_level: chatty\n")
			_, err := config.Load(ctx, path)

			convey.Convey("Then it fails with ErrInvalidConfig", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notestats.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func clearConfigEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"NOTESTATS_CONFIG", "NOTESTATS_NOTES_DIR", "NOTESTATS_TEMPLATE_PATH", "NOTESTATS_OUTPUT_PATH",
		"NOTESTATS_EXTENSIONS", "NOTESTATS_EXCLUDE", "NOTESTATS_LOG_LEVEL", "NOTESTATS_DEBOUNCE",
	} {
		// t.Setenv restores the previous value when the test ends.
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}
