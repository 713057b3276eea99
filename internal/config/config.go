package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/babarot/stripname/internal/env"
	"github.com/go-playground/validator/v10"
	"github.com/muesli/reflow/indent"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Core   Core   `yaml:"core"`
	Rename Rename `yaml:"rename"`
	UI     UI     `yaml:"ui"`
}

type Core struct {
	Confirm bool       `yaml:"confirm"`
	Verbose bool       `yaml:"verbose"`
	Undo    UndoConfig `yaml:"undo"`
}

// UndoConfig controls where auto-named undo scripts are written.
// An empty dir means the current working directory.
type UndoConfig struct {
	Dir string `yaml:"dir"`
}

type Rename struct {
	Exclude   ExcludeConfig `yaml:"exclude"`
	Protected []string      `yaml:"protected"`
}

// ExcludeConfig lists entry names that are never considered for renaming.
type ExcludeConfig struct {
	Files    []string `yaml:"files"`
	Patterns []string `yaml:"patterns" validate:"dive,validRegexp"`
	Globs    []string `yaml:"globs" validate:"dive,validGlob"`
}

type UI struct {
	ExitMessage string      `yaml:"exit_message"`
	Style       styleConfig `yaml:"style"`
}

type styleConfig struct {
	Removed   string `yaml:"removed" validate:"validColor"`
	DirHeader string `yaml:"dir_header" validate:"validColor"`
	Arrow     string `yaml:"arrow" validate:"validColor"`
}

func defaults() Config {
	return Config{
		Core: Core{
			Confirm: true,
			Verbose: true,
		},
		Rename: Rename{
			Exclude: ExcludeConfig{
				// macOS folder metadata; renaming it confuses Finder.
				Files: []string{".DS_Store"},
			},
		},
		UI: UI{
			ExitMessage: "bye!",
			Style: styleConfig{
				Removed:   "#FF5F87", // Pink
				DirHeader: "#5F87FF", // Blue
				Arrow:     "#AAAAAA", // Gray
			},
		},
	}
}

func defaultYAML() string {
	out, _ := yaml.Marshal(defaults())
	return string(out)
}

// loadError carries enough context to print actionable help, including a
// complete example config, instead of a bare open() failure.
type loadError struct {
	path string
	err  error
}

func (e loadError) Error() string {
	return heredoc.Docf(`
		Couldn't read the "%s" config file.
		Please try again after creating it or specifying a valid config path.
		The recommended config path is %s (default).
		Example YAML file contents:
		---
		%s
		---
		Original error:
		%s
		`,
		e.path,
		env.STRIPNAME_CONFIG_PATH,
		defaultYAML(),
		indent.String(e.err.Error(), 2),
	)
}

// seedConfigFile writes the default config to path when nothing is there
// yet, creating parent directories as needed. An existing file is left
// alone.
func seedConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	slog.Warn("creating config file as it does not exist", "config-file", path)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(defaultYAML())
	return err
}

func newValidator() *validator.Validate {
	v := validator.New()
	// Report yaml field names in validation errors, not Go ones.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.Split(fld.Tag.Get("yaml"), ",")[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("validColor", validColor)
	_ = v.RegisterValidation("validRegexp", validRegexp)
	_ = v.RegisterValidation("validGlob", validGlob)
	return v
}

// Parse loads the config from path, or from the default location when path
// is empty, seeding a default config file there first. Values not present
// in the file keep their defaults.
func Parse(path string) (Config, error) {
	cfg := defaults()

	if path == "" {
		path = env.STRIPNAME_CONFIG_PATH
		if err := seedConfigFile(path); err != nil {
			return cfg, loadError{path: path, err: err}
		}
	}
	slog.Debug("config file found", "config-file", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, loadError{path: path, err: err}
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := newValidator().Struct(cfg); err != nil {
		for _, ve := range err.(validator.ValidationErrors) {
			return cfg, fmt.Errorf("config field %s: %q is invalid", ve.Field(), ve.Value())
		}
	}
	return cfg, nil
}
