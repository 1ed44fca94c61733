package cli

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/AmirF00/GraphQL-Converter/pkg/errors"
	"github.com/AmirF00/GraphQL-Converter/pkg/pipeline"
	"github.com/AmirF00/GraphQL-Converter/pkg/viz"
)

// Config is the optional TOML settings file accepted via --config. Flags
// set explicitly on the command line win over file values.
//
// Example:
//
//	max_fields = 16
//	rankdir = "LR"
//	formats = ["svg", "html", "json"]
//	title = "Orders API"
//	png_scale = 3.0
//
//	[palette]
//	object = "lightblue"
//	input = "lightgreen"
//	enum = "gold"
type Config struct {
	MaxFields int               `toml:"max_fields"`
	Rankdir   string            `toml:"rankdir"`
	Formats   []string          `toml:"formats"`
	Title     string            `toml:"title"`
	PNGScale  float64           `toml:"png_scale"`
	Palette   map[string]string `toml:"palette"`
}

// loadConfig reads and decodes a TOML settings file.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read config %s", path)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	return &cfg, nil
}

// applyConfig loads the settings file at path, when given, and merges it
// into opts. changed reports whether a flag was set explicitly.
func applyConfig(path string, opts *pipeline.Options, changed func(string) bool) error {
	if path == "" {
		return nil
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	cfg.apply(opts, changed)
	return nil
}

// apply copies file values into opts wherever the corresponding flag was
// not set on the command line.
func (cfg *Config) apply(opts *pipeline.Options, changed func(string) bool) {
	if cfg.MaxFields > 0 && !changed("max-fields") {
		opts.MaxFields = cfg.MaxFields
	}
	if cfg.Rankdir != "" && !changed("rankdir") {
		opts.Rankdir = cfg.Rankdir
	}
	if len(cfg.Formats) > 0 && !changed("formats") {
		opts.Formats = pipeline.NormalizeFormats(cfg.Formats)
	}
	if cfg.Title != "" && !changed("title") {
		opts.Title = cfg.Title
	}
	if cfg.PNGScale > 0 && !changed("png-scale") {
		opts.PNGScale = cfg.PNGScale
	}
	if len(cfg.Palette) > 0 {
		opts.Palette = cfg.palette()
	}
}

// paletteCategories maps TOML palette keys to node categories.
var paletteCategories = map[string]viz.Category{
	"object": viz.CategoryObject,
	"input":  viz.CategoryInput,
	"enum":   viz.CategoryEnum,
	"scalar": viz.CategoryScalar,
}

// palette converts the string-keyed TOML table into category colors.
// Unknown keys produce a warning rather than an error so a shared config
// file survives across versions.
func (cfg *Config) palette() map[viz.Category]string {
	out := make(map[viz.Category]string, len(cfg.Palette))
	for key, color := range cfg.Palette {
		cat, ok := paletteCategories[strings.ToLower(key)]
		if !ok {
			printWarning("Unknown palette category %q (expected object, input, enum, or scalar)", key)
			continue
		}
		out[cat] = color
	}
	return out
}
