// Package config reads the optional l5x2txt TOML configuration file.
package config

import (
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lestrrat-go/strftime"
	"github.com/pkg/errors"

	"github.com/damischa1/l5x-tools/internal/safewrite"
)

// Report category keys, also used in the reports.skip list.
const (
	ControllerInfo = "controller_info"
	Tags           = "tags"
	DataTypes      = "data_types"
	AOIDefinitions = "aoi_definitions"
	Modules        = "modules"
	Tasks          = "tasks"
	Programs       = "programs"
)

// Categories lists every report category in export order.
var Categories = []string{ControllerInfo, Tags, DataTypes, AOIDefinitions, Modules, Tasks, Programs}

// Config is the top-level configuration.
type Config struct {
	Output  OutputConfig  `toml:"output"`
	Reports ReportsConfig `toml:"reports"`
}

// OutputConfig controls how report files are written.
type OutputConfig struct {
	// TimestampFormat is the strftime pattern appended to a report name
	// when the plain name is already taken.
	TimestampFormat string `toml:"timestamp_format"`
}

// ReportsConfig controls report naming and selection.
type ReportsConfig struct {
	Prefix    string   `toml:"prefix"`
	Extension string   `toml:"extension"`
	Skip      []string `toml:"skip"`
}

func Default() Config {
	return Config{
		Output:  OutputConfig{TimestampFormat: safewrite.DefaultTimestampFormat},
		Reports: ReportsConfig{Prefix: "extract_", Extension: ".txt"},
	}
}

// LoadFile reads path over the defaults. Keys the file does not set keep
// their default value; unknown keys are an error.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "%s: failed to parse TOML", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, errors.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := strftime.New(c.Output.TimestampFormat); err != nil {
		return errors.Wrap(err, "output.timestamp_format")
	}
	if strings.ContainsAny(c.Reports.Prefix+c.Reports.Extension, `/\`) {
		return errors.New("reports: prefix and extension must not contain path separators")
	}
	for _, s := range c.Reports.Skip {
		if !isCategory(s) {
			return errors.Errorf("reports.skip: unknown category %q (valid: %s)", s, strings.Join(Categories, ", "))
		}
	}
	return nil
}

// Enabled reports whether the category should be exported.
func (c Config) Enabled(category string) bool {
	for _, s := range c.Reports.Skip {
		if s == category {
			return false
		}
	}
	return true
}

// FileName returns the report file name of a category.
func (c Config) FileName(category string) string {
	return c.Reports.Prefix + category + c.Reports.Extension
}

func isCategory(s string) bool {
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}
