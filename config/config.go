// Package config loads and dumps studentdb configuration files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dekarrin/studentdb"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file format.
type Format int

const (
	NoFormat Format = iota
	JSON
	YAML
)

func (f Format) String() string {
	switch f {
	case NoFormat:
		return "none"
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Extensions returns the file extensions, without a leading dot, that files of
// format f use.
func (f Format) Extensions() []string {
	switch f {
	case JSON:
		return []string{"json", "jsn"}
	case YAML:
		return []string{"yaml", "yml"}
	default:
		return nil
	}
}

type marshaledDatabase struct {
	Type string `yaml:"type" json:"type"`
	File string `yaml:"file,omitempty" json:"file,omitempty"`
	DSN  string `yaml:"dsn,omitempty" json:"dsn,omitempty"`
}

type marshaledLog struct {
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	Provider string `yaml:"provider,omitempty" json:"provider,omitempty"`
	File     string `yaml:"file,omitempty" json:"file,omitempty"`
}

type marshaledConfig struct {
	DB      marshaledDatabase `yaml:"db" json:"db"`
	Logging marshaledLog      `yaml:"logging" json:"logging"`
}

func marshalConfig(cfg studentdb.Config) marshaledConfig {
	mc := marshaledConfig{
		DB: marshaledDatabase{
			Type: cfg.DB.Type.String(),
			File: filepath.ToSlash(cfg.DB.File),
			DSN:  cfg.DB.DSN,
		},
		Logging: marshaledLog{
			Enabled: cfg.Log.Enabled,
			File:    cfg.Log.File,
		},
	}
	if cfg.Log.Provider != studentdb.NoLog {
		mc.Logging.Provider = cfg.Log.Provider.String()
	}
	return mc
}

func unmarshalConfig(mc marshaledConfig) (studentdb.Config, error) {
	var cfg studentdb.Config
	var err error

	if mc.DB.Type != "" {
		cfg.DB.Type, err = studentdb.ParseDBType(mc.DB.Type)
		if err != nil {
			return cfg, fmt.Errorf("db: type: %w", err)
		}
	}
	cfg.DB.File = filepath.FromSlash(mc.DB.File)
	cfg.DB.DSN = mc.DB.DSN

	cfg.Log.Enabled = mc.Logging.Enabled
	cfg.Log.File = mc.Logging.File
	cfg.Log.Provider, err = studentdb.ParseLogProvider(mc.Logging.Provider)
	if err != nil {
		return cfg, fmt.Errorf("logging: provider: %w", err)
	}

	return cfg, nil
}

func decode(f Format, data []byte) (studentdb.Config, error) {
	var mc marshaledConfig
	var err error

	switch f {
	case JSON:
		err = json.Unmarshal(data, &mc)
	case YAML:
		err = yaml.Unmarshal(data, &mc)
	default:
		return studentdb.Config{}, fmt.Errorf("cannot unmarshal data in format %q", f.String())
	}

	if err != nil {
		return studentdb.Config{}, studentdb.NewError("", err, studentdb.ErrDecodingFailure)
	}

	return unmarshalConfig(mc)
}

func encode(f Format, cfg studentdb.Config) ([]byte, error) {
	mc := marshalConfig(cfg)

	switch f {
	case JSON:
		return json.MarshalIndent(mc, "", "  ")
	case YAML:
		return yaml.Marshal(mc)
	default:
		return nil, fmt.Errorf("cannot marshal data in format %q", f.String())
	}
}

// SupportedFormats returns a list of formats that the config module supports
// decoding. Includes all but NoFormat.
func SupportedFormats() []Format {
	return []Format{JSON, YAML}
}

// DetectFormat detects the format of a given configuration file and returns the
// Format that can decode it. Returns NoFormat if the format could not be
// detected.
func DetectFormat(file string) Format {
	ext := strings.ToLower(filepath.Ext(file))
	ext = strings.TrimPrefix(ext, ".")

	for _, f := range SupportedFormats() {
		for _, checkedExt := range f.Extensions() {
			if ext == checkedExt {
				return f
			}
		}
	}

	return NoFormat
}

// Dump encodes cfg in format f. If f is NoFormat, YAML is used. Loading the
// result results in an equivalent Config.
func Dump(f Format, cfg studentdb.Config) ([]byte, error) {
	if f == NoFormat {
		f = YAML
	}
	return encode(f, cfg)
}

// Load loads a configuration from a JSON or YAML file. The format of the file
// is determined by examining its extension; files ending in .json or .jsn are
// parsed as JSON files, and files ending in .yaml or .yml are parsed as YAML
// files. Other extensions are not supported. The extension is not
// case-sensitive.
//
// Unset values in the file are filled with their defaults and the resulting
// Config is validated before it is returned.
func Load(file string) (studentdb.Config, error) {
	f := DetectFormat(file)
	if f == NoFormat {
		return studentdb.Config{}, studentdb.NewError(fmt.Sprintf("%s: incompatible format; must be a .json, .jsn, .yaml, or .yml file", file), studentdb.ErrConfiguration)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return studentdb.Config{}, fmt.Errorf("%s: %w", file, err)
	}

	cfg, err := decode(f, data)
	if err != nil {
		return studentdb.Config{}, fmt.Errorf("%s: %w", file, err)
	}

	cfg = cfg.FillDefaults()
	if err := cfg.Validate(); err != nil {
		return studentdb.Config{}, fmt.Errorf("%s: %w", file, err)
	}

	return cfg, nil
}
