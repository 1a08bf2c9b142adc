package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/NousDaddy/SQift/logging"
	"gopkg.in/yaml.v3"
)

type marshaledDatabase struct {
	File string `yaml:"file" json:"file"`
}

type marshaledLog struct {
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	Provider string `yaml:"provider" json:"provider"`
	File     string `yaml:"file" json:"file"`
}

type marshaledFormat struct {
	DateLayout string `yaml:"date_layout" json:"date_layout"`
	TimeZone   string `yaml:"time_zone" json:"time_zone"`
}

type marshaledConfig struct {
	DB     marshaledDatabase `yaml:"db" json:"db"`
	Log    marshaledLog      `yaml:"logging" json:"logging"`
	Format marshaledFormat   `yaml:"format" json:"format"`
}

// Load loads a configuration from a JSON or YAML file. The format of the file
// is determined by examining its extension; files ending in .json are parsed
// as JSON files, and files ending in .yaml or .yml are parsed as YAML files.
// Other extensions are not supported. The extension is not case-sensitive.
func Load(file string) (Config, error) {
	var cfg Config
	var mc marshaledConfig

	data, err := os.ReadFile(file)
	if err != nil {
		return cfg, fmt.Errorf("%q: %w", file, err)
	}

	switch filepath.Ext(strings.ToLower(file)) {
	case ".json":
		if err := json.Unmarshal(data, &mc); err != nil {
			return cfg, fmt.Errorf("%q: %w", file, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &mc); err != nil {
			return cfg, fmt.Errorf("%q: %w", file, err)
		}
	default:
		return cfg, fmt.Errorf("%q: incompatible format; must be a .json, .yaml, or .yml file", file)
	}

	return cfg.unmarshal(mc)
}

func (cfg Config) unmarshal(mc marshaledConfig) (Config, error) {
	newCfg := cfg

	newCfg.DB.File = mc.DB.File

	prov, err := logging.ParseProvider(mc.Log.Provider)
	if err != nil {
		return newCfg, fmt.Errorf("logging: provider: %w", err)
	}
	newCfg.Log.Enabled = mc.Log.Enabled
	newCfg.Log.Provider = prov
	newCfg.Log.File = mc.Log.File

	newCfg.Format.DateLayout = mc.Format.DateLayout
	newCfg.Format.TimeZone = mc.Format.TimeZone

	return newCfg, nil
}
