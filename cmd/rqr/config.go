package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// config holds the flag defaults that a config file can override. Flags
// passed on the command line always win over whatever is in the file.
type config struct {
	ECL     string `yaml:"ecl"`
	Version int    `yaml:"version"`
	Mask    int    `yaml:"mask"`
	Mode    string `yaml:"mode"`
	Out     string `yaml:"out"`
}

func defaultConfig() *config {
	return &config{
		ECL:     "low",
		Version: 0,
		Mask:    -1,
		Mode:    "",
		Out:     "string",
	}
}

// loadConfig reads a YAML config file, falling back to defaults if path is
// empty or the file does not exist.
func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
