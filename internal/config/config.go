package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "$HOME/.config/lifo/config.yaml"

// Load reads the YAML config at path. A missing file yields the zero Config.
func Load(path string) (ret Config, _ error) {
	marshaled, err := os.ReadFile(os.ExpandEnv(path))
	if errors.Is(err, fs.ErrNotExist) {
		return ret, nil
	}

	if err != nil {
		return ret, err
	}

	if err := yaml.Unmarshal(marshaled, &ret); err != nil {
		return ret, err
	}

	if ret.Capacity < 0 {
		return ret, errors.New("capacity must not be negative")
	}

	return ret, nil
}

type Config struct {
	Capacity int  `yaml:"capacity"`
	Strict   bool `yaml:"strict"`
	Debug    bool `yaml:"debug"`
}
