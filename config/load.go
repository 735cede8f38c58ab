package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML configuration file on top of the defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "open config")
	}
	defer f.Close()

	return Read(f)
}

// Read decodes YAML from r on top of the defaults. Unknown keys are an
// error.
func Read(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(&cfg)
	if err == io.EOF {
		return cfg, nil
	}
	if err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	return cfg, nil
}
