package config

import (
	"github.com/arthur-debert/gdot/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by Marshal
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// Marshal serializes cfg in the given format
func Marshal(cfg *Config, format string) ([]byte, error) {
	switch format {
	case FormatTOML, "":
		out, err := toml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "cannot encode configuration as toml")
		}
		return out, nil
	case FormatYAML, "yml":
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "cannot encode configuration as yaml")
		}
		return out, nil
	}
	return nil, errors.Newf(errors.ErrBadArgument, "Unknown format '%s' (expected toml or yaml)", format)
}
