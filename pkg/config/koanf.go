package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotm/pkg/errors"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Delim separates nested keys
const Delim = "::"

// EnvConfPrefix prefixes environment overrides of the conf section,
// e.g. DOTM_CONF__SHELL=zsh or DOTM_CONF__PKG_MANAGERS__INSTALL_CMDS__APT
const EnvConfPrefix = "DOTM_CONF__"

// Extensions lists the config file extensions in lookup order
var Extensions = []string{".yaml", ".yml", ".json", ".toml"}

// parserFor picks the koanf parser from the file extension
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "Unsupported config format `%s`", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

// newKoanf stacks the embedded defaults, the config file at path and the
// environment overrides
func newKoanf(path string) (*koanf.Koanf, error) {
	k := koanf.New(Delim)

	if err := k.Load(rawbytes.Provider(defaultConfig), yaml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "Failed to load default config")
	}

	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "Failed to parse `%s`", path).
			WithDetail("path", path)
	}

	if err := k.Load(env.Provider(EnvConfPrefix, Delim, envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "Failed to load environment overrides")
	}

	return k, nil
}

// envKey maps DOTM_CONF__PKG_MANAGERS__DEPS__APT to conf::pkg_managers::deps::apt
func envKey(s string) string {
	key := strings.TrimPrefix(s, EnvConfPrefix)
	if key == "" {
		return ""
	}
	return "conf" + Delim + strings.ReplaceAll(strings.ToLower(key), "__", Delim)
}
