package config

import (
	"strings"

	"github.com/arthur-debert/dotm/pkg/errors"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Settings are the invocation wide options shared by every command
type Settings struct {
	DotDir    string `koanf:"dotdir"`
	Distro    string `koanf:"distro"`
	Config    string `koanf:"config"`
	NoConfirm bool   `koanf:"noconfirm"`
	Verbose   int    `koanf:"verbose"`
}

// settingsEnv maps environment variables to settings keys
var settingsEnv = map[string]string{
	"DOTM_DOTFILES_DIR": "dotdir",
	"DOTM_DISTRO":       "distro",
	"DOTM_CONFIG":       "config",
	"DOTM_NOCONFIRM":    "noconfirm",
	"DOTM_VERBOSE":      "verbose",
}

// LoadSettings layers defaults, DOTM_ environment variables and command
// line flags. Flags only override the environment when given explicitly.
func LoadSettings(flags *pflag.FlagSet) (Settings, error) {
	k := koanf.New(Delim)

	defaults := map[string]interface{}{
		"dotdir":    "",
		"distro":    "",
		"config":    "",
		"noconfirm": false,
		"verbose":   0,
	}
	if err := k.Load(confmap.Provider(defaults, Delim), nil); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrInternal, "Failed to load default settings")
	}

	// The env layer replaces the defaults' keys, so posflag below sees
	// them as existing and leaves them alone unless the flag was set.
	if err := k.Load(env.Provider("DOTM_", Delim, settingsKey), nil); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrInvalidInput, "Failed to read environment")
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, Delim, k), nil); err != nil {
			return Settings{}, errors.Wrap(err, errors.ErrInvalidInput, "Failed to read flags")
		}
	}

	var s Settings
	if err := k.UnmarshalWithConf("", &s, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrInvalidInput, "Invalid settings")
	}
	return s, nil
}

func settingsKey(s string) string {
	if key, ok := settingsEnv[strings.ToUpper(s)]; ok {
		return key
	}
	return ""
}
