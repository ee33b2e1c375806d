package config

import (
	"os"

	"github.com/arthur-debert/dotm/pkg/errors"
	"github.com/arthur-debert/dotm/pkg/logging"
	"github.com/arthur-debert/dotm/pkg/paths"
	"github.com/arthur-debert/dotm/pkg/types"
)

// LoadOptions selects the config file to load
type LoadOptions struct {
	Paths paths.Paths
	// File overrides the lookup in the dotfiles directory
	File string
}

// DefaultConf mirrors the embedded defaults
func DefaultConf() Conf {
	return Conf{
		Shell: "bash",
		PkgManagers: PkgManagers{
			InstallCmds: map[types.Identifier]string{},
			Deps:        map[types.Identifier]types.Identifiers{},
		},
	}
}

// Load finds, parses and validates the rule store
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config.load")

	path := opts.File
	if path == "" {
		found, err := Find(opts.Paths.ConfigCandidates())
		if err != nil {
			return nil, err
		}
		path = found
	} else {
		path = opts.Paths.Resolve(path)
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigNotFound, "Config not found: %s", path).
				WithDetail("path", path)
		}
	}
	logger.Debug().Str("path", path).Msg("Loading config")

	k, err := newKoanf(path)
	if err != nil {
		return nil, err
	}

	conf, err := decodeConf(k)
	if err != nil {
		return nil, err
	}
	if conf.BackupDir == "" {
		conf.BackupDir = opts.Paths.DefaultBackupDir()
	} else {
		conf.BackupDir = opts.Paths.Resolve(conf.BackupDir)
	}

	rules, err := decodeRules(k)
	if err != nil {
		return nil, err
	}

	c := &Config{Conf: conf, Source: path, rules: rules}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Int("rules", len(rules)).
		Str("shell", conf.Shell).
		Msg("Config loaded")
	return c, nil
}

// Find returns the first existing candidate, trying every supported
// extension for each base path in turn
func Find(candidates []string) (string, error) {
	tried := make([]string, 0, len(candidates)*len(Extensions))
	for _, base := range candidates {
		for _, ext := range Extensions {
			path := base + ext
			tried = append(tried, path)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}
	}
	return "", errors.New(errors.ErrConfigNotFound, "Config not found").
		WithDetail("tried", tried)
}
