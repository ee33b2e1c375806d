package config

import (
	"sort"
	"strings"
	"time"

	"github.com/arthur-debert/dotm/pkg/errors"
	"github.com/arthur-debert/dotm/pkg/types"
)

// Conf is the global `conf` section
type Conf struct {
	// Shell runs shell and in_temp scripts
	Shell string `koanf:"shell" json:"shell" yaml:"shell" toml:"shell"`
	// BackupDir receives files displaced by links. Relative paths are
	// relative to the dotfiles directory.
	BackupDir string `koanf:"backup_dir" json:"backup_dir" yaml:"backup_dir" toml:"backup_dir"`
	// CommandTimeout bounds each script and package install. Zero means none.
	CommandTimeout time.Duration `koanf:"command_timeout" json:"command_timeout" yaml:"command_timeout" toml:"command_timeout"`
	PkgManagers    PkgManagers   `koanf:"pkg_managers" json:"pkg_managers" yaml:"pkg_managers" toml:"pkg_managers"`
}

// PkgManagers declares how to install packages and which rules must be
// installed before a package manager can be used
type PkgManagers struct {
	// InstallCmds are templates where %pkg expands to the package list and
	// %% to a literal percent sign
	InstallCmds map[types.Identifier]string            `koanf:"install_cmds" json:"install_cmds" yaml:"install_cmds" toml:"install_cmds"`
	Deps        map[types.Identifier]types.Identifiers `koanf:"deps" json:"deps" yaml:"deps" toml:"deps"`
}

// InstallCmd returns the install template for a manager
func (p PkgManagers) InstallCmd(manager types.Identifier) (string, error) {
	cmd, ok := p.InstallCmds[manager]
	if !ok || strings.TrimSpace(cmd) == "" {
		return "", errors.Newf(errors.ErrUnknownPkgManager, "Undefined package manager `%s`", manager).
			WithDetail("manager", string(manager))
	}
	return cmd, nil
}

// DepsOf returns the rules a manager needs
func (p PkgManagers) DepsOf(manager types.Identifier) types.Identifiers {
	return p.Deps[manager]
}

// Config is a loaded rule store
type Config struct {
	Conf Conf
	// Source is the file the config was read from, empty when built in code
	Source string

	rules map[types.Identifier]*types.Rule
}

// New builds a config from already decoded parts
func New(conf Conf, rules ...*types.Rule) (*Config, error) {
	c := &Config{
		Conf:  conf,
		rules: make(map[types.Identifier]*types.Rule, len(rules)),
	}
	for _, r := range rules {
		if _, dup := c.rules[r.Name]; dup {
			return nil, errors.Newf(errors.ErrConfigValidation, "Rule `%s` is defined twice", r.Name)
		}
		c.rules[r.Name] = r
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Rule returns the named rule or an UNKNOWN_RULE error
func (c *Config) Rule(name types.Identifier) (*types.Rule, error) {
	rule, ok := c.rules[name]
	if !ok {
		return nil, errors.Newf(errors.ErrUnknownRule, "Undefined rule: %s", name).
			WithDetail("rule", string(name))
	}
	return rule, nil
}

// HasRule reports whether name is defined
func (c *Config) HasRule(name types.Identifier) bool {
	_, ok := c.rules[name]
	return ok
}

// RuleNames lists every rule sorted by name
func (c *Config) RuleNames() types.Identifiers {
	names := make(types.Identifiers, 0, len(c.rules))
	for name := range c.rules {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Declaration returns the ordering constraints of a rule, including the
// rules required by the package managers it uses
func (c *Config) Declaration(name types.Identifier) (types.DependencyDeclaration, error) {
	rule, err := c.Rule(name)
	if err != nil {
		return types.DependencyDeclaration{}, err
	}
	return rule.Declaration(c.Conf.PkgManagers.DepsOf), nil
}

// Lookup adapts the store to the resolver's lookup signature
func (c *Config) Lookup(name types.Identifier) (types.DependencyDeclaration, error) {
	return c.Declaration(name)
}
