package config

import (
	"strings"

	"github.com/arthur-debert/dotm/pkg/errors"
	"github.com/arthur-debert/dotm/pkg/types"
)

// Validate checks that the store is self consistent: every action is well
// formed, every package manager used has an install command, and every rule
// mentioned as a dependency is defined. Cycles are left to the resolver.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Conf.Shell) == "" {
		return errors.New(errors.ErrConfigValidation, "conf.shell can't be empty")
	}
	if c.Conf.CommandTimeout < 0 {
		return errors.New(errors.ErrConfigValidation, "conf.command_timeout can't be negative")
	}

	for mgr, deps := range c.Conf.PkgManagers.Deps {
		if err := c.checkDefined(deps, "pkg_managers.deps."+string(mgr)); err != nil {
			return err
		}
	}

	for _, name := range c.RuleNames() {
		rule := c.rules[name]
		if err := name.Validate(); err != nil {
			return err
		}

		for i, action := range rule.Actions {
			if err := action.Validate(); err != nil {
				return errors.Wrapf(err, errors.ErrConfigValidation, "Rule `%s` action %d", name, i+1).
					WithDetail("rule", string(name))
			}
			if action.Kind != types.ActionPkgs {
				continue
			}
			for _, p := range action.Pkgs {
				if _, err := c.Conf.PkgManagers.InstallCmd(p.Manager); err != nil {
					return errors.Wrapf(err, errors.ErrConfigValidation, "Rule `%s` action %d", name, i+1).
						WithDetail("rule", string(name))
				}
			}
		}

		decl := rule.Declaration(nil)
		if err := c.checkDefined(decl.Deps, string(name)); err != nil {
			return err
		}
		if err := c.checkDefined(decl.PostDeps, string(name)); err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) checkDefined(ids types.Identifiers, referencedBy string) error {
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		if !c.HasRule(id) {
			return errors.Newf(errors.ErrUnknownRule, "Undefined rule: %s (referenced by `%s`)", id, referencedBy).
				WithDetail("rule", string(id)).
				WithDetail("referenced_by", referencedBy)
		}
	}
	return nil
}
