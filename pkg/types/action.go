package types

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/dotm/pkg/errors"
)

// ActionKind discriminates the variants of Action
type ActionKind string

// The closed set of action kinds a rule may list
const (
	ActionPkgs   ActionKind = "pkgs"
	ActionShell  ActionKind = "shell"
	ActionInTemp ActionKind = "in_temp"
	ActionLinks  ActionKind = "links"
	ActionDeps   ActionKind = "deps"
)

// ActionKinds lists every kind in declaration order
var ActionKinds = []ActionKind{ActionPkgs, ActionShell, ActionInTemp, ActionLinks, ActionDeps}

// ParseActionKind maps a config key to its kind
func ParseActionKind(s string) (ActionKind, error) {
	for _, k := range ActionKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", errors.Newf(errors.ErrActionInvalid, "Unknown action `%s`", s).
		WithDetail("kind", s)
}

// PkgInstall is the set of packages installed with one package manager
type PkgInstall struct {
	Manager  Identifier `json:"manager" yaml:"manager" toml:"manager"`
	Packages []string   `json:"packages" yaml:"packages" toml:"packages"`
}

// Link maps a file in the dotfiles directory to the places it is linked to
type Link struct {
	Source string   `json:"source" yaml:"source" toml:"source"`
	Dests  []string `json:"dests" yaml:"dests" toml:"dests"`
}

// Action is one step of a rule. Kind selects which payload field is set:
//
//	pkgs           Pkgs
//	shell, in_temp Script
//	links          Links
//	deps           Deps
type Action struct {
	Kind   ActionKind   `json:"kind" yaml:"kind" toml:"kind"`
	Pkgs   []PkgInstall `json:"pkgs,omitempty" yaml:"pkgs,omitempty" toml:"pkgs,omitempty"`
	Script string       `json:"script,omitempty" yaml:"script,omitempty" toml:"script,omitempty"`
	Links  []Link       `json:"links,omitempty" yaml:"links,omitempty" toml:"links,omitempty"`
	Deps   Identifiers  `json:"deps,omitempty" yaml:"deps,omitempty" toml:"deps,omitempty"`
}

// NewPkgsAction builds a pkgs action
func NewPkgsAction(pkgs ...PkgInstall) Action {
	return Action{Kind: ActionPkgs, Pkgs: pkgs}
}

// NewShellAction builds a shell action from script lines
func NewShellAction(lines ...string) Action {
	return Action{Kind: ActionShell, Script: strings.Join(lines, "\n")}
}

// NewInTempAction builds an in_temp action from script lines
func NewInTempAction(lines ...string) Action {
	return Action{Kind: ActionInTemp, Script: strings.Join(lines, "\n")}
}

// NewLinksAction builds a links action
func NewLinksAction(links ...Link) Action {
	return Action{Kind: ActionLinks, Links: links}
}

// NewDepsAction builds a deps action
func NewDepsAction(deps ...Identifier) Action {
	return Action{Kind: ActionDeps, Deps: Identifiers(deps).Unique()}
}

func (a Action) String() string {
	return string(a.Kind)
}

// Describe gives a one line summary used by plan and dry-run output
func (a Action) Describe() string {
	switch a.Kind {
	case ActionPkgs:
		parts := make([]string, 0, len(a.Pkgs))
		for _, p := range a.Pkgs {
			parts = append(parts, fmt.Sprintf("%s: %s", p.Manager, strings.Join(p.Packages, " ")))
		}
		return "pkgs " + strings.Join(parts, "; ")
	case ActionShell, ActionInTemp:
		lines := strings.Split(a.Script, "\n")
		if len(lines) > 1 {
			return fmt.Sprintf("%s %s (+%d lines)", a.Kind, lines[0], len(lines)-1)
		}
		return fmt.Sprintf("%s %s", a.Kind, a.Script)
	case ActionLinks:
		parts := make([]string, 0, len(a.Links))
		for _, l := range a.Links {
			parts = append(parts, fmt.Sprintf("%s -> %s", l.Source, strings.Join(l.Dests, ", ")))
		}
		return "links " + strings.Join(parts, "; ")
	case ActionDeps:
		return "deps " + a.Deps.String()
	default:
		return string(a.Kind)
	}
}

// Validate checks that the payload matching Kind is well formed
func (a Action) Validate() error {
	switch a.Kind {
	case ActionPkgs:
		for _, p := range a.Pkgs {
			if err := p.Manager.Validate(); err != nil {
				return err
			}
			if len(p.Packages) == 0 {
				return errors.Newf(errors.ErrActionInvalid, "No packages listed for `%s`", p.Manager)
			}
		}
	case ActionShell, ActionInTemp:
		if strings.TrimSpace(a.Script) == "" {
			return errors.Newf(errors.ErrActionInvalid, "Empty `%s` script", a.Kind)
		}
	case ActionLinks:
		for _, l := range a.Links {
			if l.Source == "" {
				return errors.New(errors.ErrActionInvalid, "Link source can't be empty")
			}
			if len(l.Dests) == 0 {
				return errors.Newf(errors.ErrActionInvalid, "No destinations for link `%s`", l.Source)
			}
		}
	case ActionDeps:
		return a.Deps.Validate()
	default:
		return errors.Newf(errors.ErrActionInvalid, "Unknown action `%s`", a.Kind)
	}
	return nil
}
