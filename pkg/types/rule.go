package types

import (
	"github.com/arthur-debert/dotm/pkg/errors"
)

// Rule is a named installable unit: ordering constraints plus the actions
// performed when the rule is installed.
type Rule struct {
	Name     Identifier  `json:"name" yaml:"name" toml:"name"`
	Deps     Identifiers `json:"deps,omitempty" yaml:"deps,omitempty" toml:"deps,omitempty"`
	PostDeps Identifiers `json:"post,omitempty" yaml:"post,omitempty" toml:"post,omitempty"`
	Actions  []Action    `json:"actions" yaml:"actions" toml:"actions"`
}

// Action returns the nth action, counting from 1
func (r *Rule) Action(n int) (Action, error) {
	if n < 1 || n > len(r.Actions) {
		return Action{}, errors.Newf(errors.ErrIndexOutOfRange,
			"Index %d is out of range (rule `%s` has %d actions)", n, r.Name, len(r.Actions)).
			WithDetail("rule", string(r.Name)).
			WithDetail("index", n)
	}
	return r.Actions[n-1], nil
}

// Declaration collects the rule's ordering constraints. Forward deps come
// from the rule's own deps, its deps actions and whatever the package
// managers used by its pkgs actions require.
func (r *Rule) Declaration(managerDeps func(Identifier) Identifiers) DependencyDeclaration {
	deps := Identifiers{}.Union(r.Deps)
	for _, a := range r.Actions {
		switch a.Kind {
		case ActionDeps:
			deps = deps.Union(a.Deps)
		case ActionPkgs:
			if managerDeps == nil {
				continue
			}
			for _, p := range a.Pkgs {
				deps = deps.Union(managerDeps(p.Manager))
			}
		}
	}
	return DependencyDeclaration{
		Deps:     deps,
		PostDeps: Identifiers{}.Union(r.PostDeps),
	}
}
