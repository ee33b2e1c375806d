package types

// DependencyDeclaration holds a rule's ordering constraints.
//
// Deps must be performed before the rule. PostDeps must be performed after
// it, which is the same as each of them listing the rule in its own Deps.
type DependencyDeclaration struct {
	Deps     Identifiers `json:"deps,omitempty" yaml:"deps,omitempty" toml:"deps,omitempty"`
	PostDeps Identifiers `json:"post,omitempty" yaml:"post,omitempty" toml:"post,omitempty"`
}

// IsEmpty reports whether the rule has no ordering constraints at all
func (d DependencyDeclaration) IsEmpty() bool {
	return len(d.Deps) == 0 && len(d.PostDeps) == 0
}
