package types

// PlanResult holds the result of the 'plan' command: the resolved order and
// what each rule would do.
type PlanResult struct {
	Roots []Identifier `json:"roots" yaml:"roots" toml:"roots"`
	Steps []PlanStep   `json:"steps" yaml:"steps" toml:"steps"`
}

// PlanStep is one resolved rule in execution order
type PlanStep struct {
	Position int         `json:"position" yaml:"position" toml:"position"`
	Rule     Identifier  `json:"rule" yaml:"rule" toml:"rule"`
	Deps     Identifiers `json:"deps,omitempty" yaml:"deps,omitempty" toml:"deps,omitempty"`
	PostDeps Identifiers `json:"post,omitempty" yaml:"post,omitempty" toml:"post,omitempty"`
	Actions  []string    `json:"actions" yaml:"actions" toml:"actions"`
	// Requested is true for rules named on the command line
	Requested bool `json:"requested" yaml:"requested" toml:"requested"`
}

// InstallResult holds the result of the 'install' command
type InstallResult struct {
	Order     []Identifier `json:"order" yaml:"order" toml:"order"`
	Performed []Identifier `json:"performed" yaml:"performed" toml:"performed"`
	DryRun    bool         `json:"dryRun" yaml:"dryRun" toml:"dryRun"`
}

// ExecResult holds the result of the 'exec' command
type ExecResult struct {
	Rule   Identifier `json:"rule" yaml:"rule" toml:"rule"`
	Index  int        `json:"index" yaml:"index" toml:"index"`
	Action string     `json:"action" yaml:"action" toml:"action"`
	DryRun bool       `json:"dryRun" yaml:"dryRun" toml:"dryRun"`
}

// AddResult holds the result of the 'add' command
type AddResult struct {
	OriginalPath string `json:"originalPath" yaml:"originalPath" toml:"originalPath"`
	NewPath      string `json:"newPath" yaml:"newPath" toml:"newPath"`
	Replaced     bool   `json:"replaced" yaml:"replaced" toml:"replaced"`
	Aborted      bool   `json:"aborted" yaml:"aborted" toml:"aborted"`
}

// ListRulesResult holds the result of the 'list' command
type ListRulesResult struct {
	Rules []RuleInfo `json:"rules" yaml:"rules" toml:"rules"`
}

// RuleInfo contains summary information about a single rule
type RuleInfo struct {
	Name     Identifier  `json:"name" yaml:"name" toml:"name"`
	Deps     Identifiers `json:"deps,omitempty" yaml:"deps,omitempty" toml:"deps,omitempty"`
	PostDeps Identifiers `json:"post,omitempty" yaml:"post,omitempty" toml:"post,omitempty"`
	Actions  int         `json:"actions" yaml:"actions" toml:"actions"`
}
