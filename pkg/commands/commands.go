// Package commands exposes the operations behind every dotm subcommand.
// Each lives in its own subpackage; this package re-exports them so the
// CLI has a single import.
package commands

import (
	"github.com/arthur-debert/dotm/pkg/commands/add"
	"github.com/arthur-debert/dotm/pkg/commands/exec"
	"github.com/arthur-debert/dotm/pkg/commands/install"
	"github.com/arthur-debert/dotm/pkg/commands/list"
	"github.com/arthur-debert/dotm/pkg/commands/plan"
)

type (
	InstallRulesOptions = install.InstallRulesOptions
	PlanRulesOptions    = plan.PlanRulesOptions
	ExecActionOptions   = exec.ExecActionOptions
	AddFileOptions      = add.AddFileOptions
	ListRulesOptions    = list.ListRulesOptions
)

var (
	// InstallRules resolves rules and performs them in order
	InstallRules = install.InstallRules
	// PlanRules resolves rules without performing them
	PlanRules = plan.PlanRules
	// ExecAction performs a single action of a rule
	ExecAction = exec.ExecAction
	// AddFile moves a file into the dotfiles directory and links it back
	AddFile = add.AddFile
	// ListRules summarizes the defined rules
	ListRules = list.ListRules
)
