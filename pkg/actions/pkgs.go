package actions

import (
	"context"
	"regexp"

	"github.com/arthur-debert/dotm/pkg/types"
)

var templateVar = regexp.MustCompile(`%(%|pkg)`)

// ExpandInstallCmd substitutes %pkg with the package and %% with a percent sign
func ExpandInstallCmd(template, pkg string) string {
	return templateVar.ReplaceAllStringFunc(template, func(m string) string {
		if m == "%%" {
			return "%"
		}
		return pkg
	})
}

func (p *Performer) performPkgs(ctx context.Context, installs []types.PkgInstall) error {
	templates := make([]string, len(installs))
	for i, install := range installs {
		tmpl, err := p.pkgManagers.InstallCmd(install.Manager)
		if err != nil {
			return err
		}
		templates[i] = tmpl
	}

	for i, install := range installs {
		for _, pkg := range install.Packages {
			p.logger.Info().
				Str("manager", string(install.Manager)).
				Str("package", pkg).
				Msg("Installing package")
			if err := p.runScript(ctx, ExpandInstallCmd(templates[i], pkg), p.paths.DotfilesRoot()); err != nil {
				return err
			}
		}
	}
	return nil
}
