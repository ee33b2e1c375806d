// Package paths provides centralized path handling for dotm.
// It resolves the dotfiles directory and the distribution id that selects
// the config file, and places dotm's own files in XDG base directories.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dotm/pkg/errors"
)

// Environment variable names
const (
	// EnvDotfilesDir sets the dotfiles directory when --dotdir is not given
	EnvDotfilesDir = "DOTM_DOTFILES_DIR"

	// EnvDistro sets the distribution id when --distro is not given
	EnvDistro = "DOTM_DISTRO"

	// EnvDataDir overrides the XDG data directory for dotm
	EnvDataDir = "DOTM_DATA_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// DefaultDotfilesDir is used when neither flag nor env name a directory
	DefaultDotfilesDir = "./"

	// DotmDirName is the directory name for dotm-specific files
	DotmDirName = "dotm"

	// ConfigBaseName prefixes the config file name, e.g. dotm-arch.yaml
	ConfigBaseName = "dotm"

	// BackupDirName is the subdirectory of the data dir holding backups
	BackupDirName = "backup"
)

// Paths provides centralized path management for dotm
type Paths interface {
	DotfilesRoot() string
	Distro() string
	DataDir() string
	StateDir() string
	DefaultBackupDir() string
	// ConfigCandidates lists config file base paths (without extension)
	// in lookup order
	ConfigCandidates() []string
	// Resolve expands ~ and makes relative paths relative to the dotfiles root
	Resolve(path string) string
}

type paths struct {
	dotfilesRoot string
	distro       string
	xdgData      string
	xdgState     string
}

// New creates a Paths instance. Empty arguments fall back to the
// environment and then to defaults.
func New(dotfilesRoot, distro string) (Paths, error) {
	p := &paths{}

	if dotfilesRoot == "" {
		dotfilesRoot = os.Getenv(EnvDotfilesDir)
	}
	if dotfilesRoot == "" {
		dotfilesRoot = DefaultDotfilesDir
	}

	absRoot, err := filepath.Abs(ExpandHome(dotfilesRoot))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for dotfiles directory")
	}
	p.dotfilesRoot = absRoot

	if distro == "" {
		distro = os.Getenv(EnvDistro)
	}
	if distro == "" {
		distro, err = DistroID()
		if err != nil {
			return nil, err
		}
	}
	p.distro = distro

	if dataDir := os.Getenv(EnvDataDir); dataDir != "" {
		p.xdgData = ExpandHome(dataDir)
	} else {
		p.xdgData = filepath.Join(xdg.DataHome, DotmDirName)
	}
	p.xdgState = filepath.Join(xdg.StateHome, DotmDirName)

	return p, nil
}

// DotfilesRoot returns the absolute dotfiles directory
func (p *paths) DotfilesRoot() string {
	return p.dotfilesRoot
}

// Distro returns the distribution id used to pick the config file
func (p *paths) Distro() string {
	return p.distro
}

// DataDir returns the XDG data directory for dotm
func (p *paths) DataDir() string {
	return p.xdgData
}

// StateDir returns the XDG state directory for dotm
func (p *paths) StateDir() string {
	return p.xdgState
}

// DefaultBackupDir is used when the config doesn't set conf.backup_dir
func (p *paths) DefaultBackupDir() string {
	return filepath.Join(p.xdgData, BackupDirName)
}

func (p *paths) ConfigCandidates() []string {
	return []string{
		filepath.Join(p.dotfilesRoot, ConfigBaseName+"-"+p.distro),
		filepath.Join(p.dotfilesRoot, ConfigBaseName),
	}
}

func (p *paths) Resolve(path string) string {
	path = ExpandHome(path)
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.dotfilesRoot, path)
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is left alone
	return path
}
