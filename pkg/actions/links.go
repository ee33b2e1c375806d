package actions

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotm/pkg/errors"
	"github.com/arthur-debert/dotm/pkg/filesystem"
	"github.com/arthur-debert/dotm/pkg/types"
)

// linkPair is one source/destination pair with paths resolved
type linkPair struct {
	source string
	dest   string
}

func (p *Performer) resolveLinks(links []types.Link) []linkPair {
	var pairs []linkPair
	for _, l := range links {
		source := p.paths.Resolve(l.Source)
		for _, d := range l.Dests {
			// relative destinations resolve against the dotfiles dir, like sources
			dest := p.paths.Resolve(d)
			pairs = append(pairs, linkPair{source: source, dest: dest})
		}
	}
	return pairs
}

func (p *Performer) performLinks(ctx context.Context, links []types.Link) error {
	pairs := p.resolveLinks(links)

	if p.dryRun {
		for _, pair := range pairs {
			_, _ = fmt.Fprintf(p.stdout, "Would link `%s` -> `%s`\n", pair.dest, pair.source)
		}
		return nil
	}

	// Regular files in the way are moved to the backup dir before the
	// pipeline runs. Symlinks are replaced by the pipeline itself.
	for _, pair := range pairs {
		if err := p.backup(pair.dest); err != nil {
			return err
		}
	}

	symlinks := make([]filesystem.Symlink, 0, len(pairs))
	for _, pair := range pairs {
		symlinks = append(symlinks, filesystem.Symlink{Target: pair.source, Path: pair.dest})
	}
	if err := filesystem.CreateSymlinks(ctx, symlinks, true); err != nil {
		return err
	}

	for _, pair := range pairs {
		p.logger.Info().Str("source", pair.source).Str("dest", pair.dest).Msg("Linked")
	}
	return nil
}

// backup moves anything but a symlink out of dest's way
func (p *Performer) backup(dest string) error {
	info, err := p.fs.Lstat(dest)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "Failed to inspect `%s`", dest)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return nil
	}

	if err := p.fs.MkdirAll(p.backupDir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "Failed to create backup dir `%s`", p.backupDir)
	}
	target, err := filesystem.NextFreePath(p.fs, filepath.Join(p.backupDir, filepath.Base(dest)))
	if err != nil {
		return err
	}
	if err := filesystem.MoveFile(p.fs, dest, target); err != nil {
		return err
	}

	p.logger.Info().Str("file", dest).Str("backup", target).Msg("Backed up existing file")
	return nil
}
