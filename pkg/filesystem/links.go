package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotm/pkg/errors"
	"github.com/arthur-debert/dotm/pkg/logging"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	sfsfilesystem "github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
)

// Symlink describes a link to create at Path pointing to Target
type Symlink struct {
	Target string
	Path   string
}

// CreateSymlinks creates every link in one synthfs pipeline, creating
// missing parent directories. With replace set, whatever is at a link's
// path is removed first. Paths must be absolute.
func CreateSymlinks(ctx context.Context, links []Symlink, replace bool) error {
	if len(links) == 0 {
		return nil
	}
	logger := logging.GetLogger("filesystem.symlinks")

	sfs := synthfs.New()
	ops := make([]synthfs.Operation, 0, len(links)*2)
	for i, l := range links {
		l := l
		if !filepath.IsAbs(l.Path) {
			return errors.Newf(errors.ErrInvalidInput, "Symlink path `%s` must be absolute", l.Path)
		}
		dir := filepath.Dir(l.Path)

		ops = append(ops,
			sfs.CustomOperationWithID(fmt.Sprintf("mkdir_%d_%s", i, filepath.Base(dir)),
				func(ctx context.Context, fs sfsfilesystem.FileSystem) error {
					return fs.MkdirAll(dir, 0755)
				}),
			sfs.CustomOperationWithID(fmt.Sprintf("link_%d_%s", i, filepath.Base(l.Path)),
				func(ctx context.Context, fs sfsfilesystem.FileSystem) error {
					if replace {
						if err := fs.Remove(l.Path); err != nil && !os.IsNotExist(err) {
							return err
						}
					}
					return fs.Symlink(l.Target, l.Path)
				}),
		)
	}

	options := synthfs.DefaultPipelineOptions()
	options.RollbackOnError = true

	osfs := sfsfilesystem.NewOSFileSystem("/")
	target := synthfs.NewPathAwareFileSystem(osfs, "/").WithAbsolutePaths()

	logger.Debug().Int("operationCount", len(ops)).Msg("Executing symlink operations")
	if _, err := synthfs.RunWithOptions(ctx, target, options, ops...); err != nil {
		return errors.Wrap(err, errors.ErrSymlinkCreate, "Failed to create symlinks")
	}
	return nil
}
