package filesystem

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"syscall"

	"github.com/arthur-debert/dotm/pkg/errors"
	"github.com/arthur-debert/dotm/pkg/logging"
	"github.com/arthur-debert/dotm/pkg/types"
)

// maxSuffix bounds the search for a free backup name
const maxSuffix = 10000

// NextFreePath returns path if nothing is there, otherwise the first of
// "path (1)", "path (2)", ... that is free
func NextFreePath(fsys types.FS, path string) (string, error) {
	if !Exists(fsys, path) {
		return path, nil
	}
	for n := 1; n < maxSuffix; n++ {
		candidate := fmt.Sprintf("%s (%d)", path, n)
		if !Exists(fsys, candidate) {
			return candidate, nil
		}
	}
	return "", errors.Newf(errors.ErrFileAccess, "No free name left for `%s`", path)
}

// MoveFile moves src to dst, creating dst's parent. Regular files are
// copied and removed when a rename would cross devices.
func MoveFile(fsys types.FS, src, dst string) error {
	logger := logging.GetLogger("filesystem.move")

	if err := fsys.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "Failed to create `%s`", filepath.Dir(dst))
	}

	err := fsys.Rename(src, dst)
	if err == nil {
		logger.Debug().Str("from", src).Str("to", dst).Msg("Moved")
		return nil
	}
	if !stderrors.Is(err, syscall.EXDEV) {
		return errors.Wrapf(err, errors.ErrFileAccess, "Failed to move `%s` to `%s`", src, dst)
	}

	info, statErr := fsys.Lstat(src)
	if statErr != nil {
		return errors.Wrapf(statErr, errors.ErrFileAccess, "Failed to move `%s` to `%s`", src, dst)
	}
	if !info.Mode().IsRegular() {
		return errors.Wrapf(err, errors.ErrFileAccess, "Can't move `%s` across filesystems", src)
	}

	if err := copyFile(fsys, src, dst, info.Mode().Perm()); err != nil {
		return err
	}
	if err := fsys.Remove(src); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "Copied `%s` but failed to remove it", src)
	}
	logger.Debug().Str("from", src).Str("to", dst).Msg("Moved across devices")
	return nil
}

func copyFile(fsys types.FS, src, dst string, perm fs.FileMode) error {
	data, err := fsys.ReadFile(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "Failed to read `%s`", src)
	}
	if err := fsys.WriteFile(dst, data, perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "Failed to write `%s`", dst)
	}
	return nil
}
