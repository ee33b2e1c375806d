package add

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotm/pkg/errors"
	"github.com/arthur-debert/dotm/pkg/filesystem"
	"github.com/arthur-debert/dotm/pkg/logging"
	"github.com/arthur-debert/dotm/pkg/paths"
	"github.com/arthur-debert/dotm/pkg/types"
	"github.com/rs/zerolog"
)

// AddFileOptions holds options for the add command
type AddFileOptions struct {
	Paths paths.Paths
	// File is moved into the dotfiles directory and replaced by a symlink
	File string
	// WithName stores the file under another name in the dotfiles directory
	WithName string

	Confirm    types.ConfirmFunc
	Messenger  types.Messenger
	FileSystem types.FS // Allow injecting a filesystem for testing
}

// AddFile moves a file into the dotfiles directory and links it back.
// When the destination exists the user is asked before it is replaced;
// declining aborts without touching anything.
func AddFile(ctx context.Context, opts AddFileOptions) (*types.AddResult, error) {
	logger := logging.GetLogger("commands.add")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}
	messenger := opts.Messenger
	if messenger == nil {
		messenger = types.NopMessenger()
	}
	confirm := opts.Confirm
	if confirm == nil {
		confirm = func(_ string, def bool) (bool, error) { return def, nil }
	}

	file, dest, err := resolvePaths(opts)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("file", file).Str("dest", dest).Msg("Adding file")

	if _, err := fs.Lstat(file); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrFileNotFound, "File `%s` doesn't exist", file).
				WithDetail("path", file)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "Failed to inspect `%s`", file)
	}
	if file == dest {
		return nil, errors.Newf(errors.ErrInvalidInput, "`%s` is already in your dotfiles", file)
	}

	result := &types.AddResult{OriginalPath: file, NewPath: dest}

	// An existing destination is set aside rather than deleted so a failed
	// add can put it back.
	var aside string
	if filesystem.Exists(fs, dest) {
		messenger.Warn(fmt.Sprintf("File `%s` already exists", dest))
		ok, err := confirm("Replace it?", true)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrAborted, "Failed to read answer")
		}
		if !ok {
			messenger.Info("Aborting...")
			result.Aborted = true
			return result, nil
		}
		messenger.Info(fmt.Sprintf("Replacing `%s` with a newly added file", dest))

		aside, err = filesystem.NextFreePath(fs, dest+".dotm-replaced")
		if err != nil {
			return nil, err
		}
		if err := fs.Rename(dest, aside); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "Failed to move `%s` aside", dest)
		}
		result.Replaced = true
	} else {
		messenger.Info(fmt.Sprintf("Moving `%s` to your dotfiles", dest))
	}

	if err := filesystem.MoveFile(fs, file, dest); err != nil {
		restoreAside(fs, logger, aside, dest)
		return nil, err
	}

	canonical, err := filepath.EvalSymlinks(dest)
	if err != nil {
		canonical = dest
	}
	messenger.Info(fmt.Sprintf("Creating symlink `%s` -> `%s`", file, canonical))

	if err := filesystem.CreateSymlinks(ctx, []filesystem.Symlink{{Target: canonical, Path: file}}, false); err != nil {
		logger.Error().
			Err(err).
			Str("file", file).
			Str("dest", dest).
			Msg("Failed to create symlink, attempting to roll back move")
		if rollbackErr := filesystem.MoveFile(fs, dest, file); rollbackErr != nil {
			logger.Error().Err(rollbackErr).Msg("Failed to roll back move operation")
			return nil, errors.Wrapf(err, errors.ErrSymlinkCreate,
				"Failed to create symlink and also failed to move `%s` back", dest)
		}
		restoreAside(fs, logger, aside, dest)
		return nil, err
	}

	if aside != "" {
		if err := fs.RemoveAll(aside); err != nil {
			logger.Warn().Err(err).Str("path", aside).Msg("Failed to remove replaced file")
		}
	}

	result.NewPath = canonical
	logger.Info().
		Str("command", "add").
		Str("file", file).
		Str("dest", canonical).
		Bool("replaced", result.Replaced).
		Msg("Command finished")
	return result, nil
}

// resolvePaths returns the absolute file path and its place in the
// dotfiles directory
func resolvePaths(opts AddFileOptions) (string, string, error) {
	if opts.File == "" {
		return "", "", errors.New(errors.ErrInvalidInput, "No file given")
	}

	// Clean drops trailing slashes left by shell completion
	file, err := filepath.Abs(filepath.Clean(paths.ExpandHome(opts.File)))
	if err != nil {
		return "", "", errors.Wrapf(err, errors.ErrFileAccess, "Failed to resolve `%s`", opts.File)
	}

	name := filepath.Base(file)
	if opts.WithName != "" {
		name = filepath.Clean(opts.WithName)
	}
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return "", "", errors.Newf(errors.ErrInvalidInput, "Invalid name `%s`", name)
	}

	return file, filepath.Join(opts.Paths.DotfilesRoot(), name), nil
}

func restoreAside(fs types.FS, logger zerolog.Logger, aside, dest string) {
	if aside == "" {
		return
	}
	if err := fs.Rename(aside, dest); err != nil {
		logger.Error().Err(err).Str("path", aside).Msg("Failed to restore replaced file")
	}
}
