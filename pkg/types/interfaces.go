package types

import (
	"io/fs"
)

// FS is the filesystem surface used by the links performer and the add
// command. Tests inject a sandboxed implementation.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Other operations
	Rename(oldpath, newpath string) error
	Remove(name string) error
	RemoveAll(path string) error
}

// Messenger receives user facing progress messages
type Messenger interface {
	Info(msg string)
	Warn(msg string)
}

// ConfirmFunc asks a yes/no question, returning defaultValue when the user
// can't be asked
type ConfirmFunc func(prompt string, defaultValue bool) (bool, error)

type nopMessenger struct{}

func (nopMessenger) Info(string) {}
func (nopMessenger) Warn(string) {}

// NopMessenger discards every message
func NopMessenger() Messenger {
	return nopMessenger{}
}
