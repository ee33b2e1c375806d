// Package filesystem provides the types.FS implementation backed by the OS
// and the file moving helpers used when linking and adopting dotfiles.
package filesystem
