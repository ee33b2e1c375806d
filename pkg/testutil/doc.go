// Package testutil provides utilities for testing dotm components.
//
// Key components:
//   - TestEnvironment: isolated dotfiles, home and data directories
//   - RecordingMessenger: captures user facing messages
//   - Answers: scripted replies for confirmation prompts
//
// Tests use the real filesystem inside t.TempDir(); symlink behavior is
// part of what is under test.
package testutil
