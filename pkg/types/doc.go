// Package types defines the core types shared across dotm: rule identifiers,
// dependency declarations, the closed set of rule actions, and the result
// structures returned by commands.
package types
