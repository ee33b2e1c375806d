// Package config loads the rule store: the global settings under `conf` and
// the rule table under `rules` of a dotfiles config file.
//
// Configuration is layered with koanf. The embedded defaults are loaded
// first, then the config file found in the dotfiles directory (YAML, JSON or
// TOML), then DOTM_CONF__ environment overrides. Keys are joined with "::"
// so rule names and link sources containing dots stay single keys.
package config
