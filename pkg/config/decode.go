package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/dotm/pkg/errors"
	"github.com/arthur-debert/dotm/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/v2"
)

// decodeHook converts strings into durations and into anything that
// implements encoding.TextUnmarshaler, which covers identifiers and
// space separated identifier lists
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
	)
}

// decode maps raw config values onto out. Unknown keys are errors.
func decode(input, out interface{}) error {
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "koanf",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       decodeHook(),
	})
	if err != nil {
		return err
	}
	return d.Decode(input)
}

func decodeConf(k *koanf.Koanf) (Conf, error) {
	var conf Conf
	err := k.UnmarshalWithConf("conf", &conf, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			ErrorUnused:      true,
			DecodeHook:       decodeHook(),
		},
	})
	if err != nil {
		return Conf{}, errors.Wrap(err, errors.ErrConfigParse, "Invalid `conf` section")
	}
	return conf, nil
}

// ruleBody is the long rule form:
//
//	nvim:
//	  deps: [fonts]
//	  post: [plugins]
//	  actions: [...]
type ruleBody struct {
	Deps    types.Identifiers `koanf:"deps"`
	Post    types.Identifiers `koanf:"post"`
	Actions []interface{}     `koanf:"actions"`
}

func decodeRules(k *koanf.Koanf) (map[types.Identifier]*types.Rule, error) {
	names := k.MapKeys("rules")
	rules := make(map[types.Identifier]*types.Rule, len(names))

	for _, name := range names {
		id, err := types.NewIdentifier(name)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "Invalid rule name `%s`", name)
		}

		rule, err := decodeRule(id, k.Get("rules"+Delim+name))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "Invalid rule `%s`", name).
				WithDetail("rule", name)
		}
		rules[id] = rule
	}

	return rules, nil
}

// decodeRule accepts the short form (a bare action list), the long form
// (a map) and an empty value
func decodeRule(id types.Identifier, raw interface{}) (*types.Rule, error) {
	rule := &types.Rule{Name: id, Actions: []types.Action{}}

	var entries []interface{}
	switch v := raw.(type) {
	case nil:
		return rule, nil
	case []interface{}:
		entries = v
	case []map[string]interface{}:
		for _, m := range v {
			entries = append(entries, m)
		}
	case map[string]interface{}:
		var body ruleBody
		if err := decode(v, &body); err != nil {
			return nil, err
		}
		rule.Deps = body.Deps.Unique()
		rule.PostDeps = body.Post.Unique()
		entries = body.Actions
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "Expected a list of actions or a map, got %T", raw)
	}

	for i, entry := range entries {
		action, err := decodeAction(entry)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "Action %d", i+1)
		}
		rule.Actions = append(rule.Actions, action)
	}

	return rule, nil
}

// decodeAction reads a single key map whose key is the action kind
func decodeAction(raw interface{}) (types.Action, error) {
	m, ok := raw.(map[string]interface{})
	if !ok || len(m) != 1 {
		return types.Action{}, errors.New(errors.ErrActionInvalid, "An action must be a map with exactly one key")
	}

	var key string
	var value interface{}
	for k, v := range m {
		key, value = k, v
	}

	kind, err := types.ParseActionKind(key)
	if err != nil {
		return types.Action{}, err
	}

	var action types.Action
	switch kind {
	case types.ActionPkgs:
		var pkgs map[types.Identifier][]string
		if err := decode(value, &pkgs); err != nil {
			return types.Action{}, wrapPayload(err, kind)
		}
		managers := make(types.Identifiers, 0, len(pkgs))
		for mgr := range pkgs {
			managers = append(managers, mgr)
		}
		installs := make([]types.PkgInstall, 0, len(pkgs))
		for _, mgr := range managers.Sorted() {
			installs = append(installs, types.PkgInstall{Manager: mgr, Packages: splitPackages(pkgs[mgr])})
		}
		action = types.NewPkgsAction(installs...)

	case types.ActionShell, types.ActionInTemp:
		var lines []string
		if err := decode(value, &lines); err != nil {
			return types.Action{}, wrapPayload(err, kind)
		}
		action = types.Action{Kind: kind, Script: strings.Join(lines, "\n")}

	case types.ActionLinks:
		var links map[string][]string
		if err := decode(value, &links); err != nil {
			return types.Action{}, wrapPayload(err, kind)
		}
		sources := make([]string, 0, len(links))
		for src := range links {
			sources = append(sources, src)
		}
		sort.Strings(sources)
		out := make([]types.Link, 0, len(links))
		for _, src := range sources {
			out = append(out, types.Link{Source: src, Dests: links[src]})
		}
		action = types.NewLinksAction(out...)

	case types.ActionDeps:
		var deps types.Identifiers
		if err := decode(value, &deps); err != nil {
			return types.Action{}, wrapPayload(err, kind)
		}
		action = types.NewDepsAction(deps...)
	}

	if err := action.Validate(); err != nil {
		return types.Action{}, err
	}
	return action, nil
}

// splitPackages allows "zsh git" as well as separate list entries
func splitPackages(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.Fields(s)...)
	}
	return out
}

func wrapPayload(err error, kind types.ActionKind) error {
	return errors.Wrap(err, errors.ErrActionInvalid, fmt.Sprintf("Invalid `%s` payload", kind)).
		WithDetail("kind", string(kind))
}
