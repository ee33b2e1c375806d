package types

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
	"unicode"

	"github.com/arthur-debert/dotm/pkg/errors"
)

// Identifier names a rule. It is a non-empty string without whitespace.
type Identifier string

// NewIdentifier validates s and returns it as an Identifier
func NewIdentifier(s string) (Identifier, error) {
	id := Identifier(s)
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

// Validate reports whether the identifier is well formed
func (id Identifier) Validate() error {
	if id == "" {
		return errors.New(errors.ErrInvalidIdentifier, "Identifier can't be empty")
	}
	if strings.IndexFunc(string(id), unicode.IsSpace) >= 0 {
		return errors.Newf(errors.ErrInvalidIdentifier, "Identifier `%s` contains whitespace", string(id)).
			WithDetail("identifier", string(id))
	}
	return nil
}

func (id Identifier) String() string {
	return string(id)
}

// UnmarshalText implements encoding.TextUnmarshaler so identifiers can be
// decoded straight from config values.
func (id *Identifier) UnmarshalText(text []byte) error {
	parsed, err := NewIdentifier(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Identifiers is an ordered list of identifiers used with set semantics.
type Identifiers []Identifier

// ParseIdentifiers splits a whitespace separated list, e.g. "base fonts zsh"
func ParseIdentifiers(s string) Identifiers {
	fields := strings.Fields(s)
	ids := make(Identifiers, 0, len(fields))
	for _, f := range fields {
		ids = append(ids, Identifier(f))
	}
	return ids.Unique()
}

// UnmarshalText accepts the whitespace separated form
func (ids *Identifiers) UnmarshalText(text []byte) error {
	*ids = ParseIdentifiers(string(text))
	return nil
}

// UnmarshalJSON accepts a list of identifiers or the whitespace separated
// string form
func (ids *Identifiers) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*ids = ParseIdentifiers(s)
		return nil
	}

	var list []Identifier
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*ids = Identifiers(list).Unique()
	return nil
}

// Validate checks every member
func (ids Identifiers) Validate() error {
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Contains reports whether id is a member
func (ids Identifiers) Contains(id Identifier) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

// Unique drops repeated members, keeping first occurrences in order
func (ids Identifiers) Unique() Identifiers {
	if len(ids) == 0 {
		return Identifiers{}
	}
	seen := make(map[Identifier]struct{}, len(ids))
	out := make(Identifiers, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Union returns the members of ids followed by the new members of other
func (ids Identifiers) Union(other Identifiers) Identifiers {
	merged := make(Identifiers, 0, len(ids)+len(other))
	merged = append(merged, ids...)
	merged = append(merged, other...)
	return merged.Unique()
}

// Sorted returns a lexically sorted copy
func (ids Identifiers) Sorted() Identifiers {
	out := make(Identifiers, len(ids))
	copy(out, ids)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Strings converts to plain strings for display and logging
func (ids Identifiers) Strings() []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

func (ids Identifiers) String() string {
	return strings.Join(ids.Strings(), " ")
}
