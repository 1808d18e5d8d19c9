package scaffold

import (
	"errors"
	"fmt"
	"strings"
)

// ErrStubNotFound is returned when a stub source has no stub for an id.
var ErrStubNotFound = errors.New("stub not found")

// StubSource loads raw stub content by identifier ("js/index", "json").
type StubSource interface {
	Load(stubID string) (string, error)
}

// Value is a resolved placeholder value. Resolved is false when no
// computation exists for the placeholder; such values render as "".
type Value struct {
	Text     string
	Resolved bool
}

// Text returns a resolved Value holding s.
func Text(s string) Value {
	return Value{Text: s, Resolved: true}
}

// Replacements is an ordered placeholder map.
type Replacements struct {
	keys   []string
	values map[string]Value
}

// NewReplacements builds a map from alternating key/value strings.
func NewReplacements(pairs ...string) Replacements {
	var r Replacements
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Set(pairs[i], Text(pairs[i+1]))
	}
	return r
}

// Set stores v under key. A key keeps the position of its first Set.
func (r *Replacements) Set(key string, v Value) {
	if r.values == nil {
		r.values = make(map[string]Value)
	}
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

// Get returns the value for key.
func (r Replacements) Get(key string) (Value, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the placeholder names in insertion order.
func (r Replacements) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Len returns the number of placeholders.
func (r Replacements) Len() int {
	return len(r.keys)
}

// Unresolved returns the placeholders that had no computation.
func (r Replacements) Unresolved() []string {
	var out []string
	for _, k := range r.keys {
		if !r.values[k].Resolved {
			out = append(out, k)
		}
	}
	return out
}

// Renderer substitutes placeholders into stubs.
type Renderer struct {
	source StubSource
}

// NewRenderer creates a Renderer reading stubs from source.
func NewRenderer(source StubSource) *Renderer {
	return &Renderer{source: source}
}

// Render loads stubID and replaces every $KEY$ token present in r.
// Tokens without a key are left as they are.
func (rd *Renderer) Render(stubID string, r Replacements) (string, error) {
	content, err := rd.source.Load(stubID)
	if err != nil {
		return "", fmt.Errorf("failed to load stub %s: %w", stubID, err)
	}
	return Substitute(content, r), nil
}

// Substitute replaces $KEY$ tokens in content.
func Substitute(content string, r Replacements) string {
	for _, key := range r.keys {
		token := "$" + strings.ToUpper(key) + "$"
		content = strings.ReplaceAll(content, token, r.values[key].Text)
	}
	return content
}
