package placeholder

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// Marker is the leading character of every placeholder token.
	Marker = ":"
	// Separator joins words inside a token.
	Separator = "_"
)

// Definition declares one placeholder token.
type Definition struct {
	Token  string `yaml:"token" json:"token"`
	Prompt string `yaml:"prompt,omitempty" json:"prompt,omitempty"`
}

// Label returns the text shown when asking for the token's value.
func (d Definition) Label() string {
	if d.Prompt != "" {
		return d.Prompt
	}
	return d.Token
}

// DefaultSuggestion derives the value offered when the user enters nothing:
// the leading marker is dropped, separators become spaces and the first
// letter of each word is upper-cased. Only the separator starts a new word:
// ":application_title" → "Application Title", ":my-app_title" → "My-app Title".
func DefaultSuggestion(token string) string {
	words := strings.Split(strings.TrimPrefix(token, Marker), Separator)
	upper := cases.Upper(language.Und)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = upper.String(string(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// Pair is one resolved placeholder.
type Pair struct {
	Token string
	Value string
}

// Mapping is the ordered, read-only set of resolved placeholders.
type Mapping struct {
	pairs []Pair
}

// NewMapping builds a Mapping from pairs in the given order. The slice is copied.
func NewMapping(pairs []Pair) Mapping {
	cp := make([]Pair, len(pairs))
	copy(cp, pairs)
	return Mapping{pairs: cp}
}

// Pairs returns a copy of the resolved pairs in declaration order.
func (m Mapping) Pairs() []Pair {
	cp := make([]Pair, len(m.pairs))
	copy(cp, m.pairs)
	return cp
}

// Len returns the number of resolved placeholders.
func (m Mapping) Len() int { return len(m.pairs) }

// Value returns the resolved value for token.
func (m Mapping) Value(token string) (string, bool) {
	for _, p := range m.pairs {
		if p.Token == token {
			return p.Value, true
		}
	}
	return "", false
}

// FromValues resolves defs non-interactively. Tokens missing from values take
// their default suggestion. Values for undeclared tokens are an error.
func FromValues(defs []Definition, values map[string]string) (Mapping, error) {
	known := make(map[string]bool, len(defs))
	pairs := make([]Pair, 0, len(defs))
	for _, d := range defs {
		known[d.Token] = true
		v, ok := values[d.Token]
		if !ok || v == "" {
			v = DefaultSuggestion(d.Token)
		}
		pairs = append(pairs, Pair{Token: d.Token, Value: v})
	}
	for token := range values {
		if !known[token] {
			return Mapping{}, fmt.Errorf("unknown placeholder %q", token)
		}
	}
	return NewMapping(pairs), nil
}
