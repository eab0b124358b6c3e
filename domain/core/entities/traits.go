package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Trait is one member of a personality trait list, held as compact JSON.
// Members are normally strings, but any JSON value is kept as submitted.
type Trait []byte

// TextTrait creates a string trait
func TextTrait(s string) Trait {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// encoding a string cannot fail
	_ = enc.Encode(s)
	return Trait(bytes.TrimRight(buf.Bytes(), "\n"))
}

// Text returns the trait's string value. ok is false for non-string members.
func (t Trait) Text() (text string, ok bool) {
	if len(t) == 0 || t[0] != '"' {
		return "", false
	}
	if err := json.Unmarshal(t, &text); err != nil {
		return "", false
	}
	return text, true
}

// String renders string members as their text and anything else as JSON
func (t Trait) String() string {
	if text, ok := t.Text(); ok {
		return text
	}
	return string(t)
}

func (t Trait) MarshalJSON() ([]byte, error) {
	if len(t) == 0 {
		return []byte("null"), nil
	}
	return t, nil
}

// UnmarshalJSON stores strings in canonical form and compacts other values
func (t *Trait) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*t = TextTrait(text)
		return nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return fmt.Errorf("trait: %w", err)
	}
	*t = Trait(buf.Bytes())
	return nil
}

// Traits is an ordered personality trait list
type Traits []Trait

// TraitsOf builds a list of string traits. The result is never nil.
func TraitsOf(values ...string) Traits {
	out := make(Traits, 0, len(values))
	for _, v := range values {
		out = append(out, TextTrait(v))
	}
	return out
}

// Contains reports whether trait equals one of the string members
func (ts Traits) Contains(trait string) bool {
	return slices.ContainsFunc(ts, func(t Trait) bool {
		text, ok := t.Text()
		return ok && text == trait
	})
}

// Strings renders every member for display
func (ts Traits) Strings() []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.String())
	}
	return out
}

// Clone returns a deep copy. A nil list clones to an empty one.
func (ts Traits) Clone() Traits {
	out := make(Traits, 0, len(ts))
	for _, t := range ts {
		out = append(out, bytes.Clone(t))
	}
	return out
}
