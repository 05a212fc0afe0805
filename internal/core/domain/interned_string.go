package domain

import "unique"

// InternedString wraps a unique.Handle[string]. It keeps frequently
// repeated strings such as recipe paths down to one allocation and makes
// equality a pointer comparison.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString interns s and returns its handle.
func NewInternedString(s string) InternedString {
	return InternedString{h: unique.Make(s)}
}

// String returns the underlying string value.
func (is InternedString) String() string {
	return is.h.Value()
}

// Handle returns the underlying unique.Handle[string].
func (is InternedString) Handle() unique.Handle[string] {
	return is.h
}
