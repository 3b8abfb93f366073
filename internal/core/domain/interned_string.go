package domain

import "unique"

// InternedString is a canonical handle to a path string. Equal paths share one
// allocation and compare by pointer.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString interns s.
func NewInternedString(s string) InternedString {
	return InternedString{h: unique.Make(s)}
}

// String returns the interned path.
func (is InternedString) String() string {
	return is.h.Value()
}
