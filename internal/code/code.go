// Package code generates the short human-readable identifiers used for
// account ids and fallback passwords.
package code

import "math/rand"

// Alphabet omits I, O, 0 and 1, which read ambiguously when a code is
// printed or dictated over the phone.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Length is the fixed code length.
const Length = 6

// New returns a random 6-character code. It makes no uniqueness
// guarantee on its own; callers retry against the existing collection
// until there is no collision.
func New() string {
	b := make([]byte, Length)
	for i := range b {
		b[i] = Alphabet[rand.Intn(len(Alphabet))]
	}
	return string(b)
}
