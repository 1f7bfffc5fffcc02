// Package uywi enumerates and renders the words of UYWI, a constructed
// language built from a fixed 44-symbol radical alphabet. A concept is an
// ordered tuple of 2 to 4 distinct radicals; each concept expands into a
// fixed set of stems by a structural template, and each stem expands into a
// fixed set of words by vowel substitution. The package exposes a dense,
// gap-free enumeration of every concept of a given length, navigation of
// that enumeration into pages and rows, and two pluggable rendering/parsing
// scripts (Chiffre and IPA-Peter).
//
// The package is entirely synchronous and allocates no shared mutable
// state: every value here is immutable once constructed and safe to use
// concurrently from multiple goroutines without synchronization.
package uywi

// NumRadicals is the size of the fixed radical alphabet.
const NumRadicals = 44

// conceptBufferSize and wordBufferSize bound the longest string a Concept or
// Word can render to under any script; callers may rely on this to avoid
// reallocating a strings.Builder.
const (
	conceptBufferSize = 64
	wordBufferSize    = 64
)
