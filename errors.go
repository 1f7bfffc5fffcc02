package uywi

// Kind identifies the category of a validation Error.
type Kind byte

// The closed set of error kinds every public operation can fail with.
const (
	// LengthInvalid means a requested concept length is not 2, 3, or 4.
	LengthInvalid Kind = iota + 1
	// PageIndexInvalid means a page index is out of range for its length.
	PageIndexInvalid
	// PageStringInvalid means a page index string failed to parse as a
	// positive integer.
	PageStringInvalid
	// PageStringNull means a page index string parsed to zero.
	PageStringNull
	// ConceptIndexInvalid means a concept index is out of range for its
	// length.
	ConceptIndexInvalid
	// ConceptStringInvalid means a concept index string failed to parse as a
	// positive integer, or names an index out of range for its length.
	ConceptStringInvalid
	// ConceptStringNull means a concept index string parsed to zero.
	ConceptStringNull
	// ConceptRadicalDuplicate means a rendered concept string repeats a
	// radical already used at an earlier position.
	ConceptRadicalDuplicate
	// ConceptRadicalInvalid means a grapheme in a rendered concept string
	// does not match any radical in the script's table.
	ConceptRadicalInvalid
	// WordLengthInvalid means a candidate word string could not be sliced
	// into the consonant-slot graphemes a structure template expects.
	WordLengthInvalid
	// WordInvalid means no (concept, stem, form) reproduces the given
	// string under the script.
	WordInvalid
	// ScriptUnsupported means the requested operation has no implementation
	// for the chosen script (for example, IPA-Peter parsing).
	ScriptUnsupported
)

// String returns the kind's constant name.
func (k Kind) String() string {
	switch k {
	case LengthInvalid:
		return "LengthInvalid"
	case PageIndexInvalid:
		return "PageIndexInvalid"
	case PageStringInvalid:
		return "PageStringInvalid"
	case PageStringNull:
		return "PageStringNull"
	case ConceptIndexInvalid:
		return "ConceptIndexInvalid"
	case ConceptStringInvalid:
		return "ConceptStringInvalid"
	case ConceptStringNull:
		return "ConceptStringNull"
	case ConceptRadicalDuplicate:
		return "ConceptRadicalDuplicate"
	case ConceptRadicalInvalid:
		return "ConceptRadicalInvalid"
	case WordLengthInvalid:
		return "WordLengthInvalid"
	case WordInvalid:
		return "WordInvalid"
	case ScriptUnsupported:
		return "ScriptUnsupported"
	default:
		return "Unknown"
	}
}

// Error is a non-retriable input-validation error. Every Error has a Kind
// and, for several kinds, a Detail describing the offending input.
type Error struct {
	Kind   Kind
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Detail
}

// newError builds an *Error with the given kind and detail.
func newError(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
