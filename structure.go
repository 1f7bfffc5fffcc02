package uywi

import "strconv"

// Vowel selects which of a stem's two vowel slots a Letter refers to.
type Vowel byte

// The two vowel slots every stem of every length has.
const (
	VowelFirst Vowel = iota
	VowelLast
)

// Letter is one position in a stem's structure template.
type Letter struct {
	kind  letterKind
	index int
	vowel Vowel
}

type letterKind byte

const (
	letterConsonant letterKind = iota
	letterVowel
	letterDuplicateConsonant
	letterDuplicateVowel
	letterNasal
)

func newConsonantLetter(length Length, index int) Letter {
	if index >= length.AsInt() {
		panic("uywi: consonant index is invalid")
	}
	return Letter{kind: letterConsonant, index: index}
}

func newDuplicateConsonantLetter(length Length, index int) Letter {
	if index >= length.AsInt() {
		panic("uywi: consonant index is invalid")
	}
	return Letter{kind: letterDuplicateConsonant, index: index}
}

func newVowelLetter(index int) Letter {
	return Letter{kind: letterVowel, vowel: vowelFromIndex(index)}
}

func newDuplicateVowelLetter(index int) Letter {
	return Letter{kind: letterDuplicateVowel, vowel: vowelFromIndex(index)}
}

func newNasalLetter(index int) Letter {
	return Letter{kind: letterNasal, vowel: vowelFromIndex(index)}
}

func vowelFromIndex(index int) Vowel {
	switch index {
	case 0:
		return VowelFirst
	case 1:
		return VowelLast
	default:
		panic("uywi: vowel index is invalid")
	}
}

// IsConsonant reports whether this letter renders a radical at
// ConsonantIndex.
func (l Letter) IsConsonant() bool {
	return l.kind == letterConsonant
}

// IsDuplicateConsonant reports whether this letter re-renders the radical
// at ConsonantIndex already emitted earlier in the stem.
func (l Letter) IsDuplicateConsonant() bool {
	return l.kind == letterDuplicateConsonant
}

// IsVowel reports whether this letter renders the form vowel at VowelSlot().
func (l Letter) IsVowel() bool {
	return l.kind == letterVowel
}

// IsDuplicateVowel reports whether this letter re-renders the form vowel
// at VowelSlot() already emitted earlier in the stem.
func (l Letter) IsDuplicateVowel() bool {
	return l.kind == letterDuplicateVowel
}

// IsNasal reports whether this letter renders a trailing nasal derived
// from the form vowel at VowelSlot().
func (l Letter) IsNasal() bool {
	return l.kind == letterNasal
}

// ConsonantIndex returns the concept radical position this letter refers
// to. Valid only when IsConsonant or IsDuplicateConsonant is true.
func (l Letter) ConsonantIndex() int {
	return l.index
}

// VowelSlot returns which of the form's two vowels this letter refers to.
// Valid only when IsVowel, IsDuplicateVowel, or IsNasal is true.
func (l Letter) VowelSlot() Vowel {
	return l.vowel
}

// structureTemplateStrings lists the raw "c0 v0 c1" style templates for a
// Length, one per stem.
func structureTemplateStrings(length Length) []string {
	switch length {
	case L2:
		return []string{
			"c0 v0 c1",
			"c0 v0 xv0 c1",
			"c0 v0 c1 xc1 xn0",
		}
	case L3:
		return []string{
			"c0 v0 c1 v1 c2",
			"c0 v0 c1 xc1 v1 c2",
			"c0 v0 xv0 c1 v1 c2",
			"c0 v0 c1 v1 xv1 c2",
			"c0 v0 c1 v1 c2 xc2 xn1",
		}
	default: // L4
		return []string{
			"c0 v0 c1 c2 v1 c3",
			"c0 v0 c1 v0 c2 v1 c3",
			"c0 v0 xv0 c1 c2 v1 c3",
			"c0 v0 c1 c2 v1 xv1 c3",
			"c0 v0 c1 c2 v1 c3 xc3 xn1",
			"c0 v0 c1 v0 xv0 c2 v1 c3",
			"c0 v0 c1 v0 c2 xc2 v1 c3",
			"c0 v0 c1 v0 c2 v1 xv1 c3",
		}
	}
}

// structureFor returns the parsed Letter sequence for the stem at
// stemIndex within the given Length.
func structureFor(length Length, stemIndex int) []Letter {
	templates := structureTemplateStrings(length)
	if stemIndex < 0 || stemIndex >= len(templates) {
		panic("uywi: stem index out of range")
	}

	return parseStructureTemplate(length, templates[stemIndex])
}

func parseStructureTemplate(length Length, template string) []Letter {
	var letters []Letter

	start := 0
	for i := 0; i <= len(template); i++ {
		if i == len(template) || template[i] == ' ' {
			if i > start {
				letters = append(letters, parseStructureToken(length, template[start:i]))
			}
			start = i + 1
		}
	}

	return letters
}

func parseStructureToken(length Length, token string) Letter {
	kind := token[0:1]

	switch kind {
	case "c", "v":
		index, err := strconv.Atoi(token[1:2])
		if err != nil {
			panic("uywi: configuration index isn't a number")
		}
		if kind == "c" {
			return newConsonantLetter(length, index)
		}
		return newVowelLetter(index)
	case "x":
		sub := token[1:2]
		index, err := strconv.Atoi(token[2:3])
		if err != nil {
			panic("uywi: configuration index isn't a number")
		}
		switch sub {
		case "c":
			return newDuplicateConsonantLetter(length, index)
		case "v":
			return newDuplicateVowelLetter(index)
		case "n":
			return newNasalLetter(index)
		default:
			panic("uywi: configuration type not valid")
		}
	default:
		panic("uywi: configuration type not valid")
	}
}
