package uywi

import "strings"

// uywiChiffre is the trivial rendering script: every radical maps to a
// single printable symbol and every vowel slot maps to one of two plain
// vowels, with no phonological rewriting.
type uywiChiffre struct{}

func chiffreRadicals() [NumRadicals]string {
	return [NumRadicals]string{
		"?", "Y", "w", "h", "2", "H", "K", "k", "X", "x", "8", "4", "G", "g", "j", "7", "3", "Q", "c", "9",
		"S", "s", "Z", "z", "D", "d", "T", "t", "P", "0", "B", "6", "V", "f", "p", "b", "m", "n", "O", "R",
		"r", "1", "L", "l",
	}
}

func chiffreVowels() [2]string {
	return [2]string{"o", "ı"}
}

func chiffreFormConfig(length Length, formIndex int) (first, last string) {
	o, i := chiffreVowels()[0], chiffreVowels()[1]

	var configs [][2]string
	switch length {
	case L2:
		configs = [][2]string{{o, o}, {i, i}}
	default: // L3, L4
		configs = [][2]string{{o, o}, {o, i}, {i, o}, {i, i}}
	}

	pair := configs[formIndex]
	return pair[0], pair[1]
}

func (uywiChiffre) fromConcept(s string) (Concept, error) {
	graphemes := splitGraphemes(s)
	length, err := NewLength(len(graphemes))
	if err != nil {
		return Concept{}, newError(LengthInvalid, s)
	}

	radicalsByGrapheme := chiffreRadicals()

	var used []radical
	mirrored := length.radicalOrderMirrored()

	for position, order := range mirrored {
		g := graphemes[order]

		radicalIndex := -1
		for i, candidate := range radicalsByGrapheme {
			if candidate == g {
				radicalIndex = i
				break
			}
		}
		if radicalIndex < 0 {
			return Concept{}, newError(ConceptRadicalInvalid, g)
		}
		r := radical(radicalIndex)

		ordered := length.orderedRadicals(position, used)
		found := false
		for _, candidate := range ordered {
			if candidate == r {
				found = true
				break
			}
		}
		if !found {
			return Concept{}, newError(ConceptRadicalDuplicate, g)
		}

		used = append(used, r)
	}

	order := length.radicalOrder()
	var radicals [4]radical
	for position := range radicals {
		if position < len(order) {
			radicals[position] = used[order[position]]
		}
	}

	return newConcept(radicals, length), nil
}

func (c uywiChiffre) fromStr(s string) (ConceptOrWord, error) {
	if concept, err := c.fromConcept(s); err == nil {
		return ConceptOrWord{concept: concept}, nil
	}

	graphemeCount := len(splitGraphemes(s))

	for _, length := range []Length{L2, L3, L4} {
		for stemIndex := 0; stemIndex < length.StemsPerConcept(); stemIndex++ {
			template := structureFor(length, stemIndex)
			if len(template) != graphemeCount {
				continue
			}

			graphemes := splitGraphemes(s)
			var candidate strings.Builder
			for i, letter := range template {
				if letter.IsConsonant() {
					candidate.WriteString(graphemes[i])
				}
			}

			concept, err := c.fromConcept(candidate.String())
			if err != nil {
				continue
			}

			words := newWords(concept, stemIndex)
			for {
				word, ok := words.Next()
				if !ok {
					break
				}
				if s == c.renderWord(word) {
					return ConceptOrWord{word: word, isWord: true}, nil
				}
			}
		}
	}

	return ConceptOrWord{}, newError(WordInvalid, s)
}

func (uywiChiffre) renderConcept(concept Concept) string {
	radicals := chiffreRadicals()
	var b strings.Builder
	b.Grow(conceptBufferSize)

	for _, r := range concept.radicalSlice() {
		b.WriteString(radicals[r.index()])
	}
	return b.String()
}

func (c uywiChiffre) renderWord(word Word) string {
	concept := word.Concept()
	radicals := chiffreRadicals()
	first, last := chiffreFormConfig(concept.Length(), word.FormIndex())
	template := structureFor(concept.Length(), word.StemIndex())

	var b strings.Builder
	b.Grow(wordBufferSize)

	for _, letter := range template {
		switch {
		case letter.IsConsonant(), letter.IsDuplicateConsonant():
			b.WriteString(radicals[concept.radicalSlice()[letter.ConsonantIndex()].index()])
		case letter.IsVowel(), letter.IsDuplicateVowel(), letter.IsNasal():
			if letter.VowelSlot() == VowelFirst {
				b.WriteString(first)
			} else {
				b.WriteString(last)
			}
		}
	}
	return b.String()
}

// splitGraphemes splits s into its constituent user-perceived characters.
// Every Chiffre radical and vowel symbol is a single Unicode code point, so
// a rune split is sufficient; combining marks only ever appear in rendered
// IPA output, which is never parsed back in.
func splitGraphemes(s string) []string {
	runes := []rune(s)
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return out
}
