package uywi

import "strings"

// ipaPeter is the phonological rendering script: every radical carries a
// set of assimilation-relevant attributes, and rendering a word runs a
// fixed base expansion followed by seven ordered assimilation passes over
// an intermediate letter sequence.
type ipaPeter struct{}

type ipaQuality1 byte

const (
	ipaNeutral ipaQuality1 = iota
	ipaDark
	ipaLight
)

func (q ipaQuality1) marker() string {
	switch q {
	case ipaDark:
		return "ˤ"
	case ipaLight:
		return "ʲ"
	default:
		return ""
	}
}

type ipaQuality2 byte

const (
	ipaQuality2None ipaQuality2 = iota
	ipaShading
	ipaRounding
)

// ipaRadical describes one row of the 44-radical attribute table that
// drives assimilation.
type ipaRadical struct {
	symbol         string
	quality1       ipaQuality1
	qualityVisible bool
	quality2       ipaQuality2
	voiceless      bool
	alternative    string
	beginning      bool
	end            bool
}

func (r ipaRadical) isDark() bool     { return r.quality1 == ipaDark }
func (r ipaRadical) isLight() bool    { return r.quality1 == ipaLight }
func (r ipaRadical) isShading() bool  { return r.quality2 == ipaShading }
func (r ipaRadical) isRounding() bool { return r.quality2 == ipaRounding }
func (r ipaRadical) hasAlternative() bool {
	return r.alternative != ""
}

// asStr renders the radical, optionally forcing its quality marker and
// optionally substituting its alternative form.
func (r ipaRadical) asStr(forceQuality, useAlternative bool) string {
	base := r.symbol
	if useAlternative {
		base = r.alternative
	}

	if forceQuality || r.qualityVisible {
		return base + r.quality1.marker()
	}
	return base
}

// ipaRadicals is the fixed attribute table, indexed identically to the
// storage index every other script shares.
func ipaRadicals() [NumRadicals]ipaRadical {
	return [NumRadicals]ipaRadical{
		{symbol: "ʔ", quality1: ipaNeutral, beginning: true},
		{symbol: "j", quality1: ipaDark},
		{symbol: "w", quality1: ipaNeutral},
		{symbol: "h", quality1: ipaNeutral, voiceless: true, end: true},
		{symbol: "ʕ", quality1: ipaNeutral},
		{symbol: "ħ", quality1: ipaNeutral, voiceless: true},
		{symbol: "k", quality1: ipaDark, quality2: ipaShading, voiceless: true},
		{symbol: "kʰ", quality1: ipaNeutral, voiceless: true},
		{symbol: "x", quality1: ipaDark, quality2: ipaShading, voiceless: true},
		{symbol: "x", quality1: ipaLight, voiceless: true},
		{symbol: "ʁ", quality1: ipaNeutral, alternative: "χ"},
		{symbol: "ɟ", quality1: ipaNeutral, alternative: "c"},
		{symbol: "g", quality1: ipaDark, quality2: ipaShading},
		{symbol: "g", quality1: ipaLight},
		{symbol: "ɥ", quality1: ipaLight, quality2: ipaRounding},
		{symbol: "d͡ʐ", quality1: ipaDark, quality2: ipaShading},
		{symbol: "d͡ʒ", quality1: ipaNeutral},
		{symbol: "ʂ", quality1: ipaDark, quality2: ipaShading, voiceless: true},
		{symbol: "ɕ", quality1: ipaLight, voiceless: true},
		{symbol: "ʃ", quality1: ipaNeutral, voiceless: true},
		{symbol: "s", quality1: ipaDark, quality2: ipaShading, voiceless: true},
		{symbol: "s", quality1: ipaLight, qualityVisible: true, voiceless: true},
		{symbol: "z", quality1: ipaDark, quality2: ipaShading},
		{symbol: "z", quality1: ipaLight, qualityVisible: true},
		{symbol: "d", quality1: ipaDark, quality2: ipaShading},
		{symbol: "d", quality1: ipaLight, qualityVisible: true},
		{symbol: "t", quality1: ipaDark, quality2: ipaShading, voiceless: true},
		{symbol: "tʰ", quality1: ipaNeutral, voiceless: true},
		{symbol: "t͡ɕ", quality1: ipaLight, voiceless: true},
		{symbol: "t͡s", quality1: ipaNeutral, voiceless: true},
		{symbol: "θ", quality1: ipaNeutral, voiceless: true},
		{symbol: "ð", quality1: ipaNeutral},
		{symbol: "v", quality1: ipaDark},
		{symbol: "f", quality1: ipaNeutral, voiceless: true},
		{symbol: "p", quality1: ipaNeutral, quality2: ipaRounding, voiceless: true},
		{symbol: "b", quality1: ipaNeutral, quality2: ipaRounding},
		{symbol: "m", quality1: ipaNeutral, quality2: ipaRounding},
		{symbol: "n", quality1: ipaNeutral},
		{symbol: "ŋ", quality1: ipaNeutral},
		{symbol: "ɻ", quality1: ipaDark, quality2: ipaRounding},
		{symbol: "r", quality1: ipaNeutral},
		{symbol: "l", quality1: ipaLight, qualityVisible: true},
		{symbol: "ʟ", quality1: ipaDark, quality2: ipaShading},
		{symbol: "l", quality1: ipaNeutral},
	}
}

// ipaVowel is a vowel's phonological state, rewritten in place by the
// assimilation passes.
type ipaVowel byte

const (
	ipaNeutralA ipaVowel = iota
	ipaNeutralE
	ipaNeutralI
	ipaNeutralU
	ipaDarkA
	ipaDarkU
	ipaLightE
	ipaLightI
	ipaNasalA
	ipaNasalE
	ipaNasalI
	ipaNasalU
	ipaShadingE
	ipaShadingI
	ipaRoundingA
	ipaRoundingE
	ipaRoundingI
)

func (v ipaVowel) String() string {
	switch v {
	case ipaNeutralA, ipaDarkA:
		return "a"
	case ipaNeutralE, ipaLightE:
		return "e"
	case ipaNeutralI, ipaLightI:
		return "i"
	case ipaNeutralU, ipaDarkU:
		return "u"
	case ipaNasalA:
		return "ɑ̃"
	case ipaNasalE:
		return "ɔ̃"
	case ipaNasalI:
		return "ɛ̃"
	case ipaNasalU:
		return "œ̃"
	case ipaShadingE:
		return "æ"
	case ipaShadingI:
		return "ɨ"
	case ipaRoundingA:
		return "ɔ"
	case ipaRoundingE:
		return "ø"
	case ipaRoundingI:
		return "y"
	default:
		return "?"
	}
}

func (v *ipaVowel) asDark() {
	switch *v {
	case ipaNeutralE:
		*v = ipaDarkA
	case ipaNeutralI:
		*v = ipaDarkU
	}
}

func (v *ipaVowel) asLight() {
	switch *v {
	case ipaNeutralA, ipaDarkA:
		*v = ipaLightE
	case ipaNeutralU, ipaDarkU:
		*v = ipaLightI
	}
}

func (v *ipaVowel) asNasal() {
	switch *v {
	case ipaNeutralA, ipaDarkA:
		*v = ipaNasalA
	case ipaNeutralE, ipaLightE:
		*v = ipaNasalE
	case ipaNeutralI, ipaLightI:
		*v = ipaNasalI
	case ipaNeutralU, ipaDarkU:
		*v = ipaNasalU
	}
}

func (v *ipaVowel) asShading() {
	switch *v {
	case ipaLightE:
		*v = ipaShadingE
	case ipaLightI:
		*v = ipaShadingI
	}
}

func (v *ipaVowel) asRounding() {
	switch *v {
	case ipaNeutralA, ipaDarkA:
		*v = ipaRoundingA
	case ipaNeutralE, ipaLightE:
		*v = ipaRoundingE
	case ipaNeutralI, ipaLightI:
		*v = ipaRoundingI
	}
}

func ipaFormConfig(length Length, formIndex int) (first, last ipaVowel) {
	var configs [][2]ipaVowel
	switch length {
	case L2:
		configs = [][2]ipaVowel{{ipaNeutralA, ipaNeutralA}, {ipaNeutralI, ipaNeutralI}}
	default: // L3, L4
		configs = [][2]ipaVowel{
			{ipaNeutralA, ipaNeutralE},
			{ipaNeutralE, ipaNeutralI},
			{ipaNeutralU, ipaNeutralA},
			{ipaNeutralU, ipaNeutralI},
		}
	}

	pair := configs[formIndex]
	return pair[0], pair[1]
}

type ipaLetterKind byte

const (
	ipaLetterRadical ipaLetterKind = iota
	ipaLetterVowel
	ipaLetterDuplicate
	ipaLetterRemoved
)

type ipaLetter struct {
	kind           ipaLetterKind
	radicalIndex   int
	useAlternative bool
	vowel          ipaVowel
}

func (ipaPeter) fromConcept(s string) (Concept, error) {
	return Concept{}, newError(ScriptUnsupported, "ipa-peter concept parsing is not implemented")
}

func (ipaPeter) fromStr(s string) (ConceptOrWord, error) {
	return ConceptOrWord{}, newError(ScriptUnsupported, "ipa-peter word parsing is not implemented")
}

func (ipaPeter) renderConcept(concept Concept) string {
	table := ipaRadicals()
	var b strings.Builder
	b.Grow(conceptBufferSize)

	for _, r := range concept.radicalSlice() {
		b.WriteString(table[r.index()].asStr(true, false))
	}
	return b.String()
}

func (p ipaPeter) renderWord(word Word) string {
	concept := word.Concept()
	structure := structureFor(concept.Length(), word.StemIndex())
	letters := ipaWordBase(structure, concept, word.FormIndex())

	ipaAssimilation1(letters)
	ipaAssimilation2(letters)
	ipaAssimilation3(letters)
	ipaAssimilation4(letters)
	ipaAssimilation5(structure, letters)
	ipaAssimilation6(structure, letters)
	ipaAssimilation7(letters)

	table := ipaRadicals()
	var b strings.Builder
	b.Grow(wordBufferSize)

	for _, letter := range letters {
		switch letter.kind {
		case ipaLetterRadical:
			b.WriteString(table[letter.radicalIndex].asStr(false, letter.useAlternative))
		case ipaLetterVowel:
			b.WriteString(letter.vowel.String())
		case ipaLetterDuplicate:
			b.WriteString("ː")
		case ipaLetterRemoved:
			// emits nothing
		}
	}
	return b.String()
}

// ipaWordBase inserts concept radicals, fixes the stem and form
// structure, and inserts neutral vowels.
func ipaWordBase(structure []Letter, concept Concept, formIndex int) []ipaLetter {
	radicals := concept.radicalSlice()
	first, last := ipaFormConfig(concept.Length(), formIndex)

	letters := make([]ipaLetter, 0, len(structure))

	for _, letter := range structure {
		switch {
		case letter.IsConsonant():
			letters = append(letters, ipaLetter{kind: ipaLetterRadical, radicalIndex: radicals[letter.ConsonantIndex()].index()})
		case letter.IsVowel(), letter.IsNasal():
			vowel := first
			if letter.VowelSlot() == VowelLast {
				vowel = last
			}
			letters = append(letters, ipaLetter{kind: ipaLetterVowel, vowel: vowel})
		case letter.IsDuplicateConsonant(), letter.IsDuplicateVowel():
			letters = append(letters, ipaLetter{kind: ipaLetterDuplicate})
		}
	}

	return letters
}

// ipaAssimilation1 turns vowels adjacent to dark consonants dark.
func ipaAssimilation1(letters []ipaLetter) {
	table := ipaRadicals()
	original := append([]ipaLetter(nil), letters...)

	for position, letter := range original {
		if letter.kind != ipaLetterRadical || !table[letter.radicalIndex].isDark() {
			continue
		}

		if position > 0 {
			before := position - 1
			if letters[before].kind == ipaLetterDuplicate {
				before--
			}
			if letters[before].kind == ipaLetterVowel {
				letters[before].vowel.asDark()
			}
		}

		if position+1 < len(letters) {
			after := position + 1
			if letters[after].kind == ipaLetterDuplicate {
				after++
			}
			if letters[after].kind == ipaLetterVowel {
				letters[after].vowel.asDark()
			}
		}
	}
}

// ipaAssimilation2 turns vowels adjacent to light consonants light.
func ipaAssimilation2(letters []ipaLetter) {
	table := ipaRadicals()
	original := append([]ipaLetter(nil), letters...)

	for position, letter := range original {
		if letter.kind != ipaLetterRadical || !table[letter.radicalIndex].isLight() {
			continue
		}

		if position > 0 {
			before := position - 1
			if letters[before].kind == ipaLetterDuplicate {
				before--
			}
			if letters[before].kind == ipaLetterVowel {
				letters[before].vowel.asLight()
			}
		}

		if position+1 < len(letters) {
			after := position + 1
			if letters[after].kind == ipaLetterDuplicate {
				after++
			}
			if letters[after].kind == ipaLetterVowel {
				letters[after].vowel.asLight()
			}
		}
	}
}

// ipaAssimilation3 turns vowels after shading consonants shading.
func ipaAssimilation3(letters []ipaLetter) {
	table := ipaRadicals()
	original := append([]ipaLetter(nil), letters...)

	for position, letter := range original {
		if letter.kind != ipaLetterRadical || !table[letter.radicalIndex].isShading() {
			continue
		}

		if position+1 < len(letters) {
			after := position + 1
			if letters[after].kind == ipaLetterDuplicate {
				after++
			}
			if letters[after].kind == ipaLetterVowel {
				letters[after].vowel.asShading()
			}
		}
	}
}

// ipaAssimilation4 turns consonants adjacent to voiceless consonants to
// their alternative form, where one exists.
func ipaAssimilation4(letters []ipaLetter) {
	table := ipaRadicals()
	original := append([]ipaLetter(nil), letters...)

	for position, letter := range original {
		if letter.kind != ipaLetterRadical || !table[letter.radicalIndex].voiceless {
			continue
		}

		if position > 0 && letters[position-1].kind == ipaLetterRadical {
			if table[letters[position-1].radicalIndex].hasAlternative() {
				letters[position-1].useAlternative = true
			}
		}

		if position+1 < len(letters) && letters[position+1].kind == ipaLetterRadical {
			if table[letters[position+1].radicalIndex].hasAlternative() {
				letters[position+1].useAlternative = true
			}
		}
	}
}

// ipaAssimilation5 removes the first consonant if it is a beginning-quality
// radical, and removes the last consonant (and everything after it, except
// a trailing nasal vowel) if it is an end-quality radical.
func ipaAssimilation5(structure []Letter, letters []ipaLetter) {
	table := ipaRadicals()

	firstConsonant := -1
	for position, letter := range structure {
		if letter.IsConsonant() {
			firstConsonant = position
			break
		}
	}
	if firstConsonant < 0 {
		panic("uywi: no consonant found")
	}
	if table[letters[firstConsonant].radicalIndex].beginning {
		letters[firstConsonant] = ipaLetter{kind: ipaLetterRemoved}
	}

	lastConsonant := -1
	for position, letter := range structure {
		if letter.IsConsonant() {
			lastConsonant = position
		}
	}
	if lastConsonant < 0 {
		panic("uywi: no consonant found")
	}
	if table[letters[lastConsonant].radicalIndex].end {
		letters[lastConsonant] = ipaLetter{kind: ipaLetterRemoved}

		for position := lastConsonant; position < len(letters); position++ {
			if structure[position].IsNasal() {
				continue
			}
			letters[position] = ipaLetter{kind: ipaLetterRemoved}
		}

		nasalPosition := -1
		for position := len(structure) - 1; position >= 0; position-- {
			if structure[position].IsNasal() {
				nasalPosition = position
				continue
			}

			switch letters[position].kind {
			case ipaLetterVowel:
				if nasalPosition >= 0 {
					letters[nasalPosition] = letters[position]
					letters[position] = ipaLetter{kind: ipaLetterRemoved}
				}
				position = -1
			case ipaLetterRemoved:
				continue
			default:
				position = -1
			}

			if position == -1 {
				break
			}
		}
	}
}

// ipaAssimilation6 turns nasal-slot vowels into their nasal form.
func ipaAssimilation6(structure []Letter, letters []ipaLetter) {
	for position, letter := range structure {
		if !letter.IsNasal() {
			continue
		}
		if letters[position].kind != ipaLetterVowel {
			panic("uywi: ipa and letter structure don't match")
		}
		letters[position].vowel.asNasal()
	}
}

// ipaAssimilation7 turns vowels after rounding consonants to rounding
// vowels.
func ipaAssimilation7(letters []ipaLetter) {
	table := ipaRadicals()
	original := append([]ipaLetter(nil), letters...)

	for position, letter := range original {
		if letter.kind != ipaLetterRadical || !table[letter.radicalIndex].isRounding() {
			continue
		}

		if position+1 < len(letters) {
			after := position + 1
			if letters[after].kind == ipaLetterDuplicate {
				after++
			}
			if letters[after].kind == ipaLetterVowel {
				letters[after].vowel.asRounding()
			}
		}
	}
}
