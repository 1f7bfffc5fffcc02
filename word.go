package uywi

// Words iterates every Word of a Stem, in order.
type Words struct {
	concept   Concept
	stemIndex int
	formIndex int
}

func newWords(concept Concept, stemIndex int) Words {
	return Words{concept: concept, stemIndex: stemIndex}
}

// Next returns the next Word, or ok=false once every word of the stem has
// been returned.
func (w *Words) Next() (word Word, ok bool) {
	if w.formIndex >= w.concept.length.FormsPerStem() {
		return Word{}, false
	}
	word = newWord(w.concept, w.stemIndex, w.formIndex)
	w.formIndex++
	return word, true
}

// Word is a specific vocalisation of a Stem: the triple
// (concept, stem_index, form_index).
type Word struct {
	concept   Concept
	stemIndex int
	formIndex int
}

func newWord(concept Concept, stemIndex, formIndex int) Word {
	if stemIndex >= concept.length.StemsPerConcept() {
		panic("uywi: stem index is higher than number of possible stems")
	}
	if formIndex >= concept.length.FormsPerStem() {
		panic("uywi: form index is higher than number of possible forms")
	}
	return Word{concept: concept, stemIndex: stemIndex, formIndex: formIndex}
}

// Concept returns the word's concept.
func (w Word) Concept() Concept {
	return w.concept
}

// StemIndex returns the word's stem index.
func (w Word) StemIndex() int {
	return w.stemIndex
}

// FormIndex returns the word's form index.
func (w Word) FormIndex() int {
	return w.formIndex
}

// String renders the word through ScriptUywiChiffre.
func (w Word) String() string {
	return w.Render(ScriptUywiChiffre)
}

// Render renders the word under the given script.
func (w Word) Render(script Script) string {
	return script.impl().renderWord(w)
}
