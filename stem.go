package uywi

// Stems iterates every Stem of a Concept, in order.
type Stems struct {
	concept   Concept
	stemIndex int
}

func newStems(concept Concept) Stems {
	return Stems{concept: concept}
}

// Next returns the next Stem, or ok=false once every stem of the concept
// has been returned.
func (s *Stems) Next() (stem Stem, ok bool) {
	if s.stemIndex >= s.concept.length.StemsPerConcept() {
		return Stem{}, false
	}
	stem = newStem(s.concept, s.stemIndex)
	s.stemIndex++
	return stem, true
}

// Stem is one structural variant of a Concept.
type Stem struct {
	concept   Concept
	stemIndex int
}

func newStem(concept Concept, index int) Stem {
	if index >= concept.length.StemsPerConcept() {
		panic("uywi: stem index is higher than number of possible stems")
	}
	return Stem{concept: concept, stemIndex: index}
}

// Concept returns the stem's concept.
func (s Stem) Concept() Concept {
	return s.concept
}

// StemIndex returns the stem's index within its concept.
func (s Stem) StemIndex() int {
	return s.stemIndex
}

// Words returns an iterator over the stem's words.
func (s Stem) Words() Words {
	return newWords(s.concept, s.stemIndex)
}
