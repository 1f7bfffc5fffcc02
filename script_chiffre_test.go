package uywi

import "testing"

func TestChiffreConceptRoundTrip(t *testing.T) {
	for _, length := range []Length{L2, L3, L4} {
		for i := 0; i < 500 && i < length.NumOfConcepts(); i++ {
			concept, err := ConceptFromIndex(i, length)
			if err != nil {
				t.Fatalf("ConceptFromIndex(%d, %s): %v", i, length, err)
			}

			rendered := ScriptUywiChiffre.Concept(concept)
			reparsed, err := ScriptUywiChiffre.FromConcept(rendered)
			if err != nil {
				t.Fatalf("Chiffre.FromConcept(%q): %v", rendered, err)
			}
			if reparsed.Index() != concept.Index() || reparsed.Length() != concept.Length() {
				t.Errorf("Chiffre round trip of %q: got index %d length %s, want index %d length %s",
					rendered, reparsed.Index(), reparsed.Length(), concept.Index(), concept.Length())
			}
		}
	}
}

func TestChiffreWordRoundTrip(t *testing.T) {
	for _, length := range []Length{L2, L3} {
		for i := 0; i < 50 && i < length.NumOfConcepts(); i++ {
			concept, err := ConceptFromIndex(i, length)
			if err != nil {
				t.Fatalf("ConceptFromIndex(%d, %s): %v", i, length, err)
			}

			stems := concept.Stems()
			for {
				stem, ok := stems.Next()
				if !ok {
					break
				}
				words := stem.Words()
				for {
					word, ok := words.Next()
					if !ok {
						break
					}

					rendered := ScriptUywiChiffre.Word(word)
					result, err := ScriptUywiChiffre.FromStr(rendered)
					if err != nil {
						t.Fatalf("Chiffre.FromStr(%q): %v", rendered, err)
					}
					if !result.IsWord() {
						t.Fatalf("Chiffre.FromStr(%q) parsed as a concept, want a word", rendered)
					}
					got := result.Word()
					if got.Concept().Index() != word.Concept().Index() || got.StemIndex() != word.StemIndex() || got.FormIndex() != word.FormIndex() {
						t.Errorf("Chiffre round trip of word %q: got %+v, want %+v", rendered, got, word)
					}
				}
			}
		}
	}
}

// For concept "Yh2w", stem 0 (template "c0 v0 c1 c2 v1 c3") under Chiffre
// form 0 (vowels o,o) substitutes each consonant slot by storage order and
// each vowel slot by form vowel, rendering "Yoh2ow".
func TestChiffreStemZeroFormZeroRender(t *testing.T) {
	concept, err := ScriptUywiChiffre.FromConcept("Yh2w")
	if err != nil {
		t.Fatalf("Chiffre.FromConcept(%q): %v", "Yh2w", err)
	}

	stems := concept.Stems()
	stem, ok := stems.Next()
	if !ok {
		t.Fatal("L4 concept has no stems")
	}
	if stem.StemIndex() != 0 {
		t.Fatalf("first stem has index %d, want 0", stem.StemIndex())
	}

	words := stem.Words()
	word, ok := words.Next()
	if !ok {
		t.Fatal("stem has no words")
	}
	if word.FormIndex() != 0 {
		t.Fatalf("first word has form index %d, want 0", word.FormIndex())
	}

	if got := word.Render(ScriptUywiChiffre); got != "Yoh2ow" {
		t.Errorf("stem 0 form 0 of %q in Chiffre = %q, want %q", "Yh2w", got, "Yoh2ow")
	}
}

// L2 stem index 2 (c0 v0 c1 xc1 xn0) geminates the final consonant and adds
// a trailing nasal-slot vowel, rendering "s0 o s1 s1 o" under form 0.
func TestChiffreGeminateNasalStemRender(t *testing.T) {
	concept, err := ScriptUywiChiffre.FromConcept("Yw")
	if err != nil {
		t.Fatalf("Chiffre.FromConcept(%q): %v", "Yw", err)
	}

	stems := concept.Stems()
	var stem2 Stem
	found := false
	for {
		stem, ok := stems.Next()
		if !ok {
			break
		}
		if stem.StemIndex() == 2 {
			stem2 = stem
			found = true
			break
		}
	}
	if !found {
		t.Fatal("L2 concept has no stem index 2")
	}

	words := stem2.Words()
	word, ok := words.Next()
	if !ok {
		t.Fatal("stem has no words")
	}

	if got := word.Render(ScriptUywiChiffre); got != "Yowwo" {
		t.Errorf("L2 stem 2 form 0 of %q in Chiffre = %q, want %q", "Yw", got, "Yowwo")
	}
}

func TestChiffreWrongLength(t *testing.T) {
	if _, err := ScriptUywiChiffre.FromConcept("Y"); !IsKind(err, LengthInvalid) {
		t.Errorf("Chiffre.FromConcept of a 1-grapheme string = %v, want LengthInvalid", err)
	}
	if _, err := ScriptUywiChiffre.FromConcept("Yw?h2"); !IsKind(err, LengthInvalid) {
		t.Errorf("Chiffre.FromConcept of a 5-grapheme string = %v, want LengthInvalid", err)
	}
}

func TestChiffreDuplicateRadical(t *testing.T) {
	if _, err := ScriptUywiChiffre.FromConcept("YhY2"); !IsKind(err, ConceptRadicalDuplicate) {
		t.Errorf("Chiffre.FromConcept with a duplicate radical = %v, want ConceptRadicalDuplicate", err)
	}
}

func TestChiffreInvalidRadical(t *testing.T) {
	if _, err := ScriptUywiChiffre.FromConcept("Yh2*"); !IsKind(err, ConceptRadicalInvalid) {
		t.Errorf("Chiffre.FromConcept with an unknown grapheme = %v, want ConceptRadicalInvalid", err)
	}
}
