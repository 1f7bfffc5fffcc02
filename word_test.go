package uywi

import "testing"

func TestWordsCountMatchesFormsPerStem(t *testing.T) {
	for _, length := range []Length{L2, L3, L4} {
		concept, err := ConceptFromIndex(0, length)
		if err != nil {
			t.Fatalf("ConceptFromIndex(0, %s): %v", length, err)
		}

		stems := concept.Stems()
		stem, ok := stems.Next()
		if !ok {
			t.Fatalf("%s concept has no stems", length)
		}

		words := stem.Words()
		count := 0
		seen := map[int]bool{}
		for {
			word, ok := words.Next()
			if !ok {
				break
			}
			if word.StemIndex() != stem.StemIndex() {
				t.Errorf("word stem index %d, want %d", word.StemIndex(), stem.StemIndex())
			}
			if seen[word.FormIndex()] {
				t.Errorf("form index %d produced twice", word.FormIndex())
			}
			seen[word.FormIndex()] = true
			count++
		}

		if count != length.FormsPerStem() {
			t.Errorf("%s: Words yielded %d words, want %d", length, count, length.FormsPerStem())
		}
	}
}

func TestWordFormIndicesAreSequential(t *testing.T) {
	concept, err := ConceptFromIndex(0, L4)
	if err != nil {
		t.Fatalf("ConceptFromIndex(0, L4): %v", err)
	}
	stems := concept.Stems()
	stem, ok := stems.Next()
	if !ok {
		t.Fatal("L4 concept has no stems")
	}

	words := stem.Words()
	want := 0
	for {
		word, ok := words.Next()
		if !ok {
			break
		}
		if word.FormIndex() != want {
			t.Fatalf("form index = %d, want %d", word.FormIndex(), want)
		}
		want++
	}
}
