package uywi

import "testing"

func TestStemsCountMatchesStemsPerConcept(t *testing.T) {
	for _, length := range []Length{L2, L3, L4} {
		concept, err := ConceptFromIndex(0, length)
		if err != nil {
			t.Fatalf("ConceptFromIndex(0, %s): %v", length, err)
		}

		stems := concept.Stems()
		count := 0
		seen := map[int]bool{}
		for {
			stem, ok := stems.Next()
			if !ok {
				break
			}
			if stem.Concept().Index() != concept.Index() {
				t.Errorf("stem %d belongs to concept %d, want %d", stem.StemIndex(), stem.Concept().Index(), concept.Index())
			}
			if seen[stem.StemIndex()] {
				t.Errorf("stem index %d produced twice", stem.StemIndex())
			}
			seen[stem.StemIndex()] = true
			count++
		}

		if count != length.StemsPerConcept() {
			t.Errorf("%s: Stems yielded %d stems, want %d", length, count, length.StemsPerConcept())
		}
	}
}

func TestStemIndicesAreSequential(t *testing.T) {
	concept, err := ConceptFromIndex(0, L3)
	if err != nil {
		t.Fatalf("ConceptFromIndex(0, L3): %v", err)
	}

	stems := concept.Stems()
	want := 0
	for {
		stem, ok := stems.Next()
		if !ok {
			break
		}
		if stem.StemIndex() != want {
			t.Fatalf("stem index = %d, want %d", stem.StemIndex(), want)
		}
		want++
	}
}
