package uywi

import "testing"

func TestConceptFromIndexRoundTrip(t *testing.T) {
	for _, length := range []Length{L2, L3, L4} {
		n := length.NumOfConcepts()
		// A full sweep over L4's ~3.26M concepts is unnecessary for this
		// property to be well exercised; check the first 2000 indices of
		// each length densely.
		limit := n
		if limit > 2000 {
			limit = 2000
		}

		for i := 0; i < limit; i++ {
			concept, err := ConceptFromIndex(i, length)
			if err != nil {
				t.Fatalf("ConceptFromIndex(%d, %s): %v", i, length, err)
			}
			if got := concept.Index(); got != i {
				t.Fatalf("ConceptFromIndex(%d, %s).Index() = %d, want %d", i, length, got, i)
			}
		}
	}
}

func TestConceptRadicalsDistinct(t *testing.T) {
	for _, length := range []Length{L2, L3, L4} {
		for i := 0; i < 500 && i < length.NumOfConcepts(); i++ {
			concept, err := ConceptFromIndex(i, length)
			if err != nil {
				t.Fatalf("ConceptFromIndex(%d, %s): %v", i, length, err)
			}

			seen := map[radical]bool{}
			for _, r := range concept.radicalSlice() {
				if seen[r] {
					t.Fatalf("ConceptFromIndex(%d, %s) has duplicate radical %d among its first %d slots", i, length, r, length.AsInt())
				}
				seen[r] = true
			}

			for position := length.AsInt(); position < 4; position++ {
				if concept.radicals[position] != 0 {
					t.Fatalf("ConceptFromIndex(%d, %s) has non-zero padding slot %d = %d", i, length, position, concept.radicals[position])
				}
			}
		}
	}
}

func TestConceptIndexInvalid(t *testing.T) {
	length := L4
	if _, err := ConceptFromIndex(length.NumOfConcepts(), length); !IsKind(err, ConceptIndexInvalid) {
		t.Errorf("ConceptFromIndex(num_of_concepts, L4) = %v, want ConceptIndexInvalid", err)
	}
	if _, err := ConceptFromIndex(-1, length); !IsKind(err, ConceptIndexInvalid) {
		t.Errorf("ConceptFromIndex(-1, L4) = %v, want ConceptIndexInvalid", err)
	}
}

func TestConceptFromIndexStrNull(t *testing.T) {
	if _, err := ConceptFromIndexStr("0", L4); !IsKind(err, ConceptStringNull) {
		t.Errorf("ConceptFromIndexStr(\"0\", L4) = %v, want ConceptStringNull", err)
	}
}

func TestConceptFromIndexStrRoundTrip(t *testing.T) {
	concept, err := ConceptFromIndex(1722, L4)
	if err != nil {
		t.Fatalf("ConceptFromIndex(1722, L4): %v", err)
	}

	reparsed, err := ConceptFromIndexStr(concept.IndexAsString(), L4)
	if err != nil {
		t.Fatalf("ConceptFromIndexStr(%q, L4): %v", concept.IndexAsString(), err)
	}
	if reparsed.Index() != concept.Index() {
		t.Errorf("round-trip through index string changed index: %d != %d", reparsed.Index(), concept.Index())
	}
	if concept.IndexAsString() != "1723" {
		t.Errorf("IndexAsString() = %q, want %q", concept.IndexAsString(), "1723")
	}
}

// The first concept of the enumeration has all mixed-radix digits at 0, so
// its four radicals are exactly the per-position cyclic starting radicals.
func TestFirstConceptUsesStartRadicals(t *testing.T) {
	concept, err := ConceptFromIndex(0, L4)
	if err != nil {
		t.Fatalf("ConceptFromIndex(0, L4): %v", err)
	}
	if concept.Index() != 0 {
		t.Errorf("concept_from_index(0, L4).Index() = %d, want 0", concept.Index())
	}

	radicals := concept.radicalSlice()
	if len(radicals) != 4 {
		t.Fatalf("concept_from_index(0, L4) has %d radicals, want 4", len(radicals))
	}

	order := L4.radicalOrderMirrored()
	for position, slot := range order {
		want := radical(L4.radicalStart()[position])
		if radicals[slot] != want {
			t.Errorf("storage slot %d = %d, want radical_start[%d] = %d", slot, radicals[slot], position, want)
		}
	}
}

// Advancing from index 0 to index 1 moves only the last rendered digit by
// one step, leaving the others untouched.
func TestSecondConceptAdvancesLastRenderedSlot(t *testing.T) {
	base, err := ConceptFromIndex(0, L4)
	if err != nil {
		t.Fatalf("ConceptFromIndex(0, L4): %v", err)
	}
	concept, err := ConceptFromIndex(1, L4)
	if err != nil {
		t.Fatalf("ConceptFromIndex(1, L4): %v", err)
	}
	if concept.Index() != 1 {
		t.Errorf("concept_from_index(1, L4).Index() = %d, want 1", concept.Index())
	}

	order := L4.radicalOrderMirrored()
	baseRadicals := base.radicalSlice()
	radicals := concept.radicalSlice()
	for i := 0; i < 3; i++ {
		slot := order[i]
		if radicals[slot] != baseRadicals[slot] {
			t.Errorf("rendered position %d changed between index 0 and index 1: %d != %d", i, radicals[slot], baseRadicals[slot])
		}
	}
	lastSlot := order[3]
	if radicals[lastSlot] == baseRadicals[lastSlot] {
		t.Errorf("rendered position 3 did not advance between index 0 and index 1")
	}
}

// The first concept of the second L4 page starts exactly one page's worth of
// concepts (42*41 = 1722) into the enumeration.
func TestSecondPageStartsAfterFullPage(t *testing.T) {
	page, err := PageFromIndex(1, L4)
	if err != nil {
		t.Fatalf("PageFromIndex(1, L4): %v", err)
	}

	rows := page.Rows()
	row, ok := rows.Next()
	if !ok {
		t.Fatal("page 1 has no rows")
	}

	concepts := row.Concepts()
	concept, ok := concepts.Next()
	if !ok {
		t.Fatal("row 0 of page 1 has no concepts")
	}

	if concept.Index() != 1722 {
		t.Errorf("first concept of first row of page 1 has index %d, want 1722", concept.Index())
	}
}

func TestConceptPageIndex(t *testing.T) {
	for _, length := range []Length{L2, L3, L4} {
		for i := 0; i < 500 && i < length.NumOfConcepts(); i++ {
			concept, err := ConceptFromIndex(i, length)
			if err != nil {
				t.Fatalf("ConceptFromIndex(%d, %s): %v", i, length, err)
			}
			want := i / length.ConceptsPerPage()
			if got := concept.Page().Index(); got != want {
				t.Errorf("ConceptFromIndex(%d, %s).Page().Index() = %d, want %d", i, length, got, want)
			}
		}
	}
}
