package uywi

import "strconv"

// Concept is an ordered tuple of 2 to 4 distinct radicals. Concepts of a
// given Length enumerate densely: every index in [0, length.NumOfConcepts())
// maps to exactly one Concept and back.
type Concept struct {
	radicals [4]radical
	length   Length
}

// newConcept builds a Concept from already-ordered radicals. Internal only;
// callers reach a Concept through ConceptFromIndex or a Script's parser.
func newConcept(radicals [4]radical, length Length) Concept {
	return Concept{radicals: radicals, length: length}
}

// ConceptFromIndex builds the Concept at the given zero-based index for the
// given Length.
func ConceptFromIndex(index int, length Length) (Concept, error) {
	if index < 0 || index >= length.NumOfConcepts() {
		return Concept{}, newError(ConceptIndexInvalid, "")
	}

	var used []radical
	indexLeft := index

	for position, interval := range length.radicalIntervals() {
		intervals := indexLeft / interval

		ordered := length.orderedRadicals(position, used)
		if intervals >= len(ordered) {
			panic("uywi: no radical found at given interval")
		}
		r := ordered[intervals]

		used = append(used, r)
		indexLeft -= intervals * interval
	}

	order := length.radicalOrder()
	var radicals [4]radical
	for position := range radicals {
		if position < len(order) {
			radicals[position] = used[order[position]]
		} else {
			radicals[position] = 0
		}
	}

	return newConcept(radicals, length), nil
}

// ConceptFromIndexStr parses index (1-based, as rendered to users) and
// builds the corresponding Concept.
func ConceptFromIndexStr(index string, length Length) (Concept, error) {
	n, err := strconv.Atoi(index)
	if err != nil || n < 0 {
		return Concept{}, newError(ConceptStringInvalid, index)
	}
	if n == 0 {
		return Concept{}, newError(ConceptStringNull, index)
	}

	concept, err := ConceptFromIndex(n-1, length)
	if err != nil {
		if IsKind(err, ConceptIndexInvalid) {
			return Concept{}, newError(ConceptStringInvalid, index)
		}
		return Concept{}, err
	}
	return concept, nil
}

// radicalSlice returns the concept's radicals, truncated to its Length.
func (c Concept) radicalSlice() []radical {
	return c.radicals[:c.length.AsInt()]
}

// Index returns the concept's zero-based enumeration index.
func (c Concept) Index() int {
	conceptIndex := 0
	var used []radical
	intervals := c.length.radicalIntervals()
	mirrored := c.length.radicalOrderMirrored()

	radicals := c.radicalSlice()
	for position, order := range mirrored {
		r := radicals[order]
		ordered := c.length.orderedRadicals(position, used)

		orderedIndex := -1
		for i, candidate := range ordered {
			if candidate == r {
				orderedIndex = i
				break
			}
		}
		if orderedIndex < 0 {
			panic("uywi: radical not found in ordered set")
		}

		conceptIndex += orderedIndex * intervals[position]
		used = append(used, r)
	}

	return conceptIndex
}

// IndexAsString renders the concept's 1-based index as a decimal string.
func (c Concept) IndexAsString() string {
	return strconv.Itoa(c.Index() + 1)
}

// Length returns the concept's length.
func (c Concept) Length() Length {
	return c.length
}

// Page returns the Page this concept belongs to.
func (c Concept) Page() Page {
	page, err := PageFromIndex(c.Index()/c.length.ConceptsPerPage(), c.length)
	if err != nil {
		panic("uywi: couldn't calculate page from concept: " + err.Error())
	}
	return page
}

// String renders the concept through ScriptUywiChiffre, the radical table's
// own literal notation.
func (c Concept) String() string {
	return c.Render(ScriptUywiChiffre)
}

// Render renders the concept under the given script.
func (c Concept) Render(script Script) string {
	return script.impl().renderConcept(c)
}

// Stems returns an iterator over the concept's stems.
func (c Concept) Stems() Stems {
	return newStems(c)
}
