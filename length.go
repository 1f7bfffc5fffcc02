package uywi

// Length is the number of radicals a concept is built from.
type Length byte

// The three valid concept lengths.
const (
	L2 Length = 2
	L3 Length = 3
	L4 Length = 4
)

// DefaultLength is the length used when none is specified.
func DefaultLength() Length {
	return L4
}

// NewLength validates n and returns the corresponding Length.
func NewLength(n int) (Length, error) {
	switch n {
	case 2:
		return L2, nil
	case 3:
		return L3, nil
	case 4:
		return L4, nil
	default:
		return 0, newError(LengthInvalid, "")
	}
}

// AsInt returns the length as a plain int (2, 3, or 4).
func (l Length) AsInt() int {
	return int(l)
}

// String renders the length as its decimal digit.
func (l Length) String() string {
	switch l {
	case L2:
		return "2"
	case L3:
		return "3"
	case L4:
		return "4"
	default:
		return "?"
	}
}

// NumOfPages returns the total number of pages for this length.
func (l Length) NumOfPages() int {
	switch l {
	case L2:
		return 1
	case L3:
		return NumRadicals
	default: // L4
		return NumRadicals * (NumRadicals - 1)
	}
}

// RowsPerPage returns the number of rows on every page of this length.
func (l Length) RowsPerPage() int {
	switch l {
	case L2:
		return NumRadicals
	case L3:
		return NumRadicals - 1
	default: // L4
		return NumRadicals - 2
	}
}

// ConceptsPerRow returns the number of concepts in every row of this length.
func (l Length) ConceptsPerRow() int {
	switch l {
	case L2:
		return NumRadicals - 1
	case L3:
		return NumRadicals - 2
	default: // L4
		return NumRadicals - 3
	}
}

// ConceptsPerPage returns RowsPerPage * ConceptsPerRow.
func (l Length) ConceptsPerPage() int {
	return l.RowsPerPage() * l.ConceptsPerRow()
}

// NumOfConcepts returns the total number of valid concepts of this length.
func (l Length) NumOfConcepts() int {
	return l.NumOfPages() * l.ConceptsPerPage()
}

// StemsPerConcept returns the number of stems a concept of this length
// expands into.
func (l Length) StemsPerConcept() int {
	return len(structureTemplateStrings(l))
}

// FormsPerStem returns the number of forms (words) a stem of this length
// expands into.
func (l Length) FormsPerStem() int {
	switch l {
	case L2:
		return 2
	default: // L3, L4
		return 4
	}
}

// radicalIntervals returns the mixed-radix digit weight for each rendered
// position, fastest axis last.
func (l Length) radicalIntervals() []int {
	switch l {
	case L2:
		return []int{NumRadicals - 1, 1}
	case L3:
		return []int{(NumRadicals - 2) * (NumRadicals - 1), NumRadicals - 2, 1}
	default: // L4
		return []int{
			(NumRadicals - 3) * (NumRadicals - 2) * (NumRadicals - 1),
			(NumRadicals - 3) * (NumRadicals - 2),
			NumRadicals - 3,
			1,
		}
	}
}

// radicalOrder returns, for each storage slot, the rendered position whose
// radical that slot holds.
func (l Length) radicalOrder() []int {
	switch l {
	case L2:
		return []int{1, 0}
	case L3:
		return []int{1, 2, 0}
	default: // L4
		return []int{1, 3, 2, 0}
	}
}

// radicalOrderMirrored returns the inverse permutation of radicalOrder: for
// each rendered position, the storage slot that holds its radical.
func (l Length) radicalOrderMirrored() []int {
	order := l.radicalOrder()
	mirrored := make([]int, len(order))
	for position := range order {
		for slot, renderedAt := range order {
			if renderedAt == position {
				mirrored[position] = slot
				break
			}
		}
	}
	return mirrored
}

// radicalStart returns, for each rendered position, the starting radical
// index of the ordered cyclic iterator.
func (l Length) radicalStart() []int {
	switch l {
	case L2:
		return []int{3, 0}
	case L3:
		return []int{3, 0, 1}
	default: // L4
		return []int{3, 0, 2, 1}
	}
}

// orderedRadicals returns the radicals in the cyclic order for the given
// rendered position, starting at radicalStart()[position] and wrapping
// around, skipping any radical present in used.
func (l Length) orderedRadicals(position int, used []radical) []radical {
	start := l.radicalStart()[position]
	out := make([]radical, 0, NumRadicals)

	for i := 0; i < NumRadicals; i++ {
		value := (start + i) % NumRadicals
		if radicalUsed(radical(value), used) {
			continue
		}
		out = append(out, radical(value))
	}
	return out
}

func radicalUsed(value radical, used []radical) bool {
	for _, u := range used {
		if u == value {
			return true
		}
	}
	return false
}
