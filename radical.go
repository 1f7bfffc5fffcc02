package uywi

// radical is an internal index into the fixed 44-symbol alphabet. It exists
// so the rest of the package never juggles bare ints or strings for
// something that must always be in [0, NumRadicals).
type radical int8

// index returns the radical's plain index.
func (r radical) index() int {
	return int(r)
}
