package uywi

import "strconv"

// Pages iterates every Page of a given Length, in order.
type Pages struct {
	length    Length
	pageIndex int
}

// NewPages builds a Pages iterator over every page of the given Length.
func NewPages(length Length) Pages {
	return Pages{length: length}
}

// Next returns the next Page, or ok=false once every page has been
// returned.
func (p *Pages) Next() (page Page, ok bool) {
	if p.pageIndex >= p.length.NumOfPages() {
		return Page{}, false
	}

	page, err := PageFromIndex(p.pageIndex, p.length)
	if err != nil {
		panic("uywi: failed to build page: " + err.Error())
	}
	p.pageIndex++
	return page, true
}

// Page identifies one page of concepts within a Length's enumeration.
type Page struct {
	index  int
	length Length
}

// PageFromIndex builds the Page at the given zero-based index.
func PageFromIndex(index int, length Length) (Page, error) {
	if index < 0 || index >= length.NumOfPages() {
		return Page{}, newError(PageIndexInvalid, "")
	}
	return Page{index: index, length: length}, nil
}

// PageFromIndexStr parses index (1-based) and builds the corresponding
// Page.
func PageFromIndexStr(index string, length Length) (Page, error) {
	n, err := strconv.Atoi(index)
	if err != nil || n < 0 {
		return Page{}, newError(PageStringInvalid, index)
	}
	if n == 0 {
		return Page{}, newError(PageStringNull, index)
	}
	return PageFromIndex(n-1, length)
}

// Index returns the page's zero-based index.
func (p Page) Index() int {
	return p.index
}

// Length returns the page's concept length.
func (p Page) Length() Length {
	return p.length
}

// String renders the page's 1-based index as a decimal string.
func (p Page) String() string {
	return strconv.Itoa(p.index + 1)
}

// Rows returns an iterator over the page's rows.
func (p Page) Rows() Rows {
	return newRows(p)
}

// Rows iterates every Row of a Page, in order.
type Rows struct {
	startConceptIndex int
	length            Length
	rowIndex          int
}

func newRows(page Page) Rows {
	return Rows{
		length:            page.length,
		startConceptIndex: page.index * page.length.ConceptsPerPage(),
	}
}

// Next returns the next Row, or ok=false once every row on the page has
// been returned.
func (r *Rows) Next() (row Row, ok bool) {
	if r.rowIndex >= r.length.RowsPerPage() {
		return Row{}, false
	}
	row = newRow(r.rowIndex, r.startConceptIndex, r.length)
	r.rowIndex++
	return row, true
}

// Row identifies one row of concepts within a Page.
type Row struct {
	index             int
	startConceptIndex int
	length            Length
}

func newRow(index, startConceptIndex int, length Length) Row {
	if startConceptIndex+length.ConceptsPerRow() > length.NumOfConcepts() {
		panic("uywi: concept index in addition to possible concepts needed is higher than number of existing concepts")
	}
	if index >= length.RowsPerPage() {
		panic("uywi: row index is higher than number of possible rows")
	}

	return Row{
		index:             index,
		length:            length,
		startConceptIndex: startConceptIndex + index*length.ConceptsPerRow(),
	}
}

// Index returns the row's index within its page.
func (r Row) Index() int {
	return r.index
}

// Concepts returns an iterator over the row's concepts.
func (r Row) Concepts() *ConceptsInRow {
	return &ConceptsInRow{row: r}
}

// ConceptsInRow iterates every Concept of a Row, in order.
type ConceptsInRow struct {
	row  Row
	iter int
}

// Next returns the next Concept, or ok=false once every concept in the row
// has been returned.
func (c *ConceptsInRow) Next() (concept Concept, ok bool) {
	if c.iter >= c.row.length.ConceptsPerRow() {
		return Concept{}, false
	}
	concept, err := ConceptFromIndex(c.row.startConceptIndex+c.iter, c.row.length)
	if err != nil {
		panic("uywi: invalid concept index: " + err.Error())
	}
	c.iter++
	return concept, true
}
