// Package docx provides the minimal WordprocessingML model the agreement
// generator needs: paragraphs of styled runs, including runs inside table
// cells, read from and written back to a .docx archive.
//
// Only the text content of <w:t> elements is ever modeled or rewritten.
// Run properties, paragraph properties, and every other part of the archive
// are carried through byte-for-byte, so formatting survives substitution
// without being inspected.
package docx

// Run is a contiguous styled slice of a paragraph's text (a <w:t> element).
// Its position within the paragraph is its identity; runs are never created
// or deleted, only their text rewritten.
type Run struct {
	text  string
	dirty bool

	// Byte span of the original <w:t> element inside word/document.xml,
	// used to splice rewritten text back without touching anything else.
	elemStart int64
	elemEnd   int64
}

// Text returns the run's current text.
func (r *Run) Text() string { return r.text }

// SetText rewrites the run's text. The run keeps its style; the element is
// re-emitted with xml:space="preserve" so leading and trailing spaces in the
// replacement survive.
func (r *Run) SetText(s string) {
	if s == r.text {
		return
	}
	r.text = s
	r.dirty = true
}

// Paragraph is an ordered sequence of runs whose concatenation is the
// paragraph's rendered text. Run boundaries may fall anywhere, including
// mid-word or mid-token.
type Paragraph struct {
	Runs []*Run
}

// Text returns the paragraph's rendered text, the concatenation of its runs.
func (p *Paragraph) Text() string {
	var b []byte
	for _, r := range p.Runs {
		b = append(b, r.text...)
	}
	return string(b)
}

// TableCell contains the paragraphs of one table cell.
type TableCell struct {
	Paragraphs []*Paragraph
}

// Table is an ordered sequence of rows of cells. Tables are not nested in
// the templates this system handles.
type Table struct {
	Rows [][]*TableCell
}

// Document is the parsed template: the ordered archive parts plus the
// paragraph model of word/document.xml.
type Document struct {
	parts    []part
	docIndex int

	// Paragraphs holds the top-level paragraphs in document order;
	// Tables the top-level tables. Substitution traverses paragraphs
	// first, then every cell paragraph table by table.
	Paragraphs []*Paragraph
	Tables     []*Table

	// runs holds every run in document order for splicing on write.
	runs []*Run
}

type part struct {
	name string
	data []byte
}
