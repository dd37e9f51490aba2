package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
)

// Bytes serializes the document back into a .docx archive. Every part except
// word/document.xml is copied verbatim; within document.xml only the <w:t>
// elements of rewritten runs are replaced.
func (d *Document) Bytes() ([]byte, error) {
	var out bytes.Buffer
	zw := zip.NewWriter(&out)

	for i, p := range d.parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, fmt.Errorf("creating part %s: %w", p.name, err)
		}
		data := p.data
		if i == d.docIndex {
			data = d.spliceDocument()
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("writing part %s: %w", p.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing docx archive: %w", err)
	}
	return out.Bytes(), nil
}

// spliceDocument rebuilds document.xml, substituting the recorded byte span
// of each rewritten run. Runs are stored in document order, so a single
// forward pass suffices.
func (d *Document) spliceDocument() []byte {
	original := d.parts[d.docIndex].data

	var out bytes.Buffer
	out.Grow(len(original))
	var pos int64
	for _, r := range d.runs {
		if !r.dirty {
			continue
		}
		out.Write(original[pos:r.elemStart])
		out.WriteString(`<w:t xml:space="preserve">`)
		_ = xml.EscapeText(&out, []byte(r.text))
		out.WriteString(`</w:t>`)
		pos = r.elemEnd
	}
	out.Write(original[pos:])
	return out.Bytes()
}
