package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const documentPart = "word/document.xml"

// Read parses a .docx archive into a Document. The archive's parts are kept
// in order so the document can be written back with only run text changed.
func Read(data []byte) (*Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening docx archive: %w", err)
	}

	doc := &Document{docIndex: -1}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening part %s: %w", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading part %s: %w", f.Name, err)
		}
		if f.Name == documentPart {
			doc.docIndex = len(doc.parts)
		}
		doc.parts = append(doc.parts, part{name: f.Name, data: content})
	}
	if doc.docIndex < 0 {
		return nil, errors.New("docx archive has no word/document.xml")
	}

	if err := doc.parseBody(doc.parts[doc.docIndex].data); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", documentPart, err)
	}
	return doc, nil
}

// parseBody walks document.xml once, building the paragraph/run model and
// recording each <w:t> element's byte span for splicing on write.
func (d *Document) parseBody(data []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var (
		para     *Paragraph
		table    *Table
		row      []*TableCell
		cell     *TableCell
		tblDepth int

		run     *Run
		runText strings.Builder
	)

	prev := dec.InputOffset()
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		offset := dec.InputOffset()

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tblDepth++
				if tblDepth == 1 {
					table = &Table{}
				}
			case "tr":
				if tblDepth == 1 {
					row = nil
				}
			case "tc":
				if tblDepth == 1 {
					cell = &TableCell{}
				}
			case "p":
				para = &Paragraph{}
				switch {
				case tblDepth >= 1 && cell != nil:
					cell.Paragraphs = append(cell.Paragraphs, para)
				case tblDepth == 0:
					d.Paragraphs = append(d.Paragraphs, para)
				}
			case "t":
				if para != nil {
					run = &Run{elemStart: prev}
					runText.Reset()
				}
			}
		case xml.CharData:
			if run != nil {
				runText.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				if run != nil {
					run.elemEnd = offset
					run.text = runText.String()
					para.Runs = append(para.Runs, run)
					d.runs = append(d.runs, run)
					run = nil
				}
			case "p":
				para = nil
			case "tc":
				if tblDepth == 1 && cell != nil {
					row = append(row, cell)
					cell = nil
				}
			case "tr":
				if tblDepth == 1 && row != nil {
					table.Rows = append(table.Rows, row)
					row = nil
				}
			case "tbl":
				if tblDepth == 1 && table != nil {
					d.Tables = append(d.Tables, table)
					table = nil
				}
				tblDepth--
			}
		}
		prev = offset
	}
	return nil
}
