package docgen

import (
	"strings"

	"rentora/internal/docgen/docx"
)

// Replace rewrites every occurrence of every placeholder token in the
// document, preserving run styling even when a token's characters are split
// across adjacent runs. Tokens with no entry in the map pass through
// untouched; map keys the template never references are not an error.
//
// Traversal covers all top-level paragraphs, then each table row by row,
// cell by cell.
func Replace(doc *docx.Document, replacements map[string]string) {
	for _, p := range doc.Paragraphs {
		replaceInParagraph(p, replacements)
	}
	for _, t := range doc.Tables {
		for _, row := range t.Rows {
			for _, cell := range row {
				for _, p := range cell.Paragraphs {
					replaceInParagraph(p, replacements)
				}
			}
		}
	}
}

// replaceInParagraph resolves each key fully before moving to the next, so
// offset arithmetic for one key is never disturbed by its own rescans. Keys
// are independent of each other: replacement values never contain tokens.
func replaceInParagraph(p *docx.Paragraph, replacements map[string]string) {
	for token, value := range replacements {
		// Fast path: the whole token was typed inside one run.
		for _, r := range p.Runs {
			if strings.Contains(r.Text(), token) {
				r.SetText(strings.ReplaceAll(r.Text(), token, value))
			}
		}

		// Split path: the token may still appear in the concatenated
		// text, spread across adjacent runs that each lack it.
		from := 0
		for {
			idx := strings.Index(p.Text()[from:], token)
			if idx < 0 {
				break
			}
			idx += from
			replaceSpan(p, idx, idx+len(token), value)
			from = idx + len(value)
		}
	}
}

// replaceSpan rewrites the half-open range [start, end) of the paragraph's
// concatenated text with value. The first touched run keeps its text before
// the span and receives the replacement (inheriting that run's style), fully
// interior runs are blanked, and the last touched run keeps only the text
// after the span. No run is created or deleted.
func replaceSpan(p *docx.Paragraph, start, end int, value string) {
	offset := 0
	for _, r := range p.Runs {
		text := r.Text()
		next := offset + len(text)

		switch {
		case next <= start:
			// Entirely before the span.
		case offset >= end:
			return
		case offset <= start && end <= next:
			// Span contained in this single run.
			r.SetText(text[:start-offset] + value + text[end-offset:])
			return
		case offset <= start:
			r.SetText(text[:start-offset] + value)
		case next >= end:
			r.SetText(text[end-offset:])
		default:
			r.SetText("")
		}
		offset = next
	}
}
