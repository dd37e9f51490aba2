package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`</Types>`

func archive(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, data := range map[string]string{
		"[Content_Types].xml": contentTypes,
		"word/document.xml":   documentXML,
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(data))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func wrapBody(inner string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + inner + `</w:body></w:document>`
}

func TestReadParagraphsAndRuns(t *testing.T) {
	doc, err := Read(archive(t, wrapBody(
		`<w:p><w:r><w:rPr><w:b/></w:rPr><w:t>Dear </w:t></w:r><w:r><w:t>{TENANT_NAME}</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t xml:space="preserve"> trailing </w:t></w:r></w:p>`)))
	require.NoError(t, err)

	require.Len(t, doc.Paragraphs, 2)
	require.Len(t, doc.Paragraphs[0].Runs, 2)
	assert.Equal(t, "Dear {TENANT_NAME}", doc.Paragraphs[0].Text())
	assert.Equal(t, " trailing ", doc.Paragraphs[1].Text())
}

func TestReadTableCells(t *testing.T) {
	doc, err := Read(archive(t, wrapBody(
		`<w:p><w:r><w:t>before</w:t></w:r></w:p>`+
			`<w:tbl><w:tr>`+
			`<w:tc><w:p><w:r><w:t>Base Rent</w:t></w:r></w:p></w:tc>`+
			`<w:tc><w:p><w:r><w:t>{BASE_RENT}</w:t></w:r></w:p></w:tc>`+
			`</w:tr></w:tbl>`)))
	require.NoError(t, err)

	require.Len(t, doc.Paragraphs, 1)
	require.Len(t, doc.Tables, 1)
	require.Len(t, doc.Tables[0].Rows, 1)
	require.Len(t, doc.Tables[0].Rows[0], 2)
	assert.Equal(t, "{BASE_RENT}", doc.Tables[0].Rows[0][1].Paragraphs[0].Text())
}

func TestReadRejectsArchiveWithoutDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("[Content_Types].xml")
	require.NoError(t, err)
	_, _ = w.Write([]byte(contentTypes))
	require.NoError(t, zw.Close())

	_, err = Read(buf.Bytes())
	require.Error(t, err)
}

func TestBytesRoundTripsUntouchedDocument(t *testing.T) {
	original := wrapBody(`<w:p><w:r><w:rPr><w:i/></w:rPr><w:t>unchanged &amp; intact</w:t></w:r></w:p>`)
	doc, err := Read(archive(t, original))
	require.NoError(t, err)

	out, err := doc.Bytes()
	require.NoError(t, err)

	reread, err := Read(out)
	require.NoError(t, err)
	assert.Equal(t, original, string(documentBytes(t, out)))
	assert.Equal(t, "unchanged & intact", reread.Paragraphs[0].Text())
}

func TestSetTextSplicesOnlyRewrittenRuns(t *testing.T) {
	doc, err := Read(archive(t, wrapBody(
		`<w:p><w:r><w:rPr><w:b/></w:rPr><w:t>keep</w:t></w:r><w:r><w:t>replace me</w:t></w:r></w:p>`)))
	require.NoError(t, err)

	doc.Paragraphs[0].Runs[1].SetText("A & B")
	out, err := doc.Bytes()
	require.NoError(t, err)

	spliced := string(documentBytes(t, out))
	assert.Contains(t, spliced, `<w:rPr><w:b/></w:rPr><w:t>keep</w:t>`)
	assert.Contains(t, spliced, `<w:t xml:space="preserve">A &amp; B</w:t>`)
	assert.NotContains(t, spliced, "replace me")

	reread, err := Read(out)
	require.NoError(t, err)
	assert.Equal(t, "keepA & B", reread.Paragraphs[0].Text())
}

func documentBytes(t *testing.T, archiveData []byte) []byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(archiveData), int64(len(archiveData)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name == documentPart {
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close()
			data, err := io.ReadAll(rc)
			require.NoError(t, err)
			return data
		}
	}
	t.Fatalf("archive missing %s", documentPart)
	return nil
}
