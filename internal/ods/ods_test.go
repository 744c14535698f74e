package ods

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	doc := NewDocument()
	table := doc.Table("Posts")
	table.AppendRow("ID", "Subreddit", "Title", "Short Link")
	table.AppendRow("1", "golang", "Generics & you <hot take>", "https://redd.it/aaa111")
	table.AppendRow("2", "programming", `He said "no"`, "https://redd.it/bbb222")
	table.AppendRow("3", "de", "Umlaute: äöü", "https://redd.it/ccc333")

	path := filepath.Join(t.TempDir(), "out.ods")
	require.NoError(t, doc.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	gotTable := got.Table("Posts")
	assert.Equal(t, table.Rows, gotTable.Rows)
}

func TestSaveMimetypeFirstAndStored(t *testing.T) {
	doc := NewDocument()
	doc.Table("Posts").AppendRow("ID")

	path := filepath.Join(t.TempDir(), "out.ods")
	require.NoError(t, doc.Save(path))

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	require.NotEmpty(t, zr.File)
	first := zr.File[0]
	assert.Equal(t, "mimetype", first.Name)
	assert.Equal(t, zip.Store, first.Method)

	rc, err := first.Open()
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, Mimetype, string(body))
}

func TestSaveOverwritesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.ods")

	doc := NewDocument()
	doc.Table("Posts").AppendRow("1", "first")
	require.NoError(t, doc.Save(path))

	doc.Table("Posts").AppendRow("2", "second")
	require.NoError(t, doc.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, got.Table("Posts").Rows, 2)

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.ods"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadNotAZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.ods")
	require.NoError(t, os.WriteFile(path, []byte("not a spreadsheet"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestParseRepeatedAndPaddedCells(t *testing.T) {
	// LibreOffice pads rows with repeated empty cells; those must not
	// survive a load.
	content := `<?xml version="1.0" encoding="UTF-8"?>
<office:document-content xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0" xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0" xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0" office:version="1.2">
<office:body><office:spreadsheet>
<table:table table:name="Posts">
<table:table-row>
<table:table-cell office:value-type="string"><text:p>x</text:p></table:table-cell>
<table:table-cell table:number-columns-repeated="2" office:value-type="string"><text:p>y</text:p></table:table-cell>
<table:table-cell table:number-columns-repeated="1000"/>
</table:table-row>
<table:table-row table:number-rows-repeated="900"/>
</table:table>
</office:spreadsheet></office:body></office:document-content>`

	doc, err := parseContent(strings.NewReader(content))
	require.NoError(t, err)
	rows := doc.Table("Posts").Rows
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"x", "y", "y"}, rows[0])
}

func TestTableFindOrCreate(t *testing.T) {
	doc := NewDocument()
	a := doc.Table("A")
	b := doc.Table("B")
	assert.NotSame(t, a, b)
	assert.Same(t, a, doc.Table("A"))
	assert.Len(t, doc.Tables, 2)
}

func TestLastRow(t *testing.T) {
	table := &Table{Name: "T"}
	assert.Nil(t, table.LastRow())

	table.AppendRow("1")
	table.AppendRow("2", "two")
	assert.Equal(t, []string{"2", "two"}, table.LastRow())
}
