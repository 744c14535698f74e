package ods

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const Mimetype = "application/vnd.oasis.opendocument.spreadsheet"

const manifestXML = xml.Header + `<manifest:manifest xmlns:manifest="urn:oasis:names:tc:opendocument:xmlns:manifest:1.0" manifest:version="1.2">
 <manifest:file-entry manifest:full-path="/" manifest:media-type="` + Mimetype + `"/>
 <manifest:file-entry manifest:full-path="content.xml" manifest:media-type="text/xml"/>
 <manifest:file-entry manifest:full-path="styles.xml" manifest:media-type="text/xml"/>
</manifest:manifest>
`

const stylesXML = xml.Header + `<office:document-styles xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0" office:version="1.2"/>
`

// Save writes the document to path. The zip is assembled in a temp file in
// the same directory and renamed over the target, so a crash mid-save never
// corrupts an existing spreadsheet.
func (d *Document) Save(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".ods-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := d.write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

func (d *Document) write(w io.Writer) error {
	zw := zip.NewWriter(w)

	// The mimetype entry must be first in the archive and stored
	// uncompressed, per the ODF packaging rules.
	mt, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		return err
	}
	if _, err := mt.Write([]byte(Mimetype)); err != nil {
		return err
	}

	entries := []struct {
		name string
		body []byte
	}{
		{"META-INF/manifest.xml", []byte(manifestXML)},
		{"styles.xml", []byte(stylesXML)},
		{"content.xml", d.contentXML()},
	}
	for _, e := range entries {
		f, err := zw.Create(e.name)
		if err != nil {
			return err
		}
		if _, err := f.Write(e.body); err != nil {
			return err
		}
	}
	return zw.Close()
}

func (d *Document) contentXML() []byte {
	var b bytes.Buffer
	b.WriteString(xml.Header)
	b.WriteString(`<office:document-content` +
		` xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"` +
		` xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0"` +
		` xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0"` +
		` office:version="1.2">`)
	b.WriteString(`<office:body><office:spreadsheet>`)
	for _, t := range d.Tables {
		b.WriteString(`<table:table table:name="`)
		escape(&b, t.Name)
		b.WriteString(`">`)
		for _, row := range t.Rows {
			b.WriteString(`<table:table-row>`)
			for _, cell := range row {
				b.WriteString(`<table:table-cell office:value-type="string"><text:p>`)
				escape(&b, cell)
				b.WriteString(`</text:p></table:table-cell>`)
			}
			b.WriteString(`</table:table-row>`)
		}
		b.WriteString(`</table:table>`)
	}
	b.WriteString(`</office:spreadsheet></office:body></office:document-content>`)
	return b.Bytes()
}

func escape(b *bytes.Buffer, s string) {
	// EscapeText cannot fail on a bytes.Buffer.
	xml.EscapeText(b, []byte(s))
}
