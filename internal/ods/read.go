package ods

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Load reads an ODS file written by this package, or any spreadsheet whose
// cells hold plain text. Trailing empty cells are trimmed and fully empty
// rows are dropped, so documents padded out by office suites read back the
// same as ones we wrote ourselves.
func Load(path string) (*Document, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "content.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open content.xml: %w", err)
		}
		defer rc.Close()
		return parseContent(rc)
	}
	return nil, fmt.Errorf("%s: no content.xml entry", path)
}

func parseContent(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	doc := NewDocument()

	var (
		table  *Table
		row    []string
		cell   strings.Builder
		repeat int
		inCell bool
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse content.xml: %w", err)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "table":
				table = doc.Table(attr(el, "name"))
			case "table-row":
				row = nil
			case "table-cell":
				inCell = true
				cell.Reset()
				repeat = 1
				if v := attr(el, "number-columns-repeated"); v != "" {
					if n, err := strconv.Atoi(v); err == nil && n > 0 {
						repeat = n
					}
				}
			}
		case xml.CharData:
			if inCell {
				cell.Write(el)
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "table-cell":
				for i := 0; i < repeat; i++ {
					row = append(row, cell.String())
				}
				inCell = false
			case "table-row":
				if table == nil {
					break
				}
				if r := trimTrailingEmpty(row); len(r) > 0 {
					table.Rows = append(table.Rows, r)
				}
			}
		}
	}
	return doc, nil
}

func attr(el xml.StartElement, local string) string {
	for _, a := range el.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

func trimTrailingEmpty(row []string) []string {
	n := len(row)
	for n > 0 && row[n-1] == "" {
		n--
	}
	return row[:n]
}
