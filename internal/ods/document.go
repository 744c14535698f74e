// Package ods reads and writes a minimal subset of the OpenDocument
// Spreadsheet format: tables of string-valued cells. It covers what the
// post ledger needs (append rows, read them back later) and nothing else.
package ods

// Document is an in-memory spreadsheet.
type Document struct {
	Tables []*Table
}

// Table is a named sheet of string rows.
type Table struct {
	Name string
	Rows [][]string
}

func NewDocument() *Document {
	return &Document{}
}

// Table returns the named table, creating it if absent.
func (d *Document) Table(name string) *Table {
	for _, t := range d.Tables {
		if t.Name == name {
			return t
		}
	}
	t := &Table{Name: name}
	d.Tables = append(d.Tables, t)
	return t
}

// AppendRow adds a row of string cells at the bottom of the table.
func (t *Table) AppendRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// LastRow returns the bottom row, or nil for an empty table.
func (t *Table) LastRow() []string {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[len(t.Rows)-1]
}
