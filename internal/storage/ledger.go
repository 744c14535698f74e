package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/mhollis/redditlog/internal/domain"
	"github.com/mhollis/redditlog/internal/ods"
)

// TableName is the sheet the ledger writes to.
const TableName = "RedditPosts"

var header = []string{"ID", "Subreddit", "Title", "Short Link"}

// Ledger owns the spreadsheet: it assigns running IDs, buffers records in
// arrival order, and flushes them as appended rows. Not safe for concurrent
// use; the poll loop is its only caller.
type Ledger struct {
	path   string
	doc    *ods.Document
	table  *ods.Table
	nextID int64
	buffer []domain.Record
}

// Open loads the spreadsheet at path, or prepares a fresh one with the
// header row. Numbering continues above the last persisted row. A last row
// whose ID cell is not an integer means the file was not written by this
// tool; Open refuses to guess and fails instead.
func Open(path string) (*Ledger, error) {
	doc, err := ods.Load(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		doc = ods.NewDocument()
	}

	l := &Ledger{path: path, doc: doc, table: doc.Table(TableName)}
	if len(l.table.Rows) == 0 {
		l.table.AppendRow(header...)
	}

	last := l.table.LastRow()
	if last[0] == header[0] {
		l.nextID = 1
		return l, nil
	}
	id, err := strconv.ParseInt(last[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: last row ID %q is not a number", path, last[0])
	}
	l.nextID = id + 1
	return l, nil
}

// NextID reports the ID the next observed post will receive.
func (l *Ledger) NextID() int64 {
	return l.nextID
}

// Record assigns the next ID to p and buffers the resulting record.
func (l *Ledger) Record(p domain.Post) domain.Record {
	rec := domain.Record{
		ID:        l.nextID,
		Subreddit: p.Subreddit,
		Title:     p.Title,
		ShortLink: p.ShortLink(),
	}
	l.nextID++
	l.buffer = append(l.buffer, rec)
	return rec
}

// Pending reports how many records await a flush.
func (l *Ledger) Pending() int {
	return len(l.buffer)
}

// Flush appends the buffered records to the spreadsheet and saves it. The
// buffer is cleared only after the save succeeds; on error every record
// stays buffered, and the in-memory sheet is rolled back so a retry cannot
// write a record twice.
func (l *Ledger) Flush() error {
	if len(l.buffer) == 0 {
		return nil
	}
	before := len(l.table.Rows)
	for _, rec := range l.buffer {
		l.table.AppendRow(strconv.FormatInt(rec.ID, 10), rec.Subreddit, rec.Title, rec.ShortLink)
	}
	if err := l.doc.Save(l.path); err != nil {
		l.table.Rows = l.table.Rows[:before]
		return fmt.Errorf("flush: %w", err)
	}
	l.buffer = l.buffer[:0]
	return nil
}

// ShortLinks returns the short links already persisted, so callers can seed
// a duplicate filter across restarts.
func (l *Ledger) ShortLinks() map[string]struct{} {
	links := make(map[string]struct{}, len(l.table.Rows))
	for _, row := range l.table.Rows {
		if len(row) >= 4 && row[0] != header[0] {
			links[row[3]] = struct{}{}
		}
	}
	return links
}
