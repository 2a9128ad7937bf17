// Package report renders the fixed-layout text reports shared by the
// catalog and ledger managers: a title line, a separator line, a header
// line naming the fields, then one row per record, split into pages.
package report

import (
	"strings"
)

// Separator is the rule printed between the title and the header.
const Separator = "----------------------------------------"

// RowsPerPage is how many data rows fit on one page. The title, separator
// and header lines are repeated at the top of every page.
const RowsPerPage = 26

// Document is a paginated text report. It is a pure value: building and
// rendering one never touches the record store.
type Document struct {
	Title  string
	Header string
	Rows   []string
}

// New assembles a document from pre-formatted rows.
func New(title, header string, rows []string) *Document {
	return &Document{
		Title:  title,
		Header: header,
		Rows:   rows,
	}
}

// Pages splits the document into rendered pages. An empty document still
// produces a single page holding exactly the title, separator and header.
func (d *Document) Pages() []string {
	var pages []string

	rows := d.Rows
	for {
		n := len(rows)
		if n > RowsPerPage {
			n = RowsPerPage
		}

		lines := make([]string, 0, 3+n)
		lines = append(lines, d.Title, Separator, d.Header)
		lines = append(lines, rows[:n]...)
		pages = append(pages, strings.Join(lines, "\n"))

		rows = rows[n:]
		if len(rows) == 0 {
			return pages
		}
	}
}

// Render joins all pages with a form feed, ready to be written out as a
// downloadable document.
func (d *Document) Render() string {
	return strings.Join(d.Pages(), "\f")
}
