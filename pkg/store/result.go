package store

import (
	"fmt"
	"io"
	"strings"
)

// NullText is how a NULL column value is rendered.
const NullText = "null"

// Result is a fully materialized result set. Every value is the text form
// the server produced for it.
type Result struct {
	Columns []string
	Rows    [][]string
}

// Len returns the number of rows.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Rows)
}

// Print writes the header and then one line per row, tab-separated, and
// returns the number of rows written. An empty result prints nothing.
func (r *Result) Print(w io.Writer) int {
	if r.Len() == 0 {
		return 0
	}

	_, _ = fmt.Fprintln(w, strings.Join(r.Columns, "\t"))
	for _, row := range r.Rows {
		_, _ = fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return len(r.Rows)
}
