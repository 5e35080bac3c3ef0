// Package storetest provides an in-memory stand-in for the store gateway
// that records statements and answers from scripted rules.
package storetest

import (
	"context"
	"strings"

	"github.com/marshallshelly/retail-console/pkg/store"
)

// Call is one recorded statement.
type Call struct {
	Exec bool
	SQL  string
	Args []any
}

type rule struct {
	fragment string
	result   *store.Result
	rows     int64
	err      error
}

// Recorder satisfies the retail Querier interface. Rules are matched in the
// order they were added by checking whether the statement contains their
// fragment. Unmatched queries return an empty result; unmatched execs
// report one affected row.
type Recorder struct {
	Calls []Call
	rules []rule
}

// New returns an empty recorder.
func New() *Recorder {
	return &Recorder{}
}

// OnQuery answers statements containing fragment with result.
func (r *Recorder) OnQuery(fragment string, result *store.Result) *Recorder {
	r.rules = append(r.rules, rule{fragment: fragment, result: result})
	return r
}

// OnExec answers statements containing fragment with an affected-row count.
func (r *Recorder) OnExec(fragment string, rows int64) *Recorder {
	r.rules = append(r.rules, rule{fragment: fragment, rows: rows})
	return r
}

// Fail makes statements containing fragment return err.
func (r *Recorder) Fail(fragment string, err error) *Recorder {
	r.rules = append(r.rules, rule{fragment: fragment, err: err})
	return r
}

func (r *Recorder) match(sql string) (rule, bool) {
	for _, ru := range r.rules {
		if strings.Contains(sql, ru.fragment) {
			return ru, true
		}
	}
	return rule{}, false
}

// Exec implements the Querier interface.
func (r *Recorder) Exec(_ context.Context, sql string, args ...any) (int64, error) {
	r.Calls = append(r.Calls, Call{Exec: true, SQL: sql, Args: args})
	ru, ok := r.match(sql)
	if !ok {
		return 1, nil
	}
	if ru.err != nil {
		return 0, &store.StatementError{SQL: sql, Err: ru.err}
	}
	return ru.rows, nil
}

// Query implements the Querier interface.
func (r *Recorder) Query(_ context.Context, sql string, args ...any) (*store.Result, error) {
	r.Calls = append(r.Calls, Call{SQL: sql, Args: args})
	ru, ok := r.match(sql)
	if !ok {
		return &store.Result{}, nil
	}
	if ru.err != nil {
		return nil, &store.StatementError{SQL: sql, Err: ru.err}
	}
	if ru.result == nil {
		return &store.Result{}, nil
	}
	return ru.result, nil
}

// Execs returns only the recorded update statements.
func (r *Recorder) Execs() []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Exec {
			out = append(out, c)
		}
	}
	return out
}

// Rows builds a result from a header and rows.
func Rows(columns []string, rows ...[]string) *store.Result {
	return &store.Result{Columns: columns, Rows: rows}
}
