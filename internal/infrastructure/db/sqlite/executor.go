package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

var (
	returningRe   = regexp.MustCompile(`(?i)\bRETURNING\b`)
	insertTableRe = regexp.MustCompile(`(?i)INSERT\s+INTO\s+(\w+)`)
)

// Row is one result row as an open column-name-to-value mapping. The dynamic
// shape exists only at this compatibility boundary; repositories convert rows
// into typed domain structs before they leave the package.
type Row map[string]any

// Result is the uniform outcome of any statement, regardless of kind. Reads
// populate Rows; plain writes populate RowCount and, for inserts, InsertID;
// writes with a RETURNING clause populate both via emulation.
type Result struct {
	Rows     []Row
	RowCount int64
	InsertID int64
}

// Executor runs reference-dialect statements against the embedded engine.
// Each statement commits independently; the executor holds no cross-statement
// transaction, so a write followed by its emulated read is not atomic.
type Executor struct {
	db  *sql.DB
	log zerolog.Logger
}

func NewExecutor(db *sql.DB, log zerolog.Logger) *Executor {
	return &Executor{db: db, log: log}
}

// DB exposes the underlying handle for health checks.
func (e *Executor) DB() *sql.DB {
	return e.db
}

// Query translates and executes a statement. Classification, in order:
// statements starting with SELECT or WITH run as reads; writes carrying a
// RETURNING clause run as a write followed by emulation of the requested
// projection; anything else runs as a plain write. Engine errors are wrapped
// and propagated without retry.
func (e *Executor) Query(ctx context.Context, query string, args ...any) (*Result, error) {
	q := Translate(query)

	upper := strings.ToUpper(strings.TrimSpace(q))
	switch {
	case strings.HasPrefix(upper, "SELECT") || strings.HasPrefix(upper, "WITH"):
		return e.read(ctx, q, args)
	case returningRe.MatchString(q):
		return e.writeReturning(ctx, q, args)
	default:
		return e.write(ctx, q, args)
	}
}

func (e *Executor) read(ctx context.Context, query string, args []any) (*Result, error) {
	rows, err := e.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("query columns: %w", err)
	}

	result := &Result{}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		row := make(Row, len(cols))
		for i, col := range cols {
			if b, ok := vals[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = vals[i]
			}
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return result, nil
}

func (e *Executor) write(ctx context.Context, query string, args []any) (*Result, error) {
	res, err := e.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec: %w", err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	id, _ := res.LastInsertId()
	return &Result{RowCount: count, InsertID: id}, nil
}

// writeReturning splits the statement at its RETURNING marker, executes the
// base write, and reconstructs the requested projection. Only inserts are
// reconstructed, via the engine's rowid of the just-inserted row; updates
// surface the affected count alone and callers needing the new row issue a
// follow-up read.
func (e *Executor) writeReturning(ctx context.Context, query string, args []any) (*Result, error) {
	loc := returningRe.FindStringIndex(query)
	base := strings.TrimSpace(query[:loc[0]])
	projection := strings.TrimSpace(query[loc[1]:])

	written, err := e.write(ctx, base, args)
	if err != nil {
		return nil, err
	}

	if !strings.HasPrefix(strings.ToUpper(base), "INSERT") {
		return written, nil
	}

	m := insertTableRe.FindStringSubmatch(base)
	if m == nil {
		// Cannot name the target table: fail closed with no rows rather
		// than guess.
		e.log.Warn().Str("statement", base).Msg("returning emulation: table name not found")
		return written, nil
	}

	lookup := fmt.Sprintf("SELECT %s FROM %s WHERE rowid = ?", projection, m[1])
	read, err := e.read(ctx, lookup, []any{written.InsertID})
	if err != nil {
		return nil, fmt.Errorf("returning emulation: %w", err)
	}

	read.RowCount = written.RowCount
	read.InsertID = written.InsertID
	return read, nil
}
