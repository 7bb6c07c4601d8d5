package sqlite

import (
	"fmt"
	"strings"
)

// ListBuilder composes parameterized filter, sort and pagination clauses for
// listing queries. Output is in the reference dialect ($n placeholders,
// ILIKE) and is meant to be run through the Executor like any hand-written
// statement. Sort columns are whitelisted by the caller; filter values only
// ever travel as bound parameters.
type ListBuilder struct {
	base    string
	where   []string
	args    []any
	orderBy string
	limit   int
	offset  int
}

func NewListBuilder(base string) *ListBuilder {
	return &ListBuilder{base: base}
}

// FilterLike adds a case-insensitive substring match on column.
// Empty values are ignored.
func (b *ListBuilder) FilterLike(column, value string) *ListBuilder {
	if value == "" {
		return b
	}
	b.where = append(b.where, fmt.Sprintf("%s ILIKE $%d", column, len(b.args)+1))
	b.args = append(b.args, "%"+value+"%")
	return b
}

// FilterEq adds an exact match on column. Empty values are ignored.
func (b *ListBuilder) FilterEq(column, value string) *ListBuilder {
	if value == "" {
		return b
	}
	b.where = append(b.where, fmt.Sprintf("%s = $%d", column, len(b.args)+1))
	b.args = append(b.args, value)
	return b
}

// OrderBy sets the sort clause. The field must appear in allowed (a map of
// request field name to qualified column); unknown fields fall back to
// fallback, and any direction other than DESC becomes ASC.
func (b *ListBuilder) OrderBy(field, direction, fallback string, allowed map[string]string) *ListBuilder {
	column, ok := allowed[field]
	if !ok {
		column = allowed[fallback]
	}
	dir := "ASC"
	if strings.EqualFold(direction, "DESC") {
		dir = "DESC"
	}
	b.orderBy = column + " " + dir
	return b
}

// Paginate sets LIMIT/OFFSET from a 1-based page number.
func (b *ListBuilder) Paginate(page, limit int) *ListBuilder {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	b.limit = limit
	b.offset = (page - 1) * limit
	return b
}

// Build assembles the listing statement and its bound arguments.
func (b *ListBuilder) Build() (string, []any) {
	var sb strings.Builder
	sb.WriteString(b.base)
	args := append([]any{}, b.args...)

	if len(b.where) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(b.where, " AND "))
	}
	if b.orderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(b.orderBy)
	}
	if b.limit > 0 {
		fmt.Fprintf(&sb, " LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, b.limit, b.offset)
	}
	return sb.String(), args
}

// BuildCount assembles the matching COUNT statement over countBase, reusing
// the filter conditions without the sort and pagination clauses.
func (b *ListBuilder) BuildCount(countBase string) (string, []any) {
	if len(b.where) == 0 {
		return countBase, nil
	}
	return countBase + " WHERE " + strings.Join(b.where, " AND "), append([]any{}, b.args...)
}
