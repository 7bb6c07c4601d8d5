// Package sqlite adapts the application's PostgreSQL-dialect queries to the
// embedded SQLite engine. Repositories write statements with numbered
// placeholders, ILIKE and NOW(); Translate rewrites them and Executor runs
// them, emulating RETURNING which SQLite lacks.
package sqlite

import "regexp"

var (
	placeholderRe = regexp.MustCompile(`\$\d+`)
	ilikeRe       = regexp.MustCompile(`(?i)\bILIKE\b`)
	nowRe         = regexp.MustCompile(`(?i)\bNOW\(\)`)
)

// Translate rewrites a PostgreSQL-dialect statement into its SQLite form:
//
//   - $1, $2, … become ? ordinal placeholders; numbering is assumed
//     sequential, so positional argument order is preserved as-is.
//   - ILIKE becomes LIKE. SQLite's LIKE is case-insensitive for ASCII by
//     default, so the listing filters keep their reference behavior.
//   - NOW() becomes CURRENT_TIMESTAMP.
//
// Translate is a pure string transformation: it performs no SQL parsing and
// never fails. Statements it does not recognise pass through unchanged and
// surface any problem at execution time.
func Translate(query string) string {
	q := placeholderRe.ReplaceAllString(query, "?")
	q = ilikeRe.ReplaceAllString(q, "LIKE")
	q = nowRe.ReplaceAllString(q, "CURRENT_TIMESTAMP")
	return q
}
