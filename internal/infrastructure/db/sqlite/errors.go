package sqlite

import (
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// isUniqueViolation reports whether err is the engine's unique-constraint
// fault for the given column hint (e.g. "Users.email"). The hint is matched
// against the engine's message because a table can carry several unique
// constraints that map to different domain outcomes.
func isUniqueViolation(err error, hint string) bool {
	var serr sqlite3.Error
	if !errors.As(err, &serr) {
		return false
	}
	if serr.ExtendedCode != sqlite3.ErrConstraintUnique && serr.ExtendedCode != sqlite3.ErrConstraintPrimaryKey {
		return false
	}
	return strings.Contains(serr.Error(), hint)
}
