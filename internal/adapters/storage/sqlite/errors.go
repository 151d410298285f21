package sqlite

import (
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
)

// constraintCode returns the extended SQLite result code when err is a
// constraint violation.
func constraintCode(err error) (int, bool) {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return 0, false
	}
	if se.Code()&0xff != sqlite3.SQLITE_CONSTRAINT {
		return 0, false
	}
	return se.Code(), true
}

func isUniqueViolation(err error) bool {
	code, ok := constraintCode(err)
	return ok && (code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY)
}

// conflictf converts a constraint violation into a domain.ErrConflict with a
// caller-facing message. Other errors are returned unchanged.
func conflictf(err error, format string, args ...any) error {
	if _, ok := constraintCode(err); !ok {
		return err
	}
	return fmt.Errorf("%w: %s", domain.ErrConflict, fmt.Sprintf(format, args...))
}
