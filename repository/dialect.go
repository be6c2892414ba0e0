package repository

import (
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Dialect captures what differs between the supported relational databases.
type Dialect struct {
	Name        string
	Placeholder squirrel.PlaceholderFormat
}

var (
	Postgres = Dialect{Name: "postgres", Placeholder: squirrel.Dollar}
	SQLite   = Dialect{Name: "sqlite", Placeholder: squirrel.Question}
)

// Builder returns a statement builder running against runner.
func (d Dialect) Builder(runner squirrel.BaseRunner) squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(d.Placeholder).RunWith(runner)
}

type violation int

const (
	noViolation violation = iota
	foreignKeyViolation
	notNullViolation
	uniqueViolation
)

// classify maps driver errors of both dialects onto the constraint that failed.
func classify(err error) violation {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23503":
			return foreignKeyViolation
		case "23502":
			return notNullViolation
		case "23505":
			return uniqueViolation
		}
		return noViolation
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return foreignKeyViolation
		case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
			return notNullViolation
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return uniqueViolation
		case sqlite3.SQLITE_CONSTRAINT:
			// connection without extended result codes
			msg := liteErr.Error()
			switch {
			case strings.Contains(msg, "FOREIGN KEY"):
				return foreignKeyViolation
			case strings.Contains(msg, "NOT NULL"):
				return notNullViolation
			case strings.Contains(msg, "UNIQUE"):
				return uniqueViolation
			}
		}
	}
	return noViolation
}
