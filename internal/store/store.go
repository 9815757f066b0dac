// Narrow contract for the remote tabular store. The core only ever talks to
// this interface; the concrete backend (Postgres here, a spreadsheet service
// elsewhere) is injected at startup.

package store

import (
	"context"
	"errors"
)

var (
	ErrTableNotFound       = errors.New("table not found")
	ErrConstraintViolation = errors.New("value not allowed for column")
)

// Store exposes read/append/schema-mutate operations scoped to a named table.
// Rows are plain cell slices; row 0 is the header by convention.
type Store interface {
	//TableExists reports whether a table with this name exists
	TableExists(ctx context.Context, name string) (bool, error)

	//CreateTable creates an empty table; creating an existing table is a no-op
	CreateTable(ctx context.Context, name string) error

	//ReadAll returns every row (header included) in insertion order
	ReadAll(ctx context.Context, name string) ([][]string, error)

	//AppendRow adds one row at the end, enforcing any column constraints
	AppendRow(ctx context.Context, name string, cells []string) error

	//SetColumnConstraint restricts a column to an enumerated value list
	SetColumnConstraint(ctx context.Context, name string, col int, allowed []string) error
}
