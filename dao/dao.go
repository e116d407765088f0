// Package dao provides the data mapper contract shared by every studentdb
// mapper along with the Executor that mappers use to run their statements.
//
// Each call to a DataMapper method is a complete unit of work: it acquires its
// own connection from a studentdb.ConnManager, runs its statement (inside a
// transaction if it writes), and releases the connection before returning.
package dao

import (
	"context"

	"github.com/dekarrin/studentdb"
)

// DataMapper moves one kind of studentdb.Model between memory and a table in
// the backing store.
//
// Methods that take a Model return an error matching studentdb.ErrTypeMismatch
// without touching the store if it is not of the kind handled by the mapper.
// Failures reported by the store match studentdb.ErrDB.
type DataMapper interface {

	// Save inserts m as a new row and returns it with the ID assigned by the
	// store. If m's ID is 0, the store assigns one; otherwise that ID is used
	// as-is and a duplicate results in an error that matches both
	// studentdb.ErrDB and studentdb.ErrConstraintViolation. If m is a pointer,
	// the pointed-to entity is updated with the assigned ID.
	Save(ctx context.Context, m studentdb.Model) (studentdb.Model, error)

	// FindByID retrieves the entity with the given ID. If no such entity
	// exists, a nil Model and a nil error are returned.
	FindByID(ctx context.Context, id int64) (studentdb.Model, error)

	// FindAll retrieves every entity in the table in the order the store
	// returns them. If there are none, the returned slice is empty but
	// non-nil.
	FindAll(ctx context.Context) ([]studentdb.Model, error)

	// Update overwrites the row whose ID is m's ID with m's fields and returns
	// the number of rows affected. It is not an error for no row to match.
	Update(ctx context.Context, m studentdb.Model) (int64, error)

	// Delete removes the row with the given ID and returns the number of rows
	// affected. It is not an error for no row to match.
	Delete(ctx context.Context, id int64) (int64, error)
}
