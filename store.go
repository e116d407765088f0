package studentdb

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// Conn is a single acquired connection to a backing store. It is only valid
// between the call to ConnManager.Acquire that produced it and the matching
// call to ConnManager.Release.
type Conn struct {
	// DB is the handle to the store. It is limited to one open connection.
	DB *sql.DB

	// Scope identifies the acquire/release pair in logs.
	Scope uuid.UUID
}

// NewConn wraps an open handle in a Conn with a fresh scope ID.
func NewConn(db *sql.DB) *Conn {
	return &Conn{DB: db, Scope: uuid.New()}
}

// ConnManager acquires and releases connections to one backing store. Every
// mapper operation acquires its own Conn and releases it before returning;
// Conns are never reused across operations.
type ConnManager interface {
	// Type returns the type of store that the ConnManager connects to.
	Type() DBType

	// Acquire opens a new connection to the store.
	Acquire(ctx context.Context) (*Conn, error)

	// Release closes a connection previously returned by Acquire.
	Release(c *Conn) error
}
