// Package mysql declares MySQL as a backing store. Only configuration is
// supported: a Manager validates its DSN on creation, but every connection
// operation fails with studentdb.ErrNotImplemented.
package mysql

import (
	"context"
	"fmt"

	"github.com/dekarrin/studentdb"
	driver "github.com/go-sql-driver/mysql"
)

// Manager is the MySQL connection manager.
type Manager struct {
	cfg *driver.Config
}

// New creates a Manager for the DSN given in cfg. An unparsable DSN is a
// configuration error.
func New(cfg studentdb.Database) (*Manager, error) {
	if cfg.Type != studentdb.DatabaseMySQL {
		return nil, studentdb.NewError(fmt.Sprintf("not a mysql config: %q", cfg.Type), studentdb.ErrConfiguration)
	}

	parsed, err := driver.ParseDSN(cfg.DSN)
	if err != nil {
		return nil, studentdb.NewError("parse DSN", err, studentdb.ErrConfiguration)
	}

	return &Manager{cfg: parsed}, nil
}

// DBName returns the name of the database selected by the DSN.
func (m *Manager) DBName() string {
	return m.cfg.DBName
}

// Addr returns the network address of the server selected by the DSN.
func (m *Manager) Addr() string {
	return m.cfg.Addr
}

func (m *Manager) Type() studentdb.DBType {
	return studentdb.DatabaseMySQL
}

// Acquire always returns an error that matches studentdb.ErrNotImplemented.
func (m *Manager) Acquire(ctx context.Context) (*studentdb.Conn, error) {
	return nil, studentdb.NewError("mysql: acquire connection", studentdb.ErrNotImplemented)
}

// Release always returns an error that matches studentdb.ErrNotImplemented.
func (m *Manager) Release(c *studentdb.Conn) error {
	return studentdb.NewError("mysql: release connection", studentdb.ErrNotImplemented)
}
