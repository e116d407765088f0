// Package sqlite provides connections to a SQLite database file, the primary
// backing store of studentdb.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dekarrin/studentdb"
	"github.com/dekarrin/studentdb/internal/logging"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"
)

// Manager opens one connection to a SQLite database file per Acquire and
// closes it on Release. Its zero-value should not be used; call New to get a
// Manager ready for use.
type Manager struct {
	file string
	log  studentdb.Logger
}

// New creates a Manager for the SQLite file given in cfg. The directory that
// holds the file is created if it does not exist. log may be nil.
func New(cfg studentdb.Database, log studentdb.Logger) (*Manager, error) {
	if cfg.Type != studentdb.DatabaseSQLite {
		return nil, studentdb.NewError(fmt.Sprintf("not a sqlite config: %q", cfg.Type), studentdb.ErrConfiguration)
	}
	if cfg.File == "" {
		return nil, studentdb.NewError("sqlite DB file not set", studentdb.ErrConfiguration)
	}

	if dir := filepath.Dir(cfg.File); dir != "" {
		if err := os.MkdirAll(dir, 0770); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	if log == nil {
		log = logging.NoOpLogger{}
	}

	return &Manager{file: cfg.File, log: log}, nil
}

// File returns the path to the database file.
func (m *Manager) File() string {
	return m.file
}

func (m *Manager) Type() studentdb.DBType {
	return studentdb.DatabaseSQLite
}

// Acquire opens a new connection to the database file and checks that it is
// usable.
func (m *Manager) Acquire(ctx context.Context) (*studentdb.Conn, error) {
	db, err := sql.Open("sqlite", m.file)
	if err != nil {
		return nil, studentdb.WrapDBErrorf(err, "open %s", m.file)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, studentdb.WrapDBErrorf(err, "connect to %s", m.file)
	}

	conn := studentdb.NewConn(db)
	m.log.Tracef("acquired connection %s to %s", conn.Scope, m.file)
	return conn, nil
}

// Release closes c.
func (m *Manager) Release(c *studentdb.Conn) error {
	if c == nil || c.DB == nil {
		return nil
	}

	if err := c.DB.Close(); err != nil {
		return studentdb.WrapDBErrorf(err, "close connection %s", c.Scope)
	}
	m.log.Tracef("released connection %s to %s", c.Scope, m.file)
	return nil
}

// InitSchema creates the Speciality and Student tables if they do not already
// exist.
func (m *Manager) InitSchema(ctx context.Context) error {
	conn, err := m.Acquire(ctx)
	if err != nil {
		return err
	}
	defer m.Release(conn)

	for _, stmt := range schema {
		if _, err := conn.DB.ExecContext(ctx, stmt); err != nil {
			return studentdb.WrapDBError(err, "create schema")
		}
	}

	return nil
}

// speciality_id has no FOREIGN KEY clause; students may reference specialties
// that no longer exist.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS Speciality (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		code TEXT
	);`,
	`CREATE TABLE IF NOT EXISTS Student (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		age INTEGER NOT NULL,
		sex TEXT NOT NULL,
		speciality_id INTEGER NOT NULL
	);`,
}
