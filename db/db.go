// Package db selects and opens the connection manager for a configured
// backing store.
package db

import (
	"fmt"
	"sort"

	"github.com/dekarrin/studentdb"
	"github.com/dekarrin/studentdb/db/mysql"
	"github.com/dekarrin/studentdb/db/sqlite"
	"github.com/dekarrin/studentdb/internal/logging"
)

// Connector creates a ConnManager for a Database config.
type Connector func(cfg studentdb.Database, log studentdb.Logger) (studentdb.ConnManager, error)

// Registry holds registered Connector functions for opening connection
// managers, keyed by the type of store they connect to.
//
// The zero value can be immediately used and will have the built-in sqlite and
// mysql connectors available. This can be disabled by setting DisableDefaults
// to true before attempting to use it.
type Registry struct {
	DisableDefaults bool
	reg             map[studentdb.DBType]Connector
}

func (r *Registry) initDefaults() {
	if r.reg == nil {
		r.reg = map[studentdb.DBType]Connector{}

		if !r.DisableDefaults {
			r.reg[studentdb.DatabaseSQLite] = func(cfg studentdb.Database, log studentdb.Logger) (studentdb.ConnManager, error) {
				mgr, err := sqlite.New(cfg, log)
				if err != nil {
					return nil, fmt.Errorf("initialize sqlite: %w", err)
				}
				return mgr, nil
			}
			r.reg[studentdb.DatabaseMySQL] = func(cfg studentdb.Database, log studentdb.Logger) (studentdb.ConnManager, error) {
				mgr, err := mysql.New(cfg)
				if err != nil {
					return nil, fmt.Errorf("initialize mysql: %w", err)
				}
				return mgr, nil
			}
		}
	}
}

// Register adds a Connector for the given type of store. It is an error to
// register a second Connector for a type.
func (r *Registry) Register(engine studentdb.DBType, connector Connector) error {
	if connector == nil {
		return fmt.Errorf("connector function cannot be nil")
	}

	r.initDefaults()

	if engine == studentdb.DatabaseNone || engine == "" {
		return studentdb.NewError("cannot register a connector for 'none' DB", studentdb.ErrConfiguration)
	}
	if _, ok := r.reg[engine]; ok {
		return fmt.Errorf("duplicate connector registration; %q already has a registered connector", engine)
	}

	r.reg[engine] = connector
	return nil
}

// List returns an alphabetized list of all store types that currently have a
// registered connector.
func (r *Registry) List() []studentdb.DBType {
	r.initDefaults()

	types := make([]studentdb.DBType, 0, len(r.reg))
	for k := range r.reg {
		types = append(types, k)
	}

	sort.Slice(types, func(i, j int) bool {
		return types[i] < types[j]
	})
	return types
}

// Connect creates the ConnManager for the store selected by cfg.Type. A type
// with no registered connector results in an error that matches
// studentdb.ErrConfiguration. log may be nil.
func (r *Registry) Connect(cfg studentdb.Database, log studentdb.Logger) (studentdb.ConnManager, error) {
	r.initDefaults()

	connector, ok := r.reg[cfg.Type]
	if !ok {
		return nil, studentdb.NewError(fmt.Sprintf("%q is not a supported DB type", cfg.Type.String()), studentdb.ErrConfiguration)
	}

	if log == nil {
		log = logging.NoOpLogger{}
	}

	return connector(cfg, log)
}

// Connect creates the ConnManager for cfg using the built-in connectors.
func Connect(cfg studentdb.Database, log studentdb.Logger) (studentdb.ConnManager, error) {
	var r Registry
	return r.Connect(cfg, log)
}
