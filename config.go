package studentdb

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DBType is the type of a Database connection.
type DBType string

func (dbt DBType) String() string {
	return string(dbt)
}

const (
	DatabaseNone   DBType = "none"
	DatabaseSQLite DBType = "sqlite"
	DatabaseMySQL  DBType = "mysql"
)

// DefaultSQLiteFile is the file used for a SQLite database when none is given.
const DefaultSQLiteFile = "students.db"

// ParseDBType parses a string found in a connection string into a DBType.
func ParseDBType(s string) (DBType, error) {
	sLower := strings.ToLower(strings.TrimSpace(s))

	switch sLower {
	case DatabaseSQLite.String():
		return DatabaseSQLite, nil
	case DatabaseMySQL.String():
		return DatabaseMySQL, nil
	default:
		return DatabaseNone, NewError(fmt.Sprintf("DB type not one of 'sqlite' or 'mysql': %q", s), ErrConfiguration)
	}
}

// Database contains configuration settings for connecting to a persistence
// layer.
type Database struct {
	// Type is the type of database the config refers to. It also determines
	// which of its other fields are valid.
	Type DBType

	// File is the path on disk to the SQLite database file. This is only
	// applicable for SQLite.
	File string

	// DSN is the data source name used to reach a MySQL server, in the format
	// accepted by github.com/go-sql-driver/mysql. This is only applicable for
	// MySQL.
	DSN string
}

// Validate returns an error if the Database does not have the correct fields
// set. Its type will be checked to ensure that it is a valid type to use and
// any fields necessary for connecting to that type of DB are also checked.
func (db Database) Validate() error {
	switch db.Type {
	case DatabaseSQLite:
		if db.File == "" {
			return NewError("File not set to path", ErrConfiguration)
		}
		return nil
	case DatabaseMySQL:
		if db.DSN == "" {
			return NewError("DSN not set", ErrConfiguration)
		}
		return nil
	case DatabaseNone:
		return NewError("'none' DB is not valid", ErrConfiguration)
	default:
		return NewError(fmt.Sprintf("unknown database type: %q", db.Type.String()), ErrConfiguration)
	}
}

// ParseDBConnString parses a database connection string of the form
// "engine:params" into a valid Database config object.
//
// Supported database types and a sample string containing valid configurations
// for each are shown below. Placeholder values are between angle brackets.
//
// * SQLite3 DB file: "sqlite:</path/to/file.db>"
// * MySQL: "mysql:<user>:<password>@tcp(<host>:<port>)/<dbname>"
func ParseDBConnString(s string) (Database, error) {
	var paramStr string
	dbParts := strings.SplitN(s, ":", 2)

	if len(dbParts) == 2 {
		paramStr = strings.TrimSpace(dbParts[1])
	}

	dbEng, err := ParseDBType(dbParts[0])
	if err != nil {
		return Database{}, NewError("unsupported DB engine", err)
	}

	switch dbEng {
	case DatabaseSQLite:
		if paramStr == "" {
			return Database{}, NewError("sqlite DB engine requires path to DB file after ':'", ErrConfiguration)
		}
		return Database{Type: DatabaseSQLite, File: filepath.FromSlash(paramStr)}, nil
	case DatabaseMySQL:
		if paramStr == "" {
			return Database{}, NewError("mysql DB engine requires DSN after ':'", ErrConfiguration)
		}
		return Database{Type: DatabaseMySQL, DSN: paramStr}, nil
	default:
		return Database{}, NewError(fmt.Sprintf("unknown DB engine: %q", dbEng.String()), ErrConfiguration)
	}
}

// LogProvider is the type of logging library used to produce log output.
type LogProvider int

const (
	NoLog LogProvider = iota
	Jellog
	StdLog
)

func (p LogProvider) String() string {
	switch p {
	case NoLog:
		return "none"
	case Jellog:
		return "jellog"
	case StdLog:
		return "std"
	default:
		return fmt.Sprintf("LogProvider(%d)", int(p))
	}
}

// ParseLogProvider parses a string containing the name of a LogProvider.
func ParseLogProvider(s string) (LogProvider, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return NoLog, nil
	case "jellog":
		return Jellog, nil
	case "std":
		return StdLog, nil
	default:
		return NoLog, NewError(fmt.Sprintf("not one of 'jellog', 'std', or 'none': %q", s), ErrDecodingFailure)
	}
}

// Log contains logging settings.
type Log struct {
	// Enabled is whether logging output is produced at all.
	Enabled bool

	// Provider is the library used for logging.
	Provider LogProvider

	// File is a path to a file to write log output to in addition to stderr.
	// If blank, output goes to stderr only.
	File string
}

// Config is the complete configuration of a studentdb store.
type Config struct {
	// DB is the configuration used to connect to the database. If not
	// provided, a SQLite database in DefaultSQLiteFile is used.
	DB Database

	// Log configures logging.
	Log Log
}

// FillDefaults returns a new Config identical to cfg but with unset values
// set to their defaults.
func (cfg Config) FillDefaults() Config {
	newCFG := cfg

	if newCFG.DB.Type == DatabaseNone || newCFG.DB.Type == "" {
		newCFG.DB = Database{Type: DatabaseSQLite, File: DefaultSQLiteFile}
	}
	if newCFG.DB.Type == DatabaseSQLite && newCFG.DB.File == "" {
		newCFG.DB.File = DefaultSQLiteFile
	}
	if newCFG.Log.Enabled && newCFG.Log.Provider == NoLog {
		newCFG.Log.Provider = Jellog
	}

	return newCFG
}

// Validate returns an error if the Config has invalid field values set. Empty
// and unset values are considered invalid; if defaults are intended to be used,
// call Validate on the return value of FillDefaults.
func (cfg Config) Validate() error {
	if err := cfg.DB.Validate(); err != nil {
		return NewError("db", err)
	}
	if cfg.Log.Enabled && cfg.Log.Provider == NoLog {
		return NewError("logging is enabled but provider is 'none'", ErrConfiguration)
	}

	return nil
}
