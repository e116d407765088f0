// Package dbconv contains Converter values for changing between entity field
// types and the column types used by the SQLite tables.
package dbconv

import (
	"database/sql"
)

// Converter holds functions to convert a value to and from its database
// representation. The type param N is the native type and DB is the type in the
// database.
type Converter[N any, DB any] struct {
	ToDB   func(N) DB
	FromDB func(DB, *N) error
}

// Text converts optional text. The empty string is stored as NULL and NULL is
// read back as the empty string.
var Text = Converter[string, sql.NullString]{
	ToDB: func(s string) sql.NullString {
		return sql.NullString{String: s, Valid: s != ""}
	},
	FromDB: func(ns sql.NullString, target *string) error {
		if !ns.Valid {
			*target = ""
			return nil
		}
		*target = ns.String
		return nil
	},
}

// ID converts entity IDs and references to them. ID 0 means "not assigned"
// and is stored as NULL; NULL is read back as 0.
var ID = Converter[int64, sql.NullInt64]{
	ToDB: func(id int64) sql.NullInt64 {
		return sql.NullInt64{Int64: id, Valid: id != 0}
	},
	FromDB: func(ni sql.NullInt64, target *int64) error {
		if !ni.Valid {
			*target = 0
			return nil
		}
		*target = ni.Int64
		return nil
	},
}
