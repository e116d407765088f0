package db

import (
	"database/sql/driver"
)

// This file contains matchers to be used with DATA-DOG/go-sqlmock.

// AnyID is a DATA-DOG/go-sqlmock compatible matcher used for matching against
// any assigned entity ID bound as an integer greater than 0.
//
// If AllowUnassigned is set, it will also match NULL, which is how an
// unassigned ID of 0 is bound.
type AnyID struct {
	AllowUnassigned bool
}

func (m AnyID) Match(v driver.Value) bool {
	switch typedV := v.(type) {
	case nil:
		return m.AllowUnassigned
	case int64:
		return typedV > 0
	case int:
		return typedV > 0
	case int32:
		return typedV > 0
	default:
		return false
	}
}

// NullableText is a DATA-DOG/go-sqlmock compatible matcher used for matching
// optional text. The empty string matches NULL; any other value matches only
// that exact string.
type NullableText string

func (m NullableText) Match(v driver.Value) bool {
	switch typedV := v.(type) {
	case nil:
		return m == ""
	case string:
		return m != "" && typedV == string(m)
	case []byte:
		return m != "" && string(typedV) == string(m)
	default:
		return false
	}
}
