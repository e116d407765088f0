package dbconv

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Text(t *testing.T) {
	testCases := []struct {
		name   string
		native string
		db     sql.NullString
	}{
		{name: "empty is NULL", native: "", db: sql.NullString{}},
		{name: "text", native: "Banking studies", db: sql.NullString{String: "Banking studies", Valid: true}},
		{name: "whitespace is kept", native: " ", db: sql.NullString{String: " ", Valid: true}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			assert.Equal(tc.db, Text.ToDB(tc.native))

			actual := "sentinel"
			err := Text.FromDB(tc.db, &actual)
			assert.NoError(err)
			assert.Equal(tc.native, actual)
		})
	}
}

func Test_ID(t *testing.T) {
	testCases := []struct {
		name   string
		native int64
		db     sql.NullInt64
	}{
		{name: "unassigned is NULL", native: 0, db: sql.NullInt64{}},
		{name: "assigned", native: 12, db: sql.NullInt64{Int64: 12, Valid: true}},
		{name: "negative", native: -3, db: sql.NullInt64{Int64: -3, Valid: true}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			assert.Equal(tc.db, ID.ToDB(tc.native))

			actual := int64(99)
			err := ID.FromDB(tc.db, &actual)
			assert.NoError(err)
			assert.Equal(tc.native, actual)
		})
	}
}
