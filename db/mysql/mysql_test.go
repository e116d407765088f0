package mysql

import (
	"context"
	"testing"

	"github.com/dekarrin/studentdb"
	"github.com/stretchr/testify/assert"
)

func Test_New(t *testing.T) {
	testCases := []struct {
		name       string
		cfg        studentdb.Database
		expectAddr string
		expectDB   string
		expectErr  error
	}{
		{
			name:       "tcp DSN",
			cfg:        studentdb.Database{Type: studentdb.DatabaseMySQL, DSN: "user:pass@tcp(db.example.com:3306)/students"},
			expectAddr: "db.example.com:3306",
			expectDB:   "students",
		},
		{
			name:      "malformed DSN",
			cfg:       studentdb.Database{Type: studentdb.DatabaseMySQL, DSN: "user:pass@tcp(db.example.com:3306"},
			expectErr: studentdb.ErrConfiguration,
		},
		{
			name:      "wrong DB type",
			cfg:       studentdb.Database{Type: studentdb.DatabaseSQLite, File: "students.db"},
			expectErr: studentdb.ErrConfiguration,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := New(tc.cfg)

			if tc.expectErr != nil {
				assert.ErrorIs(err, tc.expectErr)
				return
			}
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expectAddr, actual.Addr())
			assert.Equal(tc.expectDB, actual.DBName())
			assert.Equal(studentdb.DatabaseMySQL, actual.Type())
		})
	}
}

func Test_Manager_NotImplemented(t *testing.T) {
	assert := assert.New(t)

	mgr, err := New(studentdb.Database{Type: studentdb.DatabaseMySQL, DSN: "user:pass@tcp(localhost:3306)/students"})
	if !assert.NoError(err) {
		return
	}

	conn, err := mgr.Acquire(context.Background())
	assert.Nil(conn)
	assert.ErrorIs(err, studentdb.ErrNotImplemented)

	err = mgr.Release(&studentdb.Conn{})
	assert.ErrorIs(err, studentdb.ErrNotImplemented)
}
