package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dekarrin/studentdb"
	"github.com/stretchr/testify/assert"
)

func Test_New(t *testing.T) {
	testCases := []struct {
		name      string
		cfg       func(dir string) studentdb.Database
		expectErr error
	}{
		{
			name: "file in existing dir",
			cfg: func(dir string) studentdb.Database {
				return studentdb.Database{Type: studentdb.DatabaseSQLite, File: filepath.Join(dir, "students.db")}
			},
		},
		{
			name: "file in dir that must be created",
			cfg: func(dir string) studentdb.Database {
				return studentdb.Database{Type: studentdb.DatabaseSQLite, File: filepath.Join(dir, "nested", "data", "students.db")}
			},
		},
		{
			name: "no file",
			cfg: func(dir string) studentdb.Database {
				return studentdb.Database{Type: studentdb.DatabaseSQLite}
			},
			expectErr: studentdb.ErrConfiguration,
		},
		{
			name: "wrong type",
			cfg: func(dir string) studentdb.Database {
				return studentdb.Database{Type: studentdb.DatabaseMySQL, DSN: "user@/db"}
			},
			expectErr: studentdb.ErrConfiguration,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			cfg := tc.cfg(t.TempDir())
			actual, err := New(cfg, nil)

			if tc.expectErr != nil {
				assert.ErrorIs(err, tc.expectErr)
				return
			}
			if !assert.NoError(err) {
				return
			}
			assert.Equal(cfg.File, actual.File())
			assert.Equal(studentdb.DatabaseSQLite, actual.Type())
		})
	}
}

func Test_Manager_AcquireRelease(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	mgr, err := New(studentdb.Database{Type: studentdb.DatabaseSQLite, File: filepath.Join(t.TempDir(), "students.db")}, nil)
	if !assert.NoError(err) {
		return
	}

	first, err := mgr.Acquire(ctx)
	if !assert.NoError(err) {
		return
	}
	second, err := mgr.Acquire(ctx)
	if !assert.NoError(err) {
		return
	}

	assert.NotSame(first.DB, second.DB, "connections were reused")
	assert.NotEqual(first.Scope, second.Scope, "scope IDs were reused")

	assert.NoError(mgr.Release(first))
	assert.NoError(mgr.Release(second))

	// a released connection is closed
	assert.Error(first.DB.PingContext(ctx))

	assert.NoError(mgr.Release(nil))
}

func Test_Manager_InitSchema(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	mgr, err := New(studentdb.Database{Type: studentdb.DatabaseSQLite, File: filepath.Join(t.TempDir(), "students.db")}, nil)
	if !assert.NoError(err) {
		return
	}

	if !assert.NoError(mgr.InitSchema(ctx)) {
		return
	}
	// must be idempotent
	if !assert.NoError(mgr.InitSchema(ctx)) {
		return
	}

	conn, err := mgr.Acquire(ctx)
	if !assert.NoError(err) {
		return
	}
	defer mgr.Release(conn)

	var count int
	err = conn.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('Speciality', 'Student')`).Scan(&count)
	assert.NoError(err)
	assert.Equal(2, count)

	// name is NOT NULL
	_, err = conn.DB.ExecContext(ctx, `INSERT INTO Speciality (id, name, description, code) VALUES (NULL, NULL, NULL, NULL)`)
	assert.Error(err)

	// no foreign key on speciality_id
	_, err = conn.DB.ExecContext(ctx, `INSERT INTO Student (name, age, sex, speciality_id) VALUES ('Petrov', 19, 'M', 9999)`)
	assert.NoError(err)
}
