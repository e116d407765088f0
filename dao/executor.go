package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dekarrin/studentdb"
	"github.com/dekarrin/studentdb/internal/logging"
)

// WriteOp is a kind of statement run by Executor.ExecuteWrite. It selects
// which value of the statement result is returned.
type WriteOp int

const (
	OpInsert WriteOp = iota
	OpUpdate
	OpDelete
)

func (op WriteOp) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return fmt.Sprintf("WriteOp(%d)", int(op))
	}
}

// RowScanner is a single result row. Both *sql.Row and *sql.Rows implement it.
type RowScanner interface {
	Scan(dest ...any) error
}

// Executor runs statements against the store of a studentdb.ConnManager. Every
// call acquires a new connection and releases it before returning, on every
// path.
//
// Errors from acquiring a connection are returned as-is. Errors from releasing
// one are logged and do not change the result of the call.
type Executor struct {
	conns studentdb.ConnManager
	log   studentdb.Logger
}

// NewExecutor creates an Executor that gets its connections from conns. log
// may be nil.
func NewExecutor(conns studentdb.ConnManager, log studentdb.Logger) *Executor {
	if log == nil {
		log = logging.NoOpLogger{}
	}
	return &Executor{conns: conns, log: log}
}

func (ex *Executor) release(conn *studentdb.Conn) {
	if err := ex.conns.Release(conn); err != nil {
		ex.log.Warnf("release connection %s: %v", conn.Scope, err)
	}
}

// ExecuteWrite runs query with args inside of a transaction and commits it. For
// OpInsert, the ID of the inserted row is returned; for OpUpdate and OpDelete,
// the number of rows affected is returned.
//
// If the statement fails, the transaction is rolled back and the returned error
// matches studentdb.ErrDB.
func (ex *Executor) ExecuteWrite(ctx context.Context, op WriteOp, query string, args ...any) (int64, error) {
	conn, err := ex.conns.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer ex.release(conn)

	tx, err := conn.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, studentdb.WrapDBErrorf(err, "%s: begin transaction", op)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		ex.rollback(tx, op, err)
		return 0, studentdb.WrapDBError(err, op.String())
	}

	var n int64
	if op == OpInsert {
		n, err = res.LastInsertId()
	} else {
		n, err = res.RowsAffected()
	}
	if err != nil {
		ex.rollback(tx, op, err)
		return 0, studentdb.WrapDBErrorf(err, "%s: read result", op)
	}

	if err := tx.Commit(); err != nil {
		return 0, studentdb.WrapDBErrorf(err, "%s: commit", op)
	}

	switch op {
	case OpInsert:
		ex.log.Debugf("inserted record [ID=%d]", n)
	case OpUpdate:
		ex.log.Debugf("updated %d record(s)", n)
	case OpDelete:
		ex.log.Debugf("deleted %d record(s)", n)
	}

	return n, nil
}

func (ex *Executor) rollback(tx *sql.Tx, op WriteOp, cause error) {
	if err := tx.Rollback(); err != nil {
		ex.log.Errorf("%s failed (%v) and could not be rolled back: %v", op, cause, err)
		return
	}
	ex.log.Errorf("%s failed and was rolled back: %v", op, cause)
}

// FetchOne runs query with args and calls scan on the first result row. If the
// query matched no rows, scan is not called and false is returned with a nil
// error.
func (ex *Executor) FetchOne(ctx context.Context, query string, args []any, scan func(RowScanner) error) (bool, error) {
	conn, err := ex.conns.Acquire(ctx)
	if err != nil {
		return false, err
	}
	defer ex.release(conn)

	row := conn.DB.QueryRowContext(ctx, query, args...)
	if err := scan(row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			ex.log.Debugf("fetched 0 record(s)")
			return false, nil
		}
		return false, studentdb.WrapDBError(err, "fetch")
	}

	ex.log.Debugf("fetched 1 record(s)")
	return true, nil
}

// FetchAll runs query and calls scan once for every result row, in the order
// returned by the store. The number of rows visited is returned.
func (ex *Executor) FetchAll(ctx context.Context, query string, scan func(RowScanner) error) (int, error) {
	conn, err := ex.conns.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer ex.release(conn)

	rows, err := conn.DB.QueryContext(ctx, query)
	if err != nil {
		return 0, studentdb.WrapDBError(err, "fetch")
	}
	defer rows.Close()

	var count int
	for rows.Next() {
		if err := scan(rows); err != nil {
			return count, studentdb.WrapDBErrorf(err, "fetch: row %d", count)
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return count, studentdb.WrapDBError(err, "fetch")
	}

	ex.log.Debugf("fetched %d record(s)", count)
	return count, nil
}
