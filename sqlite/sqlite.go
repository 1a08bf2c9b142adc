// Package sqlite connects the binding types from the root SQift package to an
// actual SQLite database. It wraps database/sql with functions that accept
// Bindable parameters and scan result columns into Extractable targets, so
// every value crossing the boundary goes through a StorageValue.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sqift "github.com/NousDaddy/SQift"
	"github.com/NousDaddy/SQift/logging"
	"modernc.org/sqlite"
)

// Connection is an open handle to a SQLite database. Its zero value is not
// usable; call Open, or fill in DB directly when supplying an already-opened
// handle such as a test mock.
type Connection struct {
	DB *sql.DB

	// Log receives statement lifecycle messages at Trace level. A nil Log
	// disables logging.
	Log logging.Logger
}

// Open opens the SQLite database in the given file, creating it if it does
// not exist. Use ":memory:" for an in-memory database.
func Open(file string) (*Connection, error) {
	db, err := sql.Open("sqlite", file)
	if err != nil {
		return nil, sqift.NewError(fmt.Sprintf("open DB file %q", file), WrapDBError(err), sqift.ErrDB)
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) logger() logging.Logger {
	if c.Log == nil {
		return logging.NoOpLogger{}
	}
	return c.Log
}

// Exec runs a statement that returns no rows, binding each param in order.
func (c *Connection) Exec(ctx context.Context, query string, params ...sqift.Bindable) error {
	c.logger().Tracef("exec: %s", query)

	_, err := c.DB.ExecContext(ctx, query, BindArgs(params)...)
	if err != nil {
		return WrapDBError(err)
	}
	return nil
}

// Query runs a statement and returns its result rows.
func (c *Connection) Query(ctx context.Context, query string, params ...sqift.Bindable) (*Rows, error) {
	c.logger().Tracef("query: %s", query)

	rows, err := c.DB.QueryContext(ctx, query, BindArgs(params)...)
	if err != nil {
		return nil, WrapDBError(err)
	}
	return &Rows{rows: rows}, nil
}

// QueryRow runs a statement expected to return a single row and extracts its
// columns into targets, one per column in order. If the statement returns no
// rows, the returned error matches sqift.ErrNotFound.
func (c *Connection) QueryRow(ctx context.Context, query string, params []sqift.Bindable, targets ...sqift.Extractable) error {
	c.logger().Tracef("query row: %s", query)

	raws := make([]interface{}, len(targets))
	ptrs := make([]interface{}, len(targets))
	for i := range raws {
		ptrs[i] = &raws[i]
	}

	row := c.DB.QueryRowContext(ctx, query, BindArgs(params)...)
	if err := row.Scan(ptrs...); err != nil {
		return WrapDBError(err)
	}

	return extractAll(raws, targets)
}

// Close closes the underlying database handle.
func (c *Connection) Close() error {
	c.logger().Trace("closing DB")

	if err := c.DB.Close(); err != nil {
		return WrapDBError(err)
	}
	return nil
}

// Rows is an iterator over the result of a Query call. Callers must Close it
// when done.
type Rows struct {
	rows *sql.Rows
}

// Next advances to the next row, returning false when none remain. Check Err
// after Next returns false.
func (r *Rows) Next() bool {
	return r.rows.Next()
}

// Scan extracts the current row's columns into targets, one per column in
// order. The stored value of each column must have the kind its target
// expects or the returned error will match sqift.ErrTypeMismatch.
func (r *Rows) Scan(targets ...sqift.Extractable) error {
	raws := make([]interface{}, len(targets))
	ptrs := make([]interface{}, len(targets))
	for i := range raws {
		ptrs[i] = &raws[i]
	}

	if err := r.rows.Scan(ptrs...); err != nil {
		return WrapDBError(err)
	}

	return extractAll(raws, targets)
}

// Err returns any error encountered during iteration.
func (r *Rows) Err() error {
	if err := r.rows.Err(); err != nil {
		return WrapDBError(err)
	}
	return nil
}

func (r *Rows) Close() error {
	return r.rows.Close()
}

func extractAll(raws []interface{}, targets []sqift.Extractable) error {
	for i, target := range targets {
		sv, err := StoredValue(raws[i])
		if err != nil {
			return sqift.NewError(fmt.Sprintf("column %d", i), err)
		}
		if err := target.FromStorage(sv); err != nil {
			return sqift.NewError(fmt.Sprintf("column %d", i), err)
		}
	}
	return nil
}

// BindArgs renders each param's storage value as an argument for the driver.
func BindArgs(params []sqift.Bindable) []interface{} {
	args := make([]interface{}, len(params))
	for i := range params {
		args[i] = BindArg(params[i].ToStorage())
	}
	return args
}

// BindArg returns the native driver argument for a storage value: nil,
// int64, float64, string, or []byte depending on the value's kind.
func BindArg(v sqift.StorageValue) interface{} {
	switch v.Kind() {
	case sqift.KindInteger:
		return v.Int64()
	case sqift.KindReal:
		return v.Float64()
	case sqift.KindText:
		return v.Text()
	case sqift.KindBlob:
		return v.Bytes()
	default:
		return nil
	}
}

// StoredValue converts a raw column value received from the driver into a
// StorageValue. The driver hands back one of five dynamic types depending on
// the column's storage class; anything else is a type-mismatch error rather
// than a guess at a coercion.
func StoredValue(raw interface{}) (sqift.StorageValue, error) {
	switch val := raw.(type) {
	case nil:
		return sqift.NewNull(), nil
	case int64:
		return sqift.NewInteger(val), nil
	case float64:
		return sqift.NewReal(val), nil
	case string:
		return sqift.NewText(val), nil
	case []byte:
		return sqift.NewBlob(val), nil
	default:
		return sqift.StorageValue{}, sqift.NewError(fmt.Sprintf("unsupported raw storage type %T", raw), sqift.ErrTypeMismatch)
	}
}

// WrapDBError wraps an error from the SQLite engine into an error useable by
// the rest of the SQift packages. It should be called on any error returned
// from SQLite before it is passed back to a caller.
func WrapDBError(err error) error {
	sqliteErr := &sqlite.Error{}
	if errors.As(err, &sqliteErr) {
		primaryCode := sqliteErr.Code() & 0xff
		if primaryCode == 19 {
			return fmt.Errorf("%w: %s", sqift.ErrConstraintViolation, err.Error())
		}
		if primaryCode == 1 {
			// this is a generic error and thus the string is not descriptive,
			// so preserve the original error instead
			return err
		}
		return fmt.Errorf("%s", sqlite.ErrorCodeString[sqliteErr.Code()])
	} else if errors.Is(err, sql.ErrNoRows) {
		return sqift.ErrNotFound
	}
	return err
}
