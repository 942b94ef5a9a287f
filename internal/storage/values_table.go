package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/dm"
	"github.com/stephenafamo/bob/dialect/sqlite/im"
	"github.com/stephenafamo/bob/dialect/sqlite/sm"
	"github.com/stephenafamo/scan"
)

const valuesTable = "device_values"

// IValuesTable is a string key/value table.
//
//go:generate mockery --name IValuesTable --inpackage --with-expecter --output . --filename mock_IValuesTable.go
type IValuesTable interface {
	// Get returns the stored value and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type ValuesTable struct {
	exec bob.Executor
}

func NewValuesTable(db *sql.DB) ValuesTable {
	return ValuesTable{exec: bob.NewDB(db)}
}

func (t ValuesTable) Get(ctx context.Context, key string) (string, bool, error) {
	query := sqlite.Select(
		sm.Columns("value"),
		sm.From(valuesTable),
		sm.Where(sqlite.Quote("key").EQ(sqlite.Arg(key))),
	)

	value, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[string])
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (t ValuesTable) Put(ctx context.Context, key, value string) error {
	query := sqlite.Insert(
		im.OrReplace(),
		im.Into(valuesTable, "key", "value"),
		im.Values(sqlite.Arg(key), sqlite.Arg(value)),
	)
	_, err := query.Exec(ctx, t.exec)
	return err
}

func (t ValuesTable) Delete(ctx context.Context, key string) error {
	query := sqlite.Delete(
		dm.From(valuesTable),
		dm.Where(sqlite.Quote("key").EQ(sqlite.Arg(key))),
	)
	_, err := query.Exec(ctx, t.exec)
	return err
}
