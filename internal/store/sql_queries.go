// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable       = "kv_store"
	kvKeyColumn   = "item_key"
	kvValueColumn = "item_value"
	kvUpdatedAt   = "updated_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func selectValueQuery(key string) (string, []any, error) {
	return psql.
		Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
}

func upsertValueQuery(key, value string, updatedAt int64) (string, []any, error) {
	return psql.
		Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn, kvUpdatedAt).
		Values(key, value, updatedAt).
		Suffix("ON CONFLICT(" + kvKeyColumn + ") DO UPDATE SET " +
			kvValueColumn + " = excluded." + kvValueColumn + ", " +
			kvUpdatedAt + " = excluded." + kvUpdatedAt).
		ToSql()
}

func deleteValueQuery(key string) (string, []any, error) {
	return psql.
		Delete(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
}
