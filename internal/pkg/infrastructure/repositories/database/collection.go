package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/georgysavva/scany/v2/sqlscan"
)

const documentsTable string = "documents"

// Index holds the fields of a document that queries can filter on
type Index struct {
	ID      string
	Catalog string
	Status  string
}

type IndexFunc[T any] func(doc T) Index

// Filter selects documents by owning catalog and/or registration status.
// Empty fields are not filtered on, set fields are combined with AND.
type Filter struct {
	Catalog string
	Status  string
}

// Collection stores documents of a single kind as JSON
type Collection[T any] struct {
	db    *Database
	kind  string
	index IndexFunc[T]
}

func NewCollection[T any](db *Database, kind string, index IndexFunc[T]) *Collection[T] {
	return &Collection[T]{db: db, kind: kind, index: index}
}

func (c *Collection[T]) Kind() string {
	return c.kind
}

type documentRow struct {
	ID   string `db:"id"`
	Body []byte `db:"body"`
}

func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	query, args, err := c.db.builder.
		Select("id", "body").
		From(documentsTable).
		Where(squirrel.Eq{"kind": c.kind, "id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	row := documentRow{}
	err = sqlscan.Get(ctx, c.db.impl, &row, query, args...)
	if err != nil {
		if sqlscan.NotFound(err) {
			return nil, ErrNotFound
		}
		return nil, unavailable(err)
	}

	doc, err := c.decode(row)
	if err != nil {
		return nil, err
	}

	return doc, nil
}

type indexRow struct {
	ID      string `db:"id"`
	Catalog string `db:"catalog"`
	Status  string `db:"status"`
}

// Lookup returns the indexed fields of a document without decoding its body,
// so that documents that can not be decoded can still be replaced or removed
func (c *Collection[T]) Lookup(ctx context.Context, id string) (*Index, error) {
	query, args, err := c.db.builder.
		Select("id", "catalog", "status").
		From(documentsTable).
		Where(squirrel.Eq{"kind": c.kind, "id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	row := indexRow{}
	err = sqlscan.Get(ctx, c.db.impl, &row, query, args...)
	if err != nil {
		if sqlscan.NotFound(err) {
			return nil, ErrNotFound
		}
		return nil, unavailable(err)
	}

	return &Index{ID: row.ID, Catalog: row.Catalog, Status: row.Status}, nil
}

// Put creates or wholly replaces a document. Concurrent writes to the same
// id are not coordinated, the last write wins.
func (c *Collection[T]) Put(ctx context.Context, doc T) (*T, error) {
	idx := c.index(doc)
	if idx.ID == "" {
		return nil, fmt.Errorf("a %s document must have an id", c.kind)
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s %s: %w", c.kind, idx.ID, err)
	}

	query, args, err := c.db.builder.
		Insert(documentsTable).
		Columns("kind", "id", "catalog", "status", "body", "modified").
		Values(c.kind, idx.ID, idx.Catalog, idx.Status, string(body), time.Now().UTC()).
		Suffix("ON CONFLICT (kind, id) DO UPDATE SET catalog = excluded.catalog, status = excluded.status, body = excluded.body, modified = excluded.modified").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build statement: %w", err)
	}

	if _, err = c.db.impl.ExecContext(ctx, query, args...); err != nil {
		return nil, unavailable(err)
	}

	stored := new(T)
	if err = json.Unmarshal(body, stored); err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrCorruptRecord, c.kind, idx.ID, err)
	}

	return stored, nil
}

// Delete removes a document and returns ErrNotFound if there was nothing to remove
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	count, err := c.delete(ctx, squirrel.Eq{"kind": c.kind, "id": id})
	if err != nil {
		return err
	}

	if count == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteWhere removes every document matching the filter and returns the number removed
func (c *Collection[T]) DeleteWhere(ctx context.Context, filter Filter) (int64, error) {
	return c.delete(ctx, c.where(filter))
}

func (c *Collection[T]) delete(ctx context.Context, where squirrel.Eq) (int64, error) {
	query, args, err := c.db.builder.Delete(documentsTable).Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build statement: %w", err)
	}

	result, err := c.db.impl.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, unavailable(err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, unavailable(err)
	}

	return count, nil
}

// Query returns a zero based page of documents matching the filter, ordered
// by id, together with the total number of matching documents. A size of
// zero or less returns every matching document. Documents that can not be
// decoded are logged and left out of the page.
func (c *Collection[T]) Query(ctx context.Context, filter Filter, page, size int) ([]T, int, error) {
	log := logging.GetFromContext(ctx)
	where := c.where(filter)

	countQuery, args, err := c.db.builder.Select("COUNT(*)").From(documentsTable).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	var total int
	if err = sqlscan.Get(ctx, c.db.impl, &total, countQuery, args...); err != nil {
		return nil, 0, unavailable(err)
	}

	q := c.db.builder.Select("id", "body").From(documentsTable).Where(where).OrderBy("id")
	if size > 0 {
		if page < 0 {
			page = 0
		}
		q = q.Limit(uint64(size)).Offset(uint64(page * size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows := []documentRow{}
	if err = sqlscan.Select(ctx, c.db.impl, &rows, query, args...); err != nil {
		return nil, 0, unavailable(err)
	}

	docs := make([]T, 0, len(rows))
	for _, row := range rows {
		doc, err := c.decode(row)
		if err != nil {
			log.Warn().Err(err).Str("kind", c.kind).Str("id", row.ID).Msg("skipping document that could not be decoded")
			continue
		}
		docs = append(docs, *doc)
	}

	return docs, total, nil
}

func (c *Collection[T]) where(filter Filter) squirrel.Eq {
	where := squirrel.Eq{"kind": c.kind}

	if filter.Catalog != "" {
		where["catalog"] = filter.Catalog
	}

	if filter.Status != "" {
		where["status"] = filter.Status
	}

	return where
}

func (c *Collection[T]) decode(row documentRow) (*T, error) {
	doc := new(T)
	if err := json.Unmarshal(row.Body, doc); err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrCorruptRecord, c.kind, row.ID, err)
	}
	return doc, nil
}
