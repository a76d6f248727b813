package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/matryer/is"
)

type testDocument struct {
	ID      string `json:"id"`
	Catalog string `json:"catalog"`
	Status  string `json:"status"`
	Title   string `json:"title"`
}

func testIndex(d testDocument) Index {
	return Index{ID: d.ID, Catalog: d.Catalog, Status: d.Status}
}

func TestPutAndGet(t *testing.T) {
	is, ctx, coll := testSetup(t)

	stored, err := coll.Put(ctx, testDocument{ID: "a", Catalog: "c1", Title: "first"})
	is.NoErr(err)
	is.Equal(stored.Title, "first")

	doc, err := coll.Get(ctx, "a")
	is.NoErr(err)
	is.Equal(*doc, testDocument{ID: "a", Catalog: "c1", Title: "first"})
}

func TestPutReplacesWholeDocument(t *testing.T) {
	is, ctx, coll := testSetup(t)

	_, err := coll.Put(ctx, testDocument{ID: "a", Catalog: "c1", Status: "DRAFT", Title: "first"})
	is.NoErr(err)
	_, err = coll.Put(ctx, testDocument{ID: "a", Catalog: "c1"})
	is.NoErr(err)

	doc, err := coll.Get(ctx, "a")
	is.NoErr(err)
	is.Equal(doc.Title, "")  // fields left out of the replacement must be gone
	is.Equal(doc.Status, "") // and so must the indexed status

	docs, total, err := coll.Query(ctx, Filter{Status: "DRAFT"}, 0, 20)
	is.NoErr(err)
	is.Equal(total, 0)
	is.Equal(len(docs), 0)
}

func TestRepeatedPutDoesNotDuplicate(t *testing.T) {
	is, ctx, coll := testSetup(t)

	for i := 0; i < 3; i++ {
		_, err := coll.Put(ctx, testDocument{ID: "a", Title: "same"})
		is.NoErr(err)
	}

	_, total, err := coll.Query(ctx, Filter{}, 0, 20)
	is.NoErr(err)
	is.Equal(total, 1)
}

func TestPutRequiresID(t *testing.T) {
	is, ctx, coll := testSetup(t)

	_, err := coll.Put(ctx, testDocument{Title: "no id"})
	is.True(err != nil)
}

func TestGetMissingDocument(t *testing.T) {
	is, ctx, coll := testSetup(t)

	_, err := coll.Get(ctx, "nope")
	is.True(errors.Is(err, ErrNotFound))
}

func TestDelete(t *testing.T) {
	is, ctx, coll := testSetup(t)

	_, err := coll.Put(ctx, testDocument{ID: "a"})
	is.NoErr(err)

	is.NoErr(coll.Delete(ctx, "a"))

	err = coll.Delete(ctx, "a")
	is.True(errors.Is(err, ErrNotFound)) // the store reports that nothing was deleted
}

func TestKindsAreSeparated(t *testing.T) {
	is, ctx, coll := testSetup(t)
	other := NewCollection(coll.db, "other", testIndex)

	_, err := coll.Put(ctx, testDocument{ID: "a", Title: "mine"})
	is.NoErr(err)
	_, err = other.Put(ctx, testDocument{ID: "a", Title: "theirs"})
	is.NoErr(err)

	doc, err := coll.Get(ctx, "a")
	is.NoErr(err)
	is.Equal(doc.Title, "mine")
}

func TestQueryFilters(t *testing.T) {
	is, ctx, coll := testSetup(t)

	seed := []testDocument{
		{ID: "1", Catalog: "X", Status: "DRAFT"},
		{ID: "2", Catalog: "X", Status: "PUBLISH"},
		{ID: "3", Catalog: "Y", Status: "PUBLISH"},
		{ID: "4", Catalog: "Y", Status: "DRAFT"},
		{ID: "5", Catalog: "X", Status: "PUBLISH"},
	}
	for _, d := range seed {
		_, err := coll.Put(ctx, d)
		is.NoErr(err)
	}

	docs, total, err := coll.Query(ctx, Filter{Catalog: "X"}, 0, 20)
	is.NoErr(err)
	is.Equal(total, 3)
	for _, d := range docs {
		is.Equal(d.Catalog, "X") // only documents owned by X
	}

	docs, total, err = coll.Query(ctx, Filter{Catalog: "X", Status: "PUBLISH"}, 0, 20)
	is.NoErr(err)
	is.Equal(total, 2)
	is.Equal(docs[0].ID, "2")
	is.Equal(docs[1].ID, "5")

	docs, total, err = coll.Query(ctx, Filter{Status: "DRAFT"}, 0, 20)
	is.NoErr(err)
	is.Equal(total, 2)
	is.Equal(len(docs), 2)
}

func TestQueryPaging(t *testing.T) {
	is, ctx, coll := testSetup(t)

	for i := 0; i < 7; i++ {
		_, err := coll.Put(ctx, testDocument{ID: fmt.Sprintf("doc%02d", i)})
		is.NoErr(err)
	}

	docs, total, err := coll.Query(ctx, Filter{}, 0, 3)
	is.NoErr(err)
	is.Equal(total, 7)
	is.Equal(docs[0].ID, "doc00")

	docs, _, err = coll.Query(ctx, Filter{}, 2, 3)
	is.NoErr(err)
	is.Equal(len(docs), 1) // the last page only holds the seventh document
	is.Equal(docs[0].ID, "doc06")

	docs, _, err = coll.Query(ctx, Filter{}, 0, 0)
	is.NoErr(err)
	is.Equal(len(docs), 7) // size zero returns everything
}

func TestCorruptDocumentsAreSkipped(t *testing.T) {
	is, ctx, coll := testSetup(t)

	_, err := coll.Put(ctx, testDocument{ID: "good"})
	is.NoErr(err)

	_, err = coll.db.impl.ExecContext(ctx,
		`INSERT INTO documents (kind, id, catalog, status, body, modified) VALUES (?, ?, '', '', ?, '')`,
		coll.Kind(), "bad", `{"id": 42`,
	)
	is.NoErr(err)

	docs, total, err := coll.Query(ctx, Filter{}, 0, 20)
	is.NoErr(err)
	is.Equal(total, 2)     // the total still counts the stored document
	is.Equal(len(docs), 1) // but the corrupt document is left out of the page
	is.Equal(docs[0].ID, "good")

	_, err = coll.Get(ctx, "bad")
	is.True(errors.Is(err, ErrCorruptRecord))
}

func TestLookupCorruptDocument(t *testing.T) {
	is, ctx, coll := testSetup(t)

	_, err := coll.db.impl.ExecContext(ctx,
		`INSERT INTO documents (kind, id, catalog, status, body, modified) VALUES (?, ?, 'X', 'PUBLISH', ?, '')`,
		coll.Kind(), "bad", `{"id": 42`,
	)
	is.NoErr(err)

	idx, err := coll.Lookup(ctx, "bad")
	is.NoErr(err)
	is.Equal(*idx, Index{ID: "bad", Catalog: "X", Status: "PUBLISH"})

	is.NoErr(coll.Delete(ctx, "bad"))

	_, err = coll.Lookup(ctx, "bad")
	is.True(errors.Is(err, ErrNotFound))
}

func TestDeleteWhere(t *testing.T) {
	is, ctx, coll := testSetup(t)

	for _, d := range []testDocument{{ID: "1", Catalog: "X"}, {ID: "2", Catalog: "X"}, {ID: "3", Catalog: "Y"}} {
		_, err := coll.Put(ctx, d)
		is.NoErr(err)
	}

	count, err := coll.DeleteWhere(ctx, Filter{Catalog: "X"})
	is.NoErr(err)
	is.Equal(count, int64(2))

	_, total, err := coll.Query(ctx, Filter{}, 0, 20)
	is.NoErr(err)
	is.Equal(total, 1)
}

func TestClosedStoreIsUnavailable(t *testing.T) {
	is, ctx, coll := testSetup(t)

	is.NoErr(coll.db.Close())

	_, err := coll.Get(ctx, "a")
	is.True(errors.Is(err, ErrStoreUnavailable))

	_, err = coll.Put(ctx, testDocument{ID: "a"})
	is.True(errors.Is(err, ErrStoreUnavailable))

	_, _, err = coll.Query(ctx, Filter{}, 0, 20)
	is.True(errors.Is(err, ErrStoreUnavailable))

	is.True(errors.Is(coll.db.Ping(ctx), ErrStoreUnavailable))
}

func testSetup(t *testing.T) (*is.I, context.Context, *Collection[testDocument]) {
	is := is.New(t)
	ctx := context.Background()

	db, err := NewDatabaseConnection(ctx, NewSQLiteConnector(":memory:"))
	is.NoErr(err)
	t.Cleanup(func() { db.Close() })

	return is, ctx, NewCollection(db, "test", testIndex)
}
