package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/learnsearch/librarian"
	"github.com/learnsearch/librarian/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure RecordService implements librarian.IndexService at compile time.
var _ librarian.IndexService = (*sqlite.RecordService)(nil)

func testRecord(objectID, rootURL, epoch string) *librarian.Record {
	return &librarian.Record{
		ObjectID:    objectID,
		IndexEpoch:  epoch,
		ContentType: librarian.ContentTypeTutorial,
		URL:         rootURL + "page.html#section",
		BaseURL:     rootURL + "page.html",
		RootURL:     rootURL,
		RootTitle:   "Tutorials",
		H1:          "A Tutorial",
		H2:          "A Section",
		Importance:  2,
		Priority:    1,
		Content:     "Section content.",
		ContentHash: librarian.HashContent("Section content."),
		DateIndexed: time.Now().UTC().Truncate(time.Second),
		Keywords:    map[string][]string{"task": {"plotting"}},
	}
}

func TestRecordService_SaveRecords(t *testing.T) {
	t.Parallel()

	t.Run("saves and retrieves a record", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		rec := testRecord("obj-1", "https://example.com/", "epoch-1")
		require.NoError(t, svc.SaveRecords(ctx, []*librarian.Record{rec}))

		id := "obj-1"
		found, err := svc.FindRecords(ctx, librarian.RecordFilter{ObjectID: &id})
		require.NoError(t, err)
		require.Len(t, found, 1)

		got := found[0]
		assert.True(t, got.DateIndexed.Equal(rec.DateIndexed))
		got.DateIndexed = rec.DateIndexed
		assert.Equal(t, rec, got)
	})

	t.Run("replaces a record with the same object ID", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		rec := testRecord("obj-1", "https://example.com/", "epoch-1")
		require.NoError(t, svc.SaveRecords(ctx, []*librarian.Record{rec}))

		updated := testRecord("obj-1", "https://example.com/", "epoch-2")
		updated.Content = "Updated content."
		require.NoError(t, svc.SaveRecords(ctx, []*librarian.Record{updated}))

		id := "obj-1"
		found, err := svc.FindRecords(ctx, librarian.RecordFilter{ObjectID: &id})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Updated content.", found[0].Content)
		assert.Equal(t, "epoch-2", found[0].IndexEpoch)
	})

	t.Run("rejects the whole batch when any record is invalid", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		valid := testRecord("obj-1", "https://example.com/", "epoch-1")
		invalid := testRecord("", "https://example.com/", "epoch-1")

		err := svc.SaveRecords(ctx, []*librarian.Record{valid, invalid})
		require.Error(t, err)
		assert.Equal(t, librarian.EINVALID, librarian.ErrorCode(err))

		found, err := svc.FindRecords(ctx, librarian.RecordFilter{})
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestRecordService_FindRecords(t *testing.T) {
	t.Parallel()

	t.Run("filters by root URL and epoch", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		require.NoError(t, svc.SaveRecords(ctx, []*librarian.Record{
			testRecord("obj-1", "https://a.example.com/", "epoch-1"),
			testRecord("obj-2", "https://a.example.com/", "epoch-2"),
			testRecord("obj-3", "https://b.example.com/", "epoch-1"),
		}))

		rootURL := "https://a.example.com/"
		found, err := svc.FindRecords(ctx, librarian.RecordFilter{RootURL: &rootURL})
		require.NoError(t, err)
		assert.Len(t, found, 2)

		epoch := "epoch-2"
		found, err = svc.FindRecords(ctx, librarian.RecordFilter{RootURL: &rootURL, IndexEpoch: &epoch})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "obj-2", found[0].ObjectID)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		require.NoError(t, svc.SaveRecords(ctx, []*librarian.Record{
			testRecord("obj-1", "https://example.com/", "epoch-1"),
			testRecord("obj-2", "https://example.com/", "epoch-1"),
			testRecord("obj-3", "https://example.com/", "epoch-1"),
		}))

		found, err := svc.FindRecords(ctx, librarian.RecordFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "obj-2", found[0].ObjectID)
		assert.Equal(t, "obj-3", found[1].ObjectID)
	})
}

func TestRecordService_DeleteByRootURL(t *testing.T) {
	t.Parallel()

	db := MustOpenDB(t)
	svc := sqlite.NewRecordService(db)
	ctx := context.Background()

	require.NoError(t, svc.SaveRecords(ctx, []*librarian.Record{
		testRecord("obj-1", "https://a.example.com/", "epoch-1"),
		testRecord("obj-2", "https://a.example.com/", "epoch-1"),
		testRecord("obj-3", "https://b.example.com/", "epoch-1"),
	}))

	deleted, err := svc.DeleteByRootURL(ctx, "https://a.example.com/")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"obj-1", "obj-2"}, deleted)

	remaining, err := svc.FindRecords(ctx, librarian.RecordFilter{})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "obj-3", remaining[0].ObjectID)
}

func TestRecordService_ExpireRecords(t *testing.T) {
	t.Parallel()

	db := MustOpenDB(t)
	svc := sqlite.NewRecordService(db)
	ctx := context.Background()

	require.NoError(t, svc.SaveRecords(ctx, []*librarian.Record{
		testRecord("obj-1", "https://example.com/", "old-epoch"),
		testRecord("obj-2", "https://example.com/", "new-epoch"),
		testRecord("obj-3", "https://other.example.com/", "old-epoch"),
	}))

	expired, err := svc.ExpireRecords(ctx, "https://example.com/", "new-epoch")
	require.NoError(t, err)
	assert.Equal(t, []string{"obj-1"}, expired)

	remaining, err := svc.FindRecords(ctx, librarian.RecordFilter{})
	require.NoError(t, err)
	assert.Len(t, remaining, 2)
}
