package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/hentry"
	"github.com/fwojciec/hentry/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func naive(year int, month time.Month, day, hour int) *time.Time {
	t := time.Date(year, month, day, hour, 0, 0, 0, time.Local)
	return &t
}

func TestEntryService_SaveEntry(t *testing.T) {
	t.Parallel()

	t.Run("stores every field", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewEntryService(openDB(t))
		fetchedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

		entry := &hentry.StoredEntry{
			Entry: hentry.Entry{
				ID:         "Zm9vL2Jhcg",
				Title:      "Hello",
				Content:    "World",
				Author:     "Jane",
				Pubdate:    naive(2014, 1, 1, 10),
				Tags:       []string{"a", "b"},
				Categories: []string{"News"},
				Image:      "https://example.com/og.png",
			},
			SourceURL: "http://example.com/foo/bar",
			FetchedAt: fetchedAt,
		}
		require.NoError(t, svc.SaveEntry(ctx, entry))
		assert.NotEmpty(t, entry.ContentHash)

		got, err := svc.FindEntryByID(ctx, "Zm9vL2Jhcg")

		require.NoError(t, err)
		assert.Equal(t, entry, got)
	})

	t.Run("round-trips absent optional fields", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewEntryService(openDB(t))

		require.NoError(t, svc.SaveEntry(ctx, &hentry.StoredEntry{
			Entry: hentry.Entry{ID: "x", Title: "Only title"},
		}))

		got, err := svc.FindEntryByID(ctx, "x")

		require.NoError(t, err)
		assert.Nil(t, got.Pubdate)
		assert.Nil(t, got.Tags)
		assert.Nil(t, got.Categories)
		assert.Empty(t, got.Author)
		assert.WithinDuration(t, time.Now(), got.FetchedAt, time.Minute)
	})

	t.Run("replaces entry with the same id", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewEntryService(openDB(t))

		first := &hentry.StoredEntry{Entry: hentry.Entry{ID: "x", Title: "Old", Content: "old"}}
		require.NoError(t, svc.SaveEntry(ctx, first))
		second := &hentry.StoredEntry{Entry: hentry.Entry{ID: "x", Title: "New", Content: "new"}}
		require.NoError(t, svc.SaveEntry(ctx, second))

		got, err := svc.FindEntryByID(ctx, "x")

		require.NoError(t, err)
		assert.Equal(t, "New", got.Title)
		assert.NotEqual(t, first.ContentHash, got.ContentHash)

		all, err := svc.FindEntries(ctx, hentry.EntryFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("rejects entries without id or title", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewEntryService(openDB(t))

		err := svc.SaveEntry(ctx, &hentry.StoredEntry{Entry: hentry.Entry{Title: "T"}})
		assert.Equal(t, hentry.EINVALID, hentry.ErrorCode(err))

		err = svc.SaveEntry(ctx, &hentry.StoredEntry{Entry: hentry.Entry{ID: "x"}})
		assert.Equal(t, hentry.EINVALID, hentry.ErrorCode(err))
	})
}

func TestEntryService_FindEntryByID(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewEntryService(openDB(t))

	_, err := svc.FindEntryByID(context.Background(), "missing")

	require.Error(t, err)
	assert.Equal(t, hentry.ENOTFOUND, hentry.ErrorCode(err))
}

func TestEntryService_FindEntries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := sqlite.NewEntryService(openDB(t))

	for _, e := range []*hentry.StoredEntry{
		{Entry: hentry.Entry{ID: "old", Title: "Old", Author: "Jane", Pubdate: naive(2012, 1, 1, 0), Tags: []string{"go"}}},
		{Entry: hentry.Entry{ID: "new", Title: "New", Author: "John", Pubdate: naive(2014, 1, 1, 0), Tags: []string{"go", "html"}}},
		{Entry: hentry.Entry{ID: "undated", Title: "Undated", Author: "Jane"}},
		{Entry: hentry.Entry{ID: "mid", Title: "Mid", Author: "Jane", Pubdate: naive(2013, 1, 1, 0), Tags: []string{"html"}}},
	} {
		require.NoError(t, svc.SaveEntry(ctx, e))
	}

	ids := func(entries []*hentry.StoredEntry) []string {
		var out []string
		for _, e := range entries {
			out = append(out, e.ID)
		}
		return out
	}

	t.Run("orders newest pubdate first with undated last", func(t *testing.T) {
		t.Parallel()

		got, err := svc.FindEntries(ctx, hentry.EntryFilter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"new", "mid", "old", "undated"}, ids(got))
	})

	t.Run("filters by author", func(t *testing.T) {
		t.Parallel()

		got, err := svc.FindEntries(ctx, hentry.EntryFilter{Author: ptr("Jane")})
		require.NoError(t, err)
		assert.Equal(t, []string{"mid", "old", "undated"}, ids(got))
	})

	t.Run("filters by tag", func(t *testing.T) {
		t.Parallel()

		got, err := svc.FindEntries(ctx, hentry.EntryFilter{Tag: ptr("html")})
		require.NoError(t, err)
		assert.Equal(t, []string{"new", "mid"}, ids(got))
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		got, err := svc.FindEntries(ctx, hentry.EntryFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, []string{"mid", "old"}, ids(got))
	})

	t.Run("applies offset without limit", func(t *testing.T) {
		t.Parallel()

		got, err := svc.FindEntries(ctx, hentry.EntryFilter{Offset: 3})
		require.NoError(t, err)
		assert.Equal(t, []string{"undated"}, ids(got))
	})
}

func TestEntryService_DeleteEntry(t *testing.T) {
	t.Parallel()

	t.Run("removes entry", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewEntryService(openDB(t))
		require.NoError(t, svc.SaveEntry(ctx, &hentry.StoredEntry{Entry: hentry.Entry{ID: "x", Title: "T"}}))

		require.NoError(t, svc.DeleteEntry(ctx, "x"))

		_, err := svc.FindEntryByID(ctx, "x")
		assert.Equal(t, hentry.ENOTFOUND, hentry.ErrorCode(err))
	})

	t.Run("returns not found for missing entry", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewEntryService(openDB(t))

		err := svc.DeleteEntry(context.Background(), "missing")
		assert.Equal(t, hentry.ENOTFOUND, hentry.ErrorCode(err))
	})
}
