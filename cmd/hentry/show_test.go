package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/fwojciec/hentry"
	main "github.com/fwojciec/hentry/cmd/hentry"
	"github.com/fwojciec/hentry/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the stored entry as JSON", func(t *testing.T) {
		t.Parallel()

		pub := time.Date(2024, 5, 1, 9, 30, 0, 0, time.Local)
		entries := &mock.EntryService{
			FindEntryByIDFn: func(_ context.Context, id string) (*hentry.StoredEntry, error) {
				return &hentry.StoredEntry{
					Entry: hentry.Entry{
						ID:      id,
						Title:   "Hello <World>",
						Pubdate: &pub,
						Tags:    []string{"a"},
					},
					SourceURL: "https://example.com/hello",
					FetchedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Entries: entries,
		}

		err := (&main.ShowCmd{ID: "aGVsbG8"}).Run(deps)

		require.NoError(t, err)
		var got map[string]any
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, "aGVsbG8", got["id"])
		assert.Equal(t, "Hello <World>", got["title"])
		assert.Equal(t, "2024-05-01T09:30:00", got["pubdate"])
		assert.Equal(t, []any{"a"}, got["tags"])
		assert.Equal(t, "https://example.com/hello", got["sourceUrl"])
		assert.Equal(t, "2025-01-02T03:04:05Z", got["fetchedAt"])
		assert.NotContains(t, got, "content")
	})

	t.Run("returns error when entry not found", func(t *testing.T) {
		t.Parallel()

		entries := &mock.EntryService{
			FindEntryByIDFn: func(_ context.Context, id string) (*hentry.StoredEntry, error) {
				return nil, hentry.Errorf(hentry.ENOTFOUND, "entry %q not found", id)
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Entries: entries,
		}

		err := (&main.ShowCmd{ID: "missing"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, hentry.ENOTFOUND, hentry.ErrorCode(err))
		assert.Contains(t, stderr.String(), `entry "missing" not found`)
	})
}
