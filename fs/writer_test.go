package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/hentry"
	"github.com/fwojciec/hentry/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      string
		want    string
		wantErr bool
	}{
		{name: "url derived id", id: "Zm9vL2Jhcg", want: "Zm9vL2Jhcg.md"},
		{name: "keeps dashes and underscores", id: "post-42_a", want: "post-42_a.md"},
		{name: "replaces separators", id: "post/42", want: "post_42.md"},
		{name: "cannot escape directory", id: "../../etc/passwd", want: "_.._etc_passwd.md"},
		{name: "replaces spaces", id: "my post", want: "my_post.md"},
		{name: "empty id", id: "", wantErr: true},
		{name: "only dots", id: "..", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.EntryPath(tt.id)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, hentry.EINVALID, hentry.ErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatEntry(t *testing.T) {
	t.Parallel()

	t.Run("writes frontmatter and content", func(t *testing.T) {
		t.Parallel()

		pubdate := time.Date(2014, 1, 1, 10, 0, 0, 0, time.Local)
		entry := &hentry.StoredEntry{
			Entry: hentry.Entry{
				ID:         "Zm9vL2Jhcg",
				Title:      "Hello: a story",
				Content:    "World",
				Author:     "Jane",
				Pubdate:    &pubdate,
				Tags:       []string{"a", " b "},
				Categories: []string{"News"},
			},
			SourceURL: "http://example.com/foo/bar",
			FetchedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		}

		got := fs.FormatEntry(entry)

		want := `---
id: "Zm9vL2Jhcg"
title: "Hello: a story"
author: "Jane"
pubdate: "2014-01-01T10:00:00"
tags: ["a", "b"]
categories: ["News"]
source: "http://example.com/foo/bar"
fetched: "2024-05-01"
---

World
`
		assert.Equal(t, want, got)
	})

	t.Run("omits absent fields", func(t *testing.T) {
		t.Parallel()

		got := fs.FormatEntry(&hentry.StoredEntry{Entry: hentry.Entry{ID: "x", Title: "T"}})

		assert.Equal(t, "---\nid: \"x\"\ntitle: \"T\"\n---\n\n", got)
	})
}

func TestWriter_WriteEntry(t *testing.T) {
	t.Parallel()

	t.Run("writes entry file", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "out")
		w := fs.NewWriter(dir)

		err := w.WriteEntry(context.Background(), &hentry.StoredEntry{
			Entry: hentry.Entry{ID: "post/42", Title: "T", Content: "Body"},
		})
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "post_42.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), `title: "T"`)
		assert.Contains(t, string(data), "Body")
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)
		ctx := context.Background()

		require.NoError(t, w.WriteEntry(ctx, &hentry.StoredEntry{Entry: hentry.Entry{ID: "x", Title: "Old"}}))
		require.NoError(t, w.WriteEntry(ctx, &hentry.StoredEntry{Entry: hentry.Entry{ID: "x", Title: "New"}}))

		data, err := os.ReadFile(filepath.Join(dir, "x.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "New")
		assert.NotContains(t, string(data), "Old")
	})

	t.Run("validates entry", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		err := w.WriteEntry(context.Background(), &hentry.StoredEntry{Entry: hentry.Entry{Title: "T"}})
		assert.Equal(t, hentry.EINVALID, hentry.ErrorCode(err))
	})
}
