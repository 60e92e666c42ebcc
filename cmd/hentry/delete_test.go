package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/hentry"
	main "github.com/fwojciec/hentry/cmd/hentry"
	"github.com/fwojciec/hentry/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes entry with force flag", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		entries := &mock.EntryService{
			DeleteEntryFn: func(_ context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Entries: entries,
		}

		err := (&main.DeleteCmd{ID: "aGVsbG8", Force: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "aGVsbG8", deletedID)
		assert.Contains(t, stdout.String(), "Deleted")
	})

	t.Run("requires force flag", func(t *testing.T) {
		t.Parallel()

		entries := &mock.EntryService{
			DeleteEntryFn: func(_ context.Context, _ string) error {
				t.Error("DeleteEntry should not be called without --force")
				return nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Entries: entries,
		}

		err := (&main.DeleteCmd{ID: "aGVsbG8"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, hentry.EINVALID, hentry.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("returns error when entry not found", func(t *testing.T) {
		t.Parallel()

		entries := &mock.EntryService{
			DeleteEntryFn: func(_ context.Context, id string) error {
				return hentry.Errorf(hentry.ENOTFOUND, "entry %q not found", id)
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Entries: entries,
		}

		err := (&main.DeleteCmd{ID: "nope", Force: true}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, hentry.ENOTFOUND, hentry.ErrorCode(err))
		assert.Contains(t, stderr.String(), "hentry list")
	})
}
