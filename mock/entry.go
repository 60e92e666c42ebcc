package mock

import (
	"context"

	"github.com/fwojciec/hentry"
)

var _ hentry.EntryService = (*EntryService)(nil)

// EntryService is a mock implementation of hentry.EntryService.
type EntryService struct {
	SaveEntryFn     func(ctx context.Context, entry *hentry.StoredEntry) error
	FindEntryByIDFn func(ctx context.Context, id string) (*hentry.StoredEntry, error)
	FindEntriesFn   func(ctx context.Context, filter hentry.EntryFilter) ([]*hentry.StoredEntry, error)
	DeleteEntryFn   func(ctx context.Context, id string) error
}

func (s *EntryService) SaveEntry(ctx context.Context, entry *hentry.StoredEntry) error {
	return s.SaveEntryFn(ctx, entry)
}

func (s *EntryService) FindEntryByID(ctx context.Context, id string) (*hentry.StoredEntry, error) {
	return s.FindEntryByIDFn(ctx, id)
}

func (s *EntryService) FindEntries(ctx context.Context, filter hentry.EntryFilter) ([]*hentry.StoredEntry, error) {
	return s.FindEntriesFn(ctx, filter)
}

func (s *EntryService) DeleteEntry(ctx context.Context, id string) error {
	return s.DeleteEntryFn(ctx, id)
}

var _ hentry.EntryWriter = (*EntryWriter)(nil)

// EntryWriter is a mock implementation of hentry.EntryWriter.
type EntryWriter struct {
	WriteEntryFn func(ctx context.Context, entry *hentry.StoredEntry) error
}

func (w *EntryWriter) WriteEntry(ctx context.Context, entry *hentry.StoredEntry) error {
	return w.WriteEntryFn(ctx, entry)
}
