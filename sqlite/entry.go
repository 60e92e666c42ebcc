package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/hentry"
)

// Compile-time interface verification.
var _ hentry.EntryService = (*EntryService)(nil)

// EntryService implements hentry.EntryService using SQLite.
type EntryService struct {
	db *DB
}

// NewEntryService creates a new EntryService.
func NewEntryService(db *DB) *EntryService {
	return &EntryService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

const entryColumns = "id, title, content, content_hash, author, pubdate, tags, categories, image, source_url, fetched_at"

// SaveEntry inserts the entry or replaces the stored entry with the same ID.
func (s *EntryService) SaveEntry(ctx context.Context, entry *hentry.StoredEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	if entry.FetchedAt.IsZero() {
		entry.FetchedAt = time.Now().UTC()
	}
	entry.ContentHash = hashContent(entry.Content)

	tags, err := encodeList(entry.Tags)
	if err != nil {
		return err
	}
	categories, err := encodeList(entry.Categories)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO entries (`+entryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			content_hash = excluded.content_hash,
			author = excluded.author,
			pubdate = excluded.pubdate,
			tags = excluded.tags,
			categories = excluded.categories,
			image = excluded.image,
			source_url = excluded.source_url,
			fetched_at = excluded.fetched_at
	`, entry.ID, entry.Title, entry.Content, entry.ContentHash, entry.Author,
		formatPubdate(entry.Pubdate), tags, categories, entry.Image, entry.SourceURL,
		entry.FetchedAt.Format(time.RFC3339))

	return err
}

// FindEntryByID retrieves an entry by ID.
func (s *EntryService) FindEntryByID(ctx context.Context, id string) (*hentry.StoredEntry, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM entries WHERE id = ?`, id)

	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, hentry.Errorf(hentry.ENOTFOUND, "entry not found")
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// FindEntries retrieves entries matching the filter, newest pubdate first.
// Entries without a pubdate sort last, by fetch time.
func (s *EntryService) FindEntries(ctx context.Context, filter hentry.EntryFilter) ([]*hentry.StoredEntry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + entryColumns + " FROM entries WHERE 1=1")

	if filter.Author != nil {
		query.WriteString(" AND author = ?")
		args = append(args, *filter.Author)
	}
	if filter.Tag != nil {
		query.WriteString(" AND EXISTS (SELECT 1 FROM json_each(entries.tags) WHERE json_each.value = ?)")
		args = append(args, *filter.Tag)
	}

	query.WriteString(" ORDER BY pubdate IS NULL, pubdate DESC, fetched_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*hentry.StoredEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// DeleteEntry permanently removes an entry.
func (s *EntryService) DeleteEntry(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM entries WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return hentry.Errorf(hentry.ENOTFOUND, "entry not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (*hentry.StoredEntry, error) {
	var entry hentry.StoredEntry
	var pubdate sql.NullString
	var tags, categories, fetchedAt string

	if err := sc.Scan(&entry.ID, &entry.Title, &entry.Content, &entry.ContentHash, &entry.Author,
		&pubdate, &tags, &categories, &entry.Image, &entry.SourceURL, &fetchedAt); err != nil {
		return nil, err
	}

	var err error
	if entry.Pubdate, err = parsePubdate(pubdate); err != nil {
		return nil, err
	}
	if entry.Tags, err = decodeList(tags, "tags"); err != nil {
		return nil, err
	}
	if entry.Categories, err = decodeList(categories, "categories"); err != nil {
		return nil, err
	}
	if entry.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
		return nil, err
	}
	return &entry, nil
}
