package hentry

import (
	"context"
	"strings"
	"time"
)

// Entry is a single hentry extracted from a document.
// Title is always non-empty; every other field is optional and omitted
// from JSON when absent.
type Entry struct {
	Title      string     `json:"title"`
	Content    string     `json:"content,omitempty"`
	Author     string     `json:"author,omitempty"`
	Pubdate    *time.Time `json:"pubdate,omitempty"`
	Tags       []string   `json:"tags,omitempty"`
	Categories []string   `json:"categories,omitempty"`
	ID         string     `json:"id,omitempty"`
	Image      string     `json:"image,omitempty"`
}

// Validate returns an error if the entry cannot be stored.
func (e *Entry) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return Errorf(EINVALID, "entry title required")
	}
	if e.ID == "" {
		return Errorf(EINVALID, "entry id required")
	}
	return nil
}

// PubdateLayout renders a normalized pubdate. Pubdates carry no
// meaningful offset, so none is written.
const PubdateLayout = "2006-01-02T15:04:05"

// Format selects how the content field is rendered.
type Format string

// Content formats.
const (
	FormatText     Format = "text"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a user supplied format name.
// An empty name selects FormatText.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatHTML, FormatMarkdown:
		return f, nil
	default:
		return "", Errorf(EINVALID, "unknown format %q", s)
	}
}

// Parser extracts an entry from an HTML document.
type Parser interface {
	// Parse returns the single entry found in html, or nil when the document
	// has no unique entry root or the entry has no title. Absence is not an
	// error; errors are reserved for content conversion failures.
	Parse(html string, format Format) (*Entry, error)
}

// StoredEntry is an entry together with where and when it was retrieved.
type StoredEntry struct {
	Entry
	SourceURL   string    `json:"sourceUrl,omitempty"`
	ContentHash string    `json:"contentHash,omitempty"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// EntryService represents a service for persisting extracted entries.
type EntryService interface {
	// SaveEntry inserts the entry or replaces the stored entry with the same ID.
	SaveEntry(ctx context.Context, entry *StoredEntry) error

	// FindEntryByID retrieves an entry by ID.
	// Returns ENOTFOUND if the entry does not exist.
	FindEntryByID(ctx context.Context, id string) (*StoredEntry, error)

	// FindEntries retrieves entries matching the filter, newest pubdate first.
	FindEntries(ctx context.Context, filter EntryFilter) ([]*StoredEntry, error)

	// DeleteEntry permanently removes an entry.
	// Returns ENOTFOUND if the entry does not exist.
	DeleteEntry(ctx context.Context, id string) error
}

// EntryFilter represents a filter for FindEntries.
type EntryFilter struct {
	Author *string `json:"author"`
	Tag    *string `json:"tag"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// EntryWriter writes entries to an export destination.
type EntryWriter interface {
	WriteEntry(ctx context.Context, entry *StoredEntry) error
}
