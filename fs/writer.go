// Package fs provides file-based export of extracted entries.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fwojciec/hentry"
)

// EntryPath converts an entry ID to a relative file name.
// Characters outside [A-Za-z0-9._-] are replaced so explicit IDs taken
// from documents cannot escape the export directory.
// Example: post/42 → post_42.md
func EntryPath(id string) (string, error) {
	name := strings.Map(func(r rune) rune {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9', r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, id)
	name = strings.TrimLeft(name, ".")
	if name == "" {
		return "", hentry.Errorf(hentry.EINVALID, "entry id %q has no usable file name", id)
	}
	return name + ".md", nil
}

// FormatEntry formats an entry as Markdown with YAML frontmatter.
// Absent fields are left out of the frontmatter.
func FormatEntry(entry *hentry.StoredEntry) string {
	var b strings.Builder
	b.WriteString("---\n")
	writeField(&b, "id", entry.ID)
	writeField(&b, "title", entry.Title)
	writeField(&b, "author", entry.Author)
	if entry.Pubdate != nil {
		writeField(&b, "pubdate", entry.Pubdate.Format(hentry.PubdateLayout))
	}
	writeList(&b, "tags", entry.Tags)
	writeList(&b, "categories", entry.Categories)
	writeField(&b, "image", entry.Image)
	writeField(&b, "source", entry.SourceURL)
	if !entry.FetchedAt.IsZero() {
		writeField(&b, "fetched", entry.FetchedAt.Format("2006-01-02"))
	}
	b.WriteString("---\n\n")
	b.WriteString(entry.Content)
	if entry.Content != "" && !strings.HasSuffix(entry.Content, "\n") {
		b.WriteString("\n")
	}
	return b.String()
}

// Quoted strings are valid YAML scalars and keep titles with colons intact.
func writeField(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	b.WriteString(key)
	b.WriteString(": ")
	b.WriteString(strconv.Quote(value))
	b.WriteString("\n")
}

func writeList(b *strings.Builder, key string, values []string) {
	if len(values) == 0 {
		return
	}
	b.WriteString(key)
	b.WriteString(": [")
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(strings.TrimSpace(v)))
	}
	b.WriteString("]\n")
}

// Ensure Writer implements hentry.EntryWriter at compile time.
var _ hentry.EntryWriter = (*Writer)(nil)

// Writer writes entries as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteEntry writes an entry to disk as <id>.md, replacing any existing file.
func (w *Writer) WriteEntry(ctx context.Context, entry *hentry.StoredEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	relPath, err := EntryPath(entry.ID)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	content := FormatEntry(entry)
	return os.WriteFile(filepath.Join(w.baseDir, relPath), []byte(content), 0644)
}
