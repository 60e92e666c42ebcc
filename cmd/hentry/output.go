package main

import (
	"github.com/fwojciec/hentry"
)

// entryJSON is the printed form of an entry. The pubdate is written
// without an offset since extracted dates carry none.
type entryJSON struct {
	Title      string   `json:"title"`
	Content    string   `json:"content,omitempty"`
	Author     string   `json:"author,omitempty"`
	Pubdate    string   `json:"pubdate,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Categories []string `json:"categories,omitempty"`
	ID         string   `json:"id,omitempty"`
	Image      string   `json:"image,omitempty"`
}

func newEntryJSON(e *hentry.Entry) *entryJSON {
	if e == nil {
		return nil
	}
	out := &entryJSON{
		Title:      e.Title,
		Content:    e.Content,
		Author:     e.Author,
		Tags:       e.Tags,
		Categories: e.Categories,
		ID:         e.ID,
		Image:      e.Image,
	}
	if e.Pubdate != nil {
		out.Pubdate = e.Pubdate.Format(hentry.PubdateLayout)
	}
	return out
}

type errorJSON struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newErrorJSON(err error) *errorJSON {
	if err == nil {
		return nil
	}
	msg := hentry.ErrorMessage(err)
	if hentry.ErrorCode(err) == hentry.EINTERNAL {
		msg = err.Error()
	}
	return &errorJSON{Code: hentry.ErrorCode(err), Message: msg}
}

// resultJSON is one line of parse output. Entry is null when the source
// has no entry.
type resultJSON struct {
	Source string     `json:"source"`
	Entry  *entryJSON `json:"entry"`
	Error  *errorJSON `json:"error,omitempty"`
}

// storedJSON is the printed form of a saved entry.
type storedJSON struct {
	entryJSON
	SourceURL   string `json:"sourceUrl,omitempty"`
	ContentHash string `json:"contentHash,omitempty"`
	FetchedAt   string `json:"fetchedAt"`
}
