package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fwojciec/hentry"
	"github.com/fwojciec/hentry/batch"
)

// Run executes the parse command. Each source produces one JSON line on
// stdout. A failing source does not stop the others; the command returns
// an error afterwards if any source failed.
func (c *ParseCmd) Run(deps *Dependencies) error {
	format, err := hentry.ParseFormat(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hentry.ErrorMessage(err))
		return err
	}
	if c.Save && deps.Entries == nil {
		return fmt.Errorf("--save requires an entry store")
	}

	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}

	results := make([]batch.Result, len(c.Sources))

	var urls []string
	var urlIdx []int
	for i, src := range c.Sources {
		if isURL(src) {
			urls = append(urls, src)
			urlIdx = append(urlIdx, i)
			continue
		}
		results[i] = c.parseLocal(deps, src, format)
	}

	if len(urls) > 0 {
		runner := &batch.Runner{
			Fetcher:     deps.Fetcher,
			Parser:      deps.Parser,
			RateLimiter: deps.RateLimiter,
			Concurrency: c.Concurrency,
		}
		for i, res := range runner.Run(deps.Ctx, urls, format) {
			results[urlIdx[i]] = res
		}
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetEscapeHTML(false)

	var failed int
	for i, res := range results {
		src := c.Sources[i]
		if res.Err == nil && res.Entry != nil {
			res.Err = c.store(deps, src, res.Entry, now())
		}
		if res.Err != nil {
			failed++
		}
		if err := enc.Encode(resultJSON{
			Source: src,
			Entry:  newEntryJSON(res.Entry),
			Error:  newErrorJSON(res.Err),
		}); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d sources failed", failed, len(results))
	}
	return nil
}

// parseLocal parses a file path or "-" for stdin. Entries parsed from
// local sources have no URL to derive an id from.
func (c *ParseCmd) parseLocal(deps *Dependencies, src string, format hentry.Format) batch.Result {
	res := batch.Result{URL: src}

	var data []byte
	var err error
	if src == "-" {
		data, err = io.ReadAll(deps.Stdin)
	} else {
		data, err = os.ReadFile(src)
	}
	if err != nil {
		res.Err = hentry.WrapError(hentry.EINVALID, err, "cannot read %s", src)
		return res
	}

	res.Entry, res.Err = deps.Parser.Parse(string(data), format)
	return res
}

// store saves and exports an entry when --save or --out is set.
func (c *ParseCmd) store(deps *Dependencies, src string, entry *hentry.Entry, fetchedAt time.Time) error {
	if !c.Save && deps.Writer == nil {
		return nil
	}
	stored := &hentry.StoredEntry{Entry: *entry, FetchedAt: fetchedAt}
	if isURL(src) {
		stored.SourceURL = src
	}

	if c.Save {
		if err := deps.Entries.SaveEntry(deps.Ctx, stored); err != nil {
			return err
		}
	}
	if deps.Writer != nil {
		if err := deps.Writer.WriteEntry(deps.Ctx, stored); err != nil {
			return err
		}
	}
	return nil
}

func isURL(s string) bool {
	s = strings.ToLower(s)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
