package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/hentry"
)

// Ensure LoggingParser implements hentry.Parser.
var _ hentry.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with debug logging.
type LoggingParser struct {
	next   hentry.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next hentry.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse logs whether an entry was found and delegates to the wrapped parser.
func (p *LoggingParser) Parse(html string, format hentry.Format) (entry *hentry.Entry, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"format", string(format),
			"bytes", len(html),
			"found", entry != nil,
			"duration", time.Since(begin),
		}
		if entry != nil {
			attrs = append(attrs, "title", entry.Title)
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		p.logger.Debug("parse", attrs...)
	}(time.Now())
	return p.next.Parse(html, format)
}
