package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// Selector tables, compiled once and shared read-only by all parses.
// Within a table, rules are tried in order and the first rule that
// matches anything wins.
var (
	entrySelectors    = compileFallback(".hentry", ".entry")
	titleSelectors    = compileFallback(".entry-title", ".title")
	contentSelectors  = compileFallback(".entry-content", ".content")
	authorSelectors   = compileFallback(".vcard .fn", ".author .fn", ".author")
	tagSelectors      = compileFallback("[rel=tag]", ".tag")
	dateSelectors     = compileFallback("time.published", "time.updated", "time")
	categorySelectors = compileFallback(".category")
	idSelectors       = compileFallback(`meta[name="entry-id"]`)
	imageSelectors    = compileFallback(`meta[property="og:image"]`, `meta[name="twitter:image"]`)
)

// rule is a chain of compound selectors joined by the descendant
// combinator. The first step matches the scope itself or any of its
// descendants; later steps match descendants of the previous step only,
// so a rule never reaches outside its scope.
type rule []goquery.Matcher

// compileRule compiles a selector. Selectors are split on whitespace, so
// attribute values must not contain spaces.
func compileRule(selector string) rule {
	var r rule
	for _, step := range strings.Fields(selector) {
		r = append(r, cascadia.MustCompile(step))
	}
	return r
}

func (r rule) match(scope *goquery.Selection) *goquery.Selection {
	sel := scope.FilterMatcher(r[0]).AddSelection(scope.FindMatcher(r[0]))
	for _, m := range r[1:] {
		sel = sel.FindMatcher(m)
	}
	return sel
}

// fallback is an ordered list of rules tried in priority order.
type fallback []rule

func compileFallback(selectors ...string) fallback {
	f := make(fallback, 0, len(selectors))
	for _, s := range selectors {
		f = append(f, compileRule(s))
	}
	return f
}

// find returns every element matched by the first rule with any match,
// or nil when no rule matches.
func (f fallback) find(scope *goquery.Selection) *goquery.Selection {
	for _, r := range f {
		if sel := r.match(scope); sel.Length() > 0 {
			return sel
		}
	}
	return nil
}

// text returns the trimmed text of the first element found, or "".
func (f fallback) text(scope *goquery.Selection) string {
	sel := f.find(scope)
	if sel == nil {
		return ""
	}
	return strings.TrimSpace(sel.First().Text())
}

// texts returns the untrimmed text of every element found, in document
// order, or nil when nothing matches.
func (f fallback) texts(scope *goquery.Selection) []string {
	sel := f.find(scope)
	if sel == nil {
		return nil
	}
	return sel.Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
}

// attr returns the trimmed value of name on the first element found.
func (f fallback) attr(scope *goquery.Selection, name string) (string, bool) {
	sel := f.find(scope)
	if sel == nil {
		return "", false
	}
	v, ok := sel.First().Attr(name)
	return strings.TrimSpace(v), ok
}
