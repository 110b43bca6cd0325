// Package goquery implements shiftwatch.Extractor using CSS selectors over
// parsed HTML.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/k1-c/shiftwatch"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Default selectors for schedule pages: one list holds the schedule and each
// definition list inside it is a calendar entry.
const (
	DefaultContainerSelector = "ul#girl_sukkin"
	DefaultEntrySelector     = "dl"
)

var _ shiftwatch.Extractor = (*Extractor)(nil)

// Extractor locates the schedule container and splits it into calendar
// entries. Day and time tokens are read from each entry's raw markup by
// shiftwatch.ParseEntry, so tags between tokens keep them apart.
type Extractor struct {
	container string
	entry     string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithContainerSelector sets the selector for the schedule container.
func WithContainerSelector(selector string) Option {
	return func(e *Extractor) {
		e.container = selector
	}
}

// WithEntrySelector sets the selector for calendar entries within the container.
func WithEntrySelector(selector string) Option {
	return func(e *Extractor) {
		e.entry = selector
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		container: DefaultContainerSelector,
		entry:     DefaultEntrySelector,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Locate returns the inner markup of every container in document order.
func (e *Extractor) Locate(page string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return "", shiftwatch.Errorf(shiftwatch.EINVALID, "failed to parse HTML: %v", err)
	}

	containers := doc.Find(e.container)
	if containers.Length() == 0 {
		return "", shiftwatch.Errorf(shiftwatch.ENOTFOUND, "schedule container %q not found", e.container)
	}

	var b strings.Builder
	var renderErr error
	containers.EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		inner, err := sel.Html()
		if err != nil {
			renderErr = err
			return false
		}
		b.WriteString(inner)
		return true
	})
	if renderErr != nil {
		return "", renderErr
	}

	return b.String(), nil
}

// Parse extracts records from container markup.
func (e *Extractor) Parse(content string) ([]shiftwatch.ScheduleRecord, error) {
	root := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(content), root)
	if err != nil {
		return nil, shiftwatch.Errorf(shiftwatch.EINVALID, "failed to parse schedule markup: %v", err)
	}
	for _, n := range nodes {
		root.AppendChild(n)
	}

	entries := goquery.NewDocumentFromNode(root).Find(e.entry)
	if entries.Length() == 0 {
		return nil, shiftwatch.Errorf(shiftwatch.EINVALID, "no calendar entries matching %q", e.entry)
	}

	records := make([]shiftwatch.ScheduleRecord, 0, entries.Length())
	entries.Each(func(_ int, sel *goquery.Selection) {
		markup, err := sel.Html()
		if err != nil {
			return
		}
		if r, ok := shiftwatch.ParseEntry(markup); ok {
			records = append(records, r)
		}
	})

	return records, nil
}
