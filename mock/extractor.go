package mock

import "github.com/k1-c/shiftwatch"

var _ shiftwatch.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of shiftwatch.Extractor.
type Extractor struct {
	LocateFn func(html string) (string, error)
	ParseFn  func(content string) ([]shiftwatch.ScheduleRecord, error)
}

func (e *Extractor) Locate(html string) (string, error) {
	return e.LocateFn(html)
}

func (e *Extractor) Parse(content string) ([]shiftwatch.ScheduleRecord, error) {
	return e.ParseFn(content)
}
