package shiftwatch

// Extractor pulls schedule records out of a fetched schedule page.
type Extractor interface {
	// Locate finds the schedule container in a page and returns its inner markup.
	// Returns ENOTFOUND if the page has no container.
	Locate(html string) (content string, err error)

	// Parse splits container markup into calendar entries and returns one
	// record per entry that carries both a day and a time range, in
	// encounter order. Entries missing either are skipped. The result may be
	// empty. Returns EINVALID if the markup holds no calendar entries at all.
	Parse(content string) ([]ScheduleRecord, error)
}
