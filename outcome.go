package shiftwatch

import "fmt"

// OutcomeKind identifies which case of an Outcome holds.
type OutcomeKind int

// Outcome kinds. The zero value is OutcomeUnknownError so that a missing
// outcome is treated like an unexpected failure.
const (
	OutcomeUnknownError OutcomeKind = iota
	OutcomeRecords
	OutcomePageNotFound
	OutcomeElementNotFound
)

// String returns a short name used in logs and the observation log.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeRecords:
		return "records"
	case OutcomePageNotFound:
		return "page_not_found"
	case OutcomeElementNotFound:
		return "element_not_found"
	case OutcomeUnknownError:
		return "unknown_error"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// ParseOutcomeKind is the inverse of OutcomeKind.String.
func ParseOutcomeKind(s string) (OutcomeKind, error) {
	switch s {
	case "records":
		return OutcomeRecords, nil
	case "page_not_found":
		return OutcomePageNotFound, nil
	case "element_not_found":
		return OutcomeElementNotFound, nil
	case "unknown_error":
		return OutcomeUnknownError, nil
	}
	return OutcomeUnknownError, Errorf(EINVALID, "unknown outcome kind %q", s)
}

// Outcome is the classified result of one fetch and parse attempt for a
// single entity. Exactly one kind holds; Records is only meaningful for
// OutcomeRecords and Err only for OutcomeUnknownError.
type Outcome struct {
	Kind    OutcomeKind
	Records []ScheduleRecord

	// Err is the underlying cause of an unknown error, kept for logging.
	Err error
}

// RecordsOutcome returns a successful outcome. An empty schedule is valid.
func RecordsOutcome(records []ScheduleRecord) Outcome {
	if records == nil {
		records = []ScheduleRecord{}
	}
	return Outcome{Kind: OutcomeRecords, Records: records}
}

// PageNotFoundOutcome reports that the entity's page no longer exists.
func PageNotFoundOutcome() Outcome {
	return Outcome{Kind: OutcomePageNotFound}
}

// ElementNotFoundOutcome reports that the page lacks the schedule container.
func ElementNotFoundOutcome() Outcome {
	return Outcome{Kind: OutcomeElementNotFound}
}

// UnknownErrorOutcome wraps any other failure.
func UnknownErrorOutcome(err error) Outcome {
	return Outcome{Kind: OutcomeUnknownError, Err: err}
}

// Classify turns a fetched response into an Outcome. A 404 status wins over
// any body content; other statuses are inspected for the schedule container.
// Classify never panics on extractor failures: they become unknown errors.
func Classify(statusCode int, body string, extractor Extractor) (outcome Outcome) {
	if statusCode == 404 {
		return PageNotFoundOutcome()
	}

	defer func() {
		if r := recover(); r != nil {
			outcome = UnknownErrorOutcome(fmt.Errorf("classify: panic: %v", r))
		}
	}()

	content, err := extractor.Locate(body)
	if ErrorCode(err) == ENOTFOUND {
		return ElementNotFoundOutcome()
	} else if err != nil {
		return UnknownErrorOutcome(err)
	}

	records, err := extractor.Parse(content)
	if err != nil {
		return UnknownErrorOutcome(err)
	}
	return RecordsOutcome(records)
}
