package shiftwatch

import "time"

// Status markers written to the next-status cell when no shift can be shown.
const (
	StatusWithdrawn   = "退店"
	StatusUnavailable = "出勤情報取得不可"
	StatusScriptError = "スクリプトエラー"
	StatusNoUpcoming  = "次回出勤予定なし"
)

// Style is the background marker applied to a written status.
type Style string

// Styles. StyleDefault leaves the existing background untouched.
const (
	StyleDefault Style = ""
	StyleSuccess Style = "success"
	StyleFailure Style = "failure"
)

// Color returns the background color for the style, or "" for StyleDefault.
func (s Style) Color() string {
	switch s {
	case StyleSuccess:
		return "#b7e1cd"
	case StyleFailure:
		return "#f4c7c3"
	}
	return ""
}

// Write is a value to put in one output cell.
type Write struct {
	Value string
	Style Style
}

// Writes holds the cell updates decided for one entity. A nil Prior leaves
// the prior-status cell as it is.
type Writes struct {
	Prior *Write
	Next  Write
}

// Update converts the writes into an EntityUpdate for the row store.
func (w Writes) Update() EntityUpdate {
	upd := EntityUpdate{
		NextStatus: &w.Next.Value,
	}
	if w.Prior != nil {
		upd.PriorStatus = &w.Prior.Value
	}
	if w.Next.Style != StyleDefault {
		style := w.Next.Style
		upd.NextStyle = &style
	}
	return upd
}

// Reconcile decides the writes for one entity given its outcome and today.
// The schedule is assumed to be in ascending date order, so only its head is
// compared with today.
func Reconcile(outcome Outcome, today time.Time) Writes {
	switch outcome.Kind {
	case OutcomePageNotFound:
		return Writes{Next: Write{Value: StatusWithdrawn, Style: StyleFailure}}
	case OutcomeElementNotFound:
		return Writes{Next: Write{Value: StatusUnavailable, Style: StyleFailure}}
	case OutcomeRecords:
		return reconcileRecords(outcome.Records, FormatDay(today))
	default:
		return Writes{Next: Write{Value: StatusScriptError, Style: StyleFailure}}
	}
}

func reconcileRecords(records []ScheduleRecord, today string) Writes {
	if len(records) == 0 {
		return Writes{Next: Write{Value: StatusNoUpcoming}}
	}

	head := records[0]
	if head.Day != today {
		return Writes{Next: Write{Value: head.String()}}
	}

	// Working today: today's shift becomes the prior status.
	prior := &Write{Value: head.String()}
	if len(records) >= 2 {
		return Writes{Prior: prior, Next: Write{Value: records[1].String()}}
	}
	return Writes{Prior: prior, Next: Write{Value: StatusNoUpcoming}}
}
