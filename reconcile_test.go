package shiftwatch_test

import (
	"errors"
	"testing"
	"time"

	"github.com/k1-c/shiftwatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(month time.Month, d int) time.Time {
	return time.Date(2025, month, d, 7, 30, 0, 0, time.FixedZone("JST", 9*60*60))
}

func TestReconcile(t *testing.T) {
	t.Parallel()

	t.Run("page not found writes withdrawn with failure style", func(t *testing.T) {
		t.Parallel()

		w := shiftwatch.Reconcile(shiftwatch.PageNotFoundOutcome(), day(time.May, 3))

		assert.Nil(t, w.Prior)
		assert.Equal(t, shiftwatch.Write{Value: shiftwatch.StatusWithdrawn, Style: shiftwatch.StyleFailure}, w.Next)
	})

	t.Run("element not found writes unavailable with failure style", func(t *testing.T) {
		t.Parallel()

		w := shiftwatch.Reconcile(shiftwatch.ElementNotFoundOutcome(), day(time.May, 3))

		assert.Nil(t, w.Prior)
		assert.Equal(t, shiftwatch.Write{Value: shiftwatch.StatusUnavailable, Style: shiftwatch.StyleFailure}, w.Next)
	})

	t.Run("unknown error writes script error with failure style", func(t *testing.T) {
		t.Parallel()

		w := shiftwatch.Reconcile(shiftwatch.UnknownErrorOutcome(errors.New("timeout")), day(time.May, 3))

		assert.Nil(t, w.Prior)
		assert.Equal(t, shiftwatch.Write{Value: shiftwatch.StatusScriptError, Style: shiftwatch.StyleFailure}, w.Next)
	})

	t.Run("missing outcome is treated as script error", func(t *testing.T) {
		t.Parallel()

		w := shiftwatch.Reconcile(shiftwatch.Outcome{}, day(time.May, 3))

		assert.Nil(t, w.Prior)
		assert.Equal(t, shiftwatch.StatusScriptError, w.Next.Value)
		assert.Equal(t, shiftwatch.StyleFailure, w.Next.Style)
	})

	t.Run("empty schedule writes no upcoming with default style", func(t *testing.T) {
		t.Parallel()

		w := shiftwatch.Reconcile(shiftwatch.RecordsOutcome(nil), day(time.January, 1))

		assert.Nil(t, w.Prior)
		assert.Equal(t, shiftwatch.Write{Value: shiftwatch.StatusNoUpcoming}, w.Next)
	})

	t.Run("working today with a later shift", func(t *testing.T) {
		t.Parallel()

		outcome := shiftwatch.RecordsOutcome([]shiftwatch.ScheduleRecord{
			{Day: "5/3", Time: "10:00 - 18:00"},
			{Day: "5/10", Time: "12:00 - 20:00"},
		})

		w := shiftwatch.Reconcile(outcome, day(time.May, 3))

		require.NotNil(t, w.Prior)
		assert.Equal(t, "5/3 10:00 - 18:00", w.Prior.Value)
		assert.Equal(t, "5/10 12:00 - 20:00", w.Next.Value)
		assert.Equal(t, shiftwatch.StyleDefault, w.Next.Style)
	})

	t.Run("working today with nothing after", func(t *testing.T) {
		t.Parallel()

		outcome := shiftwatch.RecordsOutcome([]shiftwatch.ScheduleRecord{
			{Day: "5/3", Time: "10:00 - 18:00"},
		})

		w := shiftwatch.Reconcile(outcome, day(time.May, 3))

		require.NotNil(t, w.Prior)
		assert.Equal(t, "5/3 10:00 - 18:00", w.Prior.Value)
		assert.Equal(t, shiftwatch.StatusNoUpcoming, w.Next.Value)
	})

	t.Run("not working today leaves prior untouched", func(t *testing.T) {
		t.Parallel()

		outcome := shiftwatch.RecordsOutcome([]shiftwatch.ScheduleRecord{
			{Day: "5/10", Time: "12:00 - 20:00"},
		})

		w := shiftwatch.Reconcile(outcome, day(time.May, 1))

		assert.Nil(t, w.Prior)
		assert.Equal(t, "5/10 12:00 - 20:00", w.Next.Value)
	})

	t.Run("only the head of the schedule is compared with today", func(t *testing.T) {
		t.Parallel()

		outcome := shiftwatch.RecordsOutcome([]shiftwatch.ScheduleRecord{
			{Day: "5/10", Time: "12:00 - 20:00"},
			{Day: "5/3", Time: "10:00 - 18:00"},
		})

		w := shiftwatch.Reconcile(outcome, day(time.May, 3))

		assert.Nil(t, w.Prior)
		assert.Equal(t, "5/10 12:00 - 20:00", w.Next.Value)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		outcome := shiftwatch.RecordsOutcome([]shiftwatch.ScheduleRecord{
			{Day: "5/3", Time: "10:00 - 18:00"},
			{Day: "5/10", Time: "12:00 - 20:00"},
		})
		today := day(time.May, 3)

		assert.Equal(t, shiftwatch.Reconcile(outcome, today), shiftwatch.Reconcile(outcome, today))
	})
}

func TestWrites_Update(t *testing.T) {
	t.Parallel()

	t.Run("omits prior and style when not decided", func(t *testing.T) {
		t.Parallel()

		upd := shiftwatch.Writes{Next: shiftwatch.Write{Value: "5/10 12:00 - 20:00"}}.Update()

		assert.Nil(t, upd.PriorStatus)
		assert.Nil(t, upd.NextStyle)
		assert.Nil(t, upd.Name)
		assert.Nil(t, upd.URL)
		require.NotNil(t, upd.NextStatus)
		assert.Equal(t, "5/10 12:00 - 20:00", *upd.NextStatus)
	})

	t.Run("carries prior and failure style", func(t *testing.T) {
		t.Parallel()

		upd := shiftwatch.Writes{
			Prior: &shiftwatch.Write{Value: "5/3 10:00 - 18:00"},
			Next:  shiftwatch.Write{Value: shiftwatch.StatusWithdrawn, Style: shiftwatch.StyleFailure},
		}.Update()

		require.NotNil(t, upd.PriorStatus)
		assert.Equal(t, "5/3 10:00 - 18:00", *upd.PriorStatus)
		require.NotNil(t, upd.NextStyle)
		assert.Equal(t, shiftwatch.StyleFailure, *upd.NextStyle)
	})
}

func TestStyle_Color(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#b7e1cd", shiftwatch.StyleSuccess.Color())
	assert.Equal(t, "#f4c7c3", shiftwatch.StyleFailure.Color())
	assert.Empty(t, shiftwatch.StyleDefault.Color())
}
