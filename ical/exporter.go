// Package ical exports reconciled shifts as an iCalendar feed.
package ical

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/k1-c/shiftwatch"
)

// DefaultProductID is the PRODID written to exported calendars.
const DefaultProductID = "-//shiftwatch//shiftwatch//EN"

// eventNamespace scopes event UIDs so that the same shift gets the same UID
// in every export.
var eventNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/k1-c/shiftwatch/ical"))

// Exporter writes the shifts held in the row store as calendar events.
// Only status cells that read as a shift become events; markers such as
// shiftwatch.StatusWithdrawn are ignored.
type Exporter struct {
	Entities shiftwatch.EntityService

	// Location is the zone shift times are read in. Defaults to UTC when nil.
	Location *time.Location

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	ProductID string
}

// Export writes an iCalendar feed to w and returns the number of events.
func (e *Exporter) Export(ctx context.Context, w io.Writer) (int, error) {
	entities, err := e.Entities.FindEntities(ctx, shiftwatch.EntityFilter{})
	if err != nil {
		return 0, fmt.Errorf("listing entities: %w", err)
	}

	now := e.now()
	today := now.In(e.location())

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(e.productID())

	var n int
	for _, entity := range entities {
		seen := make(map[string]bool)
		for _, status := range []string{entity.PriorStatus, entity.NextStatus} {
			rec, ok := shiftwatch.ParseShift(status)
			if !ok || seen[rec.String()] {
				continue
			}
			seen[rec.String()] = true

			start, end, err := rec.Interval(today)
			if err != nil {
				continue
			}

			event := cal.AddEvent(eventID(entity.Row, start))
			event.SetDtStampTime(now)
			event.SetStartAt(start)
			event.SetEndAt(end)
			event.SetSummary(summary(entity))
			event.SetDescription(rec.String())
			if entity.URL != "" {
				event.SetURL(entity.URL)
			}
			n++
		}
	}

	if err := cal.SerializeTo(w); err != nil {
		return 0, fmt.Errorf("writing calendar: %w", err)
	}
	return n, nil
}

func (e *Exporter) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *Exporter) location() *time.Location {
	if e.Location != nil {
		return e.Location
	}
	return time.UTC
}

func (e *Exporter) productID() string {
	if e.ProductID != "" {
		return e.ProductID
	}
	return DefaultProductID
}

func eventID(row int, start time.Time) string {
	name := strconv.Itoa(row) + "@" + start.UTC().Format(time.RFC3339)
	return uuid.NewSHA1(eventNamespace, []byte(name)).String()
}

func summary(entity *shiftwatch.Entity) string {
	if entity.Name != "" {
		return entity.Name
	}
	return "row " + strconv.Itoa(entity.Row)
}
