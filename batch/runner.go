// Package batch runs reconciliation passes over the row store.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/k1-c/shiftwatch"
	"golang.org/x/sync/errgroup"
)

// Runner performs one pass: every entity with a URL is fetched, classified,
// reconciled against today and written back in row order.
type Runner struct {
	Entities shiftwatch.EntityService
	Fetcher  shiftwatch.Fetcher

	// Observations, if set, receives one observation per processed entity.
	Observations shiftwatch.ObservationService

	// Limiter, if set, paces fetches per host.
	Limiter shiftwatch.DomainLimiter

	// Concurrency bounds in-flight fetches. Zero means sequential.
	Concurrency int

	// StartRow skips rows before it.
	StartRow int

	// RetryDelays are waited between attempts for unknown errors.
	RetryDelays []time.Duration

	// Location is the zone of "today". Defaults to UTC when nil.
	Location *time.Location

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	Logger *slog.Logger
}

// Result summarizes a finished pass.
type Result struct {
	Processed int
	Skipped   int
	Changed   int
	Kinds     map[shiftwatch.OutcomeKind]int
}

// Failed returns how many processed entities did not yield a schedule.
func (r *Result) Failed() int {
	return r.Processed - r.Kinds[shiftwatch.OutcomeRecords]
}

// Run performs one pass tagged with batchID. Fetch and parse failures are
// written as status markers and never abort the pass; the cause of an
// unknown error is logged at warn level. An error is returned
// only when the row store fails or ctx is done; rows before the failure
// keep their new values.
func (r *Runner) Run(ctx context.Context, batchID string) (*Result, error) {
	begin := time.Now()
	logger := r.logger()

	entities, err := r.Entities.FindEntities(ctx, shiftwatch.EntityFilter{StartRow: r.StartRow})
	if err != nil {
		return nil, fmt.Errorf("listing entities: %w", err)
	}

	result := &Result{Kinds: make(map[shiftwatch.OutcomeKind]int)}
	targets := make([]*shiftwatch.Entity, 0, len(entities))
	for _, e := range entities {
		if e.URL == "" {
			result.Skipped++
			continue
		}
		targets = append(targets, e)
	}

	outcomes, err := r.fetchAll(ctx, targets)
	if err != nil {
		return nil, err
	}

	today := r.now().In(r.location())
	for i, e := range targets {
		outcome := outcomes[i]
		if outcome.Kind == shiftwatch.OutcomeUnknownError {
			logger.Warn("fetch failed", "row", e.Row, "url", e.URL, "err", outcome.Err)
		}
		writes := shiftwatch.Reconcile(outcome, today)

		if _, err := r.Entities.UpdateEntity(ctx, e.Row, writes.Update()); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", e.Row, err)
		}

		changed, err := r.observe(ctx, batchID, e.Row, outcome)
		if err != nil {
			return nil, fmt.Errorf("recording row %d: %w", e.Row, err)
		}
		if changed {
			result.Changed++
			logger.Info("schedule changed", "row", e.Row, "outcome", outcome.Kind.String(), "next", writes.Next.Value)
		}

		result.Processed++
		result.Kinds[outcome.Kind]++
	}

	logger.Info("pass finished",
		"batch", batchID,
		"processed", result.Processed,
		"skipped", result.Skipped,
		"failed", result.Failed(),
		"changed", result.Changed,
		"duration", time.Since(begin),
	)

	return result, nil
}

// fetchAll fetches every target with bounded concurrency. Outcomes are
// stored by position so writes can follow row order.
func (r *Runner) fetchAll(ctx context.Context, targets []*shiftwatch.Entity) ([]shiftwatch.Outcome, error) {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	outcomes := make([]shiftwatch.Outcome, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, e := range targets {
		g.Go(func() error {
			if r.Limiter != nil {
				if err := r.Limiter.Wait(gctx, hostOf(e.URL)); err != nil {
					return fmt.Errorf("waiting for rate limit: %w", err)
				}
			}
			outcomes[i] = fetchWithRetry(gctx, r.Fetcher, e.URL, r.RetryDelays, r.logger())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Outcomes fetched under a canceled context are not worth writing.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return outcomes, nil
}

// observe records the outcome and reports whether it differs from the
// previous observation of the same row.
func (r *Runner) observe(ctx context.Context, batchID string, row int, outcome shiftwatch.Outcome) (bool, error) {
	if r.Observations == nil || batchID == "" {
		return false, nil
	}

	prev, err := r.Observations.FindObservations(ctx, shiftwatch.ObservationFilter{Row: &row, Limit: 1})
	if err != nil {
		return false, err
	}

	obs := shiftwatch.NewObservation(batchID, row, outcome)
	if err := r.Observations.CreateObservation(ctx, obs); err != nil {
		return false, err
	}

	return len(prev) == 0 || prev[0].ContentHash != obs.ContentHash, nil
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func (r *Runner) location() *time.Location {
	if r.Location != nil {
		return r.Location
	}
	return time.UTC
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// hostOf returns the host of rawURL, or rawURL itself if it does not parse.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
