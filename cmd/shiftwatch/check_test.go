package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/k1-c/shiftwatch"
	main "github.com/k1-c/shiftwatch/cmd/shiftwatch"
	"github.com/k1-c/shiftwatch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCmd_Run(t *testing.T) {
	t.Parallel()

	today := func() time.Time {
		return time.Date(2025, time.May, 3, 12, 0, 0, 0, time.UTC)
	}

	t.Run("shows records and planned writes", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Now:    today,
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) shiftwatch.Outcome {
					return shiftwatch.RecordsOutcome([]shiftwatch.ScheduleRecord{
						{Day: "5/3", Time: "10:00 - 18:00"},
						{Day: "5/10", Time: "12:00 - 20:00"},
					})
				},
			},
		}

		err := (&main.CheckCmd{URL: "https://example.com/girlid-1/"}).Run(deps)

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "outcome: records")
		assert.Contains(t, out, "  5/3 10:00 - 18:00\n")
		assert.Contains(t, out, "prior: 5/3 10:00 - 18:00\n")
		assert.Contains(t, out, "next: 5/10 12:00 - 20:00\n")
		assert.NotContains(t, out, "style:")
	})

	t.Run("shows failure marker and cause", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Now:    today,
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) shiftwatch.Outcome {
					return shiftwatch.UnknownErrorOutcome(errors.New("connection reset"))
				},
			},
		}

		err := (&main.CheckCmd{URL: "https://example.com/girlid-1/"}).Run(deps)

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "cause: connection reset")
		assert.Contains(t, out, "next: "+shiftwatch.StatusScriptError)
		assert.Contains(t, out, "style: failure (#f4c7c3)")
		assert.NotContains(t, out, "prior:")
	})

	t.Run("rejects invalid URL without fetching", func(t *testing.T) {
		t.Parallel()

		for _, url := range []string{"/girlid-1/", "ftp://example.com/"} {
			stderr := &bytes.Buffer{}
			deps := &main.Dependencies{
				Ctx:    context.Background(),
				Stdout: &bytes.Buffer{},
				Stderr: stderr,
				Fetcher: &mock.Fetcher{
					FetchFn: func(ctx context.Context, url string) shiftwatch.Outcome {
						t.Fatal("fetch should not be called")
						return shiftwatch.Outcome{}
					},
				},
			}

			err := (&main.CheckCmd{URL: url}).Run(deps)

			require.Error(t, err, url)
			assert.Equal(t, shiftwatch.EINVALID, shiftwatch.ErrorCode(err), url)
			assert.Contains(t, stderr.String(), "error:")
		}
	})
}
