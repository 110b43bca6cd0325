package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/k1-c/shiftwatch"
	main "github.com/k1-c/shiftwatch/cmd/shiftwatch"
	"github.com/k1-c/shiftwatch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints rows with statuses and styles", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Entities: &mock.EntityService{
				FindEntitiesFn: func(ctx context.Context, filter shiftwatch.EntityFilter) ([]*shiftwatch.Entity, error) {
					return []*shiftwatch.Entity{
						{Row: 1, Name: "Aoi", URL: "https://example.com/girlid-1/", PriorStatus: "5/3 10:00 - 18:00", NextStatus: "5/10 12:00 - 20:00"},
						{Row: 2, URL: "https://example.com/girlid-2/", NextStatus: shiftwatch.StatusWithdrawn, NextStyle: shiftwatch.StyleFailure},
						{Row: 3},
					}, nil
				},
			},
		}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t,
			"1  Aoi  https://example.com/girlid-1/  5/3 10:00 - 18:00  5/10 12:00 - 20:00\n"+
				"2  -  https://example.com/girlid-2/  -  退店 [failure]\n"+
				"3  -  -  -  -\n",
			stdout.String())
	})

	t.Run("shows hint when empty", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Entities: &mock.EntityService{
				FindEntitiesFn: func(ctx context.Context, filter shiftwatch.EntityFilter) ([]*shiftwatch.Entity, error) {
					return nil, nil
				},
			},
		}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "shiftwatch add")
	})

	t.Run("reports store error", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Entities: &mock.EntityService{
				FindEntitiesFn: func(ctx context.Context, filter shiftwatch.EntityFilter) ([]*shiftwatch.Entity, error) {
					return nil, errors.New("disk I/O error")
				},
			},
		}

		err := (&main.ListCmd{}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, "error: disk I/O error\n", stderr.String())
	})
}
