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

func discovered(urls ...string) *mock.Discoverer {
	return &mock.Discoverer{
		DiscoverFn: func(ctx context.Context, siteURL string, filter *shiftwatch.URLFilter) ([]string, error) {
			var out []string
			for _, u := range urls {
				if filter.Match(u) {
					out = append(out, u)
				}
			}
			return out, nil
		},
	}
}

func TestImportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("adds rows for new schedule pages", func(t *testing.T) {
		t.Parallel()

		var created []string
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Discoverer: discovered(
				"https://example.com/girlid-1/",
				"https://example.com/girlid-2/",
				"https://example.com/news/",
				"https://example.com/girlid-3/",
			),
			Entities: &mock.EntityService{
				FindEntitiesFn: func(ctx context.Context, filter shiftwatch.EntityFilter) ([]*shiftwatch.Entity, error) {
					return []*shiftwatch.Entity{{Row: 1, URL: "https://example.com/girlid-2/"}}, nil
				},
				CreateEntityFn: func(ctx context.Context, entity *shiftwatch.Entity) error {
					created = append(created, entity.URL)
					entity.Row = len(created) + 1
					return nil
				},
			},
		}

		err := (&main.ImportCmd{Site: "https://example.com", Include: `/girlid-[0-9]+/?\z`}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/girlid-1/", "https://example.com/girlid-3/"}, created)
		assert.Equal(t,
			"2  https://example.com/girlid-1/\n"+
				"3  https://example.com/girlid-3/\n"+
				"Imported 2 rows (1 already present)\n",
			stdout.String())
	})

	t.Run("dry run writes nothing", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Discoverer: discovered("https://example.com/girlid-1/", "https://example.com/girlid-1/diary/"),
			Entities: &mock.EntityService{
				FindEntitiesFn: func(ctx context.Context, filter shiftwatch.EntityFilter) ([]*shiftwatch.Entity, error) {
					return nil, nil
				},
				CreateEntityFn: func(ctx context.Context, entity *shiftwatch.Entity) error {
					t.Fatal("create should not be called")
					return nil
				},
			},
		}

		err := (&main.ImportCmd{Site: "https://example.com", Exclude: "/diary/", DryRun: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t,
			"https://example.com/girlid-1/\n"+
				"Would import 1 rows (0 already present)\n",
			stdout.String())
	})

	t.Run("rejects invalid pattern", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		err := (&main.ImportCmd{Site: "https://example.com", Include: "girlid-("}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, shiftwatch.EINVALID, shiftwatch.ErrorCode(err))
		assert.Contains(t, stderr.String(), "invalid include pattern")
	})

	t.Run("reports discovery error", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Discoverer: &mock.Discoverer{
				DiscoverFn: func(ctx context.Context, siteURL string, filter *shiftwatch.URLFilter) ([]string, error) {
					return nil, errors.New("HTTP 500 for https://example.com/cast.xml")
				},
			},
		}

		err := (&main.ImportCmd{Site: "https://example.com"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "HTTP 500")
	})
}
