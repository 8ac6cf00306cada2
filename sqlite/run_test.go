package sqlite_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/fwojciec/locrank"
	"github.com/fwojciec/locrank/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleRun() *locrank.Run {
	inputs := locrank.NewReport("input")
	inputs.Put("input_q", []locrank.Locator{
		{Selector: "#q", Rank: 1},
		{Selector: "//input[@id='q']", Rank: 4},
	})
	inputs.Put("input_2", []locrank.Locator{})
	inputs.Put("input_q", []locrank.Locator{{Selector: ".q", Rank: 2}})

	links := locrank.NewReport("a")
	links.Put("a_1", []locrank.Locator{{Selector: "//a[@href='/']", Rank: 9}})

	return &locrank.Run{
		URL:     "https://example.com",
		Reports: []*locrank.Report{inputs, locrank.NewReport("select"), links},
	}
}

func TestRunService_CreateRun(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID timestamp and content hash", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		run := sampleRun()

		err := svc.CreateRun(context.Background(), run, "<html></html>")

		require.NoError(t, err)
		assert.NotEmpty(t, run.ID)
		assert.False(t, run.CreatedAt.IsZero())
		assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}$`), run.ContentHash)
	})

	t.Run("hashes identical content identically", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		ctx := context.Background()
		a, b, c := sampleRun(), sampleRun(), sampleRun()

		require.NoError(t, svc.CreateRun(ctx, a, "<p>same</p>"))
		require.NoError(t, svc.CreateRun(ctx, b, "<p>same</p>"))
		require.NoError(t, svc.CreateRun(ctx, c, "<p>other</p>"))

		assert.Equal(t, a.ContentHash, b.ContentHash)
		assert.NotEqual(t, a.ContentHash, c.ContentHash)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("rejects run without URL", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))

		err := svc.CreateRun(context.Background(), &locrank.Run{}, "")

		assert.Equal(t, locrank.EINVALID, locrank.ErrorCode(err))
	})
}

func TestRunService_FindRunByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips reports in order", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		ctx := context.Background()
		run := sampleRun()
		require.NoError(t, svc.CreateRun(ctx, run, "<html></html>"))

		got, err := svc.FindRunByID(ctx, run.ID)

		require.NoError(t, err)
		assert.Equal(t, run.ID, got.ID)
		assert.Equal(t, run.URL, got.URL)
		assert.Equal(t, run.ContentHash, got.ContentHash)
		assert.True(t, run.CreatedAt.Equal(got.CreatedAt))
		require.Len(t, got.Reports, 3)
		assert.Equal(t, "input", got.Reports[0].Tag)
		assert.Equal(t, "select", got.Reports[1].Tag)
		assert.Equal(t, "a", got.Reports[2].Tag)
		assert.Equal(t, run.Reports[0].Entries, got.Reports[0].Entries)
		assert.Equal(t, 1, got.Reports[0].Replaced)
		assert.Empty(t, got.Reports[1].Entries)
		assert.Equal(t, run.Reports[2].Entries, got.Reports[2].Entries)
	})

	t.Run("formats identically after round-trip", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		ctx := context.Background()
		run := sampleRun()
		require.NoError(t, svc.CreateRun(ctx, run, "<html></html>"))

		got, err := svc.FindRunByID(ctx, run.ID)

		require.NoError(t, err)
		assert.Equal(t, locrank.FormatReports(run.Reports), locrank.FormatReports(got.Reports))
	})

	t.Run("supports lookup by name after load", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		ctx := context.Background()
		run := sampleRun()
		require.NoError(t, svc.CreateRun(ctx, run, ""))

		got, err := svc.FindRunByID(ctx, run.ID)
		require.NoError(t, err)

		locs, ok := got.Reports[0].Get("input_q")
		assert.True(t, ok)
		assert.Equal(t, []locrank.Locator{{Selector: ".q", Rank: 2}}, locs)
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))

		_, err := svc.FindRunByID(context.Background(), "missing")

		assert.Equal(t, locrank.ENOTFOUND, locrank.ErrorCode(err))
	})
}

func TestRunService_FindRuns(t *testing.T) {
	t.Parallel()

	t.Run("returns newest first without reports", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		ctx := context.Background()
		first, second := sampleRun(), sampleRun()
		second.URL = "https://example.org"
		require.NoError(t, svc.CreateRun(ctx, first, ""))
		require.NoError(t, svc.CreateRun(ctx, second, ""))

		runs, err := svc.FindRuns(ctx, locrank.RunFilter{})

		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.Equal(t, second.ID, runs[0].ID)
		assert.Equal(t, first.ID, runs[1].ID)
		assert.Nil(t, runs[0].Reports)
	})

	t.Run("filters by URL", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		ctx := context.Background()
		first, second := sampleRun(), sampleRun()
		second.URL = "https://example.org"
		require.NoError(t, svc.CreateRun(ctx, first, ""))
		require.NoError(t, svc.CreateRun(ctx, second, ""))

		url := "https://example.org"
		runs, err := svc.FindRuns(ctx, locrank.RunFilter{URL: &url})

		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, second.ID, runs[0].ID)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		ctx := context.Background()
		var ids []string
		for range 3 {
			run := sampleRun()
			require.NoError(t, svc.CreateRun(ctx, run, ""))
			ids = append(ids, run.ID)
		}

		limited, err := svc.FindRuns(ctx, locrank.RunFilter{Limit: 1})
		require.NoError(t, err)
		require.Len(t, limited, 1)
		assert.Equal(t, ids[2], limited[0].ID)

		offset, err := svc.FindRuns(ctx, locrank.RunFilter{Offset: 1})
		require.NoError(t, err)
		require.Len(t, offset, 2)
		assert.Equal(t, ids[1], offset[0].ID)
	})

	t.Run("returns empty result for empty archive", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))

		runs, err := svc.FindRuns(context.Background(), locrank.RunFilter{})

		require.NoError(t, err)
		assert.Empty(t, runs)
	})
}

func TestRunService_DeleteRun(t *testing.T) {
	t.Parallel()

	t.Run("removes run and its reports", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()
		run := sampleRun()
		require.NoError(t, svc.CreateRun(ctx, run, ""))

		require.NoError(t, svc.DeleteRun(ctx, run.ID))

		_, err := svc.FindRunByID(ctx, run.ID)
		assert.Equal(t, locrank.ENOTFOUND, locrank.ErrorCode(err))
		for _, table := range []string{"reports", "entries", "locators"} {
			var count int
			require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count))
			assert.Zero(t, count, table)
		}
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))

		err := svc.DeleteRun(context.Background(), "missing")

		assert.Equal(t, locrank.ENOTFOUND, locrank.ErrorCode(err))
	})
}

func TestRunService_CreatedAtPrecision(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewRunService(setupTestDB(t))
	run := sampleRun()
	require.NoError(t, svc.CreateRun(context.Background(), run, ""))

	assert.Equal(t, run.CreatedAt, run.CreatedAt.Truncate(time.Second))
	assert.Equal(t, time.UTC, run.CreatedAt.Location())
}
