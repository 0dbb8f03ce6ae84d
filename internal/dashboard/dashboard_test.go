package dashboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/asw0210/htmx-demo/internal/dashboard"
)

func fastConfig() dashboard.Config {
	return dashboard.Config{
		Workers:     3,
		MinDuration: time.Millisecond,
		MaxDuration: 5 * time.Millisecond,
		Retention:   50 * time.Millisecond,
	}
}

func TestPollUnknownRun(t *testing.T) {
	svc := dashboard.NewService(zap.NewNop(), fastConfig())

	tiles, next, done := svc.Poll("no-such-run", 7)
	assert.Empty(t, tiles)
	assert.Equal(t, 7, next)
	assert.True(t, done)
}

func TestRunCompletes(t *testing.T) {
	svc := dashboard.NewService(zap.NewNop(), fastConfig())
	runID := svc.StartRun()
	require.NotEmpty(t, runID)

	require.Eventually(t, func() bool {
		_, _, done := svc.Poll(runID, 0)
		return done
	}, time.Second, time.Millisecond)

	tiles, next, done := svc.Poll(runID, 0)
	assert.Len(t, tiles, 3)
	assert.Equal(t, 3, next)
	assert.True(t, done)

	seen := map[int]bool{}
	for _, tile := range tiles {
		seen[tile.WorkerID] = true
		assert.NotEmpty(t, tile.Summary)
		assert.NotEmpty(t, tile.CompletedAt)
	}
	assert.Len(t, seen, 3)
}

func TestPollOffsetSkipsSeenTiles(t *testing.T) {
	svc := dashboard.NewService(zap.NewNop(), fastConfig())
	runID := svc.StartRun()

	require.Eventually(t, func() bool {
		_, _, done := svc.Poll(runID, 0)
		return done
	}, time.Second, time.Millisecond)

	tiles, next, done := svc.Poll(runID, 2)
	assert.Len(t, tiles, 1)
	assert.Equal(t, 3, next)
	assert.True(t, done)

	// Past the end: nothing new, still done.
	tiles, next, done = svc.Poll(runID, 99)
	assert.Empty(t, tiles)
	assert.Equal(t, 3, next)
	assert.True(t, done)

	// Negative offsets are clamped to the start.
	tiles, _, _ = svc.Poll(runID, -1)
	assert.Len(t, tiles, 3)
}

func TestJanitorExpiresRuns(t *testing.T) {
	svc := dashboard.NewService(zap.NewNop(), fastConfig())
	runID := svc.StartRun()

	require.Eventually(t, func() bool {
		_, _, done := svc.Poll(runID, 0)
		return done
	}, time.Second, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go svc.RunJanitor(ctx, 10*time.Millisecond)

	// Once retention passes the run disappears and polls degrade to the
	// unknown-run shape.
	require.Eventually(t, func() bool {
		tiles, _, done := svc.Poll(runID, 0)
		return done && len(tiles) == 0
	}, time.Second, 5*time.Millisecond)
}
