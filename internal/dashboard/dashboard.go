// Package dashboard simulates background work for the async dashboard demo.
//
// Starting a run launches a handful of workers that each sleep for a random
// duration and then append a result tile under the run lock. The page polls
// with an offset and receives only the tiles it has not seen yet.
package dashboard

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/asw0210/htmx-demo/pkg/metrics"
)

// Tile is one completed worker's result.
type Tile struct {
	WorkerID    int
	DurationSec int
	CompletedAt string
	Summary     string
}

// Config controls how many workers a run spawns and how long they sleep.
type Config struct {
	Workers     int
	MinDuration time.Duration
	MaxDuration time.Duration
	Retention   time.Duration
}

type run struct {
	created time.Time
	results []Tile
	total   int
}

// Service tracks in-flight runs. The map and every run inside it are guarded
// by the service mutex; workers are fire-and-forget goroutines that take the
// lock only to append their result.
type Service struct {
	logger *zap.Logger
	cfg    Config

	mu   sync.Mutex
	runs map[string]*run
}

// NewService creates a dashboard service.
func NewService(logger *zap.Logger, cfg Config) *Service {
	if cfg.Workers <= 0 {
		cfg.Workers = 5
	}
	if cfg.MaxDuration < cfg.MinDuration {
		cfg.MaxDuration = cfg.MinDuration
	}
	return &Service{
		logger: logger,
		cfg:    cfg,
		runs:   make(map[string]*run),
	}
}

// StartRun registers a new run and launches its workers.
func (s *Service) StartRun() string {
	runID := uuid.NewString()

	s.mu.Lock()
	s.runs[runID] = &run{created: time.Now(), total: s.cfg.Workers}
	s.mu.Unlock()

	for idx := 1; idx <= s.cfg.Workers; idx++ {
		go s.worker(runID, idx)
	}

	metrics.RunsStarted.Inc()
	s.logger.Info("dashboard run started",
		zap.String("run_id", runID),
		zap.Int("workers", s.cfg.Workers))
	return runID
}

func (s *Service) worker(runID string, workerID int) {
	duration := s.cfg.MinDuration
	if span := s.cfg.MaxDuration - s.cfg.MinDuration; span > 0 {
		duration += time.Duration(rand.Int63n(int64(span) + 1))
	}
	time.Sleep(duration)

	seconds := int(duration.Round(time.Second) / time.Second)
	tile := Tile{
		WorkerID:    workerID,
		DurationSec: seconds,
		CompletedAt: time.Now().Format("15:04:05"),
		Summary:     summaryLine(workerID, seconds),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.runs[runID]
	if !ok {
		// Run was expired while the worker slept.
		return
	}
	r.results = append(r.results, tile)
	metrics.WorkersCompleted.Inc()
}

func summaryLine(workerID, seconds int) string {
	return fmt.Sprintf("Worker %d finished after %ds.", workerID, seconds)
}

// Poll returns the tiles past offset, the next offset, and whether every
// worker has reported. An unknown run id degrades to an empty, done result
// so a stale page stops polling instead of erroring.
func (s *Service) Poll(runID string, offset int) (tiles []Tile, next int, done bool) {
	if offset < 0 {
		offset = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.runs[runID]
	if !ok {
		return nil, offset, true
	}
	if offset > len(r.results) {
		offset = len(r.results)
	}

	tiles = make([]Tile, len(r.results)-offset)
	copy(tiles, r.results[offset:])
	next = offset + len(tiles)
	done = next >= r.total
	return tiles, next, done
}

// RunJanitor expires old runs until the context is cancelled.
func (s *Service) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.expire(time.Now())
		}
	}
}

func (s *Service) expire(now time.Time) {
	if s.cfg.Retention <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, r := range s.runs {
		if now.Sub(r.created) > s.cfg.Retention {
			delete(s.runs, id)
			metrics.RunsExpired.Inc()
			s.logger.Debug("dashboard run expired", zap.String("run_id", id))
		}
	}
}
