package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/suitter-labs/suitter-indexer/internal/adapter"
	"github.com/suitter-labs/suitter-indexer/internal/domain"
	"github.com/suitter-labs/suitter-indexer/internal/index"
	"github.com/suitter-labs/suitter-indexer/internal/logger"
	"github.com/suitter-labs/suitter-indexer/internal/providers/sui"
)

const (
	DEFAULT_SWEEP_INTERVAL = 15 * time.Minute
	DEFAULT_WORKER_POOL    = 4
)

// IndexHealthSweeperConfig holds configuration for the index health sweeper
type IndexHealthSweeperConfig struct {
	BatchSize      int           // object ids per multi-get call
	WorkerPoolSize int           // concurrent multi-get calls
	Interval       time.Duration // pause between sweep cycles
}

// indexHealthSweeper prunes ids of deleted objects from the local index
type indexHealthSweeper struct {
	config    IndexHealthSweeperConfig
	index     index.Index
	chain     sui.Client
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewIndexHealthSweeper creates a new index health sweeper
func NewIndexHealthSweeper(config IndexHealthSweeperConfig, idx index.Index, chain sui.Client, clock adapter.Clock) Sweeper {
	if config.BatchSize <= 0 || config.BatchSize > sui.MAX_MULTI_GET_OBJECTS {
		config.BatchSize = sui.MAX_MULTI_GET_OBJECTS
	}
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = DEFAULT_WORKER_POOL
	}
	if config.Interval <= 0 {
		config.Interval = DEFAULT_SWEEP_INTERVAL
	}

	return &indexHealthSweeper{
		config:    config,
		index:     idx,
		chain:     chain,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *indexHealthSweeper) Name() string {
	return "index-health-sweeper"
}

// Start runs sweep cycles until the context is canceled or Stop is called
func (s *indexHealthSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting index health sweeper",
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
		zap.Duration("interval", s.config.Interval),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Index health sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Index health sweeper stop requested")
			return nil
		default:
			if _, err := s.runSweepCycle(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.ErrorCtx(ctx, err)
			}
			s.sleep(ctx, s.config.Interval)
		}
	}
}

// SweepOnce runs one cycle without entering the loop
func (s *indexHealthSweeper) SweepOnce(ctx context.Context) (*CycleResult, error) {
	if s.running.Load() {
		return nil, fmt.Errorf("sweeper already running")
	}
	return s.runSweepCycle(ctx)
}

// Stop gracefully stops the sweeper with timeout support
func (s *indexHealthSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping index health sweeper")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Index health sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Index health sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle checks every indexed id once and removes the dead ones from all buckets
func (s *indexHealthSweeper) runSweepCycle(ctx context.Context) (*CycleResult, error) {
	startTime := s.clock.Now()

	buckets, err := s.index.Buckets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list index buckets: %w", err)
	}

	// the same id lives in a global bucket and a scoped one; check it once
	members := make(map[string][]domain.ObjectID, len(buckets))
	seen := make(map[domain.ObjectID]struct{})
	var unique []domain.ObjectID
	for _, bucket := range buckets {
		ids := s.index.Get(ctx, bucket)
		members[bucket] = ids
		for _, id := range ids {
			key := id.Normalized()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			unique = append(unique, id)
		}
	}

	result := &CycleResult{Buckets: len(buckets), Checked: len(unique)}
	if len(unique) == 0 {
		logger.InfoCtx(ctx, "Index is empty, nothing to sweep")
		return result, nil
	}

	dead := s.findDead(ctx, unique)
	result.Dead = len(dead)

	for bucket, ids := range members {
		for _, id := range ids {
			if _, ok := dead[id.Normalized()]; !ok {
				continue
			}
			if err := s.removeWithRetry(ctx, bucket, id); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("bucket", bucket), zap.String("objectID", id.String()))
				continue
			}
			result.Removed++
		}
	}

	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.Duration("duration", s.clock.Now().Sub(startTime)),
		zap.Int("buckets", result.Buckets),
		zap.Int("checked", result.Checked),
		zap.Int("dead", result.Dead),
		zap.Int("removed", result.Removed),
	)

	return result, nil
}

// findDead returns the normalized ids whose objects no longer exist.
// Chunks that fail to load are treated as alive.
func (s *indexHealthSweeper) findDead(ctx context.Context, ids []domain.ObjectID) map[domain.ObjectID]struct{} {
	pool := pond.NewResultPool[[]domain.ObjectID](s.config.WorkerPoolSize, pond.WithContext(ctx))
	defer pool.StopAndWait()

	var tasks []pond.Result[[]domain.ObjectID]
	for start := 0; start < len(ids); start += s.config.BatchSize {
		chunk := ids[start:min(start+s.config.BatchSize, len(ids))]
		tasks = append(tasks, pool.SubmitErr(func() ([]domain.ObjectID, error) {
			return s.checkChunk(ctx, chunk)
		}))
	}

	dead := make(map[domain.ObjectID]struct{})
	for _, task := range tasks {
		gone, err := task.Wait()
		if err != nil {
			logger.WarnCtx(ctx, "Failed to check object batch, skipping", zap.Error(err))
			continue
		}
		for _, id := range gone {
			dead[id.Normalized()] = struct{}{}
		}
	}
	return dead
}

func (s *indexHealthSweeper) checkChunk(ctx context.Context, chunk []domain.ObjectID) ([]domain.ObjectID, error) {
	resps, err := s.chain.MultiGetObjects(ctx, domain.ToStrings(chunk), sui.ObjectDataOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to multi-get objects: %w", err)
	}

	var gone []domain.ObjectID
	for i, resp := range resps {
		if !resp.Error.Gone() {
			continue
		}

		id := domain.ObjectID(resp.Error.ObjectID)
		if id == "" && len(resps) == len(chunk) {
			id = chunk[i]
		}
		if id != "" {
			gone = append(gone, id)
		}
	}
	return gone, nil
}

func (s *indexHealthSweeper) removeWithRetry(ctx context.Context, bucket string, id domain.ObjectID) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = 30 * time.Second

	return backoff.RetryNotify(func() error {
		return s.index.Remove(ctx, bucket, id)
	}, backoff.WithContext(b, ctx), func(err error, next time.Duration) {
		logger.WarnCtx(ctx, "Index removal failed, retrying",
			zap.String("bucket", bucket),
			zap.Error(err),
			zap.Duration("next_retry_in", next))
	})
}

// sleep waits for the given duration unless interrupted by the context or Stop
func (s *indexHealthSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
