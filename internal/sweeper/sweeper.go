package sweeper

import (
	"context"
)

// CycleResult summarizes one pass over the index
type CycleResult struct {
	Buckets int // buckets read
	Checked int // distinct ids looked up on chain
	Dead    int // ids whose objects are deleted or wrapped
	Removed int // bucket entries removed
}

// Sweeper is a background maintenance task over the local index
type Sweeper interface {
	// Start runs cycles until the context is canceled or Stop is called
	Start(ctx context.Context) error

	// SweepOnce runs a single cycle and returns its summary
	SweepOnce(ctx context.Context) (*CycleResult, error)

	// Stop waits for the running cycle to finish
	Stop(ctx context.Context) error

	Name() string
}
