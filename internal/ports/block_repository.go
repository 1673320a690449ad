package ports

import (
	"context"
	"time"

	"timekeeper/internal/domain"
)

// BlockInitializer customizes a new block before it is persisted
type BlockInitializer func(block *domain.Block)

// BlockReader queries stored blocks
type BlockReader interface {
	Current(ctx context.Context) (*domain.Block, error)
	Get(ctx context.Context, id int64) (*domain.Block, error)
	InInterval(ctx context.Context, from, to time.Time) ([]domain.Block, error)
	InRange(ctx context.Context, from, to time.Time) ([]domain.Block, error)
	TotalTime(ctx context.Context, now time.Time) (time.Duration, error)
}

// BlockWriter creates, edits, and deletes blocks
type BlockWriter interface {
	Delete(ctx context.Context, block domain.Block) error
	Insert(ctx context.Context, now time.Time, init BlockInitializer) (*domain.Block, error)
	UpdateTag(ctx context.Context, block domain.Block) error
}

// RunningBlockUpdater mutates the single running block
type RunningBlockUpdater interface {
	Stop(ctx context.Context, now time.Time) error
	UpdateRunningEndTime(ctx context.Context, now time.Time) error
}

// BlockRepository is the composite interface
type BlockRepository interface {
	BlockReader
	BlockWriter
	RunningBlockUpdater
}
