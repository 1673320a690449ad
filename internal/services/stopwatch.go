package services

import (
	"context"
	"fmt"
	"time"

	"timekeeper/internal/domain"
	"timekeeper/internal/logging"
	"timekeeper/internal/ports"
)

// StopwatchState is derived from the store, never persisted
type StopwatchState int

const (
	StateStopped StopwatchState = iota
	StateRunning
)

func (s StopwatchState) String() string {
	if s == StateRunning {
		return "running"
	}
	return "stopped"
}

// StopwatchService is the start/stop state machine over the block store
type StopwatchService struct {
	blocks ports.BlockRepository
	now    func() time.Time
}

// NewStopwatchService creates a new StopwatchService. A nil clock uses time.Now.
func NewStopwatchService(blocks ports.BlockRepository, now func() time.Time) *StopwatchService {
	if now == nil {
		now = time.Now
	}
	return &StopwatchService{
		blocks: blocks,
		now:    now,
	}
}

// Start begins tracking a new block. Starting while running is rejected with
// ErrAlreadyRunning and leaves the running block untouched.
func (s *StopwatchService) Start(ctx context.Context, tag *domain.Tag) (*domain.Block, error) {
	current, err := s.blocks.Current(ctx)
	if err != nil {
		logging.Logger.Error("Failed to read current block", "error", err)
		return nil, fmt.Errorf("failed to start stopwatch: %w", err)
	}
	if current != nil {
		logging.Logger.Warn("Start requested while running", "block", current.ID)
		return nil, fmt.Errorf("failed to start stopwatch: %w", domain.ErrAlreadyRunning)
	}

	block, err := s.blocks.Insert(ctx, s.now(), func(b *domain.Block) {
		b.Running = true
		b.Tag = tag
	})
	if err != nil {
		logging.Logger.Error("Failed to insert running block", "error", err)
		return nil, fmt.Errorf("failed to start stopwatch: %w", err)
	}

	logging.Logger.Info("Stopwatch started", "block", block.ID, "tag", block.TagName())
	return block, nil
}

// Stop closes the running block. Stopping while stopped is rejected with
// ErrNotRunning.
func (s *StopwatchService) Stop(ctx context.Context) (*domain.Block, error) {
	current, err := s.blocks.Current(ctx)
	if err != nil {
		logging.Logger.Error("Failed to read current block", "error", err)
		return nil, fmt.Errorf("failed to stop stopwatch: %w", err)
	}
	if current == nil {
		logging.Logger.Warn("Stop requested while stopped")
		return nil, fmt.Errorf("failed to stop stopwatch: %w", domain.ErrNotRunning)
	}

	now := s.now()
	if err := s.blocks.Stop(ctx, now); err != nil {
		logging.Logger.Error("Failed to stop running block", "block", current.ID, "error", err)
		return nil, fmt.Errorf("failed to stop stopwatch: %w", err)
	}

	current.End = now
	current.Running = false
	logging.Logger.Info("Stopwatch stopped", "block", current.ID, "duration", current.Duration())
	return current, nil
}

// Toggle starts a block with tag when stopped, and stops the running block otherwise
func (s *StopwatchService) Toggle(ctx context.Context, tag *domain.Tag) (*domain.Block, error) {
	state, err := s.State(ctx)
	if err != nil {
		return nil, err
	}
	if state == StateRunning {
		return s.Stop(ctx)
	}
	return s.Start(ctx, tag)
}

// Tick refreshes the end time of the running block, if any
func (s *StopwatchService) Tick(ctx context.Context) error {
	if err := s.blocks.UpdateRunningEndTime(ctx, s.now()); err != nil {
		logging.Logger.Error("Failed to refresh running block", "error", err)
		return fmt.Errorf("failed to refresh running block: %w", err)
	}
	return nil
}

// Current refreshes and returns the running block, or nil when stopped
func (s *StopwatchService) Current(ctx context.Context) (*domain.Block, error) {
	if err := s.Tick(ctx); err != nil {
		return nil, err
	}

	block, err := s.blocks.Current(ctx)
	if err != nil {
		logging.Logger.Error("Failed to read current block", "error", err)
		return nil, fmt.Errorf("failed to get current block: %w", err)
	}
	return block, nil
}

// State reports Running iff a running block exists
func (s *StopwatchService) State(ctx context.Context) (StopwatchState, error) {
	block, err := s.blocks.Current(ctx)
	if err != nil {
		return StateStopped, fmt.Errorf("failed to get stopwatch state: %w", err)
	}
	if block == nil {
		return StateStopped, nil
	}
	return StateRunning, nil
}
