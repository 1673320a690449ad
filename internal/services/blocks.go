package services

import (
	"context"
	"fmt"

	"timekeeper/internal/domain"
	"timekeeper/internal/logging"
	"timekeeper/internal/ports"
)

// BlockService handles block edits from the interface layer
type BlockService struct {
	blocks ports.BlockRepository
	tags   ports.TagRepository
}

// NewBlockService creates a new BlockService
func NewBlockService(blocks ports.BlockRepository, tags ports.TagRepository) *BlockService {
	return &BlockService{
		blocks: blocks,
		tags:   tags,
	}
}

// Get returns a block by id
func (s *BlockService) Get(ctx context.Context, id int64) (*domain.Block, error) {
	block, err := s.blocks.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get block: %w", err)
	}
	return block, nil
}

// Retag points a block at another tag, or clears its tag
func (s *BlockService) Retag(ctx context.Context, params RetagParams) (*domain.Block, error) {
	logging.Logger.Info("Retagging block", "block", params.BlockID, "tag", params.TagName, "clear", params.Clear)

	block, err := s.blocks.Get(ctx, params.BlockID)
	if err != nil {
		logging.Logger.Error("Failed to find block to retag", "block", params.BlockID, "error", err)
		return nil, fmt.Errorf("failed to retag block: %w", err)
	}

	block.Tag = nil
	if !params.Clear {
		tag, err := s.tags.FindByName(ctx, params.TagName)
		if err != nil {
			logging.Logger.Error("Failed to find tag", "name", params.TagName, "error", err)
			return nil, fmt.Errorf("failed to retag block: %w", err)
		}
		block.Tag = tag
	}

	if err := s.blocks.UpdateTag(ctx, *block); err != nil {
		logging.Logger.Error("Failed to update block tag", "block", block.ID, "error", err)
		return nil, fmt.Errorf("failed to retag block: %w", err)
	}

	logging.Logger.Info("Block retagged", "block", block.ID, "tag", block.TagName())
	return block, nil
}

// RetagRunning sets the tag of the running block
func (s *BlockService) RetagRunning(ctx context.Context, tag *domain.Tag) (*domain.Block, error) {
	current, err := s.blocks.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retag running block: %w", err)
	}
	if current == nil {
		return nil, fmt.Errorf("failed to retag running block: %w", domain.ErrNotRunning)
	}

	current.Tag = tag
	if err := s.blocks.UpdateTag(ctx, *current); err != nil {
		logging.Logger.Error("Failed to update running block tag", "block", current.ID, "error", err)
		return nil, fmt.Errorf("failed to retag running block: %w", err)
	}
	return current, nil
}

// Delete removes a block. Deleting the running block ends tracking.
func (s *BlockService) Delete(ctx context.Context, id int64) error {
	logging.Logger.Info("Deleting block", "block", id)

	block, err := s.blocks.Get(ctx, id)
	if err != nil {
		logging.Logger.Error("Failed to find block to delete", "block", id, "error", err)
		return fmt.Errorf("failed to delete block: %w", err)
	}

	if err := s.blocks.Delete(ctx, *block); err != nil {
		logging.Logger.Error("Failed to delete block", "block", id, "error", err)
		return fmt.Errorf("failed to delete block: %w", err)
	}

	logging.Logger.Info("Block deleted", "block", id, "wasRunning", block.Running)
	return nil
}
