package services

import (
	"context"
	"fmt"

	"timekeeper/internal/domain"
	"timekeeper/internal/logging"
	"timekeeper/internal/ports"
)

// TagService handles tag commands from the interface layer
type TagService struct {
	tags ports.TagRepository
}

// NewTagService creates a new TagService
func NewTagService(tags ports.TagRepository) *TagService {
	return &TagService{
		tags: tags,
	}
}

// List returns the visible tags
func (s *TagService) List(ctx context.Context) ([]domain.Tag, error) {
	tags, err := s.tags.All(ctx)
	if err != nil {
		logging.Logger.Error("Failed to list tags", "error", err)
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

// Find returns the visible tag called name
func (s *TagService) Find(ctx context.Context, name string) (*domain.Tag, error) {
	tag, err := s.tags.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to find tag: %w", err)
	}
	return tag, nil
}

// Create adds a tag
func (s *TagService) Create(ctx context.Context, name string) (*domain.Tag, error) {
	logging.Logger.Info("Creating tag", "name", name)

	tag, err := s.tags.Create(ctx, name)
	if err != nil {
		logging.Logger.Error("Failed to create tag", "name", name, "error", err)
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	logging.Logger.Info("Tag created", "id", tag.ID, "name", tag.Name)
	return tag, nil
}

// Rename renames the visible tag called oldName
func (s *TagService) Rename(ctx context.Context, oldName, newName string) error {
	logging.Logger.Info("Renaming tag", "from", oldName, "to", newName)

	tag, err := s.tags.FindByName(ctx, oldName)
	if err != nil {
		logging.Logger.Error("Failed to find tag to rename", "name", oldName, "error", err)
		return fmt.Errorf("failed to rename tag: %w", err)
	}

	if err := s.tags.Rename(ctx, *tag, newName); err != nil {
		logging.Logger.Error("Failed to rename tag", "id", tag.ID, "error", err)
		return fmt.Errorf("failed to rename tag: %w", err)
	}

	logging.Logger.Info("Tag renamed", "id", tag.ID, "name", newName)
	return nil
}

// Delete hides the tag called name. Blocks keep their reference to it.
func (s *TagService) Delete(ctx context.Context, name string) error {
	logging.Logger.Info("Deleting tag", "name", name)

	tag, err := s.tags.FindByName(ctx, name)
	if err != nil {
		logging.Logger.Error("Failed to find tag to delete", "name", name, "error", err)
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	if err := s.tags.Delete(ctx, *tag); err != nil {
		logging.Logger.Error("Failed to delete tag", "id", tag.ID, "error", err)
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	logging.Logger.Info("Tag marked for deletion", "id", tag.ID)
	return nil
}

// Purge physically removes deleted tags no block references
func (s *TagService) Purge(ctx context.Context) (int64, error) {
	count, err := s.tags.PurgeDeleted(ctx)
	if err != nil {
		logging.Logger.Error("Failed to purge deleted tags", "error", err)
		return 0, fmt.Errorf("failed to purge tags: %w", err)
	}

	logging.Logger.Info("Purged deleted tags", "count", count)
	return count, nil
}
