package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"timekeeper/internal/domain"
	"timekeeper/internal/ports"
)

// TagStore implements ports.TagRepository.
// Deleted tags are flagged with to_delete and hidden from listings, while
// blocks keep resolving them until PurgeDeleted removes unreferenced ones.
type TagStore struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.TagRepository = (*TagStore)(nil)

// All returns every visible tag in insertion order
func (s *TagStore) All(ctx context.Context) ([]domain.Tag, error) {
	var models []TagModel
	err := withRetry(func() error {
		models = nil
		return s.db.WithContext(ctx).
			Where("to_delete = ?", false).
			Order("id").
			Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	tags := make([]domain.Tag, 0, len(models))
	for _, m := range models {
		tags = append(tags, tagModelToDomain(m))
	}
	return tags, nil
}

// FindByName returns the visible tag with the given name, or ErrTagNotFound
func (s *TagStore) FindByName(ctx context.Context, name string) (*domain.Tag, error) {
	name, err := domain.NormalizeTagName(name)
	if err != nil {
		return nil, err
	}

	var model TagModel
	err = withRetry(func() error {
		return s.db.WithContext(ctx).
			Where("name = ? AND to_delete = ?", name, false).
			First(&model).Error
	}, 3)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find tag %q: %w", name, domain.ErrTagNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find tag %q: %w", name, err)
	}

	tag := tagModelToDomain(model)
	return &tag, nil
}

// Create inserts a tag. Creating the name of a deleted tag revives it with its
// original id; creating a visible name fails with ErrConstraintViolation.
func (s *TagStore) Create(ctx context.Context, name string) (*domain.Tag, error) {
	name, err := domain.NormalizeTagName(name)
	if err != nil {
		return nil, err
	}

	var model TagModel
	err = withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			model = TagModel{}
			err := tx.Where("name = ?", name).First(&model).Error
			if err == nil {
				if !model.ToDelete {
					return fmt.Errorf("%w: tag %q already exists", domain.ErrConstraintViolation, name)
				}
				model.ToDelete = false
				return tx.Model(&TagModel{}).Where("id = ?", model.ID).Update("to_delete", false).Error
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			model = TagModel{Name: name}
			return tx.Create(&model).Error
		})
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("create tag %q: %w", name, classifyError(err))
	}

	tag := tagModelToDomain(model)
	return &tag, nil
}

// Rename changes the name of a visible tag. Every block tagged with it
// resolves to the new name afterwards.
func (s *TagStore) Rename(ctx context.Context, tag domain.Tag, newName string) error {
	newName, err := domain.NormalizeTagName(newName)
	if err != nil {
		return err
	}

	var affected int64
	err = withRetry(func() error {
		result := s.db.WithContext(ctx).Model(&TagModel{}).
			Where("id = ? AND to_delete = ?", tag.ID, false).
			Update("name", newName)
		affected = result.RowsAffected
		return result.Error
	}, 3)
	if err != nil {
		return fmt.Errorf("rename tag %d to %q: %w", tag.ID, newName, classifyError(err))
	}
	if affected == 0 {
		return fmt.Errorf("rename tag %d to %q: %w", tag.ID, newName, domain.ErrTagNotFound)
	}
	return nil
}

// Delete flags a tag for deletion. Blocks referencing it are left untouched.
func (s *TagStore) Delete(ctx context.Context, tag domain.Tag) error {
	var affected int64
	err := withRetry(func() error {
		result := s.db.WithContext(ctx).Model(&TagModel{}).
			Where("id = ? AND to_delete = ?", tag.ID, false).
			Update("to_delete", true)
		affected = result.RowsAffected
		return result.Error
	}, 3)
	if err != nil {
		return fmt.Errorf("delete tag %d: %w", tag.ID, err)
	}
	if affected == 0 {
		return fmt.Errorf("delete tag %d: %w", tag.ID, domain.ErrTagNotFound)
	}
	return nil
}

// PurgeDeleted removes flagged tags that no block references any more and
// returns how many were removed
func (s *TagStore) PurgeDeleted(ctx context.Context) (int64, error) {
	var affected int64
	err := withRetry(func() error {
		result := s.db.WithContext(ctx).Exec(`
			DELETE FROM tags
			WHERE to_delete = 1
			AND NOT EXISTS (SELECT 1 FROM time_blocks b WHERE b.tag = tags.id)`)
		affected = result.RowsAffected
		return result.Error
	}, 3)
	if err != nil {
		return 0, fmt.Errorf("purge deleted tags: %w", err)
	}
	return affected, nil
}
