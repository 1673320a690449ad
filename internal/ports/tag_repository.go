package ports

import (
	"context"

	"timekeeper/internal/domain"
)

// TagRepository manages tags
type TagRepository interface {
	All(ctx context.Context) ([]domain.Tag, error)
	Create(ctx context.Context, name string) (*domain.Tag, error)
	Delete(ctx context.Context, tag domain.Tag) error
	FindByName(ctx context.Context, name string) (*domain.Tag, error)
	PurgeDeleted(ctx context.Context) (int64, error)
	Rename(ctx context.Context, tag domain.Tag, newName string) error
}
