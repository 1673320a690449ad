package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"timekeeper/internal/domain"
	portsmocks "timekeeper/internal/ports/mocks"
)

func TestTagRename(t *testing.T) {
	focus := domain.Tag{ID: 1, Name: "Focus"}

	tags := portsmocks.NewMockTagRepository(t)
	tags.EXPECT().FindByName(mock.Anything, "Focus").Return(&focus, nil)
	tags.EXPECT().Rename(mock.Anything, focus, "Deep Focus").Return(nil)

	err := NewTagService(tags).Rename(context.Background(), "Focus", "Deep Focus")

	require.NoError(t, err)
}

func TestTagRename_NotFound(t *testing.T) {
	tags := portsmocks.NewMockTagRepository(t)
	tags.EXPECT().FindByName(mock.Anything, "Nope").Return(nil, domain.ErrTagNotFound)

	err := NewTagService(tags).Rename(context.Background(), "Nope", "Other")

	assert.ErrorIs(t, err, domain.ErrTagNotFound)
}

func TestTagCreate_Duplicate(t *testing.T) {
	tags := portsmocks.NewMockTagRepository(t)
	tags.EXPECT().Create(mock.Anything, "Focus").Return(nil, domain.ErrConstraintViolation)

	_, err := NewTagService(tags).Create(context.Background(), "Focus")

	assert.ErrorIs(t, err, domain.ErrConstraintViolation)
}

func TestTagDelete(t *testing.T) {
	focus := domain.Tag{ID: 1, Name: "Focus"}

	tags := portsmocks.NewMockTagRepository(t)
	tags.EXPECT().FindByName(mock.Anything, "Focus").Return(&focus, nil)
	tags.EXPECT().Delete(mock.Anything, focus).Return(nil)

	require.NoError(t, NewTagService(tags).Delete(context.Background(), "Focus"))
}

func TestTagPurge(t *testing.T) {
	tags := portsmocks.NewMockTagRepository(t)
	tags.EXPECT().PurgeDeleted(mock.Anything).Return(int64(2), nil)

	count, err := NewTagService(tags).Purge(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestTagList(t *testing.T) {
	tags := portsmocks.NewMockTagRepository(t)
	tags.EXPECT().All(mock.Anything).Return([]domain.Tag{{ID: 1, Name: "Focus"}}, nil)

	list, err := NewTagService(tags).List(context.Background())

	require.NoError(t, err)
	assert.Len(t, list, 1)
}
