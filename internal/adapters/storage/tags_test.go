package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timekeeper/internal/domain"
)

func tagNames(tags []domain.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return names
}

func TestTagStore_CreateAndAll(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Tags().Create(ctx, "Focus")
	require.NoError(t, err)
	_, err = store.Tags().Create(ctx, "  Email ")
	require.NoError(t, err)

	tags, err := store.Tags().All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Focus", "Email"}, tagNames(tags))
}

func TestTagStore_Create_Errors(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Tags().Create(ctx, "Focus")
	require.NoError(t, err)

	_, err = store.Tags().Create(ctx, "Focus")
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)

	_, err = store.Tags().Create(ctx, "   ")
	assert.ErrorIs(t, err, domain.ErrTagNameEmpty)
}

func TestTagStore_FindByName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Tags().Create(ctx, "Focus")
	require.NoError(t, err)

	found, err := store.Tags().FindByName(ctx, "Focus")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = store.Tags().FindByName(ctx, "Nope")
	assert.ErrorIs(t, err, domain.ErrTagNotFound)
}

func TestTagStore_RenameUpdatesBlocks(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	start := time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)

	tag, err := store.Tags().Create(ctx, "Focus")
	require.NoError(t, err)
	block := insertClosed(t, store.Blocks(), start, start.Add(time.Hour), tag)

	require.NoError(t, store.Tags().Rename(ctx, *tag, "Deep Focus"))

	got, err := store.Blocks().Get(ctx, block.ID)
	require.NoError(t, err)
	assert.Equal(t, "Deep Focus", got.TagName())
	assert.True(t, domain.SameTag(tag, got.Tag))
}

func TestTagStore_Rename_Errors(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	focus, err := store.Tags().Create(ctx, "Focus")
	require.NoError(t, err)
	_, err = store.Tags().Create(ctx, "Email")
	require.NoError(t, err)

	err = store.Tags().Rename(ctx, *focus, "Email")
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)

	err = store.Tags().Rename(ctx, domain.Tag{ID: 404}, "Other")
	assert.ErrorIs(t, err, domain.ErrTagNotFound)

	err = store.Tags().Rename(ctx, *focus, "")
	assert.ErrorIs(t, err, domain.ErrTagNameEmpty)
}

func TestTagStore_DeleteHidesButPreserves(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	start := time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)

	tag, err := store.Tags().Create(ctx, "Focus")
	require.NoError(t, err)
	block := insertClosed(t, store.Blocks(), start, start.Add(time.Hour), tag)

	require.NoError(t, store.Tags().Delete(ctx, *tag))

	tags, err := store.Tags().All(ctx)
	require.NoError(t, err)
	assert.Empty(t, tags)

	_, err = store.Tags().FindByName(ctx, "Focus")
	assert.ErrorIs(t, err, domain.ErrTagNotFound)

	got, err := store.Blocks().Get(ctx, block.ID)
	require.NoError(t, err)
	assert.Equal(t, "Focus", got.TagName(), "blocks keep resolving deleted tags")

	assert.ErrorIs(t, store.Tags().Delete(ctx, *tag), domain.ErrTagNotFound)
	assert.ErrorIs(t, store.Tags().Rename(ctx, *tag, "Other"), domain.ErrTagNotFound)
}

func TestTagStore_CreateRevivesDeleted(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	tag, err := store.Tags().Create(ctx, "Focus")
	require.NoError(t, err)
	require.NoError(t, store.Tags().Delete(ctx, *tag))

	revived, err := store.Tags().Create(ctx, "Focus")
	require.NoError(t, err)
	assert.Equal(t, tag.ID, revived.ID)

	tags, err := store.Tags().All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Focus"}, tagNames(tags))
}

func TestTagStore_PurgeDeleted(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	start := time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)

	used, err := store.Tags().Create(ctx, "Used")
	require.NoError(t, err)
	unused, err := store.Tags().Create(ctx, "Unused")
	require.NoError(t, err)
	kept, err := store.Tags().Create(ctx, "Kept")
	require.NoError(t, err)

	block := insertClosed(t, store.Blocks(), start, start.Add(time.Hour), used)
	require.NoError(t, store.Tags().Delete(ctx, *used))
	require.NoError(t, store.Tags().Delete(ctx, *unused))

	purged, err := store.Tags().PurgeDeleted(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	got, err := store.Blocks().Get(ctx, block.ID)
	require.NoError(t, err)
	assert.Equal(t, "Used", got.TagName())

	tags, err := store.Tags().All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{kept.Name}, tagNames(tags))

	// Unused is gone for good, so its name is free again with a new id
	recreated, err := store.Tags().Create(ctx, "Unused")
	require.NoError(t, err)
	assert.NotEqual(t, unused.ID, recreated.ID)
}
