package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timekeeper/internal/domain"
)

func startBlock(tag *domain.Tag) func(*domain.Block) {
	return func(b *domain.Block) {
		b.Running = true
		b.Tag = tag
	}
}

func insertClosed(t *testing.T, blocks *BlockStore, start, end time.Time, tag *domain.Tag) *domain.Block {
	t.Helper()

	block, err := blocks.Insert(context.Background(), start, func(b *domain.Block) {
		b.End = end
		b.Tag = tag
	})
	require.NoError(t, err)
	return block
}

func TestBlockStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	tag, err := store.Tags().Create(ctx, "Focus")
	require.NoError(t, err)

	start := time.Date(2024, 3, 4, 9, 15, 30, 123456789, time.Local)
	end := start.Add(45 * time.Minute)
	inserted := insertClosed(t, store.Blocks(), start, end, tag)

	blocks, err := store.Blocks().InRange(ctx, start.Add(-time.Minute), end)
	require.NoError(t, err)
	require.Len(t, blocks, 1)

	got := blocks[0]
	assert.Equal(t, inserted.ID, got.ID)
	assert.True(t, got.Start.Equal(start), "start %v != %v", got.Start, start)
	assert.True(t, got.End.Equal(end), "end %v != %v", got.End, end)
	assert.True(t, domain.SameTag(got.Tag, tag))
	assert.Equal(t, "Focus", got.TagName())
	assert.False(t, got.Running)
}

func TestBlockStore_Insert_AssignsFreshIDs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)

	first := insertClosed(t, store.Blocks(), now, now.Add(time.Minute), nil)
	require.NoError(t, store.Blocks().Delete(ctx, *first))

	second := insertClosed(t, store.Blocks(), now, now.Add(time.Minute), nil)
	assert.Greater(t, second.ID, first.ID)
}

func TestBlockStore_Insert_StartsWithEqualBounds(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)

	block, err := store.Blocks().Insert(context.Background(), now, nil)
	require.NoError(t, err)
	assert.True(t, block.Start.Equal(now))
	assert.True(t, block.End.Equal(now))
	assert.False(t, block.Running)
}

func TestBlockStore_Insert_UnknownTag(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)

	_, err := store.Blocks().Insert(context.Background(), now, startBlock(&domain.Tag{ID: 42, Name: "ghost"}))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTagNotFound)
}

func TestBlockStore_SingleRunningBlock(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)

	_, err := store.Blocks().Insert(ctx, now, startBlock(nil))
	require.NoError(t, err)

	_, err = store.Blocks().Insert(ctx, now.Add(time.Minute), startBlock(nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyRunning)
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)

	var running int64
	require.NoError(t, store.db.Model(&BlockModel{}).Where("running = ?", true).Count(&running).Error)
	assert.Equal(t, int64(1), running)
}

func TestBlockStore_StartStopScenario(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	start := time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)

	_, err := store.Blocks().Insert(ctx, start, startBlock(nil))
	require.NoError(t, err)

	require.NoError(t, store.Blocks().UpdateRunningEndTime(ctx, start.Add(30*time.Minute)))
	require.NoError(t, store.Blocks().Stop(ctx, start.Add(90*time.Minute)))

	current, err := store.Blocks().Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	blocks, err := store.Blocks().InRange(ctx, start.Add(-time.Minute), start.Add(100*time.Minute))
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, 90*time.Minute, blocks[0].Duration())
	assert.False(t, blocks[0].Running)
}

func TestBlockStore_Stop_NotRunning(t *testing.T) {
	store := newTestStore(t)

	err := store.Blocks().Stop(context.Background(), time.Now())
	assert.ErrorIs(t, err, domain.ErrNotRunning)
}

func TestBlockStore_UpdateRunningEndTime(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	start := time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)

	t.Run("no-op when stopped", func(t *testing.T) {
		closed := insertClosed(t, store.Blocks(), start, start.Add(time.Hour), nil)

		require.NoError(t, store.Blocks().UpdateRunningEndTime(ctx, start.Add(5*time.Hour)))

		got, err := store.Blocks().Get(ctx, closed.ID)
		require.NoError(t, err)
		assert.True(t, got.End.Equal(start.Add(time.Hour)))
	})

	t.Run("refreshes only the running block", func(t *testing.T) {
		running, err := store.Blocks().Insert(ctx, start.Add(2*time.Hour), startBlock(nil))
		require.NoError(t, err)

		refreshed := start.Add(3 * time.Hour)
		require.NoError(t, store.Blocks().UpdateRunningEndTime(ctx, refreshed))

		got, err := store.Blocks().Get(ctx, running.ID)
		require.NoError(t, err)
		assert.True(t, got.End.Equal(refreshed))
		assert.True(t, got.Start.Equal(start.Add(2*time.Hour)))
		assert.True(t, got.Running)
	})
}

func TestBlockStore_UpdateTag(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	start := time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)

	tag, err := store.Tags().Create(ctx, "Email")
	require.NoError(t, err)
	block := insertClosed(t, store.Blocks(), start, start.Add(time.Hour), nil)

	block.Tag = tag
	require.NoError(t, store.Blocks().UpdateTag(ctx, *block))

	got, err := store.Blocks().Get(ctx, block.ID)
	require.NoError(t, err)
	assert.Equal(t, "Email", got.TagName())

	got.Tag = nil
	require.NoError(t, store.Blocks().UpdateTag(ctx, *got))

	cleared, err := store.Blocks().Get(ctx, block.ID)
	require.NoError(t, err)
	assert.Nil(t, cleared.Tag)

	err = store.Blocks().UpdateTag(ctx, domain.Block{ID: 999})
	assert.ErrorIs(t, err, domain.ErrBlockNotFound)
}

func TestBlockStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	start := time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)

	running, err := store.Blocks().Insert(ctx, start, startBlock(nil))
	require.NoError(t, err)

	require.NoError(t, store.Blocks().Delete(ctx, *running))

	current, err := store.Blocks().Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current, "deleting the running block ends tracking")

	err = store.Blocks().Delete(ctx, *running)
	assert.ErrorIs(t, err, domain.ErrBlockNotFound)

	_, err = store.Blocks().Get(ctx, running.ID)
	assert.ErrorIs(t, err, domain.ErrBlockNotFound)
}

func TestBlockStore_RangeBounds(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	midnight := time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local)
	next := midnight.AddDate(0, 0, 1)

	atMidnight := insertClosed(t, store.Blocks(), midnight, midnight.Add(time.Hour), nil)
	midday := insertClosed(t, store.Blocks(), midnight.Add(12*time.Hour), midnight.Add(13*time.Hour), nil)
	insertClosed(t, store.Blocks(), next, next.Add(time.Hour), nil)

	inRange, err := store.Blocks().InRange(ctx, midnight, next)
	require.NoError(t, err)
	require.Len(t, inRange, 1, "range excludes both ends")
	assert.Equal(t, midday.ID, inRange[0].ID)

	inInterval, err := store.Blocks().InInterval(ctx, midnight, next)
	require.NoError(t, err)
	require.Len(t, inInterval, 2, "interval includes its start only")
	assert.Equal(t, atMidnight.ID, inInterval[0].ID)
	assert.Equal(t, midday.ID, inInterval[1].ID)
}

func TestBlockStore_RangeAcrossOffsets(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	plusTwo := time.FixedZone("UTC+2", 2*60*60)
	start := time.Date(2024, 3, 4, 10, 0, 0, 0, plusTwo) // 08:00 UTC
	insertClosed(t, store.Blocks(), start, start.Add(time.Hour), nil)

	from := time.Date(2024, 3, 4, 7, 30, 0, 0, time.UTC)
	to := time.Date(2024, 3, 4, 8, 30, 0, 0, time.UTC)

	blocks, err := store.Blocks().InRange(ctx, from, to)
	require.NoError(t, err)
	assert.Len(t, blocks, 1)
}

func TestBlockStore_TotalTime(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	start := time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)

	total, err := store.Blocks().TotalTime(ctx, start)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), total)

	insertClosed(t, store.Blocks(), start, start.Add(time.Hour), nil)
	insertClosed(t, store.Blocks(), start.Add(2*time.Hour), start.Add(2*time.Hour+30*time.Minute), nil)

	_, err = store.Blocks().Insert(ctx, start.Add(3*time.Hour), startBlock(nil))
	require.NoError(t, err)

	total, err = store.Blocks().TotalTime(ctx, start.Add(3*time.Hour+15*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, time.Hour+45*time.Minute, total)
}

func TestBlockStore_MissingTagIsIntegrityFault(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.db.Exec(`PRAGMA foreign_keys = OFF`).Error)
	require.NoError(t, store.db.Exec(`INSERT INTO time_blocks (start, "end", running, tag) VALUES
		('2024-03-04T09:00:00.000000000+00:00', '2024-03-04T09:30:00.000000000+00:00', 1, 77)`).Error)
	require.NoError(t, store.db.Exec(`PRAGMA foreign_keys = ON`).Error)

	_, err := store.Blocks().Current(ctx)
	assert.ErrorIs(t, err, domain.ErrIntegrity)

	_, err = store.Blocks().InRange(ctx,
		time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, domain.ErrIntegrity)
}
