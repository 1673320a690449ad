package storage

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"timekeeper/internal/domain"
	"timekeeper/internal/ports"
)

// BlockStore implements ports.BlockRepository
type BlockStore struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.BlockRepository = (*BlockStore)(nil)

const selectBlocks = `
	SELECT b.id AS id, b.start AS start, b."end" AS "end", b.running AS running,
		b.tag AS tag_ref, t.id AS tag_id, t.name AS tag_name
	FROM time_blocks b
	LEFT JOIN tags t ON b.tag = t.id`

func (s *BlockStore) query(ctx context.Context, where string, args ...any) ([]domain.Block, error) {
	var rows []blockRow
	err := withRetry(func() error {
		rows = nil
		return s.db.WithContext(ctx).Raw(selectBlocks+" "+where, args...).Scan(&rows).Error
	}, 3)
	if err != nil {
		return nil, err
	}
	return blockRowsToDomain(rows)
}

// Insert creates a block with start = end = now, lets init adjust it, and
// persists it. Inserting a second running block fails with ErrAlreadyRunning.
func (s *BlockStore) Insert(ctx context.Context, now time.Time, init ports.BlockInitializer) (*domain.Block, error) {
	block := domain.Block{Start: now, End: now}
	if init != nil {
		init(&block)
	}

	model := domainToBlockModel(block)
	model.ID = 0

	err := withRetry(func() error {
		return s.db.WithContext(ctx).Create(&model).Error
	}, 3)
	if err != nil {
		err = classifyError(err)
		if block.Running && errors.Is(err, domain.ErrConstraintViolation) {
			return nil, fmt.Errorf("insert running block: %w: %w", domain.ErrAlreadyRunning, err)
		}
		return nil, fmt.Errorf("insert block: %w", err)
	}

	block.ID = model.ID
	return &block, nil
}

// Current returns the running block, or nil when the stopwatch is stopped
func (s *BlockStore) Current(ctx context.Context) (*domain.Block, error) {
	blocks, err := s.query(ctx, "WHERE b.running = 1")
	if err != nil {
		return nil, fmt.Errorf("get current block: %w", err)
	}

	switch len(blocks) {
	case 0:
		return nil, nil
	case 1:
		return &blocks[0], nil
	default:
		return nil, fmt.Errorf("get current block: %w: %d running blocks", domain.ErrIntegrity, len(blocks))
	}
}

// Get returns a block by id
func (s *BlockStore) Get(ctx context.Context, id int64) (*domain.Block, error) {
	blocks, err := s.query(ctx, "WHERE b.id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("get block %d: %w", id, err)
	}
	if len(blocks) == 0 {
		return nil, fmt.Errorf("get block %d: %w", id, domain.ErrBlockNotFound)
	}
	return &blocks[0], nil
}

// UpdateRunningEndTime refreshes the end time of the running block, if any
func (s *BlockStore) UpdateRunningEndTime(ctx context.Context, now time.Time) error {
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Model(&BlockModel{}).
			Where("running = ?", true).
			Update("end", encodeTime(now)).Error
	}, 3)
	if err != nil {
		return fmt.Errorf("update running end time: %w", err)
	}
	return nil
}

// Stop closes the running block at now
func (s *BlockStore) Stop(ctx context.Context, now time.Time) error {
	var affected int64
	err := withRetry(func() error {
		result := s.db.WithContext(ctx).Model(&BlockModel{}).
			Where("running = ?", true).
			Updates(map[string]any{
				"end":     encodeTime(now),
				"running": false,
			})
		affected = result.RowsAffected
		return result.Error
	}, 3)
	if err != nil {
		return fmt.Errorf("stop running block: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("stop running block: %w", domain.ErrNotRunning)
	}
	return nil
}

// UpdateTag rewrites the tag reference of an existing block
func (s *BlockStore) UpdateTag(ctx context.Context, block domain.Block) error {
	var tag *int64
	if block.Tag != nil {
		id := block.Tag.ID
		tag = &id
	}

	var affected int64
	err := withRetry(func() error {
		result := s.db.WithContext(ctx).Model(&BlockModel{}).
			Where("id = ?", block.ID).
			Update("tag", tag)
		affected = result.RowsAffected
		return result.Error
	}, 3)
	if err != nil {
		return fmt.Errorf("update tag of block %d: %w", block.ID, classifyError(err))
	}
	if affected == 0 {
		return fmt.Errorf("update tag of block %d: %w", block.ID, domain.ErrBlockNotFound)
	}
	return nil
}

// Delete removes a block. Deleting the running block stops tracking.
func (s *BlockStore) Delete(ctx context.Context, block domain.Block) error {
	var affected int64
	err := withRetry(func() error {
		result := s.db.WithContext(ctx).Where("id = ?", block.ID).Delete(&BlockModel{})
		affected = result.RowsAffected
		return result.Error
	}, 3)
	if err != nil {
		return fmt.Errorf("delete block %d: %w", block.ID, err)
	}
	if affected == 0 {
		return fmt.Errorf("delete block %d: %w", block.ID, domain.ErrBlockNotFound)
	}
	return nil
}

// InRange returns blocks whose start lies strictly between from and to
func (s *BlockStore) InRange(ctx context.Context, from, to time.Time) ([]domain.Block, error) {
	blocks, err := s.query(ctx,
		"WHERE julianday(b.start) > julianday(?) AND julianday(b.start) < julianday(?) ORDER BY julianday(b.start), b.id",
		encodeTime(from), encodeTime(to))
	if err != nil {
		return nil, fmt.Errorf("get blocks in range %s - %s: %w", encodeTime(from), encodeTime(to), err)
	}
	return blocks, nil
}

// InInterval returns blocks whose start lies in [from, to)
func (s *BlockStore) InInterval(ctx context.Context, from, to time.Time) ([]domain.Block, error) {
	blocks, err := s.query(ctx,
		"WHERE julianday(b.start) >= julianday(?) AND julianday(b.start) < julianday(?) ORDER BY julianday(b.start), b.id",
		encodeTime(from), encodeTime(to))
	if err != nil {
		return nil, fmt.Errorf("get blocks in interval %s - %s: %w", encodeTime(from), encodeTime(to), err)
	}
	return blocks, nil
}

// TotalTime sums end - start over every block, measuring the running block up to now
func (s *BlockStore) TotalTime(ctx context.Context, now time.Time) (time.Duration, error) {
	var seconds float64
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Raw(`
			SELECT COALESCE(SUM(
				(julianday(CASE WHEN running = 1 THEN ? ELSE "end" END) - julianday(start)) * 86400.0
			), 0)
			FROM time_blocks`, encodeTime(now)).Row().Scan(&seconds)
	}, 3)
	if err != nil {
		return 0, fmt.Errorf("get total time: %w", err)
	}
	return time.Duration(math.Round(seconds*1000)) * time.Millisecond, nil
}
