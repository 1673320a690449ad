package storage

import (
	"fmt"
	"time"

	"timekeeper/internal/domain"
)

// timeLayout is fixed width and keeps the local offset, so stored values sort
// lexically within one offset and SQLite's julianday() can compare across offsets
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// legacyTimeLayout covers rows written with a space separator
const legacyTimeLayout = "2006-01-02 15:04:05.999999999Z07:00"

func encodeTime(t time.Time) string {
	return t.Format(timeLayout)
}

func decodeTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t, nil
	}
	if legacy, legacyErr := time.Parse(legacyTimeLayout, s); legacyErr == nil {
		return legacy, nil
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
}

// blockRowToDomain converts a joined row to domain.Block. A tag reference without
// a matching tag row is an integrity fault.
func blockRowToDomain(r blockRow) (domain.Block, error) {
	start, err := decodeTime(r.Start)
	if err != nil {
		return domain.Block{}, fmt.Errorf("%w: block %d start: %v", domain.ErrIntegrity, r.ID, err)
	}
	end, err := decodeTime(r.End)
	if err != nil {
		return domain.Block{}, fmt.Errorf("%w: block %d end: %v", domain.ErrIntegrity, r.ID, err)
	}

	block := domain.Block{
		End:     end,
		ID:      r.ID,
		Running: r.Running,
		Start:   start,
	}

	if r.TagRef != nil {
		if r.TagID == nil || r.TagName == nil {
			return domain.Block{}, fmt.Errorf("%w: block %d references missing tag %d", domain.ErrIntegrity, r.ID, *r.TagRef)
		}
		block.Tag = &domain.Tag{ID: *r.TagID, Name: *r.TagName}
	}

	return block, nil
}

func blockRowsToDomain(rows []blockRow) ([]domain.Block, error) {
	blocks := make([]domain.Block, 0, len(rows))
	for _, r := range rows {
		b, err := blockRowToDomain(r)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

// domainToBlockModel converts a domain.Block to BlockModel (GORM)
func domainToBlockModel(b domain.Block) BlockModel {
	m := BlockModel{
		End:     encodeTime(b.End),
		ID:      b.ID,
		Running: b.Running,
		Start:   encodeTime(b.Start),
	}
	if b.Tag != nil {
		id := b.Tag.ID
		m.Tag = &id
	}
	return m
}

func tagModelToDomain(m TagModel) domain.Tag {
	return domain.Tag{ID: m.ID, Name: m.Name}
}
