package domain

import "strings"

// Tag is a named label attached to blocks
type Tag struct {
	ID   int64
	Name string
}

// Equal compares tags by identity, so a renamed tag still equals its old value
func (t Tag) Equal(other Tag) bool {
	return t.ID == other.ID
}

// SameTag reports whether two optional tags refer to the same record
func SameTag(a, b *Tag) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// NormalizeTagName trims whitespace and rejects empty names
func NormalizeTagName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrTagNameEmpty
	}
	return name, nil
}
