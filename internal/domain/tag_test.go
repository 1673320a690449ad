package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTag_EqualIsIdentity(t *testing.T) {
	a := Tag{ID: 1, Name: "Focus"}
	renamed := Tag{ID: 1, Name: "Deep Focus"}
	other := Tag{ID: 2, Name: "Focus"}

	assert.True(t, a.Equal(renamed))
	assert.False(t, a.Equal(other))
}

func TestSameTag(t *testing.T) {
	a := &Tag{ID: 1, Name: "a"}
	assert.True(t, SameTag(nil, nil))
	assert.False(t, SameTag(a, nil))
	assert.False(t, SameTag(nil, a))
	assert.True(t, SameTag(a, &Tag{ID: 1}))
}

func TestNormalizeTagName(t *testing.T) {
	name, err := NormalizeTagName("  Focus ")
	require.NoError(t, err)
	assert.Equal(t, "Focus", name)

	_, err = NormalizeTagName("   ")
	assert.ErrorIs(t, err, ErrTagNameEmpty)
}
