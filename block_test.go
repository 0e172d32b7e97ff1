package mdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBodyInterval(t *testing.T) {
	s := newScanner(`{ Interval { 0, 100 }, }`)
	b, err := s.readBody()
	require.NoError(t, err)
	assert.True(t, b.hasInterval)
	assert.Equal(t, [2]uint32{0, 100}, b.interval)
}

func TestReadBodyExtents(t *testing.T) {
	s := newScanner(`{ MinimumExtent { -1, -2, -3 }, MaximumExtent { 1, 2, 3 }, }`)
	b, err := s.readBody()
	require.NoError(t, err)
	assert.True(t, b.hasMinEx)
	assert.True(t, b.hasMaxEx)
	assert.Equal(t, [3]float32{-1, -2, -3}, b.minExtent)
	assert.Equal(t, [3]float32{1, 2, 3}, b.maxExtent)
}

func TestReadBodyBareFlag(t *testing.T) {
	s := newScanner(`{ NonLooping, Rarity 5, }`)
	b, err := s.readBody()
	require.NoError(t, err)
	assert.True(t, b.has("NonLooping"))
	v, ok := b.num("Rarity")
	require.True(t, ok)
	assert.Equal(t, float64(5), v)
}

func TestObjectPrefixAndBody(t *testing.T) {
	s := newScanner(`Anim "Stand" { Interval { 0, 100 }, }`)
	kw, ok := s.keyword()
	require.True(t, ok)
	assert.Equal(t, "Anim", kw)
	name, hasName, _, hasIndex, b, err := s.object()
	require.NoError(t, err)
	assert.True(t, hasName)
	assert.False(t, hasIndex)
	assert.Equal(t, "Stand", name)
	assert.True(t, b.hasInterval)
}
