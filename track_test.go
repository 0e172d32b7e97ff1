package mdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFloatTrackHermite(t *testing.T) {
	s := newScanner(`{ 2, Hermite, 0: 0.0, InTan 0.1, OutTan 0.2, 10: 1.0, InTan 0.3, OutTan 0.4, }`)
	track, err := readFloatTrack(s, 1)
	require.NoError(t, err)
	assert.Equal(t, Hermite, track.LineType)
	require.Len(t, track.Keys, 2)
	assert.Equal(t, int32(0), track.Keys[0].Frame)
	assert.Equal(t, []float32{0.0}, track.Keys[0].Vector)
	assert.Equal(t, []float32{0.1}, track.Keys[0].InTan)
	assert.Equal(t, []float32{0.2}, track.Keys[0].OutTan)
	assert.Equal(t, int32(10), track.Keys[1].Frame)
	assert.Equal(t, []float32{1.0}, track.Keys[1].Vector)
	assert.Equal(t, []float32{0.3}, track.Keys[1].InTan)
	assert.Equal(t, []float32{0.4}, track.Keys[1].OutTan)
}

func TestReadFloatTrackLinearNoTangents(t *testing.T) {
	s := newScanner(`{ 1, Linear, 0: { 1, 2, 3 }, }`)
	track, err := readFloatTrack(s, 3)
	require.NoError(t, err)
	assert.Equal(t, Linear, track.LineType)
	require.Len(t, track.Keys, 1)
	assert.Nil(t, track.Keys[0].InTan)
	assert.Equal(t, []float32{1, 2, 3}, track.Keys[0].Vector)
}

func TestReadTrackUnknownModeDefaultsDontInterp(t *testing.T) {
	s := newScanner(`{ 1, Mystery, 0: 1.0, }`)
	track, err := readFloatTrack(s, 1)
	require.NoError(t, err)
	assert.Equal(t, DontInterp, track.LineType)
}

func TestReadTrackGlobalSeqId(t *testing.T) {
	s := newScanner(`{ 1, DontInterp, GlobalSeqId 42, 0: 1.0, }`)
	track, err := readFloatTrack(s, 1)
	require.NoError(t, err)
	require.NotNil(t, track.GlobalSeqId)
	assert.Equal(t, int32(42), *track.GlobalSeqId)
}

func TestReadIntTrack(t *testing.T) {
	s := newScanner(`{ 1, DontInterp, 0: 3, }`)
	track, err := readIntTrack(s, 1)
	require.NoError(t, err)
	require.Len(t, track.Keys, 1)
	assert.Equal(t, []int32{3}, track.Keys[0].Vector)
}
