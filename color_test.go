package mdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverseRGB(t *testing.T) {
	assert.Equal(t, [3]float32{0.3, 0.2, 0.1}, reverseRGB([3]float32{0.1, 0.2, 0.3}))
}

func TestReverseColorTrack(t *testing.T) {
	track := &AnimatedTrack[float32]{
		Keys: []Keyframe[float32]{
			{Vector: []float32{0.1, 0.2, 0.3}, InTan: []float32{1, 2, 3}, OutTan: []float32{4, 5, 6}},
		},
	}
	reverseColorTrack(track)
	assert.Equal(t, []float32{0.3, 0.2, 0.1}, track.Keys[0].Vector)
	assert.Equal(t, []float32{3, 2, 1}, track.Keys[0].InTan)
	assert.Equal(t, []float32{6, 5, 4}, track.Keys[0].OutTan)
}

func TestReverseColorTrackNil(t *testing.T) {
	assert.NotPanics(t, func() { reverseColorTrack(nil) })
}
