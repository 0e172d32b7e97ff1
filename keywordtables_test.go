package mdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayerShadingBit(t *testing.T) {
	bit, ok := layerShadingBit("TwoSided")
	assert.True(t, ok)
	assert.Equal(t, TwoSided, bit)

	_, ok = layerShadingBit("NotAKeyword")
	assert.False(t, ok)
}

func TestFilterModeValue(t *testing.T) {
	v, ok := filterModeValue("Additive")
	assert.True(t, ok)
	assert.Equal(t, FilterAdditive, v)
}

func TestParticleEmitter2FlagBit(t *testing.T) {
	bit, ok := particleEmitter2FlagBit("LineEmitter")
	assert.True(t, ok)
	assert.Equal(t, PE2LineEmitter, bit)
}

func TestNodeBehaviorFlagBit(t *testing.T) {
	bit, ok := nodeBehaviorFlagBit("Billboarded")
	assert.True(t, ok)
	assert.Equal(t, Billboarded, bit)
}
