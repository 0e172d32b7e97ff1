package mdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleBoneCommonFields(t *testing.T) {
	src := `Bone "root" {
		ObjectId 0,
		Parent -1,
		Billboarded,
		DontInherit { Rotation },
		Translation { 1, DontInterp, 0: { 0, 0, 0 }, }
	}`
	scene := newScene()
	s := newScanner(src)
	_, ok := s.keyword()
	require.True(t, ok)
	require.NoError(t, handleBone(s, scene))

	require.Len(t, scene.Bones, 1)
	require.Empty(t, scene.Nodes, "bones must not join the flat Nodes list (open question 2)")
	bone := scene.Bones[0]
	assert.Equal(t, "root", bone.Name)
	assert.EqualValues(t, 0, bone.ObjectId)
	assert.EqualValues(t, -1, bone.Parent)
	assert.Equal(t, NodeTypeBone, bone.Flags.TypeTag())
	assert.NotZero(t, bone.Flags&Billboarded)
	assert.NotZero(t, bone.Flags&DontInheritRotation)
	require.NotNil(t, bone.Translation)
}

func TestHandleEventObjectJoinsFlatNodes(t *testing.T) {
	src := `EventObject "Eve01" {
		ObjectId 5,
		EventTrack 2 { 0, 10 },
	}`
	scene := newScene()
	s := newScanner(src)
	_, ok := s.keyword()
	require.True(t, ok)
	require.NoError(t, handleEventObject(s, scene))

	require.Len(t, scene.EventObjects, 1)
	require.Len(t, scene.Nodes, 1)
	assert.Same(t, scene.EventObjects[0], scene.Nodes[0])
	assert.Equal(t, []uint32{0, 10}, scene.EventObjects[0].EventObject.EventTrack)
}

func TestHandleCollisionShapeSphere(t *testing.T) {
	src := `CollisionShape "Clip" {
		ObjectId 1,
		Sphere,
		Vertices 1 { { 0, 0, 0 }, },
		BoundsRadius 4,
	}`
	scene := newScene()
	s := newScanner(src)
	_, ok := s.keyword()
	require.True(t, ok)
	require.NoError(t, handleCollisionShape(s, scene))

	require.Len(t, scene.CollisionShapes, 1)
	cs := scene.CollisionShapes[0].CollisionShape
	assert.Equal(t, ShapeSphere, cs.Shape)
	require.NotNil(t, cs.Radius)
	assert.Equal(t, float32(4), *cs.Radius)
}

func TestHandleParticleEmitter2SegmentColorReversed(t *testing.T) {
	src := `ParticleEmitter2 "Fx" {
		ObjectId 2,
		SegmentColor {
			Color { 0.1, 0.2, 0.3 },
		},
		Head,
	}`
	scene := newScene()
	s := newScanner(src)
	_, ok := s.keyword()
	require.True(t, ok)
	require.NoError(t, handleParticleEmitter2(s, scene))

	require.Len(t, scene.ParticleEmitter2, 1)
	pe2 := scene.ParticleEmitter2[0].ParticleEmitter2
	require.Len(t, pe2.SegmentColor, 1)
	assert.Equal(t, [3]float32{0.3, 0.2, 0.1}, pe2.SegmentColor[0])
	assert.NotZero(t, pe2.FrameFlags&FrameHead)
}
