package mdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinalizeAssignsPivotsByIndex(t *testing.T) {
	scene := newScene()
	scene.Nodes = []*Node{newNode(NodeTypeEventObject), newNode(NodeTypeEventObject)}
	scene.PivotPoints = [][3]float32{{1, 2, 3}}

	finalize(scene)

	assert.NotNil(t, scene.Nodes[0].PivotPoint)
	assert.Equal(t, [3]float32{1, 2, 3}, *scene.Nodes[0].PivotPoint)
	assert.Nil(t, scene.Nodes[1].PivotPoint)
}

func TestFinalizeToleratesFewerPivotsThanNodes(t *testing.T) {
	scene := newScene()
	scene.Nodes = []*Node{newNode(NodeTypeEventObject)}
	assert.NotPanics(t, func() { finalize(scene) })
}
