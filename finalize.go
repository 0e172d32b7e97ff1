package mdl

// finalize runs the node-cross-linking pass (§4.5, §4.6): for each
// index with a defined PivotPoints entry, it assigns that vector to
// the corresponding Nodes[i].PivotPoint. Nodes with no PivotPoints
// entry are left untouched (nil PivotPoint unless their own block gave
// a PivotPoint key); a PivotPoints list longer
// than Nodes is not an error (§3 invariant).
func finalize(scene *Scene) {
	for i, node := range scene.Nodes {
		if i >= len(scene.PivotPoints) {
			break
		}
		p := scene.PivotPoints[i]
		node.PivotPoint = &p
	}
}
