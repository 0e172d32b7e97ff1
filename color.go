package mdl

// reverseRGB swaps channels 0 and 2 of a 3-element color, converting
// the source's BGR order to the scene-graph's RGB order (§3, §4.4,
// §9). It is its own inverse.
func reverseRGB(c [3]float32) [3]float32 {
	return [3]float32{c[2], c[1], c[0]}
}

// reverseColorTrack applies the BGR->RGB swap to every keyframe
// (and tangent, when present) of an arity-3 animated color track.
func reverseColorTrack(t *AnimatedTrack[float32]) {
	if t == nil {
		return
	}
	for i := range t.Keys {
		reverseVec3InPlace(t.Keys[i].Vector)
		reverseVec3InPlace(t.Keys[i].InTan)
		reverseVec3InPlace(t.Keys[i].OutTan)
	}
}

func reverseVec3InPlace(v []float32) {
	if len(v) != 3 {
		return
	}
	v[0], v[2] = v[2], v[0]
}
