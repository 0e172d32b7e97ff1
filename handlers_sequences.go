package mdl

// handleSequences implements the Sequences block (§4.4): repeats
// `Anim <named-object>`, promoting the presence of NonLooping into a
// boolean.
func handleSequences(s *scanner, scene *Scene) error {
	if err := s.expectSymbol('{'); err != nil {
		return err
	}
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok || kw != "Anim" {
			return s.errorf("expected Anim entry in Sequences block")
		}
		name, _, _, _, b, err := s.object()
		if err != nil {
			return err
		}
		seq := &Sequence{Name: name}
		if b.hasInterval {
			seq.IntervalStart, seq.IntervalEnd = b.interval[0], b.interval[1]
		}
		if b.hasMinEx {
			seq.MinimumExtent = b.minExtent
		}
		if b.hasMaxEx {
			seq.MaximumExtent = b.maxExtent
		}
		if v, ok := b.num("BoundsRadius"); ok {
			seq.BoundsRadius = float32(v)
		}
		if v, ok := b.num("Rarity"); ok {
			f := float32(v)
			seq.Rarity = &f
		}
		if v, ok := b.num("MoveSpeed"); ok {
			f := float32(v)
			seq.MoveSpeed = &f
		}
		if b.has("NonLooping") {
			seq.NonLooping = true
		}
		scene.Sequences = append(scene.Sequences, seq)
		if !s.maybeSymbol(',') {
			break
		}
	}
	return s.expectSymbol('}')
}

// handleGlobalSequences implements the GlobalSequences block (§4.4):
// `<count> { (Duration <n>,)* count }`.
func handleGlobalSequences(s *scanner, scene *Scene) error {
	if _, err := s.number(); err != nil {
		return err
	}
	if err := s.expectSymbol('{'); err != nil {
		return err
	}
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok || kw != "Duration" {
			return s.errorf("expected Duration entry in GlobalSequences block")
		}
		v, err := s.number()
		if err != nil {
			return err
		}
		scene.GlobalSequences = append(scene.GlobalSequences, truncUint32(v))
		if !s.maybeSymbol(',') {
			break
		}
	}
	return s.expectSymbol('}')
}

// handlePivotPoints implements the PivotPoints block (§4.4):
// `<count> { (arr3 ,)* count }`, stored positionally and later linked
// to Nodes by the finalize pass.
func handlePivotPoints(s *scanner, scene *Scene) error {
	if _, err := s.number(); err != nil {
		return err
	}
	if err := s.expectSymbol('{'); err != nil {
		return err
	}
	for s.peekChar() != '}' {
		v3, err := s.readFixedVector3()
		if err != nil {
			return err
		}
		scene.PivotPoints = append(scene.PivotPoints, v3)
		if !s.maybeSymbol(',') {
			break
		}
	}
	return s.expectSymbol('}')
}
