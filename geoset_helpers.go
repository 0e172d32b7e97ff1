package mdl

// readFlatVectorList reads "<count> { (arrN ,)* }" and flattens the
// fixed-arity sub-vectors into one slice — the shape shared by
// Geoset's Vertices, Normals and TVertices buffers (§4.4).
func (s *scanner) readFlatVectorList(arity int) ([]float32, error) {
	if _, err := s.number(); err != nil {
		return nil, err
	}
	if err := s.expectSymbol('{'); err != nil {
		return nil, err
	}
	var out []float32
	for s.peekChar() != '}' {
		vals, present, err := s.array()
		if err != nil {
			return nil, err
		}
		if !present || len(vals) != arity {
			return nil, s.errorf("expected %d-element vector", arity)
		}
		for _, v := range vals {
			out = append(out, float32(v))
		}
		if !s.maybeSymbol(',') {
			break
		}
	}
	if err := s.expectSymbol('}'); err != nil {
		return nil, err
	}
	return out, nil
}

// readFixedVector3 reads a bare "{ x, y, z }" array value (no leading
// count), as used by MinimumExtent/MaximumExtent wherever the generic
// block reader isn't driving the parse.
func (s *scanner) readFixedVector3() ([3]float32, error) {
	vals, present, err := s.array()
	if err != nil {
		return [3]float32{}, err
	}
	if !present || len(vals) != 3 {
		return [3]float32{}, s.errorf("expected 3-element vector")
	}
	return [3]float32{float32(vals[0]), float32(vals[1]), float32(vals[2])}, nil
}

// readFlatVectorList3Uint reads a bare "{ a, b, c }" triple of
// unsigned 32-bit integers, the shape used by ParticleEmitter2's
// LifeSpan/Decay/Tail/TailDecay UV-Anim fields (§4.4).
func (s *scanner) readFlatVectorList3Uint() ([3]uint32, error) {
	vals, present, err := s.array()
	if err != nil {
		return [3]uint32{}, err
	}
	if !present || len(vals) != 3 {
		return [3]uint32{}, s.errorf("expected 3-element unsigned vector")
	}
	return [3]uint32{truncUint32(vals[0]), truncUint32(vals[1]), truncUint32(vals[2])}, nil
}

// parseFaces reads "<groups> <indexCount> { Triangles { arr } ,? }".
// Both header numbers are hints only, per §4.4.
func (s *scanner) parseFaces() ([]uint16, error) {
	if _, err := s.number(); err != nil {
		return nil, err
	}
	if _, err := s.number(); err != nil {
		return nil, err
	}
	if err := s.expectSymbol('{'); err != nil {
		return nil, err
	}
	kw, ok := s.keyword()
	if !ok || kw != "Triangles" {
		return nil, s.errorf("expected Triangles in Faces block")
	}
	vals, _, err := s.array()
	if err != nil {
		return nil, err
	}
	s.maybeSymbol(',')
	if err := s.expectSymbol('}'); err != nil {
		return nil, err
	}
	out := make([]uint16, len(vals))
	for i, v := range vals {
		out[i] = uint16(truncUint32(v))
	}
	return out, nil
}

// parseGroups reads "<g> <total> { (Matrices arr ,)* }". total is
// preserved as Geoset.TotalGroupsCount even though g (the number of
// Matrices entries expected) is not validated against what follows.
func (s *scanner) parseGroups() ([][]int32, int32, error) {
	if _, err := s.number(); err != nil {
		return nil, 0, err
	}
	totalF, err := s.number()
	if err != nil {
		return nil, 0, err
	}
	total := truncInt32(totalF)
	if err := s.expectSymbol('{'); err != nil {
		return nil, 0, err
	}
	var groups [][]int32
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok || kw != "Matrices" {
			return nil, 0, s.errorf("expected Matrices in Groups block")
		}
		vals, _, err := s.array()
		if err != nil {
			return nil, 0, err
		}
		row := make([]int32, len(vals))
		for i, v := range vals {
			row[i] = truncInt32(v)
		}
		groups = append(groups, row)
		if !s.maybeSymbol(',') {
			break
		}
	}
	if err := s.expectSymbol('}'); err != nil {
		return nil, 0, err
	}
	return groups, total, nil
}

func parseGeosetSequenceAnim(s *scanner) (GeosetSequenceAnim, error) {
	b, err := s.readBody()
	if err != nil {
		return GeosetSequenceAnim{}, err
	}
	entry := GeosetSequenceAnim{Alpha: 1}
	if v, ok := b.num("Alpha"); ok {
		entry.Alpha = float32(v)
	}
	if arr, ok := b.arr("Color"); ok && len(arr) == 3 {
		entry.Color = [3]float32{float32(arr[0]), float32(arr[1]), float32(arr[2])}
		entry.HasColor = true
	}
	if b.hasMinEx {
		entry.MinimumExtent = b.minExtent
	}
	if b.hasMaxEx {
		entry.MaximumExtent = b.maxExtent
	}
	if v, ok := b.num("BoundsRadius"); ok {
		entry.BoundsRadius = float32(v)
	}
	return entry, nil
}
