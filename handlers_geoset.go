package mdl

// handleGeoset implements the Geoset block (§4.4): dense vertex
// buffers, faces, groups, material binding and per-sequence Anim
// overrides.
func handleGeoset(s *scanner, scene *Scene) error {
	if err := s.expectSymbol('{'); err != nil {
		return err
	}
	g := &Geoset{MaterialID: -1}
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok {
			return s.errorf("expected key in Geoset block")
		}
		switch kw {
		case "Vertices":
			vals, err := s.readFlatVectorList(3)
			if err != nil {
				return err
			}
			g.Vertices = vals
		case "Normals":
			vals, err := s.readFlatVectorList(3)
			if err != nil {
				return err
			}
			g.Normals = vals
		case "TVertices":
			vals, err := s.readFlatVectorList(2)
			if err != nil {
				return err
			}
			g.TVertices = append(g.TVertices, vals)
		case "VertexGroup":
			vals, present, err := s.array()
			if err != nil {
				return err
			}
			if present {
				g.VertexGroup = make([]byte, len(vals))
				for i, v := range vals {
					g.VertexGroup[i] = truncByte(v)
				}
			}
		case "Faces":
			faces, err := s.parseFaces()
			if err != nil {
				return err
			}
			g.Faces = faces
		case "Groups":
			groups, total, err := s.parseGroups()
			if err != nil {
				return err
			}
			g.Groups = groups
			g.TotalGroupsCount = total
		case "Anim":
			entry, err := parseGeosetSequenceAnim(s)
			if err != nil {
				return err
			}
			g.Anims = append(g.Anims, entry)
		case "MaterialID":
			v, err := s.number()
			if err != nil {
				return err
			}
			g.MaterialID = truncInt32(v)
		case "SelectionGroup":
			v, err := s.number()
			if err != nil {
				return err
			}
			g.SelectionGroup = truncInt32(v)
		case "Unselectable":
			g.Unselectable = true
		case "MinimumExtent":
			v3, err := s.readFixedVector3()
			if err != nil {
				return err
			}
			g.MinimumExtent = v3
		case "MaximumExtent":
			v3, err := s.readFixedVector3()
			if err != nil {
				return err
			}
			g.MaximumExtent = v3
		case "BoundsRadius":
			v, err := s.number()
			if err != nil {
				return err
			}
			g.BoundsRadius = float32(v)
		default:
			discard := newBody()
			if err := s.readGenericValue(discard, kw); err != nil {
				return err
			}
		}
		if !s.maybeSymbol(',') {
			break
		}
	}
	if err := s.expectSymbol('}'); err != nil {
		return err
	}
	scene.Geosets = append(scene.Geosets, g)
	return nil
}

// handleGeosetAnim implements the GeosetAnim block (§4.4): a
// static/animated Alpha and Color applied to a Geoset by index.
func handleGeosetAnim(s *scanner, scene *Scene) error {
	if err := s.expectSymbol('{'); err != nil {
		return err
	}
	ga := &GeosetAnim{GeosetId: -1, Alpha: staticProperty([]float32{1})}
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok {
			return s.errorf("expected key in GeosetAnim block")
		}
		switch {
		case kw == "static":
			propKw, ok2 := s.keyword()
			if !ok2 {
				return s.errorf("expected property name after static")
			}
			switch propKw {
			case "Alpha":
				v, err := s.number()
				if err != nil {
					return err
				}
				ga.Alpha = staticProperty([]float32{float32(v)})
			case "Color":
				vals, err := readVector(s, 3, toFloat32)
				if err != nil {
					return err
				}
				c := reverseRGB([3]float32{vals[0], vals[1], vals[2]})
				ga.Color = staticProperty([]float32{c[0], c[1], c[2]})
			default:
				return s.errorf("unknown static property %q in GeosetAnim", propKw)
			}
		case kw == "GeosetId":
			v, err := s.number()
			if err != nil {
				return err
			}
			ga.GeosetId = truncInt32(v)
		case kw == "Alpha":
			track, err := readFloatTrack(s, 1)
			if err != nil {
				return err
			}
			ga.Alpha = Property[float32]{Track: track}
		case kw == "Color":
			track, err := readFloatTrack(s, 3)
			if err != nil {
				return err
			}
			reverseColorTrack(track)
			ga.Color = Property[float32]{Track: track}
		default:
			if bit, ok := geosetAnimFlagBit(kw); ok {
				ga.Flags |= bit
			} else {
				discard := newBody()
				if err := s.readGenericValue(discard, kw); err != nil {
					return err
				}
			}
		}
		if !s.maybeSymbol(',') {
			break
		}
	}
	if err := s.expectSymbol('}'); err != nil {
		return err
	}
	scene.GeosetAnims = append(scene.GeosetAnims, ga)
	return nil
}
