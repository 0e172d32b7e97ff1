package mdl

// handleTextures implements the Textures block (§4.4, scenario S5):
// a run of `<index> Bitmap { ... }` entries. The leading index is a
// hint only — texture identity is the slice position, as with every
// other scene-graph list (§5 ordering guarantees).
func handleTextures(s *scanner, scene *Scene) error {
	if err := s.expectSymbol('{'); err != nil {
		return err
	}
	for s.peekChar() != '}' {
		if isDigit(s.peekChar()) || s.peekChar() == '-' {
			if _, err := s.number(); err != nil {
				return err
			}
		}
		kw, ok := s.keyword()
		if !ok || kw != "Bitmap" {
			return s.errorf("expected Bitmap entry in Textures block")
		}
		b, err := s.readBody()
		if err != nil {
			return err
		}
		tex := &Texture{}
		if str, ok := b.str("Image"); ok {
			tex.Image = str
		}
		if v, ok := b.num("ReplaceableId"); ok {
			tex.ReplaceableId = truncInt32(v)
		}
		if b.has("WrapWidth") {
			tex.Flags |= WrapWidth
		}
		if b.has("WrapHeight") {
			tex.Flags |= WrapHeight
		}
		scene.Textures = append(scene.Textures, tex)
		if !s.maybeSymbol(',') {
			break
		}
	}
	return s.expectSymbol('}')
}

// handleMaterials implements the Materials block (§4.4): a run of
// `Material { (Layer {...} | PriorityPlane n | render-mode-flag)* }`
// entries, strict-shape per §7 (unknown keys inside Material/Layer are
// a syntax error since, unlike the loose node handlers, this block has
// no documented extras bag).
func handleMaterials(s *scanner, scene *Scene) error {
	if err := s.expectSymbol('{'); err != nil {
		return err
	}
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok || kw != "Material" {
			return s.errorf("expected Material entry in Materials block")
		}
		mat, err := parseMaterial(s)
		if err != nil {
			return err
		}
		scene.Materials = append(scene.Materials, mat)
		if !s.maybeSymbol(',') {
			break
		}
	}
	return s.expectSymbol('}')
}

func parseMaterial(s *scanner) (*Material, error) {
	if err := s.expectSymbol('{'); err != nil {
		return nil, err
	}
	mat := &Material{}
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok {
			return nil, s.errorf("expected key in Material block")
		}
		switch kw {
		case "Layer":
			layer, err := parseLayer(s)
			if err != nil {
				return nil, err
			}
			mat.Layers = append(mat.Layers, layer)
		case "PriorityPlane":
			v, err := s.number()
			if err != nil {
				return nil, err
			}
			p := truncInt32(v)
			mat.PriorityPlane = &p
		default:
			bit, ok := materialRenderModeBit(kw)
			if !ok {
				return nil, s.errorf("unknown key %q in Material block", kw)
			}
			mat.Flags |= bit
		}
		if !s.maybeSymbol(',') {
			break
		}
	}
	if err := s.expectSymbol('}'); err != nil {
		return nil, err
	}
	return mat, nil
}

// parseLayer implements a Material's Layer sub-block (§4.4): filter
// mode and shading flags, plus the static/animated TextureID and
// Alpha duality.
func parseLayer(s *scanner) (*Layer, error) {
	if err := s.expectSymbol('{'); err != nil {
		return nil, err
	}
	layer := &Layer{TextureID: staticProperty([]int32{0}), Alpha: staticProperty([]float32{1}), TVertexAnimId: -1}
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok {
			return nil, s.errorf("expected key in Layer block")
		}
		switch {
		case kw == "FilterMode":
			modeKw, ok2 := s.keyword()
			if !ok2 {
				return nil, s.errorf("expected filter mode keyword")
			}
			mode, ok2 := filterModeValue(modeKw)
			if !ok2 {
				return nil, s.errorf("unknown filter mode %q", modeKw)
			}
			layer.FilterMode = mode
		case kw == "static":
			propKw, ok2 := s.keyword()
			if !ok2 {
				return nil, s.errorf("expected property name after static")
			}
			switch propKw {
			case "TextureID":
				v, err := s.number()
				if err != nil {
					return nil, err
				}
				layer.TextureID = staticProperty([]int32{truncInt32(v)})
			case "Alpha":
				v, err := s.number()
				if err != nil {
					return nil, err
				}
				layer.Alpha = staticProperty([]float32{float32(v)})
			default:
				return nil, s.errorf("unknown static property %q in Layer", propKw)
			}
		case kw == "TextureID":
			track, err := readIntTrack(s, 1)
			if err != nil {
				return nil, err
			}
			layer.TextureID = Property[int32]{Track: track}
		case kw == "Alpha":
			track, err := readFloatTrack(s, 1)
			if err != nil {
				return nil, err
			}
			layer.Alpha = Property[float32]{Track: track}
		case kw == "CoordId":
			v, err := s.number()
			if err != nil {
				return nil, err
			}
			layer.CoordId = truncInt32(v)
		case kw == "TVertexAnimId":
			v, err := s.number()
			if err != nil {
				return nil, err
			}
			layer.TVertexAnimId = truncInt32(v)
		default:
			bit, ok := layerShadingBit(kw)
			if !ok {
				return nil, s.errorf("unknown key %q in Layer block", kw)
			}
			layer.Shading |= bit
		}
		if !s.maybeSymbol(',') {
			break
		}
	}
	if err := s.expectSymbol('}'); err != nil {
		return nil, err
	}
	return layer, nil
}
