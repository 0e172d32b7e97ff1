package mdl

// handleCamera implements the Camera block (§4.4): name prefix,
// static Position/clip-plane scalars, a nested Target sub-block, and
// top-level Translation (arity 3) / Rotation (arity 1, roll only —
// §9 design note 3).
func handleCamera(s *scanner, scene *Scene) error {
	name, hasName, _, _, err := s.readPrefix()
	if err != nil {
		return err
	}
	cam := &Camera{}
	if hasName {
		cam.Name = name
	}
	if err := s.expectSymbol('{'); err != nil {
		return err
	}
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok {
			return s.errorf("expected key in Camera block")
		}
		switch kw {
		case "Position":
			v3, err := s.readFixedVector3()
			if err != nil {
				return err
			}
			cam.Position = v3
		case "FieldOfView":
			v, err := s.number()
			if err != nil {
				return err
			}
			cam.FieldOfView = float32(v)
		case "NearClip":
			v, err := s.number()
			if err != nil {
				return err
			}
			cam.NearClip = float32(v)
		case "FarClip":
			v, err := s.number()
			if err != nil {
				return err
			}
			cam.FarClip = float32(v)
		case "Translation":
			track, err := readFloatTrack(s, 3)
			if err != nil {
				return err
			}
			cam.Translation = track
		case "Rotation":
			track, err := readFloatTrack(s, 1)
			if err != nil {
				return err
			}
			cam.Rotation = track
		case "Target":
			if err := s.expectSymbol('{'); err != nil {
				return err
			}
			for s.peekChar() != '}' {
				tkw, ok := s.keyword()
				if !ok {
					return s.errorf("expected key in Target block")
				}
				switch tkw {
				case "Position":
					v3, err := s.readFixedVector3()
					if err != nil {
						return err
					}
					cam.TargetPosition = &v3
				case "Translation":
					track, err := readFloatTrack(s, 3)
					if err != nil {
						return err
					}
					cam.TargetTranslation = track
				default:
					discard := newBody()
					if err := s.readGenericValue(discard, tkw); err != nil {
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
	scene.Cameras = append(scene.Cameras, cam)
	return nil
}
