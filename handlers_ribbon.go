package mdl

// handleRibbonEmitter implements the RibbonEmitter block (§4.4): a
// Node whose Color is always read as a static BGR-reversed value
// (§4.4, §9), with HeightAbove/HeightBelow/Alpha/TextureSlot
// supporting the static/animated duality and the remaining fields
// plain scalars.
func handleRibbonEmitter(s *scanner, scene *Scene) error {
	n := newNode(NodeTypeRibbonEmitter)
	data := &RibbonEmitterData{
		HeightAbove: staticProperty([]float32{0}),
		HeightBelow: staticProperty([]float32{0}),
		Alpha:       staticProperty([]float32{1}),
		TextureSlot: staticProperty([]int32{0}),
	}
	extra := func(kw string) (bool, error) {
		switch kw {
		case "static":
			propKw, ok := s.keyword()
			if !ok {
				return false, s.errorf("expected property name after static")
			}
			switch propKw {
			case "HeightAbove":
				v, err := s.number()
				if err != nil {
					return false, err
				}
				data.HeightAbove = staticProperty([]float32{float32(v)})
			case "HeightBelow":
				v, err := s.number()
				if err != nil {
					return false, err
				}
				data.HeightBelow = staticProperty([]float32{float32(v)})
			case "Alpha":
				v, err := s.number()
				if err != nil {
					return false, err
				}
				data.Alpha = staticProperty([]float32{float32(v)})
			case "TextureSlot":
				v, err := s.number()
				if err != nil {
					return false, err
				}
				data.TextureSlot = staticProperty([]int32{truncInt32(v)})
			case "Color":
				v3, err := s.readFixedVector3()
				if err != nil {
					return false, err
				}
				data.Color = reverseRGB(v3)
			default:
				return false, s.errorf("unknown static property %q in RibbonEmitter", propKw)
			}
			return true, nil
		case "HeightAbove":
			track, err := readFloatTrack(s, 1)
			if err != nil {
				return false, err
			}
			data.HeightAbove = Property[float32]{Track: track}
			return true, nil
		case "HeightBelow":
			track, err := readFloatTrack(s, 1)
			if err != nil {
				return false, err
			}
			data.HeightBelow = Property[float32]{Track: track}
			return true, nil
		case "Alpha":
			track, err := readFloatTrack(s, 1)
			if err != nil {
				return false, err
			}
			data.Alpha = Property[float32]{Track: track}
			return true, nil
		case "TextureSlot":
			track, err := readIntTrack(s, 1)
			if err != nil {
				return false, err
			}
			data.TextureSlot = Property[int32]{Track: track}
			return true, nil
		case "Color":
			v3, err := s.readFixedVector3()
			if err != nil {
				return false, err
			}
			data.Color = reverseRGB(v3)
			return true, nil
		case "LifeSpan":
			v, err := s.number()
			if err != nil {
				return false, err
			}
			data.LifeSpan = float32(v)
			return true, nil
		case "EmissionRate":
			v, err := s.number()
			if err != nil {
				return false, err
			}
			data.EmissionRate = float32(v)
			return true, nil
		case "Rows":
			v, err := s.number()
			if err != nil {
				return false, err
			}
			data.Rows = truncInt32(v)
			return true, nil
		case "Columns":
			v, err := s.number()
			if err != nil {
				return false, err
			}
			data.Columns = truncInt32(v)
			return true, nil
		case "MaterialID":
			v, err := s.number()
			if err != nil {
				return false, err
			}
			data.MaterialID = truncInt32(v)
			return true, nil
		case "Gravity":
			v, err := s.number()
			if err != nil {
				return false, err
			}
			data.Gravity = float32(v)
			return true, nil
		default:
			return false, nil
		}
	}
	if err := parseNodeCommon(s, n, extra); err != nil {
		return err
	}
	n.RibbonEmitter = data
	scene.RibbonEmitters = append(scene.RibbonEmitters, n)
	scene.Nodes = append(scene.Nodes, n)
	return nil
}
