package mdl

// handleLight implements the Light block (§4.4): a Node whose
// LightType keyword selects Omnidirectional/Directional/Ambient, with
// BGR-reversed static Color/AmbColor and four animated intensity
// channels.
func handleLight(s *scanner, scene *Scene) error {
	n := newNode(NodeTypeLight)
	data := &LightData{
		Color:    staticProperty([]float32{1, 1, 1}),
		AmbColor: staticProperty([]float32{1, 1, 1}),
	}
	extra := func(kw string) (bool, error) {
		switch kw {
		case "Omnidirectional":
			data.LightType = LightOmnidirectional
			return true, nil
		case "Directional":
			data.LightType = LightDirectional
			return true, nil
		case "Ambient":
			data.LightType = LightAmbient
			return true, nil
		case "static":
			propKw, ok := s.keyword()
			if !ok {
				return false, s.errorf("expected property name after static")
			}
			switch propKw {
			case "Color":
				v3, err := s.readFixedVector3()
				if err != nil {
					return false, err
				}
				c := reverseRGB(v3)
				data.Color = staticProperty([]float32{c[0], c[1], c[2]})
			case "AmbColor":
				v3, err := s.readFixedVector3()
				if err != nil {
					return false, err
				}
				c := reverseRGB(v3)
				data.AmbColor = staticProperty([]float32{c[0], c[1], c[2]})
			case "Intensity":
				v, err := s.number()
				if err != nil {
					return false, err
				}
				data.Intensity = staticProperty([]float32{float32(v)})
			case "AmbIntensity":
				v, err := s.number()
				if err != nil {
					return false, err
				}
				data.AmbIntensity = staticProperty([]float32{float32(v)})
			case "AttenuationStart":
				v, err := s.number()
				if err != nil {
					return false, err
				}
				data.AttenuationStart = staticProperty([]float32{float32(v)})
			case "AttenuationEnd":
				v, err := s.number()
				if err != nil {
					return false, err
				}
				data.AttenuationEnd = staticProperty([]float32{float32(v)})
			default:
				return false, s.errorf("unknown static property %q in Light", propKw)
			}
			return true, nil
		case "Color":
			track, err := readFloatTrack(s, 3)
			if err != nil {
				return false, err
			}
			reverseColorTrack(track)
			data.Color = Property[float32]{Track: track}
			return true, nil
		case "AmbColor":
			track, err := readFloatTrack(s, 3)
			if err != nil {
				return false, err
			}
			reverseColorTrack(track)
			data.AmbColor = Property[float32]{Track: track}
			return true, nil
		case "Intensity":
			track, err := readFloatTrack(s, 1)
			if err != nil {
				return false, err
			}
			data.Intensity = Property[float32]{Track: track}
			return true, nil
		case "AmbIntensity":
			track, err := readFloatTrack(s, 1)
			if err != nil {
				return false, err
			}
			data.AmbIntensity = Property[float32]{Track: track}
			return true, nil
		case "AttenuationStart":
			track, err := readFloatTrack(s, 1)
			if err != nil {
				return false, err
			}
			data.AttenuationStart = Property[float32]{Track: track}
			return true, nil
		case "AttenuationEnd":
			track, err := readFloatTrack(s, 1)
			if err != nil {
				return false, err
			}
			data.AttenuationEnd = Property[float32]{Track: track}
			return true, nil
		default:
			return false, nil
		}
	}
	if err := parseNodeCommon(s, n, extra); err != nil {
		return err
	}
	n.Light = data
	scene.Lights = append(scene.Lights, n)
	scene.Nodes = append(scene.Nodes, n)
	return nil
}
