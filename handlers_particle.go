package mdl

// handleParticleEmitter implements the legacy ParticleEmitter block
// (§4.4). It is not a Node (§3, §9 open question 1): it has its own
// ObjectId/Parent pair and is never appended to the flat Nodes list.
func handleParticleEmitter(s *scanner, scene *Scene) error {
	name, hasName, _, _, err := s.readPrefix()
	if err != nil {
		return err
	}
	e := &ParticleEmitter{Parent: -1}
	if hasName {
		e.Name = name
	}
	if err := s.expectSymbol('{'); err != nil {
		return err
	}
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok {
			return s.errorf("expected key in ParticleEmitter block")
		}
		switch kw {
		case "ObjectId":
			v, err := s.number()
			if err != nil {
				return err
			}
			e.ObjectId = truncInt32(v)
		case "Parent":
			v, err := s.number()
			if err != nil {
				return err
			}
			e.Parent = truncInt32(v)
			e.HasParent = true
		case "static":
			propKw, ok := s.keyword()
			if !ok {
				return s.errorf("expected property name after static")
			}
			switch propKw {
			case "EmissionRate":
				v, err := s.number()
				if err != nil {
					return err
				}
				e.EmissionRate = staticProperty([]float32{float32(v)})
			case "Gravity":
				v, err := s.number()
				if err != nil {
					return err
				}
				e.Gravity = staticProperty([]float32{float32(v)})
			case "Longitude":
				v, err := s.number()
				if err != nil {
					return err
				}
				e.Longitude = staticProperty([]float32{float32(v)})
			case "Latitude":
				v, err := s.number()
				if err != nil {
					return err
				}
				e.Latitude = staticProperty([]float32{float32(v)})
			case "Visibility":
				v, err := s.number()
				if err != nil {
					return err
				}
				e.Visibility = staticProperty([]float32{float32(v)})
			case "Translation":
				v3, err := s.readFixedVector3()
				if err != nil {
					return err
				}
				e.Translation = staticProperty([]float32{v3[0], v3[1], v3[2]})
			case "Scaling":
				v3, err := s.readFixedVector3()
				if err != nil {
					return err
				}
				e.Scaling = staticProperty([]float32{v3[0], v3[1], v3[2]})
			case "Rotation":
				vals, err := readVector(s, 4, toFloat32)
				if err != nil {
					return err
				}
				e.Rotation = staticProperty(vals)
			default:
				return s.errorf("unknown static property %q in ParticleEmitter", propKw)
			}
		case "EmissionRate":
			track, err := readFloatTrack(s, 1)
			if err != nil {
				return err
			}
			e.EmissionRate = Property[float32]{Track: track}
		case "Gravity":
			track, err := readFloatTrack(s, 1)
			if err != nil {
				return err
			}
			e.Gravity = Property[float32]{Track: track}
		case "Longitude":
			track, err := readFloatTrack(s, 1)
			if err != nil {
				return err
			}
			e.Longitude = Property[float32]{Track: track}
		case "Latitude":
			track, err := readFloatTrack(s, 1)
			if err != nil {
				return err
			}
			e.Latitude = Property[float32]{Track: track}
		case "Visibility":
			track, err := readFloatTrack(s, 1)
			if err != nil {
				return err
			}
			e.Visibility = Property[float32]{Track: track}
		case "Translation":
			track, err := readFloatTrack(s, 3)
			if err != nil {
				return err
			}
			e.Translation = Property[float32]{Track: track}
		case "Scaling":
			track, err := readFloatTrack(s, 3)
			if err != nil {
				return err
			}
			e.Scaling = Property[float32]{Track: track}
		case "Rotation":
			track, err := readFloatTrack(s, 4)
			if err != nil {
				return err
			}
			e.Rotation = Property[float32]{Track: track}
		case "LifeSpan":
			// last-write-wins against Particle.LifeSpan (§9 open question 1)
			v, err := s.number()
			if err != nil {
				return err
			}
			e.Particle.LifeSpan = float32(v)
		case "InitVelocity":
			v, err := s.number()
			if err != nil {
				return err
			}
			e.Particle.InitVelocity = float32(v)
		case "Particle":
			if err := s.expectSymbol('{'); err != nil {
				return err
			}
			for s.peekChar() != '}' {
				pkw, ok := s.keyword()
				if !ok {
					return s.errorf("expected key in Particle block")
				}
				switch pkw {
				case "LifeSpan":
					v, err := s.number()
					if err != nil {
						return err
					}
					e.Particle.LifeSpan = float32(v)
				case "InitVelocity":
					v, err := s.number()
					if err != nil {
						return err
					}
					e.Particle.InitVelocity = float32(v)
				case "Path":
					str, _, err := s.quotedString()
					if err != nil {
						return err
					}
					e.Particle.Path = str
				default:
					discard := newBody()
					if err := s.readGenericValue(discard, pkw); err != nil {
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
			if bit, ok := particleEmitterFlagBit(kw); ok {
				e.Flags |= bit
				break
			}
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
	scene.ParticleEmitters = append(scene.ParticleEmitters, e)
	return nil
}

// handleParticleEmitter2 implements the ParticleEmitter2 block
// (§4.4): a Node with an extensive animated-channel table, frame
// flags, filter mode, and BGR-reversed segment colors.
func handleParticleEmitter2(s *scanner, scene *Scene) error {
	n := newNode(NodeTypeParticleEmitter)
	data := &ParticleEmitter2Data{}
	extra := func(kw string) (bool, error) {
		switch kw {
		case "Both":
			data.FrameFlags |= FrameHead | FrameTail
			return true, nil
		case "Head":
			data.FrameFlags |= FrameHead
			return true, nil
		case "Tail":
			data.FrameFlags |= FrameTail
			return true, nil
		case "Speed":
			track, err := readFloatTrack(s, 1)
			if err != nil {
				return false, err
			}
			data.Speed = Property[float32]{Track: track}
			return true, nil
		case "Latitude":
			track, err := readFloatTrack(s, 1)
			if err != nil {
				return false, err
			}
			data.Latitude = Property[float32]{Track: track}
			return true, nil
		case "EmissionRate":
			track, err := readFloatTrack(s, 1)
			if err != nil {
				return false, err
			}
			data.EmissionRate = Property[float32]{Track: track}
			return true, nil
		case "Width":
			track, err := readFloatTrack(s, 1)
			if err != nil {
				return false, err
			}
			data.Width = Property[float32]{Track: track}
			return true, nil
		case "Length":
			track, err := readFloatTrack(s, 1)
			if err != nil {
				return false, err
			}
			data.Length = Property[float32]{Track: track}
			return true, nil
		case "Gravity":
			track, err := readFloatTrack(s, 1)
			if err != nil {
				return false, err
			}
			data.Gravity = Property[float32]{Track: track}
			return true, nil
		case "Variation":
			track, err := readFloatTrack(s, 1)
			if err != nil {
				return false, err
			}
			data.Variation = Property[float32]{Track: track}
			return true, nil
		case "static":
			propKw, ok := s.keyword()
			if !ok {
				return false, s.errorf("expected property name after static")
			}
			switch propKw {
			case "Speed":
				v, err := s.number()
				if err != nil {
					return false, err
				}
				data.Speed = staticProperty([]float32{float32(v)})
			case "Latitude":
				v, err := s.number()
				if err != nil {
					return false, err
				}
				data.Latitude = staticProperty([]float32{float32(v)})
			case "EmissionRate":
				v, err := s.number()
				if err != nil {
					return false, err
				}
				data.EmissionRate = staticProperty([]float32{float32(v)})
			case "Width":
				v, err := s.number()
				if err != nil {
					return false, err
				}
				data.Width = staticProperty([]float32{float32(v)})
			case "Length":
				v, err := s.number()
				if err != nil {
					return false, err
				}
				data.Length = staticProperty([]float32{float32(v)})
			case "Gravity":
				v, err := s.number()
				if err != nil {
					return false, err
				}
				data.Gravity = staticProperty([]float32{float32(v)})
			case "Variation":
				v, err := s.number()
				if err != nil {
					return false, err
				}
				data.Variation = staticProperty([]float32{float32(v)})
			default:
				return false, s.errorf("unknown static property %q in ParticleEmitter2", propKw)
			}
			return true, nil
		case "SegmentColor":
			if err := s.expectSymbol('{'); err != nil {
				return false, err
			}
			for s.peekChar() != '}' {
				ckw, ok := s.keyword()
				if !ok || ckw != "Color" {
					return false, s.errorf("expected Color entry in SegmentColor")
				}
				v3, err := s.readFixedVector3()
				if err != nil {
					return false, err
				}
				data.SegmentColor = append(data.SegmentColor, reverseRGB(v3))
				if !s.maybeSymbol(',') {
					break
				}
			}
			if err := s.expectSymbol('}'); err != nil {
				return false, err
			}
			return true, nil
		case "Alpha":
			vals, _, err := s.array()
			if err != nil {
				return false, err
			}
			for i := 0; i < 3 && i < len(vals); i++ {
				data.Alpha[i] = truncByte(vals[i])
			}
			return true, nil
		case "ParticleScaling":
			v3, err := s.readFixedVector3()
			if err != nil {
				return false, err
			}
			data.ParticleScaling = v3
			return true, nil
		case "LifeSpanUVAnim":
			v, err := s.readFlatVectorList3Uint()
			if err != nil {
				return false, err
			}
			data.LifeSpanUVAnim = v
			return true, nil
		case "DecayUVAnim":
			v, err := s.readFlatVectorList3Uint()
			if err != nil {
				return false, err
			}
			data.DecayUVAnim = v
			return true, nil
		case "TailUVAnim":
			v, err := s.readFlatVectorList3Uint()
			if err != nil {
				return false, err
			}
			data.TailUVAnim = v
			return true, nil
		case "TailDecayUVAnim":
			v, err := s.readFlatVectorList3Uint()
			if err != nil {
				return false, err
			}
			data.TailDecayUVAnim = v
			return true, nil
		case "Squirt":
			data.Squirt = true
			return true, nil
		default:
			if mode, ok := particleEmitter2FilterModeValue(kw); ok {
				data.FilterMode = mode
				return true, nil
			}
			if bit, ok := particleEmitter2FlagBit(kw); ok {
				data.Flags |= bit
				return true, nil
			}
			return false, nil
		}
	}
	if err := parseNodeCommon(s, n, extra); err != nil {
		return err
	}
	n.ParticleEmitter2 = data
	scene.ParticleEmitter2 = append(scene.ParticleEmitter2, n)
	scene.Nodes = append(scene.Nodes, n)
	return nil
}
