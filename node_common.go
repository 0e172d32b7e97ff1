package mdl

// parseNodeCommon reads the shared Node body shape (§3, §4.4): the
// prefix is the node name; ObjectId/Parent/PivotPoint, the
// Translation/Rotation/Scaling/Visibility tracks, the DontInherit
// triple and the Billboarded*/CameraAnchored flags are recognized
// directly. Any other keyword is passed to the caller's handleExtra
// callback (if non-nil), which handles kind-specific keywords itself
// (e.g. Attachment's Path, EventObject's EventTrack) and reports
// whether it did; keywords it does not handle fall back to the §9
// "extras" bag.
func parseNodeCommon(s *scanner, n *Node, handleExtra func(kw string) (bool, error)) error {
	name, hasName, _, _, err := s.readPrefix()
	if err != nil {
		return err
	}
	if hasName {
		n.Name = name
	}
	if err := s.expectSymbol('{'); err != nil {
		return err
	}
	for s.peekChar() != '}' {
		kw, ok := s.keyword()
		if !ok {
			return s.errorf("expected key in node block")
		}
		switch kw {
		case "ObjectId":
			v, err := s.number()
			if err != nil {
				return err
			}
			n.ObjectId = truncInt32(v)
		case "Parent":
			v, err := s.number()
			if err != nil {
				return err
			}
			n.Parent = truncInt32(v)
			n.HasParent = true
		case "PivotPoint":
			v3, err := s.readFixedVector3()
			if err != nil {
				return err
			}
			n.PivotPoint = &v3
		case "Translation":
			track, err := readFloatTrack(s, 3)
			if err != nil {
				return err
			}
			n.Translation = track
		case "Rotation":
			track, err := readFloatTrack(s, 4)
			if err != nil {
				return err
			}
			n.Rotation = track
		case "Scaling":
			track, err := readFloatTrack(s, 3)
			if err != nil {
				return err
			}
			n.Scaling = track
		case "Visibility":
			track, err := readFloatTrack(s, 1)
			if err != nil {
				return err
			}
			n.Visibility = track
		case "DontInherit":
			if err := s.expectSymbol('{'); err != nil {
				return err
			}
			sub, ok := s.keyword()
			if !ok {
				return s.errorf("expected Translation/Rotation/Scaling in DontInherit")
			}
			switch sub {
			case "Translation":
				n.Flags |= DontInheritTranslation
			case "Rotation":
				n.Flags |= DontInheritRotation
			case "Scaling":
				n.Flags |= DontInheritScaling
			default:
				return s.errorf("unknown DontInherit member %q", sub)
			}
			if err := s.expectSymbol('}'); err != nil {
				return err
			}
		default:
			if bit, ok := nodeBehaviorFlagBit(kw); ok {
				n.Flags |= bit
				break
			}
			if handleExtra != nil {
				handled, err := handleExtra(kw)
				if err != nil {
					return err
				}
				if handled {
					break
				}
			}
			discard := newBody()
			if err := s.readGenericValue(discard, kw); err != nil {
				return err
			}
			if v, ok := discard.num(kw); ok {
				n.Extras[kw] = v
			}
		}
		if !s.maybeSymbol(',') {
			break
		}
	}
	return s.expectSymbol('}')
}
