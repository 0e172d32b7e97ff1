package mdl

// handleBone implements the Bone block (§4.4). Bones do not join the
// flat Nodes list (§9 open question 2) — only the typed bucket.
func handleBone(s *scanner, scene *Scene) error {
	n := newNode(NodeTypeBone)
	if err := parseNodeCommon(s, n, nil); err != nil {
		return err
	}
	scene.Bones = append(scene.Bones, n)
	return nil
}

// handleHelper implements the Helper block (§4.4).
func handleHelper(s *scanner, scene *Scene) error {
	n := newNode(NodeTypeHelper)
	if err := parseNodeCommon(s, n, nil); err != nil {
		return err
	}
	scene.Helpers = append(scene.Helpers, n)
	return nil
}

// handleAttachment implements the Attachment block (§4.4): adds a
// Path string over the common node shape.
func handleAttachment(s *scanner, scene *Scene) error {
	n := newNode(NodeTypeAttachment)
	extra := func(kw string) (bool, error) {
		if kw != "Path" {
			return false, nil
		}
		str, ok, err := s.quotedString()
		if err != nil {
			return false, err
		}
		if ok {
			n.Path = str
		}
		return true, nil
	}
	if err := parseNodeCommon(s, n, extra); err != nil {
		return err
	}
	scene.Attachments = append(scene.Attachments, n)
	return nil
}

// handleEventObject implements the EventObject block (§4.4): adds an
// EventTrack of unsigned frame numbers. It appends to both its typed
// bucket and the flat Nodes list (§9, §4.4 node registration rule).
func handleEventObject(s *scanner, scene *Scene) error {
	n := newNode(NodeTypeEventObject)
	data := &EventObjectData{}
	extra := func(kw string) (bool, error) {
		if kw != "EventTrack" {
			return false, nil
		}
		if _, err := s.number(); err != nil {
			return false, err
		}
		vals, _, err := s.array()
		if err != nil {
			return false, err
		}
		data.EventTrack = make([]uint32, len(vals))
		for i, v := range vals {
			data.EventTrack[i] = truncUint32(v)
		}
		return true, nil
	}
	if err := parseNodeCommon(s, n, extra); err != nil {
		return err
	}
	n.EventObject = data
	scene.EventObjects = append(scene.EventObjects, n)
	scene.Nodes = append(scene.Nodes, n)
	return nil
}

// handleCollisionShape implements the CollisionShape block (§4.4):
// Box/Sphere geometry, vertices and an optional radius.
func handleCollisionShape(s *scanner, scene *Scene) error {
	n := newNode(NodeTypeCollisionShape)
	data := &CollisionShapeData{}
	extra := func(kw string) (bool, error) {
		switch kw {
		case "Box":
			data.Shape = ShapeBox
			return true, nil
		case "Sphere":
			data.Shape = ShapeSphere
			return true, nil
		case "Vertices":
			if _, err := s.number(); err != nil {
				return false, err
			}
			if err := s.expectSymbol('{'); err != nil {
				return false, err
			}
			for s.peekChar() != '}' {
				v3, err := s.readFixedVector3()
				if err != nil {
					return false, err
				}
				data.Vertices = append(data.Vertices, v3)
				if !s.maybeSymbol(',') {
					break
				}
			}
			if err := s.expectSymbol('}'); err != nil {
				return false, err
			}
			return true, nil
		case "BoundsRadius":
			v, err := s.number()
			if err != nil {
				return false, err
			}
			r := float32(v)
			data.Radius = &r
			return true, nil
		default:
			return false, nil
		}
	}
	if err := parseNodeCommon(s, n, extra); err != nil {
		return err
	}
	n.CollisionShape = data
	scene.CollisionShapes = append(scene.CollisionShapes, n)
	scene.Nodes = append(scene.Nodes, n)
	return nil
}
