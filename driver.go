package mdl

// Parse reads a complete MDL text document and returns the resulting
// scene graph. A syntax error anywhere aborts the parse; no partial
// scene is returned (§7).
func Parse(source string) (*Scene, error) {
	s := newScanner(source)
	scene := newScene()

	for !s.atEnd() {
		kw, ok := s.keyword()
		if !ok {
			return nil, s.errorf("expected a top-level keyword")
		}
		handler, known := topLevelHandlers[kw]
		if !known {
			if err := s.skipUnknownBlock(); err != nil {
				return nil, err
			}
			continue
		}
		if err := handler(s, scene); err != nil {
			return nil, err
		}
	}

	finalize(scene)
	return scene, nil
}

// topLevelHandlers dispatches a recognized top-level keyword to its
// semantic handler (§4.4, §6). Anything absent from this table is
// skipped as an unknown block rather than rejected (§4.5, §7).
var topLevelHandlers = map[string]func(*scanner, *Scene) error{
	"Version":         handleVersion,
	"Model":           handleModel,
	"Sequences":       handleSequences,
	"GlobalSequences": handleGlobalSequences,
	"Textures":        handleTextures,
	"Materials":       handleMaterials,
	"Geoset":          handleGeoset,
	"GeosetAnim":      handleGeosetAnim,
	"Bone":            handleBone,
	"Helper":          handleHelper,
	"Attachment":      handleAttachment,
	"PivotPoints":     handlePivotPoints,
	"EventObject":     handleEventObject,
	"CollisionShape":  handleCollisionShape,
	"ParticleEmitter": handleParticleEmitter,
	"ParticleEmitter2": handleParticleEmitter2,
	"Camera":          handleCamera,
	"Light":           handleLight,
	"TextureAnims":    handleTextureAnims,
	"RibbonEmitter":   handleRibbonEmitter,
}

// skipUnknownBlock consumes an unrecognized top-level block: an
// optional header token (name or index) followed by a brace region,
// skipped with nested-brace and quoted-string awareness so that braces
// or comment markers inside a string or comment don't desynchronize
// the depth counter (§4.5).
func (s *scanner) skipUnknownBlock() error {
	if s.peekChar() != '{' {
		if _, ok, err := s.quotedString(); err != nil {
			return err
		} else if !ok {
			if isDigit(s.peekChar()) || s.peekChar() == '-' {
				if _, err := s.number(); err != nil {
					return err
				}
			}
		}
	}
	if err := s.expectSymbol('{'); err != nil {
		return err
	}
	depth := 1
	for depth > 0 {
		switch {
		case s.atEnd():
			return s.errorf("unterminated block")
		case s.peekChar() == '"':
			if _, _, err := s.quotedString(); err != nil {
				return err
			}
		case s.peekChar() == '/' && s.pos+1 < len(s.src) && s.src[s.pos+1] == '/':
			s.skipTrivia()
		case s.peekChar() == '{':
			depth++
			s.pos++
		case s.peekChar() == '}':
			depth--
			s.pos++
		default:
			s.pos++
		}
	}
	s.skipTrivia()
	return nil
}
