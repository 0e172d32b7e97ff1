package mdl

// InterpType is the interpolation mode of an animated track (§6 LineType).
type InterpType int

const (
	DontInterp InterpType = iota
	Linear
	Hermite
	Bezier
)

// Number is the element kind of an animated-track channel: signed
// 32-bit integers (TextureID, TextureSlot, ...) or 32-bit floats
// (everything else).
type Number interface {
	~int32 | ~float32
}

// Keyframe is one entry of an animated track: a frame number, a
// vector matching the channel's declared arity, and — only when the
// track's interpolation mode is Hermite or Bezier — matching incoming
// and outgoing tangent vectors.
type Keyframe[T Number] struct {
	Frame  int32
	Vector []T
	InTan  []T
	OutTan []T
}

// AnimatedTrack is the recurring "{ count, mode, (GlobalSeqId n,)?
// (frame: vec ...)* }" sub-block (§4.3).
type AnimatedTrack[T Number] struct {
	LineType    InterpType
	GlobalSeqId *int32
	Keys        []Keyframe[T]
}

func toFloat32(v float64) float32 { return float32(v) }
func toInt32(v float64) int32     { return truncInt32(v) }

// readVector reads a channel value of the given arity: a bare number
// for arity 1, otherwise a brace-delimited array of exactly arity
// elements.
func readVector[T Number](s *scanner, arity int, conv func(float64) T) ([]T, error) {
	if arity == 1 {
		v, err := s.number()
		if err != nil {
			return nil, err
		}
		return []T{conv(v)}, nil
	}
	vals, present, err := s.array()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, s.errorf("expected %d-element vector", arity)
	}
	if len(vals) != arity {
		return nil, s.errorf("expected %d-element vector, got %d", arity, len(vals))
	}
	out := make([]T, arity)
	for i, v := range vals {
		out[i] = conv(v)
	}
	return out, nil
}

// readTrack reads "{ <count>, interp-keyword, (GlobalSeqId n,)?
// (frame: vec (, InTan vec, OutTan vec)?)* }" (§4.3, scenario S3).
// The leading count is a hint only — it is never validated against
// the number of keys actually read.
func readTrack[T Number](s *scanner, arity int, conv func(float64) T) (*AnimatedTrack[T], error) {
	if err := s.expectSymbol('{'); err != nil {
		return nil, err
	}
	if _, err := s.number(); err != nil {
		return nil, err
	}
	s.maybeSymbol(',')
	track := &AnimatedTrack[T]{LineType: DontInterp}
	mode, ok := s.keyword()
	if !ok {
		return nil, s.errorf("expected interpolation mode keyword")
	}
	switch mode {
	case "DontInterp":
		track.LineType = DontInterp
	case "Linear":
		track.LineType = Linear
	case "Hermite":
		track.LineType = Hermite
	case "Bezier":
		track.LineType = Bezier
		// any other keyword leaves the DontInterp default (§4.3)
	}
	s.maybeSymbol(',')

	for s.peekChar() != '}' {
		if isAlpha(s.peekChar()) {
			kw, _ := s.keyword()
			if kw != "GlobalSeqId" {
				return nil, s.errorf("unexpected keyword %q in animated track", kw)
			}
			v, err := s.number()
			if err != nil {
				return nil, err
			}
			id := truncInt32(v)
			track.GlobalSeqId = &id
		} else {
			frame, err := s.number()
			if err != nil {
				return nil, err
			}
			if err := s.expectSymbol(':'); err != nil {
				return nil, err
			}
			vec, err := readVector(s, arity, conv)
			if err != nil {
				return nil, err
			}
			key := Keyframe[T]{Frame: truncInt32(frame), Vector: vec}
			if track.LineType == Hermite || track.LineType == Bezier {
				if !s.maybeSymbol(',') {
					return nil, s.errorf("expected , before InTan")
				}
				if kw, ok := s.keyword(); !ok || kw != "InTan" {
					return nil, s.errorf("expected InTan keyframe tangent")
				}
				key.InTan, err = readVector(s, arity, conv)
				if err != nil {
					return nil, err
				}
				if !s.maybeSymbol(',') {
					return nil, s.errorf("expected , before OutTan")
				}
				if kw, ok := s.keyword(); !ok || kw != "OutTan" {
					return nil, s.errorf("expected OutTan keyframe tangent")
				}
				key.OutTan, err = readVector(s, arity, conv)
				if err != nil {
					return nil, err
				}
			}
			track.Keys = append(track.Keys, key)
		}
		if !s.maybeSymbol(',') {
			break
		}
	}
	if err := s.expectSymbol('}'); err != nil {
		return nil, err
	}
	return track, nil
}

func readFloatTrack(s *scanner, arity int) (*AnimatedTrack[float32], error) {
	return readTrack(s, arity, toFloat32)
}

func readIntTrack(s *scanner, arity int) (*AnimatedTrack[int32], error) {
	return readTrack(s, arity, toInt32)
}
