package mdl

// body is the result of the generic block reader (§4.2): an ordered
// bag of key/value pairs read from a brace-delimited block. Per-block
// semantic handlers query it with the typed getters below; unconsumed
// keys become the "extras" bag a loose node handler records.
type body struct {
	keys        []string // order of first appearance
	numbers     map[string]float64
	strings     map[string]string
	arrays      map[string][]float64
	interval    [2]uint32
	hasInterval bool
	minExtent   [3]float32
	hasMinEx    bool
	maxExtent   [3]float32
	hasMaxEx    bool
	consumed    map[string]bool
}

func newBody() *body {
	return &body{
		numbers: make(map[string]float64),
		strings: make(map[string]string),
		arrays:  make(map[string][]float64),
	}
}

func (b *body) record(key string) {
	if !b.has(key) {
		b.keys = append(b.keys, key)
	}
}

func (b *body) num(key string) (float64, bool) {
	v, ok := b.numbers[key]
	return v, ok
}

func (b *body) str(key string) (string, bool) {
	v, ok := b.strings[key]
	return v, ok
}

func (b *body) arr(key string) ([]float64, bool) {
	v, ok := b.arrays[key]
	return v, ok
}

// has reports whether key appeared at all (number, string or array).
func (b *body) has(key string) bool {
	if _, ok := b.numbers[key]; ok {
		return true
	}
	if _, ok := b.strings[key]; ok {
		return true
	}
	if _, ok := b.arrays[key]; ok {
		return true
	}
	return false
}

// readPrefix reads the optional "name" | <index> that precedes a
// brace block, per §4.2/§6 grammar (`prefix := "name" | <integer-index>`).
func (s *scanner) readPrefix() (name string, hasName bool, index float64, hasIndex bool, err error) {
	if str, ok, serr := s.quotedString(); serr != nil {
		return "", false, 0, false, serr
	} else if ok {
		return str, true, 0, false, nil
	}
	if isDigit(s.peekChar()) || s.peekChar() == '-' {
		n, nerr := s.number()
		if nerr != nil {
			return "", false, 0, false, nerr
		}
		return "", false, n, true, nil
	}
	return "", false, 0, false, nil
}

// readBody reads "{ key value (,)? }*" per §4.2: the value is
// recognized by peeking at the next character: '{' => array,
// '"' => string, digit/minus => number. Interval and
// Minimum/MaximumExtent are always typed.
func (s *scanner) readBody() (*body, error) {
	if err := s.expectSymbol('{'); err != nil {
		return nil, err
	}
	b := newBody()
	for s.peekChar() != '}' {
		key, ok := s.keyword()
		if !ok {
			return nil, s.errorf("expected key in block body")
		}
		switch key {
		case "Interval":
			vals, present, err := s.array()
			if err != nil {
				return nil, err
			}
			if !present || len(vals) < 2 {
				return nil, s.errorf("Interval requires a 2-element array")
			}
			b.interval = [2]uint32{truncUint32(vals[0]), truncUint32(vals[1])}
			b.hasInterval = true
		case "MinimumExtent", "MaximumExtent":
			vals, present, err := s.array()
			if err != nil {
				return nil, err
			}
			if !present || len(vals) < 3 {
				return nil, s.errorf("%s requires a 3-element array", key)
			}
			var v3 [3]float32
			for i := 0; i < 3; i++ {
				v3[i] = float32(vals[i])
			}
			if key == "MinimumExtent" {
				b.minExtent, b.hasMinEx = v3, true
			} else {
				b.maxExtent, b.hasMaxEx = v3, true
			}
		default:
			if err := s.readGenericValue(b, key); err != nil {
				return nil, err
			}
		}
		if !s.maybeSymbol(',') {
			break
		}
	}
	if err := s.expectSymbol('}'); err != nil {
		return nil, err
	}
	return b, nil
}

// readGenericValue reads one of {array, string, number, bare-flag}
// based on a one-character lookahead and stores it under key. A bare
// flag keyword with no following value (next character is ',' or '}')
// is recorded present with a sentinel value, matching the "Flag
// keyword packing" shape of §4.4.
func (s *scanner) readGenericValue(b *body, key string) error {
	b.record(key)
	switch {
	case s.peekChar() == '{':
		vals, _, err := s.array()
		if err != nil {
			return err
		}
		b.arrays[key] = vals
	case s.peekChar() == '"':
		str, _, err := s.quotedString()
		if err != nil {
			return err
		}
		b.strings[key] = str
	case s.peekChar() == ',' || s.peekChar() == '}':
		b.numbers[key] = 1
	case isDigit(s.peekChar()) || s.peekChar() == '-':
		v, err := s.number()
		if err != nil {
			return err
		}
		b.numbers[key] = v
	default:
		return s.errorf("expected value for key %q", key)
	}
	return nil
}

// object reads an optional prefix followed by a brace body — the
// generic shape used by Sequence/Texture entries and similarly shaped
// headers.
func (s *scanner) object() (name string, hasName bool, index float64, hasIndex bool, b *body, err error) {
	name, hasName, index, hasIndex, err = s.readPrefix()
	if err != nil {
		return
	}
	b, err = s.readBody()
	return
}
