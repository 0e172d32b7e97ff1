package mdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerNumber(t *testing.T) {
	tests := []struct {
		src      string
		expected float64
	}{
		{"0", 0},
		{"-1", -1},
		{"1.5", 1.5},
		{"-0.125", -0.125},
		{"1e3", 1000},
		{"1e-3", 0.001},
	}
	for _, tt := range tests {
		s := newScanner(tt.src)
		v, err := s.number()
		require.NoError(t, err)
		assert.Equal(t, tt.expected, v)
	}
}

func TestScannerNumberFalseExponent(t *testing.T) {
	s := newScanner("1ek")
	v, err := s.number()
	require.NoError(t, err)
	assert.Equal(t, float64(1), v)
	kw, ok := s.keyword()
	assert.True(t, ok)
	assert.Equal(t, "ek", kw)
}

func TestScannerQuotedString(t *testing.T) {
	s := newScanner(`"foo.blp" rest`)
	str, ok, err := s.quotedString()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "foo.blp", str)
}

func TestScannerArrayTrailingComma(t *testing.T) {
	s := newScanner("{ 1, 2, 3, }")
	vals, ok, err := s.array()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []float64{1, 2, 3}, vals)
}

func TestScannerSkipsLineComments(t *testing.T) {
	s := newScanner("// a comment\nVersion")
	kw, ok := s.keyword()
	assert.True(t, ok)
	assert.Equal(t, "Version", kw)
}

func TestScannerKeywordRejectsLeadingDigit(t *testing.T) {
	s := newScanner("1Bone")
	_, ok := s.keyword()
	assert.False(t, ok)
}
