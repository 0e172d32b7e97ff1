package mdl

import "strconv"

// parseFloat wraps strconv.ParseFloat with the 64-bit width the
// scanner works in internally; callers narrow to float32/int32 at the
// point where the value is stored on a record.
func parseFloat(text string) (float64, error) {
	if text == "" || text == "-" || text == "+" {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseFloat(text, 64)
}

// truncInt32 wraps a float64 into a signed 32-bit integer using
// two's-complement wraparound, per the animated-track reader's output
// contract (§4.3): numeric overflow on integer channels wraps rather
// than saturating or erroring.
func truncInt32(v float64) int32 {
	return int32(uint32(int64(v)))
}

func truncUint32(v float64) uint32 {
	return uint32(int64(v))
}

func truncByte(v float64) byte {
	return byte(uint32(int64(v)))
}
