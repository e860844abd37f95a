package patch

// Clamp bounds v to [lo, hi] and substitutes def for the zero value.
func Clamp(v, def, lo, hi int) int {
	switch {
	case v == 0:
		return def
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
