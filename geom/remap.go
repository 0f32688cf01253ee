package geom

import "math"

// Remap maps val from [minIn, maxIn] onto [minOut, maxOut]. The input range
// may be descending. With clamp set the result is limited to
// [minOut, maxOut]. A zero-width input range is a caller bug and panics.
func Remap(val, minIn, maxIn, minOut, maxOut float64, clamp bool) float64 {
	if minIn == maxIn {
		panic("geom: remap with zero-width input range")
	}
	if clamp {
		return math.Min(math.Max(minOut, (val-minIn)*(maxOut-minOut)/(maxIn-minIn)+minOut), maxOut)
	}
	return (val-minIn)/(maxIn-minIn)*(maxOut-minOut) + minOut
}

// Lerp interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
