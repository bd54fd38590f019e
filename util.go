package blobposter

import (
	"strings"
)

// Basename retrieves the basename of a file path.
func Basename(fName string) string {
	if lslash := strings.LastIndex(fName, "/"); lslash != -1 {
		fName = fName[lslash+1:]
	}
	return fName
}

// Clamp current value between low and high
func Clamp(cur, low, high float64) float64 {
	if low > high {
		low, high = high, low
	}
	if cur < low {
		return low
	}
	if cur > high {
		return high
	}
	return cur
}

// Lerp is a linear interpolation from v0 to v1 where t varies from 0 to 1
func Lerp(v0, v1, t float64) float64 {
	return v0*(1-t) + v1*t
}

// Linspace returns n evenly spaced values from start to stop.
// With endpoint false, stop itself is left out and the spacing is (stop-start)/n.
// A single sample is always start.
func Linspace(start, stop float64, n int, endpoint bool) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	div := float64(n)
	if endpoint {
		div = float64(n - 1)
	}
	if div == 0 {
		out[0] = start
		return out
	}
	for i := range out {
		out[i] = Lerp(start, stop, float64(i)/div)
	}
	if endpoint {
		out[n-1] = stop
	}
	return out
}
