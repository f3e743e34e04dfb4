package gamemath

import "math"

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates linearly from start to end by t.
func Lerp(start, end, t float64) float64 {
	return start + (end-start)*t
}

// ApplyGravity accelerates a fall speed by gravity, capped at maxSpeed.
func ApplyGravity(speed, gravity, maxSpeed float64) float64 {
	speed += gravity
	if speed > maxSpeed {
		return maxSpeed
	}
	return speed
}

// Distance is the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Straddles reports whether a body that moved from prevY to y crossed or
// touched surfaceY from above.
func Straddles(prevY, y, surfaceY float64) bool {
	return prevY <= surfaceY && y >= surfaceY
}

// SpanOverlaps reports whether [x-buffer, x+buffer] overlaps (left, left+width)
// using the strict comparisons of the landing test.
func SpanOverlaps(x, buffer, left, width float64) bool {
	return x+buffer > left && x-buffer < left+width
}
