// Package core holds the terminal-agnostic pieces shared by games and the
// platform layer: the screen buffer, colors, input actions and layout math.
// It does not import Bubble Tea.
package core

// Rect is an axis-aligned area of the screen. X and Y are the top-left cell.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle at (x, y) of size w×h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Center returns the middle cell, rounded towards the top-left.
func (r Rect) Center() (x, y int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CenteredIn returns a w×h rectangle centered inside r.
func (r Rect) CenteredIn(w, h int) Rect {
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

// ClampF restricts v to [lo, hi].
func ClampF(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

// Lerp interpolates between a and b; t is clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*ClampF(t, 0, 1)
}

// EaseOutQuad maps linear progress t in [0, 1] to a curve that slows
// towards the end, so sliding tiles settle softly into their cell.
func EaseOutQuad(t float64) float64 {
	return t * (2 - t)
}
