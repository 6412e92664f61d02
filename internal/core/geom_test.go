package core

import "testing"

func TestRect(t *testing.T) {
	tests := []struct {
		name         string
		outer        Rect
		w, h         int
		want         Rect
		cx, cy       int
		right, bottm int
	}{
		{"overlay on classic board", NewRect(24, 4, 29, 9), 21, 5, NewRect(28, 6, 21, 5), 38, 8, 53, 13},
		{"odd remainder rounds down", NewRect(0, 0, 21, 11), 10, 4, NewRect(5, 3, 10, 4), 10, 5, 21, 11},
		{"same size", NewRect(1, 1, 6, 6), 6, 6, NewRect(1, 1, 6, 6), 4, 4, 7, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.outer.CenteredIn(tc.w, tc.h); got != tc.want {
				t.Errorf("CenteredIn(%d, %d) = %+v, want %+v", tc.w, tc.h, got, tc.want)
			}
			if x, y := tc.outer.Center(); x != tc.cx || y != tc.cy {
				t.Errorf("Center() = (%d, %d), want (%d, %d)", x, y, tc.cx, tc.cy)
			}
			if tc.outer.Right() != tc.right || tc.outer.Bottom() != tc.bottm {
				t.Errorf("Right/Bottom = %d/%d, want %d/%d", tc.outer.Right(), tc.outer.Bottom(), tc.right, tc.bottm)
			}
		})
	}
}

func TestSlideInterpolation(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"clamp below", ClampF(-0.5, 0, 1), 0},
		{"clamp above", ClampF(1.5, 0, 1), 1},
		{"clamp inside", ClampF(0.25, 0, 1), 0.25},
		{"lerp start", Lerp(0, 3, 0), 0},
		{"lerp middle", Lerp(0, 3, 0.5), 1.5},
		{"lerp backwards", Lerp(3, 1, 0.5), 2},
		{"lerp overshoot clamped", Lerp(0, 3, 2), 3},
		{"ease start", EaseOutQuad(0), 0},
		{"ease end", EaseOutQuad(1), 1},
		{"ease middle is ahead of linear", EaseOutQuad(0.5), 0.75},
	}

	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, tc.got, tc.want)
		}
	}
}
