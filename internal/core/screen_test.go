package core

import (
	"strings"
	"testing"
)

func TestScreenDrawing(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		draw func(s *Screen)
		want []string
	}{
		{
			name: "blank",
			w:    4, h: 2,
			draw: func(s *Screen) {},
			want: []string{"    ", "    "},
		},
		{
			name: "text clipped at the right edge",
			w:    6, h: 1,
			draw: func(s *Screen) { s.DrawText(3, 0, "2048") },
			want: []string{"   204"},
		},
		{
			name: "out of bounds writes are ignored",
			w:    3, h: 1,
			draw: func(s *Screen) {
				s.Set(-1, 0, 'x')
				s.Set(3, 0, 'x')
				s.Set(0, 1, 'x')
				s.Set(1, 0, 'o')
			},
			want: []string{" o "},
		},
		{
			name: "centered text",
			w:    9, h: 1,
			draw: func(s *Screen) { s.DrawTextCentered(0, "256") },
			want: []string{"   256   "},
		},
		{
			name: "boxed tile",
			w:    7, h: 3,
			draw: func(s *Screen) {
				s.DrawBox(NewRect(0, 0, 7, 3), ColorGray)
				s.DrawTextColor(2, 1, "128", ColorGold)
			},
			want: []string{"┌─────┐", "│ 128 │", "└─────┘"},
		},
		{
			name: "fill then clear area",
			w:    5, h: 3,
			draw: func(s *Screen) {
				s.FillRect(NewRect(0, 0, 5, 3), '#', ColorOrange)
				s.FillRect(NewRect(1, 1, 3, 1), ' ', ColorDefault)
			},
			want: []string{"#####", "#   #", "#####"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(tc.w, tc.h)
			tc.draw(s)
			if got, want := s.String(), strings.Join(tc.want, "\n"); got != want {
				t.Errorf("screen =\n%s\nwant\n%s", got, want)
			}
			for y, line := range tc.want {
				if got := s.Row(y); got != line {
					t.Errorf("Row(%d) = %q, want %q", y, got, line)
				}
			}
		})
	}
}

func TestScreenCells(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColor(1, 1, "2048", ColorGold)

	for i, ch := range "2048" {
		if cell := s.GetCell(1+i, 1); cell.Rune != ch || cell.Color != ColorGold {
			t.Errorf("GetCell(%d, 1) = %+v, want gold %q", 1+i, cell, ch)
		}
	}

	s.Set(1, 1, 'x')
	if got := s.GetCell(1, 1); got.Color != ColorDefault || s.Get(1, 1) != 'x' {
		t.Errorf("Set should write an uncolored rune, got %+v", got)
	}
	if got := s.GetCell(-1, 0); got != blank {
		t.Errorf("out of bounds GetCell = %+v, want blank", got)
	}
	if got := s.Row(5); got != strings.Repeat(" ", 10) {
		t.Errorf("out of bounds Row = %q, want spaces", got)
	}

	s.Clear()
	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("Clear left %q", s.String())
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 4)
	s.DrawTextColor(0, 0, "Score", ColorCyan)
	s.DrawText(0, 3, "Best")

	s.Resize(3, 2)
	if s.Width() != 3 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", s.Width(), s.Height())
	}
	if got := s.String(); got != "Sco\n   " {
		t.Errorf("after shrink = %q", got)
	}
	if got := s.GetCell(1, 0); got.Color != ColorCyan {
		t.Errorf("resize lost color: %+v", got)
	}

	s.Resize(6, 3)
	if got := s.Row(0); got != "Sco   " {
		t.Errorf("after grow Row(0) = %q", got)
	}

	s.Resize(6, 3)
	if got := s.Row(0); got != "Sco   " {
		t.Errorf("same-size resize changed Row(0) to %q", got)
	}
}

func TestColorCode(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightWhite, "15"},
		{ColorOrange, "208"},
		{ColorGold, "220"},
	}
	for _, tc := range tests {
		if got := tc.c.Code(); got != tc.want {
			t.Errorf("Color(%d).Code() = %q, want %q", tc.c, got, tc.want)
		}
	}
}
