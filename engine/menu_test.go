package engine

import "testing"

func testMenu() Menu {
	m := NewMenu(Pt(50, 19), 45,
		MenuRow{Label: "ABC", Cheat: 1},
		MenuRow{Label: "RESTART"},
	)
	m.Open = true
	return m
}

func TestNextButtonState(t *testing.T) {
	tests := []struct {
		prev ButtonState
		down bool
		want ButtonState
	}{
		{Released, false, Released},
		{Released, true, JustPressed},
		{JustPressed, true, Pressed},
		{Pressed, true, Pressed},
		{Pressed, false, JustReleased},
		{JustPressed, false, JustReleased},
		{JustReleased, false, Released},
		{JustReleased, true, JustPressed},
	}
	for _, tt := range tests {
		if got := NextButtonState(tt.prev, tt.down); got != tt.want {
			t.Errorf("NextButtonState(%v,%v) = %v, want %v", tt.prev, tt.down, got, tt.want)
		}
	}
}

func TestMenuRowAt(t *testing.T) {
	m := testMenu()
	tests := []struct {
		p    Point
		want int
	}{
		{Pt(50, 19), 0},
		{Pt(67, 25), 0},  // last pixel of "ABC"
		{Pt(68, 25), -1}, // past the label
		{Pt(50, 26), -1}, // between rows
		{Pt(90, 64), 1},
		{Pt(50, 109), -1}, // no third row
		{Pt(49, 19), -1},
		{Pt(50, 10), -1},
	}
	for _, tt := range tests {
		if got := m.RowAt(tt.p); got != tt.want {
			t.Errorf("RowAt(%v) = %d, want %d", tt.p, got, tt.want)
		}
	}
}

// TestMenuPressRelease verifies a row only triggers when pressed and released
// over the same row, and that any release disarms it.
func TestMenuPressRelease(t *testing.T) {
	on0, on1, off := Pt(55, 20), Pt(55, 65), Pt(300, 300)
	tests := []struct {
		name   string
		frames []Input
		want   int
	}{
		{"same row", []Input{{Pointer: on0, Left: JustPressed}, {Pointer: on0, Left: JustReleased}}, 0},
		{"moved to other row", []Input{{Pointer: on0, Left: JustPressed}, {Pointer: on1, Left: JustReleased}}, -1},
		{"pressed off menu", []Input{{Pointer: off, Left: JustPressed}, {Pointer: on1, Left: JustReleased}}, -1},
		{"second row", []Input{{Pointer: on1, Left: JustPressed}, {Pointer: on1, Left: Pressed}, {Pointer: on1, Left: JustReleased}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testMenu()
			got := -1
			for _, in := range tt.frames {
				if r := m.Handle(in); r != -1 {
					got = r
				}
			}
			if got != tt.want {
				t.Errorf("triggered %d, want %d", got, tt.want)
			}
			if m.Selected() != -1 {
				t.Errorf("Selected() = %d after release", m.Selected())
			}
		})
	}
}

func TestMenuEscapeCloses(t *testing.T) {
	m := testMenu()
	m.Handle(Input{Pointer: Pt(55, 20), Left: JustPressed})
	if m.Selected() != 0 {
		t.Fatalf("Selected() = %d, want 0", m.Selected())
	}
	if got := m.Handle(Input{Escape: JustPressed}); got != -1 {
		t.Fatalf("Escape triggered row %d", got)
	}
	if m.Open || m.Selected() != -1 {
		t.Fatalf("after Escape Open=%v Selected=%d", m.Open, m.Selected())
	}
}
