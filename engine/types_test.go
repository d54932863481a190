package engine

import "testing"

// TestShowHideIdempotent verifies Show/Hide return equal values when repeated
// and never mutate the receiver.
func TestShowHideIdempotent(t *testing.T) {
	for s := Suit(0); s < NumSuits; s++ {
		for r := RankAce; r <= RankKing; r++ {
			c := NewCard(r, s)
			if c.Shown {
				t.Fatalf("NewCard(%d,%v) is face up", r, s)
			}
			up := c.Show()
			if up.Show() != up {
				t.Errorf("Show(Show(%v)) != Show(%v)", c, c)
			}
			if c.Hide() != c {
				t.Errorf("Hide(%v) changed a hidden card", c)
			}
			if c.Shown {
				t.Errorf("Show mutated receiver %v", c)
			}
			if up == c {
				t.Errorf("face-up and face-down %v compare equal", c)
			}
			if up.Hide() != c {
				t.Errorf("Hide(Show(%v)) = %v", c, up.Hide())
			}
		}
	}
}

// TestOppositeColor verifies the red/black split.
func TestOppositeColor(t *testing.T) {
	tests := []struct {
		a, b Suit
		want bool
	}{
		{SuitHearts, SuitDiamonds, false},
		{SuitHearts, SuitClubs, true},
		{SuitHearts, SuitSpades, true},
		{SuitDiamonds, SuitSpades, true},
		{SuitClubs, SuitSpades, false},
		{SuitSpades, SuitDiamonds, true},
	}
	for _, tt := range tests {
		got := OppositeColor(NewCard(6, tt.a), NewCard(7, tt.b))
		if got != tt.want {
			t.Errorf("OppositeColor(%v,%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCardString(t *testing.T) {
	tests := []struct {
		c    Card
		want string
	}{
		{NewCard(RankAce, SuitHearts).Show(), "AH"},
		{NewCard(10, SuitSpades).Show(), "10S"},
		{NewCard(RankKing, SuitClubs), "[KC]"},
		{Card{Rank: 0, Suit: SuitDiamonds, Shown: true}, "?D"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

// TestRectContains verifies right and bottom edges are exclusive.
func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 39, H: 53}
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(10, 20), true},
		{Pt(48, 72), true},
		{Pt(49, 72), false},
		{Pt(48, 73), false},
		{Pt(9, 30), false},
		{Pt(30, 19), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if r.TopLeft() != Pt(10, 20) {
		t.Errorf("TopLeft() = %v", r.TopLeft())
	}
}

// TestCheats verifies set/clear/toggle leave other flags untouched.
func TestCheats(t *testing.T) {
	const a, b, c Cheats = 1, 2, 4
	var set Cheats
	set.Set(a | c)
	if !set.Has(a) || set.Has(b) || !set.Has(c) {
		t.Fatalf("after Set: %03b", set)
	}
	set.Clear(a)
	if set.Has(a) || !set.Has(c) {
		t.Fatalf("after Clear: %03b", set)
	}
	set.Toggle(b)
	set.Toggle(c)
	if set != b {
		t.Fatalf("after Toggle: %03b, want %03b", set, b)
	}
}
