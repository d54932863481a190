package spider

import (
	"testing"

	"github.com/jason-s-yu/solitaire/engine"
)

func up(rank int, s engine.Suit) engine.Card { return engine.NewCard(rank, s).Show() }

// run returns face-up cards from rank `from` down to `to` in suit s.
func run(s engine.Suit, from, to int) engine.Deck {
	var d engine.Deck
	for r := from; r >= to; r-- {
		d = append(d, up(r, s))
	}
	return d
}

func TestCanPlaceTableau(t *testing.T) {
	h, s := engine.SuitHearts, engine.SuitSpades
	tests := []struct {
		name   string
		col    engine.Deck
		c      engine.Card
		cheats engine.Cheats
		want   bool
	}{
		{"five of spades on six of hearts", engine.Deck{up(6, h)}, up(5, s), 0, true},
		{"same suit", engine.Deck{up(6, s)}, up(5, s), 0, true},
		{"wrong rank", engine.Deck{up(7, h)}, up(5, s), 0, false},
		{"anything on empty", nil, up(9, s), 0, true},
		{"king on ace", engine.Deck{up(1, h)}, up(13, s), 0, false},
		{"king on ace relaxed", engine.Deck{up(1, h)}, up(13, s), CheatKings, true},
		{"queen on ace relaxed", engine.Deck{up(1, h)}, up(12, s), CheatKings, false},
	}
	for _, tt := range tests {
		if got := CanPlaceTableau(tt.col, tt.c, tt.cheats); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSameColor(t *testing.T) {
	h, d, c, s := engine.SuitHearts, engine.SuitDiamonds, engine.SuitClubs, engine.SuitSpades
	tests := []struct {
		a, b   engine.Suit
		colors int
		want   bool
	}{
		{h, s, 1, true},
		{h, d, 2, true},
		{c, s, 2, true},
		{h, c, 2, false},
		{h, h, 4, true},
		{h, d, 4, false},
		{c, s, 4, false},
	}
	for _, tt := range tests {
		if got := SameColor(up(3, tt.a), up(4, tt.b), tt.colors); got != tt.want {
			t.Errorf("SameColor(%v,%v,%d) = %v, want %v", tt.a, tt.b, tt.colors, got, tt.want)
		}
	}
}

func TestAllGood(t *testing.T) {
	h, s := engine.SuitHearts, engine.SuitSpades
	mixed := engine.Deck{up(9, s), up(8, h), up(7, s)}
	gapped := engine.Deck{up(9, s), up(7, s), up(6, s)}
	hidden := engine.Deck{engine.NewCard(9, s), up(8, s)}
	tests := []struct {
		name   string
		col    engine.Deck
		row    int
		cheats engine.Cheats
		ignore bool
		want   bool
	}{
		{"clean run", run(s, 9, 5), 0, 0, false, true},
		{"single card", run(s, 9, 5), 4, 0, false, true},
		{"mixed colours", mixed, 0, 0, false, false},
		{"mixed colours relaxed", mixed, 0, CheatColor, false, true},
		{"mixed colours strict", mixed, 0, CheatColor, true, false},
		{"gap", gapped, 0, 0, false, false},
		{"gap relaxed", gapped, 0, CheatOrder, false, true},
		{"gap below row", gapped, 1, 0, false, true},
		{"face-down head", hidden, 0, CheatColor | CheatOrder, false, false},
		{"negative row", run(s, 9, 5), -1, 0, false, false},
		{"ascending run", engine.Deck{up(5, s), up(6, s)}, 0, 0, false, false},
	}
	for _, tt := range tests {
		if got := AllGood(tt.col, tt.row, tt.cheats, 2, tt.ignore); got != tt.want {
			t.Errorf("%s: AllGood = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCompletedRun(t *testing.T) {
	full := append(engine.Deck{engine.NewCard(4, engine.SuitHearts)}, run(engine.SuitClubs, 13, 1)...)
	if !CompletedRun(full, 4) {
		t.Error("king-to-ace clubs not complete")
	}
	if CompletedRun(full[:len(full)-1], 4) {
		t.Error("twelve cards reported complete")
	}
	mixed := append(run(engine.SuitClubs, 13, 7), run(engine.SuitSpades, 6, 1)...)
	if !CompletedRun(mixed, 2) {
		t.Error("clubs and spades not one family with two colours")
	}
	if CompletedRun(mixed, 4) {
		t.Error("clubs and spades one family with four colours")
	}
}

func TestRunChecks(t *testing.T) {
	h := engine.SuitHearts
	ascending := []struct {
		run  engine.Deck
		want bool
	}{
		{engine.Deck{up(4, h)}, true},
		{engine.Deck{up(6, h), up(7, h), up(8, h)}, true},
		{run(h, 8, 4), false},
		{engine.Deck{up(6, h), up(8, h)}, false},
		{engine.Deck{up(8, h), up(6, h)}, false},
	}
	for _, tt := range ascending {
		if got := RunAscending(tt.run); got != tt.want {
			t.Errorf("RunAscending(%v) = %v, want %v", tt.run, got, tt.want)
		}
	}
	if !RunSameColor(engine.Deck{up(8, engine.SuitHearts), up(7, engine.SuitDiamonds)}, 2) {
		t.Error("hearts and diamonds differ with two colours")
	}
	if RunSameColor(engine.Deck{up(8, engine.SuitHearts), up(7, engine.SuitDiamonds)}, 4) {
		t.Error("hearts and diamonds match with four colours")
	}
}

func TestValidColors(t *testing.T) {
	for n := -1; n <= 5; n++ {
		want := n == 1 || n == 2 || n == 4
		if ValidColors(n) != want {
			t.Errorf("ValidColors(%d) = %v", n, !want)
		}
	}
}
