package engine

import (
	"math/rand"
	"testing"
)

// TestNewStandardDeck verifies 52 unique face-down cards in suit-major,
// rank-ascending order.
func TestNewStandardDeck(t *testing.T) {
	d := NewStandardDeck()
	if d.Len() != 52 {
		t.Fatalf("Len = %d, want 52", d.Len())
	}
	seen := make(map[Card]bool)
	for i, c := range d {
		want := NewCard(i%13+1, Suit(i/13))
		if c != want {
			t.Errorf("d[%d] = %v, want %v", i, c, want)
		}
		if seen[c] {
			t.Errorf("duplicate card %v", c)
		}
		seen[c] = true
	}
}

func TestTakeTopBottom(t *testing.T) {
	d := NewStandardDeck()[:6] // A..6 of hearts
	top := d.TakeTop(2)
	if top.Len() != 2 || top[0].Rank != 1 || top[1].Rank != 2 {
		t.Fatalf("TakeTop(2) = %v", top)
	}
	bottom := d.TakeBottom(2)
	if bottom.Len() != 2 || bottom[0].Rank != 5 || bottom[1].Rank != 6 {
		t.Fatalf("TakeBottom(2) = %v", bottom)
	}
	if d.Len() != 2 || d[0].Rank != 3 || d[1].Rank != 4 {
		t.Fatalf("remaining = %v", d)
	}

	d.AddTop(top...)
	d.AddBottom(bottom...)
	for i, c := range d {
		if c.Rank != i+1 {
			t.Fatalf("after re-adding d[%d] = %v", i, c)
		}
	}

	if c := d.TakeTopCard(); c.Rank != 1 {
		t.Errorf("TakeTopCard = %v", c)
	}
	if c := d.TakeBottomCard(); c.Rank != 6 {
		t.Errorf("TakeBottomCard = %v", c)
	}
	all := d.TakeAll()
	if all.Len() != 4 || !d.Empty() {
		t.Errorf("TakeAll left %d, returned %d", d.Len(), all.Len())
	}
}

// TestTakeIndependent verifies taken sub-decks do not alias the source.
func TestTakeIndependent(t *testing.T) {
	d := NewStandardDeck()[:4]
	taken := d.TakeBottom(2)
	d.AddBottom(NewCard(RankKing, SuitSpades))
	if taken[0].Rank != 3 {
		t.Fatalf("taken sub-deck was overwritten: %v", taken)
	}
}

// TestTakeTooMany verifies over-taking is a contract violation.
func TestTakeTooMany(t *testing.T) {
	tests := []struct {
		name string
		fn   func(d *Deck)
	}{
		{"TakeTop", func(d *Deck) { d.TakeTop(4) }},
		{"TakeBottom", func(d *Deck) { d.TakeBottom(4) }},
		{"TakeTopCard", func(d *Deck) { var e Deck; e.TakeTopCard() }},
		{"Last", func(d *Deck) { var e Deck; e.Last() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s did not panic", tt.name)
				}
			}()
			d := NewStandardDeck()[:3]
			tt.fn(&d)
		})
	}
}

// TestShuffleDeterministic verifies the same seed yields the same permutation
// and that a shuffle is a permutation.
func TestShuffleDeterministic(t *testing.T) {
	a := NewStandardDeck()
	b := NewStandardDeck()
	a.Shuffle(rand.New(rand.NewSource(7)))
	b.Shuffle(rand.New(rand.NewSource(7)))
	moved := 0
	seen := make(map[Card]bool)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded shuffles differ at %d: %v vs %v", i, a[i], b[i])
		}
		if a[i] != NewStandardDeck()[i] {
			moved++
		}
		seen[a[i]] = true
	}
	if len(seen) != 52 {
		t.Fatalf("shuffle lost cards: %d unique", len(seen))
	}
	if moved == 0 {
		t.Error("shuffle left the deck in canonical order")
	}
}

func TestShowHideAll(t *testing.T) {
	d := NewStandardDeck()[:5]
	d.ShowAll()
	for _, c := range d {
		if !c.Shown {
			t.Fatalf("ShowAll left %v hidden", c)
		}
	}
	d.HideAll()
	for _, c := range d {
		if c.Shown {
			t.Fatalf("HideAll left %v shown", c)
		}
	}
}

func TestRemove(t *testing.T) {
	d := NewStandardDeck()[:5]
	d[2] = d[2].Show()
	if d.Remove(d[2].Hide()) {
		t.Fatal("Remove matched a card differing only in visibility")
	}
	if !d.Remove(NewCard(3, SuitHearts).Show()) {
		t.Fatal("Remove did not find 3H")
	}
	if d.Len() != 4 || d[2].Rank != 4 {
		t.Fatalf("after Remove: %v", d)
	}
}
