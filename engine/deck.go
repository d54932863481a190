package engine

import "fmt"

// RNG abstracts random number generation so shuffles are reproducible in tests.
// *math/rand.Rand satisfies it.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// Deck is an ordered pile of cards. Index 0 is the top (head) and the last index
// is the bottom (tail). For a tableau column the bottom card is the exposed one.
//
// Taking more cards than a deck holds is a programming error and panics; callers
// check Len or Empty first.
type Deck []Card

// NewStandardDeck returns the 52 cards of a standard deck, face down, suit-major
// and rank-ascending.
func NewStandardDeck() Deck {
	d := make(Deck, 0, 52)
	for s := Suit(0); s < NumSuits; s++ {
		for r := RankAce; r <= RankKing; r++ {
			d = append(d, NewCard(r, s))
		}
	}
	return d
}

func (d Deck) Len() int    { return len(d) }
func (d Deck) Empty() bool { return len(d) == 0 }

// Last returns the bottom card.
func (d Deck) Last() Card {
	if len(d) == 0 {
		panic("engine: Last on empty deck")
	}
	return d[len(d)-1]
}

// Clone returns an independent copy of d.
func (d Deck) Clone() Deck {
	return append(Deck(nil), d...)
}

// Shuffle permutes the deck in place (Fisher-Yates).
func (d Deck) Shuffle(rng RNG) {
	for i := len(d) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// ShowAll turns every card face up.
func (d Deck) ShowAll() {
	for i := range d {
		d[i] = d[i].Show()
	}
}

// HideAll turns every card face down.
func (d Deck) HideAll() {
	for i := range d {
		d[i] = d[i].Hide()
	}
}

// AddTop inserts cards at the head, preserving their order.
func (d *Deck) AddTop(cards ...Card) {
	out := make(Deck, 0, len(*d)+len(cards))
	out = append(out, cards...)
	*d = append(out, *d...)
}

// AddBottom appends cards at the tail, preserving their order.
func (d *Deck) AddBottom(cards ...Card) {
	*d = append(*d, cards...)
}

// TakeTop removes the first n cards and returns them as a new deck.
func (d *Deck) TakeTop(n int) Deck {
	d.check(n)
	taken := append(Deck(nil), (*d)[:n]...)
	*d = append((*d)[:0], (*d)[n:]...)
	return taken
}

// TakeBottom removes the last n cards and returns them as a new deck.
func (d *Deck) TakeBottom(n int) Deck {
	d.check(n)
	cut := len(*d) - n
	taken := append(Deck(nil), (*d)[cut:]...)
	*d = (*d)[:cut]
	return taken
}

// TakeTopCard removes and returns the head card.
func (d *Deck) TakeTopCard() Card { return d.TakeTop(1)[0] }

// TakeBottomCard removes and returns the tail card.
func (d *Deck) TakeBottomCard() Card { return d.TakeBottom(1)[0] }

// TakeAll empties the deck and returns its former contents.
func (d *Deck) TakeAll() Deck {
	taken := *d
	*d = nil
	return taken
}

// Remove deletes the last occurrence of c and reports whether it was found.
func (d *Deck) Remove(c Card) bool {
	for i := len(*d) - 1; i >= 0; i-- {
		if (*d)[i] == c {
			*d = append((*d)[:i], (*d)[i+1:]...)
			return true
		}
	}
	return false
}

func (d *Deck) check(n int) {
	if n < 0 || n > len(*d) {
		panic(fmt.Sprintf("engine: take %d cards from deck of %d", n, len(*d)))
	}
}
