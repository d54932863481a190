package spider

import "github.com/jason-s-yu/solitaire/engine"

// Cheat flags. The order matches the menu rows.
const (
	CheatColor engine.Cheats = 1 << iota // runs may mix colour families
	CheatOrder                           // runs need not descend by one
	CheatKings                           // kings may go onto aces
	CheatPeek                            // draw every card face up
)

// RunLength is the length of a complete king-to-ace run.
const RunLength = engine.RankKing

// ValidColors reports whether n is a supported colour count.
func ValidColors(n int) bool { return n == 1 || n == 2 || n == 4 }

// SameColor reports whether a and b belong to the same colour family when the
// game is played with the given number of colours: 4 compares suits, 2 compares
// red/black, 1 always matches.
func SameColor(a, b engine.Card, colors int) bool {
	switch colors {
	case 4:
		return a.Suit == b.Suit
	case 2:
		return a.Suit.Red() == b.Suit.Red()
	default:
		return true
	}
}

// AllGood reports whether the cards of col from row down form a liftable run:
// all face up and, unless the matching cheat is active, one colour family and
// descending by one. ignoreCheats validates strictly.
func AllGood(col engine.Deck, row int, cheats engine.Cheats, colors int, ignoreCheats bool) bool {
	if row < 0 || row >= col.Len() || !col[row].Shown {
		return false
	}
	checkColor := ignoreCheats || !cheats.Has(CheatColor)
	checkOrder := ignoreCheats || !cheats.Has(CheatOrder)
	head := col[row]
	for i := row + 1; i < col.Len(); i++ {
		c := col[i]
		if !c.Shown {
			return false
		}
		if checkColor && !SameColor(c, head, colors) {
			return false
		}
		if checkOrder && head.Rank-c.Rank != i-row {
			return false
		}
	}
	return true
}

// CanPlaceTableau reports whether a run headed by c may be dropped on col.
func CanPlaceTableau(col engine.Deck, c engine.Card, cheats engine.Cheats) bool {
	if col.Empty() {
		return true
	}
	top := col.Last()
	return top.Rank == c.Rank+1 || cheats.Has(CheatKings) && top.Rank == engine.RankAce && c.Rank == engine.RankKing
}

// CompletedRun reports whether the last RunLength cards of col are a strictly
// valid run, regardless of cheats.
func CompletedRun(col engine.Deck, colors int) bool {
	return col.Len() >= RunLength && AllGood(col, col.Len()-RunLength, 0, colors, true)
}

// RunAscending reports whether run climbs by exactly one per card, an order
// only the Order cheat lets a run be lifted in. A single card qualifies.
func RunAscending(run engine.Deck) bool {
	for i := 1; i < run.Len(); i++ {
		if run[i].Rank != run[0].Rank+i {
			return false
		}
	}
	return true
}

// RunSameColor reports whether every card of run shares the first card's family.
func RunSameColor(run engine.Deck, colors int) bool {
	for i := 1; i < run.Len(); i++ {
		if !SameColor(run[i], run[0], colors) {
			return false
		}
	}
	return true
}
