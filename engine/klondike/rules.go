package klondike

import "github.com/jason-s-yu/solitaire/engine"

// Cheat flags. The order matches the menu rows.
const (
	CheatReserve      engine.Cheats = 1 << iota // recycle the waste even at stage 1
	CheatFoundation                             // lift the top card of a foundation
	CheatEmptyColumn                            // any card on an empty column
	CheatAcesAndKings                           // aces on twos, kings on aces
	CheatPeek                                   // draw every card face up
)

// CanPlaceFoundation reports whether c may go onto foundation index, whose
// current contents are f. Foundations build up by suit from the ace.
func CanPlaceFoundation(index int, f engine.Deck, c engine.Card) bool {
	return int(c.Suit) == index && f.Len() == c.Rank-1
}

// CanPlaceOn reports whether card a may be placed on the exposed card b.
func CanPlaceOn(a, b engine.Card, cheats engine.Cheats) bool {
	relaxed := cheats.Has(CheatAcesAndKings)
	if !b.Shown || !engine.OppositeColor(a, b) {
		return false
	}
	if a.Rank == engine.RankAce && !relaxed {
		return false
	}
	return a.Rank+1 == b.Rank || relaxed && a.Rank == engine.RankKing && b.Rank == engine.RankAce
}

// CanPlaceTableau reports whether c may be placed on column col.
func CanPlaceTableau(col engine.Deck, c engine.Card, cheats engine.Cheats) bool {
	if col.Empty() {
		return c.Rank == engine.RankKing || cheats.Has(CheatEmptyColumn)
	}
	return CanPlaceOn(c, col.Last(), cheats)
}

// CanRecycle reports whether clicking the empty reserve turns the waste over.
func CanRecycle(reserve engine.Deck, stage int, cheats engine.Cheats) bool {
	return reserve.Empty() && (stage > 1 || cheats.Has(CheatReserve))
}

// AutoCompletes reports whether the board can be finished without input:
// reserve and waste are empty, every foundation has its ace and every column
// is face up from its first card.
func AutoCompletes(tableau []engine.Deck, foundations []engine.Deck, reserve, waste engine.Deck) bool {
	if !reserve.Empty() || !waste.Empty() {
		return false
	}
	for _, f := range foundations {
		if f.Empty() {
			return false
		}
	}
	for _, col := range tableau {
		if !col.Empty() && !col[0].Shown {
			return false
		}
	}
	return true
}
