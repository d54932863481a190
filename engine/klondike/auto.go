package klondike

import (
	"fmt"

	"github.com/jason-s-yu/solitaire/engine"
)

type slot struct {
	column int
	at     engine.Point
}

// checkAutoComplete starts the end-game cascade once the board is solved:
// every remaining tableau card flies to its foundation, twos first, one
// animation per card in rank-then-suit order.
func (g *Game) checkAutoComplete() {
	if !AutoCompletes(g.tableau[:], g.foundations[:], g.reserve, g.waste) {
		return
	}
	// Keyed by the full card value as seen now, visibility included.
	positions := make(map[engine.Card]slot)
	for i, col := range g.tableau {
		for j, c := range col {
			positions[c] = slot{column: i, at: tableauPos(i, j)}
		}
	}
	n := 0
	for rank := 2; rank <= engine.RankKing; rank++ {
		for s := engine.Suit(0); s < engine.NumSuits; s++ {
			c := engine.NewCard(rank, s).Show()
			p, ok := positions[c]
			if !ok {
				continue
			}
			g.anim.Schedule(engine.Staggered(n, c, p.column, p.at, foundationRects[s].TopLeft()))
			n++
		}
	}
	if n > 0 {
		g.Emit(engine.Event{Type: engine.EventAutoComplete, Cheats: g.cheats, Column: -1, Cards: n})
	}
}

// Launch detaches the animated card from its column.
func (g *Game) Launch(a engine.Animation) engine.Animation {
	if !g.tableau[a.Column].Remove(a.Card) {
		panic(fmt.Sprintf("klondike: animated card %v missing from column %d", a.Card, a.Column))
	}
	return a
}

// Land puts the card on its foundation.
func (g *Game) Land(a engine.Animation) {
	g.foundations[a.Card.Suit].AddBottom(a.Card)
	g.checkWon()
}
