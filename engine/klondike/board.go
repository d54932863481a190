// Package klondike implements Klondike solitaire with a draw-3 reserve that
// degrades to draw-1 as the waste is recycled, and a menu of cheats.
package klondike

import (
	"image/color"

	"github.com/jason-s-yu/solitaire/engine"
)

// Surface and layout.
const (
	Width      = 382
	Height     = 318
	NumColumns = 7
	NumCards   = 52

	columnPitch = engine.CardWidth + 2
	rowStep     = 15
	startStage  = 3
)

// Origins of a selection: tableau columns are 0..NumColumns-1.
const (
	originReserve    = NumColumns
	originWaste      = NumColumns + 1
	originFoundation = NumColumns + 2 // + foundation index
)

// Menu rows that are actions rather than cheats.
const (
	menuRestart  = 5
	menuSetupWin = 6
)

var (
	background = color.RGBA{0, 120, 0, 255}

	foundationRects = [engine.NumSuits]engine.Rect{
		{X: 297, Y: 5, W: engine.CardWidth, H: engine.CardHeight},
		{X: 338, Y: 5, W: engine.CardWidth, H: engine.CardHeight},
		{X: 297, Y: 60, W: engine.CardWidth, H: engine.CardHeight},
		{X: 338, Y: 60, W: engine.CardWidth, H: engine.CardHeight},
	}
	foundationArea = engine.Rect{X: 297, Y: 5, W: 2*engine.CardWidth + 2, H: 2*engine.CardHeight + 2}
	reserveRect    = engine.Rect{X: 297, Y: 260, W: engine.CardWidth, H: engine.CardHeight}
	wasteRect      = engine.Rect{X: 338, Y: 260, W: engine.CardWidth, H: engine.CardHeight}
)

func newMenu() engine.Menu {
	return engine.NewMenu(engine.Pt(50, 19), 45,
		engine.MenuRow{Label: "RESET RESERVE", Cheat: CheatReserve},
		engine.MenuRow{Label: "TAKE CARD FROM FOUNDATION", Cheat: CheatFoundation},
		engine.MenuRow{Label: "PLACE OTHER CARD ON EMPTY TABLEAU COLUMN", Cheat: CheatEmptyColumn},
		engine.MenuRow{Label: "ALLOW ACES ON TWOS AND KINGS ON ACES", Cheat: CheatAcesAndKings},
		engine.MenuRow{Label: "PEEK ALL CARDS", Cheat: CheatPeek},
		engine.MenuRow{Label: "RESTART"},
		engine.MenuRow{Label: "SETUP WIN"},
	)
}

// Game is the Klondike board and its interaction state.
type Game struct {
	engine.Emitter

	tableau     [NumColumns]engine.Deck
	foundations [engine.NumSuits]engine.Deck
	reserve     engine.Deck
	waste       engine.Deck
	sel         engine.Selection

	stage  int // cards surfaced per draw: 3, dropping to 1
	cheats engine.Cheats
	menu   engine.Menu
	anim   engine.Scheduler
	won    bool

	rng engine.RNG
}

var _ engine.Game = (*Game)(nil)

// New deals a fresh shuffled game.
func New(rng engine.RNG) *Game {
	g := &Game{rng: rng, stage: startStage, menu: newMenu()}
	g.deal()
	return g
}

// Size returns the logical surface size.
func (g *Game) Size() (int, int) { return Width, Height }

// Cheats returns the active cheat set.
func (g *Game) Cheats() engine.Cheats { return g.cheats }

// Stage returns how many cards the next draw surfaces.
func (g *Game) Stage() int { return g.stage }

// Automatic reports whether an auto-completion cascade is running.
func (g *Game) Automatic() bool { return g.anim.Active() }

func (g *Game) deal() {
	deck := engine.NewStandardDeck()
	deck.Shuffle(g.rng)
	for i := 0; i < NumColumns; i++ {
		for j := i; j < NumColumns; j++ {
			c := deck.TakeTopCard()
			if i == j {
				c = c.Show()
			}
			g.tableau[j].AddBottom(c)
		}
	}
	g.reserve.AddBottom(deck.TakeAll()...)
}

func (g *Game) clearBoard() {
	for i := range g.tableau {
		g.tableau[i] = nil
	}
	for i := range g.foundations {
		g.foundations[i] = nil
	}
	g.reserve = nil
	g.waste = nil
	g.sel = engine.Selection{}
	g.won = false
}

// Restart discards the board, animations and cheats and deals a new game.
func (g *Game) Restart() {
	g.clearBoard()
	g.stage = startStage
	g.cheats = 0
	g.menu.Reset()
	g.anim.Reset()
	g.deal()
	g.Emit(engine.Event{Type: engine.EventRestart, Column: -1, Cards: NumCards})
}

// SetupWin lays out a board that is one move away from auto-completion:
// four alternating-colour columns from king to two, and the aces on the
// remaining columns with the ace of hearts hidden under the ace of diamonds.
func (g *Game) SetupWin() {
	g.clearBoard()
	for rank := engine.RankKing; rank >= 2; rank-- {
		for j := 0; j < engine.NumSuits; j++ {
			suit := engine.Suit((j + rank%2*2) % engine.NumSuits)
			g.tableau[j].AddBottom(engine.NewCard(rank, suit).Show())
		}
	}
	g.tableau[4].AddBottom(engine.NewCard(engine.RankAce, engine.SuitHearts))
	g.tableau[5].AddBottom(engine.NewCard(engine.RankAce, engine.SuitClubs).Show())
	g.tableau[6].AddBottom(engine.NewCard(engine.RankAce, engine.SuitSpades).Show())
	g.tableau[4].AddBottom(engine.NewCard(engine.RankAce, engine.SuitDiamonds).Show())
	g.menu.Reset()
	g.anim.Reset()
	g.Emit(engine.Event{Type: engine.EventSetupWin, Cheats: g.cheats, Column: -1, Cards: NumCards})
}

func (g *Game) clearCheat(f engine.Cheats) {
	if !g.cheats.Has(f) {
		return
	}
	g.cheats.Clear(f)
	g.Emit(engine.Event{Type: engine.EventCheatCleared, Cheats: g.cheats, Column: -1})
}

// restoreCheat hands back a cheat spent by a move that was then abandoned.
func (g *Game) restoreCheat(f engine.Cheats) {
	if g.cheats.Has(f) {
		return
	}
	g.cheats.Set(f)
	g.Emit(engine.Event{Type: engine.EventCheatRestored, Cheats: g.cheats, Column: -1})
}

func (g *Game) checkWon() {
	if g.won {
		return
	}
	for _, f := range g.foundations {
		if f.Len() != engine.RankKing {
			return
		}
	}
	g.won = true
	g.Emit(engine.Event{Type: engine.EventGameWon, Cheats: g.cheats, Column: -1, Cards: NumCards})
}

func tableauPos(column, row int) engine.Point {
	return engine.Pt(5+column*columnPitch, 5+rowStep*row)
}

// tableauAt maps p to a column and the row under it. On an empty column the
// row is -1, so "row is the last row" still identifies the drop slot.
func (g *Game) tableauAt(p engine.Point) (column, row int, ok bool) {
	if p.X < 5 || p.X >= 5+NumColumns*columnPitch-2 {
		return -1, -1, false
	}
	column = (p.X - 5) / columnPitch
	n := g.tableau[column].Len()
	if (p.X-5)%columnPitch >= engine.CardWidth || p.Y >= 5+(n-1)*rowStep+engine.CardHeight {
		return -1, -1, false
	}
	row = min((p.Y-5)/rowStep, n-1)
	if n > 0 && row < 0 {
		row = 0
	}
	return column, row, true
}

func foundationAt(p engine.Point) int {
	for i, r := range foundationRects {
		if r.Contains(p) {
			return i
		}
	}
	return -1
}
