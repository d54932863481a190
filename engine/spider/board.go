// Package spider implements two-deck Spider solitaire played with one, two
// or four colour families.
package spider

import (
	"fmt"
	"image/color"

	"github.com/jason-s-yu/solitaire/engine"
)

// Surface and layout.
const (
	Width      = 503
	Height     = 320
	NumColumns = 10
	NumCards   = 104

	// DefaultColors is the colour count of a new game.
	DefaultColors = 2

	dealtCards   = 54
	shownFrom    = 44 // the last NumColumns dealt cards are face up
	recycleCards = 2 * RunLength

	columnPitch = engine.CardWidth + 2
	maxRowStep  = 15
)

// Menu rows that are actions rather than cheats.
const (
	menuMoveFoundation = 4
	menuRestart1       = 5
	menuRestart4       = 7
	menuSetupWin       = 8
)

var (
	background       = color.RGBA{76, 86, 106, 255}
	reserveRect      = engine.Rect{X: 418, Y: 262, W: engine.CardWidth, H: engine.CardHeight}
	foundationVector = engine.Pt(418, 5)
	outlineRegion    = engine.Rect{W: engine.CardWidth, H: engine.CardHeight}
)

func newMenu() engine.Menu {
	return engine.NewMenu(engine.Pt(50, 14), 35,
		engine.MenuRow{Label: "IGNORE COLORS", Cheat: CheatColor},
		engine.MenuRow{Label: "IGNORE ORDER", Cheat: CheatOrder},
		engine.MenuRow{Label: "ALLOW KINGS ON ACES", Cheat: CheatKings},
		engine.MenuRow{Label: "PEEK ALL CARDS", Cheat: CheatPeek},
		engine.MenuRow{Label: "MOVE 2 FOUNDATION STACKS TO RESERVE"},
		engine.MenuRow{Label: "RESTART 1 COLOR"},
		engine.MenuRow{Label: "RESTART 2 COLORS"},
		engine.MenuRow{Label: "RESTART 4 COLORS"},
		engine.MenuRow{Label: "SETUP WIN"},
	)
}

// mode is what the running animation batch is doing.
type mode uint8

const (
	modeManual  mode = iota
	modeDeal         // reserve cards flying to the columns
	modeCollect      // completed runs flying to the foundation
)

// Game is the Spider board and its interaction state.
type Game struct {
	engine.Emitter

	tableau    [NumColumns]engine.Deck
	foundation engine.Deck
	reserve    engine.Deck
	sel        engine.Selection

	colors int
	cheats engine.Cheats
	menu   engine.Menu
	anim   engine.Scheduler
	mode   mode
	won    bool

	rng engine.RNG
}

var _ engine.Game = (*Game)(nil)

// New deals a fresh game with the given colour count (1, 2 or 4).
func New(rng engine.RNG, colors int) *Game {
	if !ValidColors(colors) {
		panic(fmt.Sprintf("spider: invalid colour count %d", colors))
	}
	g := &Game{rng: rng, colors: colors, menu: newMenu()}
	g.deal()
	return g
}

// Size returns the logical surface size.
func (g *Game) Size() (int, int) { return Width, Height }

// Cheats returns the active cheat set.
func (g *Game) Cheats() engine.Cheats { return g.cheats }

// Colors returns the colour count in play.
func (g *Game) Colors() int { return g.colors }

// Automatic reports whether a deal or run collection is animating.
func (g *Game) Automatic() bool { return g.anim.Active() }

func (g *Game) deal() {
	deck := engine.NewStandardDeck()
	deck.AddBottom(engine.NewStandardDeck()...)
	deck.Shuffle(g.rng)
	for i := 0; i < dealtCards; i++ {
		c := deck.TakeTopCard()
		if i >= shownFrom {
			c = c.Show()
		}
		g.tableau[i%NumColumns].AddBottom(c)
	}
	g.reserve.AddBottom(deck.TakeAll()...)
}

func (g *Game) clearBoard() {
	for i := range g.tableau {
		g.tableau[i] = nil
	}
	g.foundation = nil
	g.reserve = nil
	g.sel = engine.Selection{}
	g.won = false
	g.mode = modeManual
	g.anim.Reset()
}

// Restart discards everything and deals a new game with the given colour count.
func (g *Game) Restart(colors int) {
	if !ValidColors(colors) {
		panic(fmt.Sprintf("spider: invalid colour count %d", colors))
	}
	g.clearBoard()
	g.cheats = 0
	g.colors = colors
	g.menu.Reset()
	g.deal()
	g.Emit(engine.Event{Type: engine.EventRestart, Column: -1, Cards: NumCards})
}

// SetupWin lays out eight king-to-two columns, one per suit and deck, and the
// eight aces split over the last two columns.
func (g *Game) SetupWin() {
	g.clearBoard()
	for rank := engine.RankKing; rank >= 2; rank-- {
		for j := 0; j < 8; j++ {
			g.tableau[j].AddBottom(engine.NewCard(rank, engine.Suit(j%engine.NumSuits)).Show())
		}
	}
	for s := engine.Suit(0); s < engine.NumSuits; s++ {
		g.tableau[8].AddBottom(engine.NewCard(engine.RankAce, s).Show())
		g.tableau[9].AddBottom(engine.NewCard(engine.RankAce, s).Show())
	}
	g.menu.Reset()
	g.Emit(engine.Event{Type: engine.EventSetupWin, Cheats: g.cheats, Column: -1, Cards: NumCards})
}

// MoveFoundation returns two completed runs from the foundation to the
// reserve, face down and shuffled. It does nothing with fewer than two runs.
func (g *Game) MoveFoundation() {
	if g.foundation.Len() < recycleCards {
		return
	}
	taken := g.foundation.TakeBottom(recycleCards)
	taken.HideAll()
	taken.Shuffle(g.rng)
	g.reserve.AddBottom(taken...)
	g.won = false
	g.Emit(engine.Event{Type: engine.EventFoundationMove, Cheats: g.cheats, Column: -1, Cards: recycleCards})
}

func (g *Game) clearCheat(f engine.Cheats) {
	if !g.cheats.Has(f) {
		return
	}
	g.cheats.Clear(f)
	g.Emit(engine.Event{Type: engine.EventCheatCleared, Cheats: g.cheats, Column: -1})
}

func (g *Game) checkWon() {
	if g.won || g.foundation.Len() != NumCards {
		return
	}
	g.won = true
	g.Emit(engine.Event{Type: engine.EventGameWon, Cheats: g.cheats, Column: -1, Cards: NumCards})
}

// rowStep compresses long columns so they stay on screen.
func (g *Game) rowStep(column int) int {
	n := g.tableau[column].Len()
	if n == 0 {
		return maxRowStep
	}
	return min(maxRowStep, (Height-10-engine.CardHeight)/n+1)
}

func (g *Game) tableauPos(column, row int) engine.Point {
	return engine.Pt(5+column*columnPitch, 5+g.rowStep(column)*row)
}

// tableauAt maps p to a column and the row under it; row is -1 on an empty column.
func (g *Game) tableauAt(p engine.Point) (column, row int, ok bool) {
	if p.X < 5 || p.X >= 5+NumColumns*columnPitch-2 {
		return -1, -1, false
	}
	column = (p.X - 5) / columnPitch
	n := g.tableau[column].Len()
	step := g.rowStep(column)
	if (p.X-5)%columnPitch >= engine.CardWidth || p.Y >= 5+(n-1)*step+engine.CardHeight {
		return -1, -1, false
	}
	row = min((p.Y-5)/step, n-1)
	if n > 0 && row < 0 {
		row = 0
	}
	return column, row, true
}
