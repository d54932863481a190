package spider

import (
	"fmt"

	"github.com/jason-s-yu/solitaire/engine"
)

// Update handles input unless a deal or collection is animating, then
// advances animations.
func (g *Game) Update(elapsed int64, in engine.Input) bool {
	if !g.anim.Active() {
		g.handleInput(in)
	}
	if g.anim.Active() {
		g.anim.Advance(elapsed, g)
		if !g.anim.Active() {
			g.finishBatch()
		}
	}
	return true
}

func (g *Game) finishBatch() {
	finished := g.mode
	g.mode = modeManual
	g.Emit(engine.Event{Type: engine.EventAnimationsDone, Cheats: g.cheats, Column: -1})
	if finished == modeDeal {
		g.removeCompleted()
	}
	g.checkWon()
}

func (g *Game) handleInput(in engine.Input) {
	if g.menu.Open {
		g.handleMenu(in)
		return
	}
	column, row, onTableau := g.tableauAt(in.Pointer)
	onReserve := reserveRect.Contains(in.Pointer)
	switch {
	case in.Left == engine.JustPressed:
		g.clearCheat(CheatPeek)
		switch {
		case onReserve && !g.reserve.Empty():
			g.dealReserve()
		case onTableau && g.canLift(column, row):
			col := &g.tableau[column]
			anchor := g.tableauPos(column, row)
			g.sel.Lift(col.TakeBottom(col.Len()-row), column, in.Pointer, anchor)
		}
	case in.Left == engine.Pressed && g.sel.Active:
		if g.canDrop(column, row, onTableau) && g.sel.Origin != column {
			g.sel.Pos = g.tableauPos(column, row+1)
		} else {
			g.sel.Follow(in.Pointer)
		}
	case in.Left == engine.JustReleased && g.sel.Active:
		g.release(column, row, onTableau)
	case in.Escape == engine.JustPressed && !g.sel.Active:
		g.menu.Open = true
	}
}

func (g *Game) handleMenu(in engine.Input) {
	row := g.menu.Handle(in)
	switch {
	case row < 0:
	case row == menuMoveFoundation:
		g.MoveFoundation()
	case row >= menuRestart1 && row <= menuRestart4:
		g.Restart(1 << (row - menuRestart1))
	case row == menuSetupWin:
		g.SetupWin()
	default:
		g.cheats.Toggle(g.menu.Rows[row].Cheat)
		g.Emit(engine.Event{Type: engine.EventCheatToggled, Cheats: g.cheats, Column: -1})
	}
}

func (g *Game) canLift(column, row int) bool {
	col := g.tableau[column]
	return !col.Empty() && col[row].Shown && AllGood(col, row, g.cheats, g.colors, false)
}

func (g *Game) canDrop(column, row int, onTableau bool) bool {
	return onTableau && row == g.tableau[column].Len()-1 &&
		CanPlaceTableau(g.tableau[column], g.sel.First(), g.cheats)
}

// release commits the run to the column under the pointer or returns it.
// A multi-card run that does not climb spends the Order cheat, a run of mixed
// families spends Color and a king on a card spends Kings.
func (g *Game) release(column, row int, onTableau bool) {
	origin := g.sel.Origin
	if g.canDrop(column, row, onTableau) {
		run := g.sel.Cards
		if !RunAscending(run) {
			g.clearCheat(CheatOrder)
		}
		if !RunSameColor(run, g.colors) {
			g.clearCheat(CheatColor)
		}
		if !g.tableau[column].Empty() && run[0].Rank == engine.RankKing {
			g.clearCheat(CheatKings)
		}
		g.tableau[column].AddBottom(g.sel.Drop()...)
	} else {
		g.tableau[origin].AddBottom(g.sel.Drop()...)
	}
	g.exposeLast(origin)
	g.removeCompleted()
}

func (g *Game) exposeLast(column int) {
	col := g.tableau[column]
	if !col.Empty() {
		col[len(col)-1] = col.Last().Show()
	}
}

// dealReserve flies one reserve card face up onto each column.
func (g *Game) dealReserve() {
	n := min(NumColumns, g.reserve.Len())
	for i := 0; i < n; i++ {
		end := g.tableauPos(i, g.tableau[i].Len())
		g.anim.Schedule(engine.Staggered(i, g.reserve[i].Show(), i, reserveRect.TopLeft(), end))
	}
	g.mode = modeDeal
	g.Emit(engine.Event{Type: engine.EventReserveDeal, Cheats: g.cheats, Column: -1, Cards: n})
}

// removeCompleted sends every complete run at the bottom of a column to the
// foundation, last card first.
func (g *Game) removeCompleted() {
	n := 0
	for i, col := range g.tableau {
		if !CompletedRun(col, g.colors) {
			continue
		}
		for j := 0; j < RunLength; j++ {
			row := col.Len() - 1 - j
			g.anim.Schedule(engine.Staggered(n, col[row], i, g.tableauPos(i, row), foundationVector))
			n++
		}
		g.Emit(engine.Event{Type: engine.EventRunCompleted, Cheats: g.cheats, Column: i, Cards: RunLength})
	}
	if n > 0 {
		g.mode = modeCollect
	}
}

// Launch detaches the animated card from the reserve or its column.
func (g *Game) Launch(a engine.Animation) engine.Animation {
	switch g.mode {
	case modeDeal:
		g.reserve.TakeTopCard()
	case modeCollect:
		col := &g.tableau[a.Column]
		a.Start = g.tableauPos(a.Column, col.Len()-1)
		if c := col.TakeBottomCard(); c != a.Card {
			panic(fmt.Sprintf("spider: collected %v but animated %v", c, a.Card))
		}
		g.exposeLast(a.Column)
	}
	return a
}

// Land deposits the card on its column or the foundation.
func (g *Game) Land(a engine.Animation) {
	switch g.mode {
	case modeDeal:
		g.tableau[a.Column].AddBottom(a.Card)
	case modeCollect:
		g.foundation.AddBottom(a.Card)
	}
}
