package klondike

import "github.com/jason-s-yu/solitaire/engine"

// hit is what lies under the pointer this frame.
type hit struct {
	pos        engine.Point
	reserve    bool
	waste      bool
	foundation bool // anywhere over the 2x2 foundation block
	tableau    bool
	column     int
	row        int
}

func (g *Game) hitTest(p engine.Point) hit {
	column, row, onTableau := g.tableauAt(p)
	return hit{
		pos:        p,
		reserve:    reserveRect.Contains(p),
		waste:      wasteRect.Contains(p),
		foundation: foundationArea.Contains(p),
		tableau:    onTableau,
		column:     column,
		row:        row,
	}
}

// Update handles input unless a cascade is running, then advances animations.
func (g *Game) Update(elapsed int64, in engine.Input) bool {
	if !g.anim.Active() {
		g.handleInput(in)
	}
	if g.anim.Active() {
		g.anim.Advance(elapsed, g)
		if !g.anim.Active() {
			g.Emit(engine.Event{Type: engine.EventAnimationsDone, Cheats: g.cheats, Column: -1})
		}
	}
	return true
}

func (g *Game) handleInput(in engine.Input) {
	if g.menu.Open {
		g.handleMenu(in)
		return
	}
	h := g.hitTest(in.Pointer)
	switch {
	case in.Left == engine.JustPressed:
		g.press(h)
	case in.Left == engine.Pressed && g.sel.Active:
		g.drag(h)
	case in.Left == engine.JustReleased && g.sel.Active:
		g.release(h)
	case in.Escape == engine.JustPressed && !g.sel.Active:
		g.menu.Open = true
	}
}

func (g *Game) handleMenu(in engine.Input) {
	row := g.menu.Handle(in)
	switch {
	case row < 0:
	case row == menuRestart:
		g.Restart()
	case row == menuSetupWin:
		g.SetupWin()
	default:
		g.cheats.Toggle(g.menu.Rows[row].Cheat)
		g.Emit(engine.Event{Type: engine.EventCheatToggled, Cheats: g.cheats, Column: -1})
	}
}

func (g *Game) press(h hit) {
	g.clearCheat(CheatPeek)
	switch {
	case h.reserve && CanRecycle(g.reserve, g.stage, g.cheats):
		g.clearCheat(CheatReserve)
		g.reserve.AddBottom(g.waste.TakeAll()...)
		g.reserve.HideAll()
		g.stage = max(g.stage-1, 1)
		g.Emit(engine.Event{Type: engine.EventReserveRecycle, Cheats: g.cheats, Column: -1, Cards: g.reserve.Len()})
	case h.reserve && !g.reserve.Empty():
		n := min(g.stage, g.reserve.Len())
		g.sel.Lift(g.reserve.TakeTop(n), originReserve, h.pos, reserveRect.TopLeft())
	case h.waste && !g.waste.Empty():
		g.sel.Lift(g.waste.TakeBottom(1), originWaste, h.pos, wasteRect.TopLeft())
	case h.tableau && !g.tableau[h.column].Empty() && g.tableau[h.column][h.row].Shown:
		col := &g.tableau[h.column]
		g.sel.Lift(col.TakeBottom(col.Len()-h.row), h.column, h.pos, tableauPos(h.column, h.row))
	case h.foundation && g.cheats.Has(CheatFoundation):
		i := foundationAt(h.pos)
		if i < 0 || g.foundations[i].Empty() {
			return
		}
		g.clearCheat(CheatFoundation)
		g.sel.Lift(g.foundations[i].TakeBottom(1), originFoundation+i, h.pos, foundationRects[i].TopLeft())
	}
}

// drag snaps the floating run to the slot it would land in, if the drop
// under the pointer is legal, and otherwise follows the pointer.
func (g *Game) drag(h hit) {
	if slot, ok := g.previewSlot(h); ok {
		g.sel.Pos = slot
		return
	}
	g.sel.Follow(h.pos)
}

func (g *Game) previewSlot(h hit) (engine.Point, bool) {
	first := g.sel.First()
	fromReserve := g.sel.Origin == originReserve
	switch {
	case fromReserve && h.waste:
		return wasteRect.TopLeft(), true
	case fromReserve:
		return engine.Point{}, false
	case h.foundation && g.sel.Cards.Len() == 1 && g.sel.Origin < originFoundation &&
		CanPlaceFoundation(int(first.Suit), g.foundations[first.Suit], first):
		return foundationRects[first.Suit].TopLeft(), true
	case g.onDropSlot(h) && g.sel.Origin != h.column && CanPlaceTableau(g.tableau[h.column], first, g.cheats):
		return tableauPos(h.column, h.row+1), true
	}
	return engine.Point{}, false
}

func (g *Game) onDropSlot(h hit) bool {
	return h.tableau && h.row == g.tableau[h.column].Len()-1
}

// release commits the dragged run to the target under the pointer, or returns
// it whole to where it came from.
func (g *Game) release(h hit) {
	first := g.sel.First()
	origin := g.sel.Origin
	switch {
	case origin == originReserve && h.waste:
		cards := g.sel.Drop()
		cards.ShowAll()
		g.waste.AddBottom(cards...)
	case origin == originReserve:
		g.reserve.AddTop(g.sel.Drop()...)
	case h.foundation && g.sel.Cards.Len() == 1 &&
		CanPlaceFoundation(int(first.Suit), g.foundations[first.Suit], first):
		g.foundations[first.Suit].AddBottom(g.sel.Drop()...)
	case g.onDropSlot(h) && CanPlaceTableau(g.tableau[h.column], first, g.cheats):
		col := &g.tableau[h.column]
		if col.Empty() && first.Rank != engine.RankKing {
			g.clearCheat(CheatEmptyColumn)
		}
		if first.Rank == engine.RankAce || first.Rank == engine.RankKing && !col.Empty() {
			g.clearCheat(CheatAcesAndKings)
		}
		col.AddBottom(g.sel.Drop()...)
	case origin == originWaste:
		g.waste.AddBottom(g.sel.Drop()...)
	case origin >= originFoundation:
		g.foundations[origin-originFoundation].AddBottom(g.sel.Drop()...)
		g.restoreCheat(CheatFoundation)
	default:
		g.tableau[origin].AddBottom(g.sel.Drop()...)
	}
	if origin < NumColumns && !g.tableau[origin].Empty() {
		col := g.tableau[origin]
		col[len(col)-1] = col.Last().Show()
	}
	g.checkWon()
	g.checkAutoComplete()
}
