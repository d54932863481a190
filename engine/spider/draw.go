package spider

import "github.com/jason-s-yu/solitaire/engine"

const (
	reserveFan    = columnPitch / 4
	foundationFan = columnPitch / 8
)

// Draw renders either the menu or the board, animations and dragged run.
func (g *Game) Draw(s engine.Surface) {
	if g.menu.Open {
		g.menu.Draw(s, g.cheats)
		return
	}
	s.Fill(background)
	for i := range g.tableau {
		g.drawColumn(s, i)
	}

	// One card back per pending deal, fanned to the left.
	deals := (g.reserve.Len() + NumColumns - 1) / NumColumns
	for i := 0; i < deals; i++ {
		at := engine.Pt(reserveRect.X+(deals-1-i)*reserveFan, reserveRect.Y)
		engine.DrawCard(s, g.reserve[0], at)
	}
	// One king per completed run, topped by the last card collected.
	runs := (g.foundation.Len() + RunLength - 1) / RunLength
	for i := RunLength - 1; i < g.foundation.Len(); i += RunLength {
		at := engine.Pt(foundationVector.X+(runs-1-i/RunLength)*foundationFan, foundationVector.Y)
		engine.DrawCard(s, g.foundation[i], at)
	}
	if !g.foundation.Empty() {
		engine.DrawCard(s, g.foundation.Last(), foundationVector)
	}

	if g.anim.Active() {
		g.anim.Each(func(a engine.Animation, at engine.Point) {
			engine.DrawCard(s, a.Card, at)
		})
		return
	}
	g.sel.Draw(s)
}

// drawColumn darkens cards that cannot be lifted together with the cards
// below them, more so the more breaks separate them from the bottom.
func (g *Game) drawColumn(s engine.Surface, column int) {
	col := g.tableau[column]
	if col.Empty() {
		s.DrawTexture(engine.TextureOutline, outlineRegion, g.tableauPos(column, 0))
		return
	}
	levels := breakLevels(col, g.cheats, g.colors)
	peek := g.cheats.Has(CheatPeek)
	for j, c := range col {
		if peek {
			c = c.Show()
		}
		at := g.tableauPos(column, j)
		switch {
		case levels[j] != 0:
			engine.DrawCardPartDarkened(s, c, at, 1/(0.25+float64(levels[j])))
		case j == len(col)-1:
			engine.DrawCard(s, c, at)
		default:
			engine.DrawCardPart(s, c, at)
		}
	}
}

// breakLevels counts, for each face-up card, how many run breaks lie between
// it and the bottom of the column. Hidden cards and the bottom card get 0.
func breakLevels(col engine.Deck, cheats engine.Cheats, colors int) []int {
	levels := make([]int, col.Len())
	for j := col.Len() - 2; j >= 0; j-- {
		if !col[j].Shown {
			break
		}
		levels[j] = levels[j+1]
		if !cheats.Has(CheatColor) && !SameColor(col[j], col[j+1], colors) ||
			!cheats.Has(CheatOrder) && col[j].Rank != col[j+1].Rank+1 {
			levels[j]++
		}
	}
	return levels
}
