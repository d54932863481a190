package klondike

import "github.com/jason-s-yu/solitaire/engine"

var outlineRegion = engine.Rect{W: engine.CardWidth, H: engine.CardHeight}

// Draw renders either the menu or the board, animations and dragged run.
func (g *Game) Draw(s engine.Surface) {
	if g.menu.Open {
		g.menu.Draw(s, g.cheats)
		return
	}
	s.Fill(background)
	peek := g.cheats.Has(CheatPeek)
	for i, col := range g.tableau {
		if col.Empty() {
			s.DrawTexture(engine.TextureKingOutline, outlineRegion, tableauPos(i, 0))
			continue
		}
		for j, c := range col {
			if peek {
				c = c.Show()
			}
			if j == len(col)-1 {
				engine.DrawCard(s, c, tableauPos(i, j))
			} else {
				engine.DrawCardPart(s, c, tableauPos(i, j))
			}
		}
	}
	for i, f := range g.foundations {
		at := foundationRects[i].TopLeft()
		if f.Empty() {
			s.DrawTexture(engine.TextureFoundations, engine.Rect{X: i * engine.CardWidth, W: engine.CardWidth, H: engine.CardHeight}, at)
			continue
		}
		engine.DrawCard(s, f.Last(), at)
	}
	drawPile(s, g.reserve, reserveRect.TopLeft())
	drawPile(s, g.waste, wasteRect.TopLeft())

	if g.anim.Active() {
		g.anim.Each(func(a engine.Animation, at engine.Point) {
			engine.DrawCard(s, a.Card, at)
		})
		return
	}
	g.sel.Draw(s)
}

func drawPile(s engine.Surface, d engine.Deck, at engine.Point) {
	if d.Empty() {
		s.DrawTexture(engine.TextureOutline, outlineRegion, at)
		return
	}
	engine.DrawCard(s, d.Last(), at)
}
