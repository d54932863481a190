package engine

import "image/color"

// Card atlas geometry.
const (
	CardWidth  = 39
	CardHeight = 53

	// PartHeight is how much of a covered card remains visible in a fanned column.
	PartHeight = 16
	// FanStep is the vertical offset between cards of a dragged run.
	FanStep = 15
)

var cardBack = Rect{X: 507, Y: 159, W: CardWidth, H: CardHeight}

// Texture identifies a loaded texture resource.
type Texture uint8

const (
	TextureCards       Texture = iota // face and back atlas
	TextureOutline                    // empty pile outline
	TextureKingOutline                // empty Klondike column
	TextureFoundations                // four suit outlines side by side
)

// Font identifies a loaded bitmap font.
type Font uint8

const FontMenu Font = 0

// GlyphAdvance is the horizontal advance of the menu font, used for hit testing.
const GlyphAdvance = 6

// Blend describes how a texture region is combined with the surface. Darken
// multiplies the colour channels of drawn (non-transparent) pixels.
type Blend struct {
	Darken float64
}

// Surface is the drawing target a game renders into once per frame.
type Surface interface {
	Fill(c color.Color)
	DrawRect(r Rect, c color.Color)
	DrawTexture(t Texture, src Rect, dst Point)
	DrawTextureBlended(t Texture, src Rect, dst Point, b Blend)
	DrawText(s string, at Point, f Font, c color.Color)
}

// CardRegion returns the atlas rectangle for c, cropped to w x h.
func CardRegion(c Card, w, h int) Rect {
	if !c.Shown {
		return Rect{X: cardBack.X, Y: cardBack.Y, W: w, H: h}
	}
	return Rect{X: (c.Rank - 1) * CardWidth, Y: int(c.Suit) * CardHeight, W: w, H: h}
}

// DrawCard draws the whole card at p.
func DrawCard(s Surface, c Card, p Point) {
	s.DrawTexture(TextureCards, CardRegion(c, CardWidth, CardHeight), p)
}

// DrawCardPart draws the top PartHeight pixels of a card covered by others.
func DrawCardPart(s Surface, c Card, p Point) {
	s.DrawTexture(TextureCards, CardRegion(c, CardWidth, PartHeight), p)
}

// DrawCardPartDarkened is DrawCardPart with every channel scaled by multiplier.
func DrawCardPartDarkened(s Surface, c Card, p Point, multiplier float64) {
	s.DrawTextureBlended(TextureCards, CardRegion(c, CardWidth, PartHeight), p, Blend{Darken: multiplier})
}

// DrawFan draws cards stacked downward from p, only the last fully visible.
func DrawFan(s Surface, cards Deck, p Point) {
	for i, c := range cards {
		at := Point{p.X, p.Y + i*FanStep}
		if i == len(cards)-1 {
			DrawCard(s, c, at)
		} else {
			DrawCardPart(s, c, at)
		}
	}
}
