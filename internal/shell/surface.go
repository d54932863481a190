package shell

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jason-s-yu/solitaire/engine"
)

// Surface draws engine primitives onto an ebiten image.
type Surface struct {
	dst    *ebiten.Image
	assets *Assets
}

var _ engine.Surface = (*Surface)(nil)

// NewSurface returns a surface drawing with assets. Target must be called
// before each frame's drawing.
func NewSurface(assets *Assets) *Surface { return &Surface{assets: assets} }

// Target sets the image the next draw calls render into.
func (s *Surface) Target(dst *ebiten.Image) { s.dst = dst }

func (s *Surface) Fill(c color.Color) { s.dst.Fill(c) }

func (s *Surface) DrawRect(r engine.Rect, c color.Color) {
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (s *Surface) DrawTexture(t engine.Texture, src engine.Rect, dst engine.Point) {
	s.DrawTextureBlended(t, src, dst, engine.Blend{})
}

func (s *Surface) DrawTextureBlended(t engine.Texture, src engine.Rect, dst engine.Point, b engine.Blend) {
	tex, ok := s.assets.textures[t]
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(dst.X), float64(dst.Y))
	if b.Darken > 0 {
		d := float32(b.Darken)
		op.ColorScale.Scale(d, d, d, 1)
	}
	s.dst.DrawImage(region(tex, src), op)
}

// DrawText draws s left to right with a fixed advance; characters without a
// glyph are skipped but still advance.
func (s *Surface) DrawText(text string, at engine.Point, f engine.Font, c color.Color) {
	font, ok := s.assets.fonts[f]
	if !ok {
		return
	}
	x := at.X
	for _, ch := range text {
		if g, ok := font.glyphs[ch]; ok {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x), float64(at.Y))
			op.ColorScale.ScaleWithColor(c)
			s.dst.DrawImage(region(font.sheet, g), op)
		}
		x += engine.GlyphAdvance
	}
}

func region(img *ebiten.Image, r engine.Rect) *ebiten.Image {
	return img.SubImage(rectangle(r)).(*ebiten.Image)
}

func rectangle(r engine.Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}
