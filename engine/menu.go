package engine

import "image/color"

// Menu colours shared by both games.
var (
	MenuBackground    = color.RGBA{180, 180, 180, 255}
	MenuFontColor     = color.RGBA{0, 0, 0, 255}
	MenuSelectedColor = color.RGBA{0, 100, 0, 255}
	MenuWarningColor  = color.RGBA{100, 0, 0, 255}
)

// menuHitHeight is the clickable height of a row, matching the glyph height.
const menuHitHeight = 7

// MenuRow is one entry of the cheat menu. Rows with a non-zero Cheat toggle that
// flag; other rows are actions and are drawn in the warning colour.
type MenuRow struct {
	Label string
	Cheat Cheats
}

// Menu is the escape menu state machine: press over a row arms it, releasing
// over the same row triggers it.
type Menu struct {
	Rows   []MenuRow
	Origin Point // top-left of the first row
	Pitch  int   // vertical distance between rows

	Open     bool
	selected int
}

// NewMenu builds a closed menu.
func NewMenu(origin Point, pitch int, rows ...MenuRow) Menu {
	return Menu{Rows: rows, Origin: origin, Pitch: pitch, selected: -1}
}

// Reset closes the menu and disarms any selected row.
func (m *Menu) Reset() {
	m.Open = false
	m.selected = -1
}

// Selected returns the armed row, or -1.
func (m *Menu) Selected() int { return m.selected }

// RowAt returns the row under p, or -1.
func (m *Menu) RowAt(p Point) int {
	dy := p.Y - m.Origin.Y
	if dy < 0 || m.Pitch <= 0 {
		return -1
	}
	row := dy / m.Pitch
	if row >= len(m.Rows) || dy%m.Pitch >= menuHitHeight {
		return -1
	}
	if p.X < m.Origin.X || p.X >= m.Origin.X+len(m.Rows[row].Label)*GlyphAdvance {
		return -1
	}
	return row
}

// Handle consumes one frame of input while the menu is open. It returns the
// index of the row that was triggered this frame, or -1.
func (m *Menu) Handle(in Input) int {
	if in.Escape == JustPressed {
		m.Reset()
		return -1
	}
	row := m.RowAt(in.Pointer)
	switch in.Left {
	case JustPressed:
		m.selected = row
	case JustReleased:
		armed := m.selected
		m.selected = -1
		if armed != -1 && armed == row {
			return row
		}
	}
	return -1
}

// Draw renders the menu over the whole surface. Active cheats are highlighted.
func (m *Menu) Draw(s Surface, active Cheats) {
	s.Fill(MenuBackground)
	for i, r := range m.Rows {
		c := MenuFontColor
		switch {
		case r.Cheat == 0:
			c = MenuWarningColor
		case active.Has(r.Cheat):
			c = MenuSelectedColor
		}
		s.DrawText(r.Label, Point{m.Origin.X, m.Origin.Y + i*m.Pitch}, FontMenu, c)
	}
}
