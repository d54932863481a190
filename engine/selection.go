package engine

// Selection is the run of cards currently being dragged.
type Selection struct {
	Cards  Deck
	Origin int   // pile the cards were lifted from, in the owning game's numbering
	Offset Point // pointer position minus the lifted card's anchor
	Pos    Point // where the first card is drawn this frame
	Active bool
}

// Lift takes ownership of cards lifted from origin. anchor is where the first
// lifted card was drawn; the pointer keeps its grip relative to it.
func (s *Selection) Lift(cards Deck, origin int, pointer, anchor Point) {
	s.Cards = cards
	s.Origin = origin
	s.Offset = pointer.Sub(anchor)
	s.Pos = anchor
	s.Active = true
}

// Follow places the selection under the pointer.
func (s *Selection) Follow(pointer Point) { s.Pos = pointer.Sub(s.Offset) }

// First returns the first (highest) card of the run.
func (s *Selection) First() Card { return s.Cards[0] }

// Drop releases ownership of the cards and deactivates the selection.
func (s *Selection) Drop() Deck {
	cards := s.Cards
	*s = Selection{}
	return cards
}

// Draw renders the dragged run at its current position.
func (s *Selection) Draw(surface Surface) {
	if s.Active {
		DrawFan(surface, s.Cards, s.Pos)
	}
}
