package engine

import "fmt"

// Suit of a card. The numeric value is also the row of the suit in the card atlas
// and the index of its Klondike foundation.
type Suit uint8

// Suit constants.
const (
	SuitHearts   Suit = 0
	SuitDiamonds Suit = 1
	SuitClubs    Suit = 2
	SuitSpades   Suit = 3
)

// NumSuits is the number of suits in a standard deck.
const NumSuits = 4

// Rank constants. Ranks run from RankAce (1) to RankKing (13).
const (
	RankAce   = 1
	RankJack  = 11
	RankQueen = 12
	RankKing  = 13
)

// Red reports whether the suit belongs to the hearts/diamonds colour family.
func (s Suit) Red() bool { return s == SuitHearts || s == SuitDiamonds }

func (s Suit) String() string {
	switch s {
	case SuitHearts:
		return "H"
	case SuitDiamonds:
		return "D"
	case SuitClubs:
		return "C"
	case SuitSpades:
		return "S"
	default:
		return "?"
	}
}

// Card is an immutable playing card value. Two cards are equal only when rank,
// suit and visibility all match.
type Card struct {
	Rank  int
	Suit  Suit
	Shown bool
}

// NewCard constructs a face-down card.
func NewCard(rank int, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Show returns the face-up version of c.
func (c Card) Show() Card {
	c.Shown = true
	return c
}

// Hide returns the face-down version of c.
func (c Card) Hide() Card {
	c.Shown = false
	return c
}

// OppositeColor reports whether a and b belong to different colour families.
func OppositeColor(a, b Card) bool { return a.Suit.Red() != b.Suit.Red() }

var rankNames = [...]string{"?", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

func (c Card) String() string {
	name := "?"
	if c.Rank >= RankAce && c.Rank <= RankKing {
		name = rankNames[c.Rank]
	}
	if !c.Shown {
		return fmt.Sprintf("[%s%s]", name, c.Suit)
	}
	return name + c.Suit.String()
}

// Point is an integer coordinate in logical pixel space.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Rect is an axis-aligned rectangle; X/Y is the top-left corner.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// TopLeft returns the anchor point of r.
func (r Rect) TopLeft() Point { return Point{r.X, r.Y} }
