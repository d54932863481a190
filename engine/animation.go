package engine

import "sort"

// Animation timing shared by every automatic move batch.
const (
	StaggerMillis  = 200
	DurationMillis = 500
)

// Animation moves one card in a straight line between two screen positions.
// Column identifies the origin (or destination) pile in the owning game's terms.
type Animation struct {
	Card      Card
	Column    int
	Start     Point
	End       Point
	TimeStart int64
	TimeEnd   int64
}

// Staggered returns the i-th animation of a batch, starting i*StaggerMillis into
// the batch clock and lasting DurationMillis.
func Staggered(i int, c Card, column int, start, end Point) Animation {
	t := int64(i) * StaggerMillis
	return Animation{
		Card:      c,
		Column:    column,
		Start:     start,
		End:       end,
		TimeStart: t,
		TimeEnd:   t + DurationMillis,
	}
}

// Position returns the interpolated card position at time t.
func (a Animation) Position(t int64) Point {
	if t <= a.TimeStart {
		return a.Start
	}
	if t >= a.TimeEnd {
		return a.End
	}
	num, den := t-a.TimeStart, a.TimeEnd-a.TimeStart
	return Point{
		X: a.Start.X + int(int64(a.End.X-a.Start.X)*num/den),
		Y: a.Start.Y + int(int64(a.End.Y-a.Start.Y)*num/den),
	}
}

// Handler receives scheduler transitions. Launch is called when an animation's
// start time is reached; it must detach the card from its origin and may return
// an adjusted animation (e.g. a start position recomputed from the live board).
// Land is called when the end time is reached and must deposit the card.
type Handler interface {
	Launch(a Animation) Animation
	Land(a Animation)
}

// Scheduler owns the pending and in-flight animation queues and their clock.
type Scheduler struct {
	clock    int64
	pending  []Animation
	inFlight []Animation
}

// Reset clears both queues and restarts the clock at zero.
func (s *Scheduler) Reset() {
	s.clock = 0
	s.pending = nil
	s.inFlight = nil
}

// Schedule queues a as pending, keeping the queue ordered by start time.
func (s *Scheduler) Schedule(a Animation) {
	i := sort.Search(len(s.pending), func(i int) bool { return s.pending[i].TimeStart > a.TimeStart })
	s.pending = append(s.pending, Animation{})
	copy(s.pending[i+1:], s.pending[i:])
	s.pending[i] = a
}

// Active reports whether any animation is pending or in flight.
func (s *Scheduler) Active() bool { return len(s.pending) > 0 || len(s.inFlight) > 0 }

// Clock returns the batch clock in milliseconds.
func (s *Scheduler) Clock() int64 { return s.clock }

// Pending returns a copy of the pending queue.
func (s *Scheduler) Pending() []Animation { return append([]Animation(nil), s.pending...) }

// InFlight returns a copy of the in-flight queue.
func (s *Scheduler) InFlight() []Animation { return append([]Animation(nil), s.inFlight...) }

// Advance moves the clock forward by elapsed milliseconds, launching every
// pending animation whose start time has been reached and landing every
// in-flight animation whose end time has been reached, in that order.
func (s *Scheduler) Advance(elapsed int64, h Handler) {
	if !s.Active() {
		return
	}
	s.clock += elapsed
	for len(s.pending) > 0 && s.pending[0].TimeStart <= s.clock {
		a := s.pending[0]
		s.pending = s.pending[1:]
		s.inFlight = append(s.inFlight, h.Launch(a))
	}
	for len(s.inFlight) > 0 && s.inFlight[0].TimeEnd <= s.clock {
		a := s.inFlight[0]
		s.inFlight = s.inFlight[1:]
		h.Land(a)
	}
	if !s.Active() {
		s.clock = 0
	}
}

// Each calls fn for every in-flight animation with its current position.
func (s *Scheduler) Each(fn func(a Animation, at Point)) {
	for _, a := range s.inFlight {
		fn(a, a.Position(s.clock))
	}
}
