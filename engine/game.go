// Package engine implements the card model, animation scheduling and the
// frame contract shared by the solitaire variants.
//
// A game is driven once per frame: Update consumes an input snapshot and
// advances animations, then Draw renders the board onto a Surface. Everything
// runs on the caller's goroutine; no method blocks.
package engine

// Game is one solitaire variant.
type Game interface {
	// Update consumes the frame's input, then advances animations by elapsed
	// milliseconds. It returns false when the game wants the loop to stop.
	Update(elapsed int64, in Input) bool
	// Draw renders the current state. It does not mutate the board.
	Draw(s Surface)
	// Size returns the logical surface size in pixels.
	Size() (w, h int)
	// SetEventHook installs fn to receive game events; nil disables them.
	SetEventHook(fn func(Event))
}

// ---------------------------------------------------------------------------
// Cheats bitset
// ---------------------------------------------------------------------------

// Cheats is a set of rule relaxations. Each variant defines its own flags.
type Cheats uint8

func (c Cheats) Has(f Cheats) bool { return c&f != 0 }
func (c *Cheats) Set(f Cheats)     { *c |= f }
func (c *Cheats) Clear(f Cheats)   { *c &^= f }
func (c *Cheats) Toggle(f Cheats)  { *c ^= f }

// ---------------------------------------------------------------------------
// Events
// ---------------------------------------------------------------------------

// EventType names something notable that happened inside a game.
type EventType string

const (
	EventRestart        EventType = "restart"
	EventSetupWin       EventType = "setup_win"
	EventCheatToggled   EventType = "cheat_toggled"
	EventCheatCleared   EventType = "cheat_cleared"
	EventCheatRestored  EventType = "cheat_restored"
	EventReserveRecycle EventType = "reserve_recycle"
	EventReserveDeal    EventType = "reserve_deal"
	EventAutoComplete   EventType = "auto_complete"
	EventRunCompleted   EventType = "run_completed"
	EventAnimationsDone EventType = "animations_done"
	EventFoundationMove EventType = "foundation_to_reserve"
	EventGameWon        EventType = "game_won"
)

// Event is emitted through a game's event hook.
type Event struct {
	Type   EventType
	Cheats Cheats // cheat set after the event
	Column int    // column involved, or -1
	Cards  int    // number of cards involved
}

// Emitter holds an optional event hook. Games embed it.
type Emitter struct {
	hook func(Event)
}

// SetEventHook installs fn; nil disables events.
func (e *Emitter) SetEventHook(fn func(Event)) { e.hook = fn }

// Emit delivers ev to the hook, if any.
func (e *Emitter) Emit(ev Event) {
	if e.hook != nil {
		e.hook(ev)
	}
}
