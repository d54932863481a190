// internal/game/session.go
package game

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jason-s-yu/solitaire/engine"
	"github.com/jason-s-yu/solitaire/engine/klondike"
	"github.com/jason-s-yu/solitaire/engine/spider"
	"github.com/sirupsen/logrus"
)

// Variant names a playable solitaire game.
type Variant string

const (
	VariantKlondike Variant = "klondike"
	VariantSpider   Variant = "spider"
)

// ErrUnknownVariant is returned for a variant name no game answers to.
var ErrUnknownVariant = errors.New("unknown variant")

// ParseVariant resolves a case-insensitive variant name.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case VariantKlondike, VariantSpider:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}

// OnGameEndFunc is called once per deal when the board is won. cheated reports
// whether any cheat was toggled on since the deal.
type OnGameEndFunc func(sessionID uuid.UUID, variant Variant, played time.Duration, cheated bool)

// Options selects and seeds the game a session runs.
type Options struct {
	Variant      Variant
	SpiderColors int        // colour count for Spider; 0 means spider.DefaultColors
	RNG          engine.RNG // shuffles every deal of the session
}

// Stats counts notable events over the whole session.
type Stats struct {
	Deals         int // fresh deals, including the first
	SetupWins     int
	Recycles      int // Klondike waste turned over
	ReserveDeals  int // Spider reserve rows dealt
	RunsCompleted int
	CheatsSpent   int
	Wins          int
}

// Session hosts one running game for the shell: it owns the engine game,
// forwards frames to it and turns its events into log lines and callbacks.
type Session struct {
	ID      uuid.UUID
	Variant Variant

	game    engine.Game
	log     *logrus.Entry
	stats   Stats
	dealtAt time.Time
	cheated bool
	won     bool
	stopped bool
	now     func() time.Time

	// Communication callbacks.
	OnEvent   func(ev engine.Event) // every engine event, after logging
	OnGameEnd OnGameEndFunc
}

// NewSession deals the first game of the chosen variant.
func NewSession(opts Options, logger *logrus.Logger) (*Session, error) {
	if opts.RNG == nil {
		return nil, errors.New("game: nil RNG")
	}
	s := &Session{
		ID:      uuid.New(),
		Variant: opts.Variant,
		now:     time.Now,
	}
	s.log = logger.WithFields(logrus.Fields{
		"session": s.ID.String(),
		"variant": string(opts.Variant),
	})

	switch opts.Variant {
	case VariantKlondike:
		s.game = klondike.New(opts.RNG)
	case VariantSpider:
		colors := opts.SpiderColors
		if colors == 0 {
			colors = spider.DefaultColors
		}
		if !spider.ValidColors(colors) {
			return nil, fmt.Errorf("game: spider with %d colours", colors)
		}
		s.game = spider.New(opts.RNG, colors)
	default:
		return nil, fmt.Errorf("game: %w: %q", ErrUnknownVariant, opts.Variant)
	}
	s.game.SetEventHook(s.handleEvent)
	s.startDeal()

	w, h := s.game.Size()
	s.log.WithFields(logrus.Fields{"width": w, "height": h}).Info("Session started")
	return s, nil
}

// Game returns the hosted engine game.
func (s *Session) Game() engine.Game { return s.game }

// Size returns the logical surface size of the hosted game.
func (s *Session) Size() (int, int) { return s.game.Size() }

// Stats returns a snapshot of the session counters.
func (s *Session) Stats() Stats { return s.stats }

// Won reports whether the current deal has been won.
func (s *Session) Won() bool { return s.won }

// Frame runs one update of the hosted game. It returns false once the game
// has asked the loop to stop; later frames are ignored.
func (s *Session) Frame(elapsed int64, in engine.Input) bool {
	if s.stopped {
		return false
	}
	if elapsed < 0 {
		s.log.WithField("elapsed", elapsed).Warn("Negative frame time clamped")
		elapsed = 0
	}
	if !s.game.Update(elapsed, in) {
		s.stopped = true
		s.log.Info("Game requested stop")
		return false
	}
	return true
}

// Draw renders the hosted game onto surface.
func (s *Session) Draw(surface engine.Surface) { s.game.Draw(surface) }

func (s *Session) startDeal() {
	s.stats.Deals++
	s.dealtAt = s.now()
	s.cheated = false
	s.won = false
}

// handleEvent is the engine event hook.
func (s *Session) handleEvent(ev engine.Event) {
	entry := s.log.WithFields(logrus.Fields{
		"event":  string(ev.Type),
		"cheats": fmt.Sprintf("%08b", uint8(ev.Cheats)),
	})
	if ev.Column >= 0 {
		entry = entry.WithField("column", ev.Column)
	}
	if ev.Cards > 0 {
		entry = entry.WithField("cards", ev.Cards)
	}

	switch ev.Type {
	case engine.EventRestart:
		s.startDeal()
		entry.Info("New deal")
	case engine.EventSetupWin:
		s.startDeal()
		s.stats.SetupWins++
		s.cheated = true
		entry.Info("Winning layout prepared")
	case engine.EventCheatToggled:
		if ev.Cheats != 0 {
			s.cheated = true
		}
		entry.Debug("Cheat toggled")
	case engine.EventCheatCleared:
		s.stats.CheatsSpent++
		entry.Debug("Cheat spent")
	case engine.EventCheatRestored:
		if s.stats.CheatsSpent > 0 {
			s.stats.CheatsSpent--
		}
		entry.Debug("Cheat restored")
	case engine.EventReserveRecycle:
		s.stats.Recycles++
		entry.Debug("Waste recycled into reserve")
	case engine.EventReserveDeal:
		s.stats.ReserveDeals++
		entry.Debug("Reserve dealt")
	case engine.EventFoundationMove:
		s.won = false
		entry.Info("Foundation runs returned to reserve")
	case engine.EventAutoComplete:
		entry.Info("Auto-completion started")
	case engine.EventRunCompleted:
		s.stats.RunsCompleted++
		entry.Info("Run completed")
	case engine.EventAnimationsDone:
		entry.Debug("Animations finished")
	case engine.EventGameWon:
		s.handleWin(entry)
	default:
		entry.Warn("Unhandled game event")
	}

	if s.OnEvent != nil {
		s.OnEvent(ev)
	}
}

func (s *Session) handleWin(entry *logrus.Entry) {
	if s.won {
		return
	}
	s.won = true
	s.stats.Wins++
	played := s.now().Sub(s.dealtAt)
	entry.WithFields(logrus.Fields{
		"played":  played.Round(time.Second).String(),
		"cheated": s.cheated,
	}).Info("Game won")
	if s.OnGameEnd != nil {
		s.OnGameEnd(s.ID, s.Variant, played, s.cheated)
	}
}
