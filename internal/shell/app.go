// Package shell hosts a game session in an ebiten window: it pumps frames,
// polls the mouse and keyboard, and draws through the loaded assets.
package shell

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jason-s-yu/solitaire/engine"
	"github.com/sirupsen/logrus"
)

// Host is what the window drives each frame.
type Host interface {
	Frame(elapsed int64, in engine.Input) bool
	Draw(s engine.Surface)
	Size() (w, h int)
}

// frameClock measures the milliseconds between consecutive frames.
type frameClock struct {
	last time.Time
}

// tick returns the milliseconds since the previous tick; the first tick is 0.
func (c *frameClock) tick(now time.Time) int64 {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	elapsed := now.Sub(c.last).Milliseconds()
	if elapsed < 0 {
		elapsed = 0
	}
	// Carry the sub-millisecond remainder into the next frame.
	c.last = c.last.Add(time.Duration(elapsed) * time.Millisecond)
	return elapsed
}

// App implements ebiten.Game around a Host.
type App struct {
	host    Host
	surface *Surface
	poller  Poller
	clock   frameClock
	now     func() time.Time
	poll    func() rawInput
	log     *logrus.Entry

	Debug bool // draw the TPS overlay; F3 toggles it
}

var _ ebiten.Game = (*App)(nil)

// NewApp wraps host for ebiten.RunGame.
func NewApp(host Host, assets *Assets, logger *logrus.Logger) *App {
	return &App{
		host:    host,
		surface: NewSurface(assets),
		now:     time.Now,
		poll:    pollDevice,
		log:     logger.WithField("component", "shell"),
	}
}

// Update runs one frame of the host. It ends the loop with ebiten.Termination
// once the host stops.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		a.Debug = !a.Debug
		a.log.WithField("debug", a.Debug).Debug("Toggled overlay")
	}
	return a.step()
}

func (a *App) step() error {
	elapsed := a.clock.tick(a.now())
	if !a.host.Frame(elapsed, a.poller.Next(a.poll())) {
		a.log.Info("Host stopped, closing window")
		return ebiten.Termination
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.surface.Target(screen)
	a.host.Draw(a.surface)
	if a.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %.1f  FPS %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()))
	}
}

// Layout keeps the logical screen at the game's own size; ebiten scales it
// to the window.
func (a *App) Layout(int, int) (int, int) { return a.host.Size() }

// Run opens a window scaled by scale and blocks until it closes.
func (a *App) Run(title string, scale int) error {
	w, h := a.host.Size()
	ebiten.SetWindowSize(w*scale, h*scale)
	ebiten.SetWindowTitle(title)
	a.log.WithFields(logrus.Fields{"width": w, "height": h, "scale": scale}).Info("Opening window")
	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	return nil
}
