package app

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/duelpong/internal/config"
	"github.com/diegok/duelpong/internal/game"
	"github.com/diegok/duelpong/internal/protocol"
	"github.com/diegok/duelpong/internal/ui"
)

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg      *config.Config
	screen   *ui.Screen
	renderer *ui.Renderer
	game     *game.GameState
	latch    *ui.InputLatch

	prevState protocol.Snapshot // For score detection
	lastFrame time.Time

	quit     chan struct{}
	quitOnce sync.Once
	sigChan  chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("starting match: field %dx%d, %d fps, seed %d", cfg.FieldWidth, cfg.FieldHeight, cfg.FPS, seed)

	gs := game.NewGameState(cfg.Settings(), game.NewRandomSource(seed))
	return &App{
		cfg:       cfg,
		game:      gs,
		latch:     ui.NewInputLatch(ui.HoldFrames),
		prevState: gs.Snapshot(),
		quit:      make(chan struct{}),
	}
}

// Run initializes the screen, sets up signal handling, and runs the match until quit.
func (a *App) Run() error {
	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)

	// Restore the terminal before a panic unwinds further
	defer func() {
		if r := recover(); r != nil {
			a.cleanup()
			panic(r)
		}
	}()

	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-a.sigChan:
			log.Printf("received %v, shutting down", sig)
			a.stop()
		case <-a.quit:
		}
	}()

	runErr := a.mainLoop()

	a.cleanup()
	return runErr
}

// mainLoop is the main event loop that handles input and advances the game once per tick.
func (a *App) mainLoop() error {
	// Create event channel for screen events
	events := make(chan tcell.Event)
	screen := a.screen
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.FPS))
	defer ticker.Stop()

	a.lastFrame = time.Now()
	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				a.stop()
				return nil
			}

		case now := <-ticker.C:
			a.step(now)
			a.renderer.RenderGame(a.prevState)
		}
	}
}

// step runs one frame of the game with the keys held at this moment.
func (a *App) step(now time.Time) {
	elapsed := now.Sub(a.lastFrame)
	a.lastFrame = now

	a.game.Update(elapsed, a.latch.Snapshot())
	a.latch.Tick()

	state := a.game.Snapshot()
	a.detectScoreEvents(state)
	a.prevState = state
}

// handleEvent processes keyboard and other events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev.Key(), ev.Rune())

	case *tcell.EventResize:
		w, h := ev.Size()
		log.Printf("terminal resized to %dx%d", w, h)
		a.screen.Sync()
		a.renderer.RenderGame(a.prevState)

	case *tcell.EventFocus:
		// Keys held while focus leaves would otherwise stay latched
		if !ev.Focused {
			a.latch.Release()
		}
	}

	return false
}

// handleKey latches movement keys. Returns true on a quit key.
func (a *App) handleKey(key tcell.Key, r rune) bool {
	if ui.IsQuitKey(key, r) {
		return true
	}
	if side, dir, ok := ui.KeyToCommand(key, r); ok {
		a.latch.Press(side, dir)
	}
	return false
}

// detectScoreEvents compares current and previous snapshots to log points
func (a *App) detectScoreEvents(state protocol.Snapshot) {
	prev := a.prevState

	if state.Left.Score > prev.Left.Score {
		log.Printf("frame %d: left scores, %d - %d", state.Tick, state.Left.Score, state.Right.Score)
	}
	if state.Right.Score > prev.Right.Score {
		log.Printf("frame %d: right scores, %d - %d", state.Tick, state.Left.Score, state.Right.Score)
	}
}

func (a *App) stop() {
	a.quitOnce.Do(func() {
		close(a.quit)
	})
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	a.stop()

	if a.screen != nil {
		a.screen.Fini()
		a.screen = nil
	}

	if a.sigChan != nil {
		signal.Stop(a.sigChan)
	}

	log.Printf("match ended after %d frames, final score %d - %d",
		a.prevState.Tick, a.prevState.Left.Score, a.prevState.Right.Score)
}
