package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cavecrawler/internal/entity"
	"github.com/samdwyer/cavecrawler/internal/gamedata"
	"github.com/samdwyer/cavecrawler/internal/ui"
)

const (
	// FrameRate is the number of simulation steps per second.
	FrameRate = 60

	// Terminals report key presses but not releases, and auto-repeat is
	// slower than the frame rate. A press holds its action for this many
	// frames.
	keyHoldFrames = 8
)

// action is a held input.
type action int

const (
	actLeft action = iota
	actRight
	actUp
	actDown
	actJump
	actMineForward
	actMineDown
	actionCount
)

// Game runs a Session in the terminal.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	cfg      Config
	enemies  *gamedata.EnemyRegistry
	tools    *gamedata.ToolRegistry
	session  *Session
	held     [actionCount]int
	running  bool
}

// New creates a new game instance on the terminal.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	g, err := newGame(screen, cfg)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

func newGame(screen *ui.Screen, cfg Config) (*Game, error) {
	enemies, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		return nil, err
	}
	tools, err := gamedata.LoadToolRegistry()
	if err != nil {
		return nil, err
	}
	styles, err := gamedata.LoadTileStyles()
	if err != nil {
		return nil, err
	}
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, styles),
		cfg:      cfg,
		enemies:  enemies,
		tools:    tools,
		running:  true,
	}, nil
}

// Session returns the current play session, or nil before Run.
func (g *Game) Session() *Session {
	return g.session
}

// Run generates the world and executes the main loop until the player quits
// or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	if err := g.restart(ctx); err != nil {
		return err
	}

	events := g.screen.Events()
	ticker := time.NewTicker(time.Second / FrameRate)
	defer ticker.Stop()

	for g.running {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := g.handleEvent(ctx, ev); err != nil {
				return err
			}
		case <-ticker.C:
			g.tick(ctx)
			g.render()
		}
	}
	return nil
}

func (g *Game) restart(ctx context.Context) error {
	s, err := NewSession(ctx, g.cfg, g.enemies, g.tools)
	if err != nil {
		return err
	}
	g.session = s
	g.held = [actionCount]int{}
	return nil
}

// tick advances one frame using the currently held actions.
func (g *Game) tick(ctx context.Context) {
	s := g.session
	s.Step(entity.Input{
		Left:  g.held[actLeft] > 0,
		Right: g.held[actRight] > 0,
		Up:    g.held[actUp] > 0,
		Down:  g.held[actDown] > 0,
		Jump:  g.held[actJump] > 0,
	})

	switch {
	case g.held[actMineForward] > 0:
		tx, ty := s.FacingTile()
		s.Mine(ctx, tx, ty)
	case g.held[actMineDown] > 0:
		tx, ty := s.TileBelow()
		s.Mine(ctx, tx, ty)
	default:
		s.Player.StopMining()
	}

	for i := range g.held {
		if g.held[i] > 0 {
			g.held[i]--
		}
	}
}

func (g *Game) render() {
	s := g.session
	status := ""
	switch s.State {
	case StatePaused:
		status = "PAUSED - esc to resume"
	case StateDead:
		status = "DEAD - r to restart"
	}
	g.renderer.Render(ui.Frame{
		World:   s.World,
		Player:  s.Player,
		Enemies: s.Enemies,
		Time:    s.Time,
		Status:  status,
		Message: s.Message,
	})
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return nil
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		g.running = false
	case tcell.KeyEscape:
		g.session.TogglePause()

	case tcell.KeyUp:
		g.hold(actUp)
	case tcell.KeyDown:
		g.hold(actDown)
	case tcell.KeyLeft:
		g.hold(actLeft)
	case tcell.KeyRight:
		g.hold(actRight)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'w', 'W':
			g.hold(actUp)
		case 's', 'S':
			g.hold(actDown)
		case 'a', 'A':
			g.hold(actLeft)
		case 'd', 'D':
			g.hold(actRight)
		case ' ':
			g.hold(actJump)
		case 'x', 'X':
			g.hold(actMineForward)
		case 'z', 'Z':
			g.hold(actMineDown)
		case 'f', 'F':
			g.session.Attack(ctx)
		case 'e', 'E':
			g.session.Eat()
		case 'p', 'P':
			g.session.UsePortal()
		case 'r', 'R':
			if g.session.State == StateDead {
				return g.restart(ctx)
			}
		}
	}
	return nil
}

// hold starts or refreshes a held action. Opposite directions cancel.
func (g *Game) hold(a action) {
	g.held[a] = keyHoldFrames
	switch a {
	case actLeft:
		g.held[actRight] = 0
	case actRight:
		g.held[actLeft] = 0
	case actUp:
		g.held[actDown] = 0
	case actDown:
		g.held[actUp] = 0
	}
}
