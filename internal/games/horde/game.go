// Package horde implements a top-down survival shooter: the player fights an
// endless stream of pursuing enemies with a ranged shot and a melee swing.
// The simulation lives in the sim subpackage; this package adapts it to the
// platform's Game interface.
package horde

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-horde/internal/config"
	"github.com/vovakirdan/tui-horde/internal/core"
	"github.com/vovakirdan/tui-horde/internal/games/horde/sim"
	"github.com/vovakirdan/tui-horde/internal/registry"
)

// Visual characters for rendering
const (
	EnemyChar      = 'M'
	ProjectileChar = '•'
	HitboxChar     = '░'
	KillChar       = '*'
	PointerChar    = '+'
)

// Minimum playable terminal size
const (
	MinScreenW = 40
	MinScreenH = 12
)

// killFlashTicks is how long a kill marker stays on screen.
const killFlashTicks = 12

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset = config.DifficultyNormal

// logger receives simulation lifecycle logs
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLogger routes simulation logs to l.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

type killMark struct {
	pos core.Vec2
	ttl int
}

// Game adapts a sim.World to the platform.
type Game struct {
	sandbox bool

	runtime core.RuntimeConfig
	cfg     config.HordeConfig
	world   *sim.World
	view    viewport

	paused         bool
	screenTooSmall bool
	lastPointer    core.Pointer
	playerTexture  string
	marks          []killMark
	last           sim.Report
}

// New creates a horde game instance.
func New() *Game {
	return &Game{}
}

// NewSandbox creates a horde game where enemies never hurt the player.
func NewSandbox() *Game {
	return &Game{sandbox: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.sandbox {
		return "horde_sandbox"
	}
	return "horde"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.sandbox {
		return "Horde (Sandbox)"
	}
	return "Horde"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadHorde(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultHordeConfig()
	}
	config.ApplyHordePreset(&cfg, difficultyPreset)
	if err := cfg.Validate(); err != nil {
		logger.Warn("preset gives an invalid config, using defaults", "difficulty", difficultyPreset, "err", err)
		cfg = config.DefaultHordeConfig()
		config.ApplyHordePreset(&cfg, difficultyPreset)
	}
	if g.sandbox {
		cfg.Enemy.ContactDamage = 0
	}
	g.cfg = cfg

	g.layout(runtime.ScreenW, runtime.ScreenH)

	g.paused = false
	g.lastPointer = core.Pointer{}
	g.marks = g.marks[:0]
	g.last = sim.Report{}

	l := logger.With("mode", g.ID(), "session", uuid.NewString())
	g.world = sim.New(SimConfig(cfg),
		sim.WithHost(g),
		sim.WithLogger(l),
		sim.WithSeed(runtime.Seed),
	)
	l.Debug("session started", "seed", runtime.Seed, "difficulty", difficultyPreset)
}

// layout computes the playfield from the screen size. Row 0 is the HUD,
// the rest is a bordered field.
func (g *Game) layout(w, h int) {
	g.screenTooSmall = w < MinScreenW || h < MinScreenH
	field := core.NewRect(1, 2, w-2, h-3)
	g.view = newViewport(field, g.cfg.World.Width, g.cfg.World.Height)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world.GameOver() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	g.postPointer(in.Pointer)

	rep := g.world.Step(sim.Input{
		Up:     in.Has(core.ActionMoveUp),
		Down:   in.Has(core.ActionMoveDown),
		Left:   in.Has(core.ActionMoveLeft),
		Right:  in.Has(core.ActionMoveRight),
		Attack: in.Has(core.ActionAttack),
	}, g.runtime.TickDuration())
	g.last = rep

	g.ageMarks()
	for _, k := range rep.Kills {
		g.marks = append(g.marks, killMark{pos: k.Pos, ttl: killFlashTicks})
	}

	return core.StepResult{State: g.State()}
}

// postPointer turns the sampled mouse state into world-space events. A
// press always posts; motion posts only when the cell changed.
func (g *Game) postPointer(p core.Pointer) {
	if !p.Valid {
		return
	}
	pos := g.view.toWorld(p.X, p.Y)
	switch {
	case p.Pressed:
		g.world.Post(sim.PointerDown{Pos: pos})
	case !g.lastPointer.Valid || p.X != g.lastPointer.X || p.Y != g.lastPointer.Y:
		g.world.Post(sim.PointerMoved{Pos: pos})
	}
	g.lastPointer = p
}

func (g *Game) ageMarks() {
	kept := g.marks[:0]
	for _, m := range g.marks {
		m.ttl--
		if m.ttl > 0 {
			kept = append(kept, m)
		}
	}
	g.marks = kept
}

// SetTexture implements sim.Host. Only the player's texture affects the
// terminal view; pooled sprites are drawn from sim state.
func (g *Game) SetTexture(ref sim.EntityRef, texture string) {
	if ref.Kind == sim.KindPlayer {
		g.playerTexture = texture
	}
}

// SetVisible implements sim.Host.
func (g *Game) SetVisible(sim.EntityRef, bool) {}

// playerGlyph returns the arrow for the current player texture.
func (g *Game) playerGlyph() rune {
	for f := sim.Facing(0); f < sim.NumFacings; f++ {
		if f.Texture() == g.playerTexture {
			return f.Glyph()
		}
	}
	return sim.FacingRight.Glyph()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() != g.runtime.ScreenW || dst.Height() != g.runtime.ScreenH {
		g.runtime.ScreenW, g.runtime.ScreenH = dst.Width(), dst.Height()
		g.layout(dst.Width(), dst.Height())
	}

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need at least %dx%d", MinScreenW, MinScreenH))
		return
	}

	g.drawHUD(dst)
	dst.DrawBox(core.NewRect(0, 1, dst.Width(), dst.Height()-1), core.ColorGray)

	for _, hb := range g.world.Hitboxes() {
		r := g.view.boxCells(hb.Box)
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				dst.SetColor(x, y, HitboxChar, core.ColorCyan)
			}
		}
	}

	for _, m := range g.marks {
		x, y := g.view.toCell(m.pos)
		dst.SetColor(x, y, KillChar, core.ColorOrange)
	}

	g.world.EachEnemy(func(_ sim.Handle, e sim.Enemy) {
		x, y := g.view.toCell(e.Pos)
		c := core.ColorRed
		if e.Health < g.cfg.Enemy.Health {
			c = core.ColorBrightRed
		}
		dst.SetColor(x, y, EnemyChar, c)
	})

	g.world.EachProjectile(func(_ sim.Handle, b sim.Projectile) {
		x, y := g.view.toCell(b.Pos)
		dst.SetColor(x, y, ProjectileChar, core.ColorYellow)
	})

	p := g.world.Player()
	if p.Pointer != nil {
		x, y := g.view.toCell(*p.Pointer)
		if dst.Get(x, y) == ' ' {
			dst.SetColor(x, y, PointerChar, core.ColorGray)
		}
	}
	px, py := g.view.toCell(p.Pos)
	dst.SetColor(px, py, g.playerGlyph(), core.ColorBrightGreen)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.world.GameOver() {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Kills: %d  Wave: %d  |  Press R to restart", g.world.Kills(), g.world.Spawner().Wave))
	}
}

// drawHUD writes the status line on row 0.
func (g *Game) drawHUD(dst *core.Screen) {
	p := g.world.Player()
	sp := g.world.Spawner()

	hpColor := core.ColorBrightGreen
	switch {
	case p.Health <= g.cfg.Player.Health/4:
		hpColor = core.ColorBrightRed
	case p.Health <= g.cfg.Player.Health/2:
		hpColor = core.ColorBrightYellow
	}

	x := 1
	hp := fmt.Sprintf("HP %d", core.Max(p.Health, 0))
	dst.DrawTextColor(x, 0, hp, hpColor)
	x += len(hp) + 2

	status := fmt.Sprintf("Kills %d  Wave %d  Enemies %d/%d  Every %dms",
		g.world.Kills(), sp.Wave, g.world.EnemyCount(), sp.MaxActive, sp.Interval.Milliseconds())
	dst.DrawText(x, 0, status)

	if g.sandbox {
		tag := "SANDBOX"
		dst.DrawTextColor(dst.Width()-len(tag)-1, 0, tag, core.ColorMagenta)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state. The score is the kill count.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.Kills(),
		GameOver: g.world.GameOver(),
		Paused:   g.paused,
	}
}

// World exposes the running simulation.
func (g *Game) World() *sim.World {
	return g.world
}

// LastReport returns what happened during the most recent step.
func (g *Game) LastReport() sim.Report {
	return g.last
}

// Register the game with the registry
func init() {
	registry.Register("horde", func() registry.Game {
		return New()
	})
	registry.Register("horde_sandbox", func() registry.Game {
		return NewSandbox()
	})
}
