// Package loop drives a play session: levels, the frame loop and the
// terminal front end that presents them.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/tomz197/among-the-stars/internal/draw"
	"github.com/tomz197/among-the-stars/internal/input"
	"github.com/tomz197/among-the-stars/internal/object"
)

// Options configures a Game.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Renderer     *lipgloss.Renderer // nil uses the default renderer
	Logger       *log.Logger        // nil discards
	Seed         uint64             // zero picks a random seed
	StarCount    int
	StarWorkers  int
}

// Game runs one player's session against a terminal.
type Game struct {
	session      *Session
	level        *Level
	state        *ClientState
	starfield    *Starfield
	canvas       *draw.Canvas
	cw           *draw.ChunkWriter
	writer       io.Writer
	inputStream  *input.Stream
	stopInput    context.CancelFunc
	input        input.Input
	termSizeFunc draw.TermSizeFunc
	styles       styles
	logger       *log.Logger
	appearances  []object.Appearance
}

// NewGame prepares a session: it generates the background and builds the
// first level. Background generation is finished before NewGame returns.
func NewGame(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) (*Game, error) {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	workers := max(opts.StarWorkers, 1)

	starfield, err := GenerateStarfield(ctx, opts.StarCount, workers, seed, StarfieldTile)
	if err != nil {
		return nil, err
	}

	session := NewSession(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), logger)
	level, err := session.NewLevel()
	if err != nil {
		return nil, err
	}
	logger.Debug("session prepared", "seed", seed, "stars", len(starfield.Stars))

	inputCtx, stopInput := context.WithCancel(ctx)

	return &Game{
		session:      session,
		level:        level,
		state:        NewClientState(),
		starfield:    starfield,
		cw:           draw.NewChunkWriter(w, 0, 0),
		writer:       w,
		inputStream:  input.StartStream(inputCtx, r),
		stopInput:    stopInput,
		termSizeFunc: termSizeFunc,
		styles:       newStyles(renderer),
		logger:       logger,
	}, nil
}

// Run builds a Game and plays it until the player quits or ctx is done.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	g, err := NewGame(ctx, r, w, opts)
	if err != nil {
		return err
	}
	return g.Run(ctx)
}

// Run starts the frame loop with the Input → Update → Draw cycle. It blocks
// until the player quits, the input closes or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	defer g.stopInput()

	if err := draw.HideCursor(g.writer); err != nil {
		return fmt.Errorf("prepare terminal: %w", err)
	}
	defer func() {
		_ = draw.ShowCursor(g.writer)
	}()
	if err := draw.ClearScreen(g.writer); err != nil {
		return fmt.Errorf("prepare terminal: %w", err)
	}

	lastTime := time.Now()

	for g.state.Running {
		if ctx.Err() != nil {
			break
		}
		frameStart := time.Now()
		delta := min(frameStart.Sub(lastTime), maxFrameDelta)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		g.processInput()

		// ===== UPDATE PHASE =====
		g.updateScreen()

		var err error
		switch g.state.GameState {
		case GameStatePlaying:
			g.updatePlayingState(delta)
		case GameStateWon:
			err = g.updateWonState(delta)
		case GameStateDead:
			err = g.updateDeadState(delta)
		}
		if err != nil {
			return err
		}

		// ===== DRAW PHASE =====
		if err := g.drawFrame(); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	return draw.ClearScreen(g.writer)
}

// processInput reads all pending input.
func (g *Game) processInput() {
	g.input = input.ReadInput(g.inputStream)
	if g.input.Closed {
		g.logger.Debug("input closed")
	}
	if g.input.Quit {
		g.state.Running = false
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// The logical canvas height follows the terminal aspect so world units stay
// square.
func (g *Game) updateScreen() {
	termWidth, termHeight, err := g.termSizeFunc()
	if err != nil {
		if g.canvas != nil {
			return
		}
		termWidth, termHeight = fallbackTermWidth, fallbackTermHeight
	}
	renderWidth, renderHeight, offsetCol, offsetRow := draw.ClampTermSize(termWidth, termHeight, MaxTermWidth, MaxTermHeight)
	canvasRows := max(renderHeight-hudRows, 1)
	renderWidth = max(renderWidth, 1)

	if g.canvas != nil && renderWidth == g.canvas.TerminalWidth() && canvasRows == g.canvas.TerminalHeight() &&
		offsetCol == g.canvas.OffsetCol() && offsetRow == g.canvas.OffsetRow() {
		return
	}

	logicalHeight := ViewWidth * float64(canvasRows*2) / float64(renderWidth)
	g.canvas = draw.NewScaledCanvas(renderWidth, canvasRows, ViewWidth, logicalHeight)
	g.canvas.SetOffset(offsetCol, offsetRow)
	g.cw.SetOffset(offsetCol, offsetRow)
	g.cw.ClearScreen()
}

// updatePlayingState steps the level and reacts to its outcome.
func (g *Game) updatePlayingState(delta time.Duration) {
	g.state.Status = g.level.Step(delta, g.input.Intent())

	switch g.state.Status.Outcome {
	case OutcomeWon:
		g.state.LevelScore = g.state.Status.Score
		g.session.Win(g.state.Status.Score)
		g.state.WinTimer = 0
		g.state.GameState = GameStateWon
	case OutcomeLost:
		g.state.GameState = GameStateDead
	}
}

// updateWonState shows the win screen, then starts the next level. Enter
// skips the wait.
func (g *Game) updateWonState(delta time.Duration) error {
	g.state.WinTimer += delta.Seconds()
	if g.state.WinTimer < WinScreenSeconds && !g.input.Enter {
		return nil
	}
	return g.startLevel()
}

// updateDeadState keeps the world moving behind the prompt and waits for an
// answer. Continuing restarts from level 0.
func (g *Game) updateDeadState(delta time.Duration) error {
	g.state.Status = g.level.Step(delta, object.Intent{})

	switch {
	case g.input.Yes || g.input.Enter:
		g.session.Reset()
		return g.startLevel()
	case g.input.No || g.input.Escape:
		g.state.Running = false
	}
	return nil
}

// startLevel replaces the level with a fresh one for the session's index.
func (g *Game) startLevel() error {
	level, err := g.session.NewLevel()
	if err != nil {
		return fmt.Errorf("start level %d: %w", g.session.Level(), err)
	}
	g.level = level
	g.state.Status = level.Status()
	g.state.GameState = GameStatePlaying
	return nil
}

// drawFrame draws the current frame.
func (g *Game) drawFrame() error {
	// On game state transitions, do a full terminal clear so UI elements
	// from the previous state don't persist on screen.
	if g.state.transitioned() {
		g.cw.ClearScreen()
		g.canvas.ForceRedraw()
	}

	g.canvas.Clear()
	cam := camera{
		center: g.state.Status.Position,
		width:  g.canvas.LogicalWidth(),
		height: g.canvas.LogicalHeight(),
	}
	drawStarfield(g.canvas, g.starfield, cam)
	if g.state.GameState != GameStateWon {
		g.appearances = g.level.Drawables(g.appearances)
		drawEntities(g.canvas, g.appearances, cam)
	}

	if err := g.canvas.Render(g.cw); err != nil {
		return err
	}
	if err := g.canvas.RenderBorder(g.cw, hudRows); err != nil {
		return err
	}

	g.drawUI()

	return g.cw.Flush()
}

// drawUI draws the game UI overlay.
func (g *Game) drawUI() {
	termWidth := g.canvas.TerminalWidth()
	centerY := g.canvas.TerminalHeight() / 2

	switch g.state.GameState {
	case GameStatePlaying:
		g.drawHUD(termWidth, g.canvas.TerminalHeight()+1)
	case GameStateWon:
		g.drawWinScreen(termWidth, centerY)
	case GameStateDead:
		g.drawHUD(termWidth, g.canvas.TerminalHeight()+1)
		g.drawDeadScreen(termWidth, centerY)
	}
}
