// Package window runs a game state in a desktop window with ebiten.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/shmup/internal/input"
	"github.com/tomz197/shmup/internal/loop"
	"github.com/tomz197/shmup/internal/object"
)

// Key bindings. Movement keys are held, the others trigger on press.
var (
	keysLeft    = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH}
	keysRight   = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL}
	keysUp      = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyK}
	keysDown    = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyJ}
	keysFire    = []ebiten.Key{ebiten.KeySpace, ebiten.KeyZ}
	keysConfirm = []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}
	keysQuit    = []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}
)

// Game adapts a loop.State to ebiten.Game.
type Game struct {
	state *loop.State
	sink  *imageSink
}

// New creates a window game for state.
func New(state *loop.State) *Game {
	return &Game{
		state: state,
		sink:  newImageSink(),
	}
}

// Update ticks the simulation once. ebiten calls it loop.TargetFPS times per second.
func (g *Game) Update() error {
	g.state.Update(readInput())
	if !g.state.Running {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.sink.begin(screen)
	g.state.Draw(g.sink)
}

// Layout keeps the logical screen at arena size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return object.ArenaWidth, object.ArenaHeight
}

// Ensure Game satisfies ebiten.Game.
var _ ebiten.Game = (*Game)(nil)

// readInput polls the keyboard into this tick's intents.
func readInput() input.Input {
	return input.Input{
		Left:    anyPressed(keysLeft),
		Right:   anyPressed(keysRight),
		Up:      anyPressed(keysUp),
		Down:    anyPressed(keysDown),
		Fire:    anyJustPressed(keysFire),
		Confirm: anyJustPressed(keysConfirm),
		Quit:    anyJustPressed(keysQuit),
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
