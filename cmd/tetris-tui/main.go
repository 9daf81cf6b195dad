// Command tetris-tui is a terminal client for the engine: it renders the
// board with tcell, feeds gravity and keyboard input into a GameState,
// and plays a short tone through beep on lock and on line clears. All
// rules live in the engine packages; this file only translates events
// and draws cells.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/tetris-engine/core"
	"github.com/lixenwraith/tetris-engine/gamestate"
	"github.com/lixenwraith/tetris-engine/rotation"
)

const (
	boardWidth  = 10
	boardHeight = 20
	gravityMs   = 600
	queueFill   = 4
	cellWidth   = 2 // two terminal columns per board cell, for squarer cells
)

var pieceStyles = map[core.PieceType]tcell.Style{
	core.I: tcell.StyleDefault.Foreground(tcell.ColorAqua),
	core.J: tcell.StyleDefault.Foreground(tcell.ColorBlue),
	core.L: tcell.StyleDefault.Foreground(tcell.ColorOrange),
	core.O: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	core.S: tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.T: tcell.StyleDefault.Foreground(tcell.ColorPurple),
	core.Z: tcell.StyleDefault.Foreground(tcell.ColorRed),
}

// App wires a GameState to a tcell.Screen and a beep speaker.
type App struct {
	screen tcell.Screen
	game   *gamestate.GameState

	audioReady bool
	lastDrop   time.Time
}

func NewApp() (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	game, err := gamestate.New(boardWidth, boardHeight, rotation.NewSRS())
	if err != nil {
		screen.Fini()
		return nil, err
	}

	a := &App{screen: screen, game: game, lastDrop: time.Now()}
	a.fillQueue()
	if _, err := a.game.SpawnNextPiece(); err != nil {
		screen.Fini()
		return nil, err
	}

	if err := a.initAudio(); err != nil {
		log.Printf("audio disabled: %v", err)
	}

	return a, nil
}

func (a *App) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	a.audioReady = true
	return nil
}

func (a *App) playTone(freq float64, ms int) {
	if !a.audioReady {
		return
	}
	sampleRate := beep.SampleRate(44100)
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(time.Duration(ms)*time.Millisecond), tone))
}

// fillQueue tops the next-queue up to queueFill with uniformly random
// piece types. The engine deliberately has no bag randomiser of its own.
func (a *App) fillQueue() {
	for len(a.game.NextQueue()) < queueFill {
		a.game.PushNext(core.PieceType(rand.Intn(len(core.AllPieceTypes))))
	}
}

func (a *App) handleKey(ev *tcell.EventKey) (quit bool) {
	var move core.Move
	switch {
	case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
		return true
	case ev.Key() == tcell.KeyLeft:
		move, _ = core.NewMove(core.Left)
	case ev.Key() == tcell.KeyRight:
		move, _ = core.NewMove(core.Right)
	case ev.Key() == tcell.KeyDown:
		move, _ = core.NewMove(core.SoftDrop)
	case ev.Key() == tcell.KeyUp:
		move, _ = core.NewRotationMove(core.RotateClockwise, core.NoWallKick)
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'z':
		move, _ = core.NewRotationMove(core.RotateCounterClockwise, core.NoWallKick)
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'x':
		move, _ = core.NewRotationMove(core.RotateClockwise, core.NoWallKick)
	case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
		a.applyHardDrop()
		return false
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'c':
		move, _ = core.NewMove(core.Hold)
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
		return true
	default:
		return false
	}
	a.game.ApplyMove(move)
	return false
}

func (a *App) applyHardDrop() {
	move, _ := core.NewMove(core.HardDrop)
	if a.game.ApplyMove(move) {
		a.lockAndSpawn()
	}
}

func (a *App) lockAndSpawn() {
	cleared := a.game.LockCurrentPiece()
	if cleared > 0 {
		a.playTone(660, 120)
	} else {
		a.playTone(220, 40)
	}
	a.fillQueue()
	if a.game.GameOver() {
		return
	}
	if ok, err := a.game.SpawnNextPiece(); err != nil || !ok {
		a.game.SetGameOver(true)
	}
}

// tickGravity applies one automatic soft-drop step; if it fails, the
// piece has landed and is locked.
func (a *App) tickGravity() {
	if a.game.GameOver() || a.game.CurrentPiece() == nil {
		return
	}
	move, _ := core.NewMove(core.Down)
	if !a.game.ApplyMove(move) {
		a.lockAndSpawn()
	}
}

func (a *App) draw() {
	a.screen.Clear()
	board := a.game.Board()

	originX, originY := 2, 1
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			if !board.IsFilled(x, y) {
				continue
			}
			a.drawCell(originX, originY, x, y, tcell.StyleDefault.Foreground(tcell.ColorGray))
		}
	}
	if p := a.game.CurrentPiece(); p != nil {
		style := pieceStyles[p.Type()]
		for _, c := range p.GetAbsoluteFilledCells() {
			a.drawCell(originX, originY, c.X, c.Y, style)
		}
	}

	a.drawBorder(originX, originY, board.Width(), board.Height())
	a.drawSidebar(originX+board.Width()*cellWidth+4, originY)
	a.screen.Show()
}

// drawCell maps a board cell (x up, y up from the bottom) to the
// screen's (column, row) with row 0 at the top.
func (a *App) drawCell(originX, originY, x, y int, style tcell.Style) {
	row := originY + (boardHeight - 1 - y)
	col := originX + x*cellWidth
	for i := 0; i < cellWidth; i++ {
		a.screen.SetContent(col+i, row, '█', nil, style)
	}
}

func (a *App) drawBorder(originX, originY, width, height int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for y := 0; y <= height; y++ {
		a.screen.SetContent(originX-1, originY+y, '│', nil, style)
		a.screen.SetContent(originX+width*cellWidth, originY+y, '│', nil, style)
	}
	for x := -1; x <= width*cellWidth; x++ {
		a.screen.SetContent(originX+x, originY+height, '─', nil, style)
	}
}

func (a *App) drawSidebar(x, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	a.drawText(x, y, style, a.game.String())
	a.drawText(x, y+2, style, fmt.Sprintf("lines: %d", a.game.LinesCleared()))
	held, ok := a.game.HeldType()
	heldLabel := "-"
	if ok {
		heldLabel = held.String()
	}
	a.drawText(x, y+3, style, fmt.Sprintf("hold: %s", heldLabel))
	a.drawText(x, y+4, style, "next: ")
	col := x + len("next: ")
	for _, t := range a.game.NextQueue() {
		a.screen.SetContent(col, y+4, []rune(t.String())[0], nil, pieceStyles[t])
		col++
	}
	a.drawText(x, y+6, style, "arrows move, x/z rotate, space drop, c hold, q quit")
}

func (a *App) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range text {
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (a *App) cleanup() {
	if a.audioReady {
		speaker.Close()
	}
	a.screen.Fini()
}

func (a *App) run() {
	ticker := time.NewTicker(gravityMs * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- a.screen.PollEvent()
		}
	}()

	a.draw()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if a.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				a.screen.Sync()
			}
			a.draw()
			if a.game.GameOver() {
				return
			}
		case <-ticker.C:
			a.tickGravity()
			a.draw()
			if a.game.GameOver() {
				return
			}
		}
	}
}

func main() {
	app, err := NewApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start tetris-tui: %v\n", err)
		os.Exit(1)
	}
	defer app.cleanup()
	app.run()
}
