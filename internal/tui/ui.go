package tui

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/render"
)

// Board geometry in screen cells. Each square is squareWidth columns wide
// and one row high; rank labels sit left of boardLeft.
const (
	squareWidth = 3
	boardLeft   = 2
	boardTop    = 1
)

// Layout maps between screen cells and squares.
type Layout struct {
	Left, Top int
}

// DefaultLayout is the layout drawn by UI.
var DefaultLayout = Layout{Left: boardLeft, Top: boardTop}

// SquareAt returns the square under the cell (x, y).
func (l Layout) SquareAt(x, y int) (chess.Position, bool) {
	if x < l.Left || y < l.Top {
		return chess.Position{}, false
	}
	p := chess.Pos((x-l.Left)/squareWidth, chess.LastRank-(y-l.Top))
	return p, p.OnBoard()
}

// Cell returns the cell holding the glyph of p.
func (l Layout) Cell(p chess.Position) (x, y int) {
	return l.Left + p.File*squareWidth + squareWidth/2, l.Top + chess.LastRank - p.Rank
}

var (
	lightStyle     = tcell.StyleDefault.Background(tcell.NewHexColor(0xf0d9b5)).Foreground(tcell.ColorBlack)
	darkStyle      = tcell.StyleDefault.Background(tcell.NewHexColor(0xb58863)).Foreground(tcell.ColorBlack)
	highlightStyle = tcell.StyleDefault.Background(tcell.NewHexColor(0xcdd26a)).Foreground(tcell.ColorBlack)
	selectedStyle  = tcell.StyleDefault.Background(tcell.NewHexColor(0x829769)).Foreground(tcell.ColorBlack)
	textStyle      = tcell.StyleDefault
)

// UI draws a Model on a tcell screen and feeds it mouse and key events.
type UI struct {
	screen  tcell.Screen
	model   *Model
	layout  Layout
	unicode bool
	logger  *slog.Logger
	pressed bool
}

// Option configures a UI.
type Option func(*UI)

// WithUnicode draws chess glyphs instead of letters.
func WithUnicode(unicode bool) Option {
	return func(u *UI) {
		u.unicode = unicode
	}
}

// WithLogger sets the logger for played moves.
func WithLogger(logger *slog.Logger) Option {
	return func(u *UI) {
		u.logger = logger
	}
}

// New returns a UI for model on an initialized screen.
func New(screen tcell.Screen, model *Model, opts ...Option) *UI {
	u := &UI{
		screen: screen,
		model:  model,
		layout: DefaultLayout,
		logger: slog.Default().With("package", "tui"),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Run draws the board and handles events until the user quits, the screen
// is finalized or ctx is cancelled. It returns ctx.Err() on cancellation.
//
// Keys: q or Esc quits, u undoes, c clears the selection.
func (u *UI) Run(ctx context.Context) error {
	u.screen.EnableMouse()
	u.Draw()

	stop := context.AfterFunc(ctx, func() {
		u.screen.PostEvent(tcell.NewEventInterrupt(nil)) //nolint:errcheck // queue full means an event is pending anyway
	})
	defer stop()

	for {
		ev := u.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			if err := ctx.Err(); err != nil {
				return err
			}
		case *tcell.EventResize:
			u.screen.Sync()
		case *tcell.EventKey:
			if u.handleKey(ev) {
				return nil
			}
		case *tcell.EventMouse:
			u.handleMouse(ev)
		}
		u.Draw()
	}
}

// handleKey returns true when the key quits.
func (u *UI) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'u':
			u.model.Undo()
		case 'c':
			u.model.Cancel()
		}
	}
	return false
}

// handleMouse acts on the press of the primary button only.
func (u *UI) handleMouse(ev *tcell.EventMouse) {
	down := ev.Buttons()&tcell.Button1 != 0
	if !down || u.pressed {
		u.pressed = down
		return
	}
	u.pressed = true

	p, ok := u.layout.SquareAt(ev.Position())
	if !ok {
		return
	}
	if move, played := u.model.Click(p); played {
		u.logger.Info("move played", "move", move.String(), "status", u.model.Game().Status().String())
	}
}

// Draw renders the model.
func (u *UI) Draw() {
	u.screen.Clear()
	g := u.model.Game()
	board := g.Current().Board

	marked := make(map[chess.Position]bool)
	for _, p := range u.model.Highlights() {
		marked[p] = true
	}
	selected, hasSel := u.model.Selected()

	u.drawText(0, 0, g.Turn().String()+" to move")
	for rank := chess.LastRank; rank >= chess.FirstRank; rank-- {
		_, y := u.layout.Cell(chess.Pos(0, rank))
		u.screen.SetContent(0, y, rune('1'+rank), nil, textStyle)
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			p := chess.Pos(file, rank)
			style := darkStyle
			switch {
			case hasSel && p == selected:
				style = selectedStyle
			case marked[p]:
				style = highlightStyle
			case p.IsLightSquare():
				style = lightStyle
			}
			x, _ := u.layout.Cell(p)
			for dx := -squareWidth / 2; dx <= squareWidth/2; dx++ {
				u.screen.SetContent(x+dx, y, ' ', nil, style)
			}
			if piece := board.Get(p); !piece.IsEmpty() {
				u.screen.SetContent(x, y, render.Glyph(piece, u.unicode), nil, style)
			}
		}
	}
	for file := chess.FirstFile; file <= chess.LastFile; file++ {
		x, _ := u.layout.Cell(chess.Pos(file, 0))
		u.screen.SetContent(x, u.layout.Top+chess.BoardSize, rune('a'+file), nil, textStyle)
	}

	var status string
	switch {
	case g.Status().Over():
		status = g.Status().String()
	case g.InCheck():
		status = "Check"
	}
	u.drawText(0, u.layout.Top+chess.BoardSize+1, status)
	u.drawText(0, u.layout.Top+chess.BoardSize+2, u.model.Message())
	u.screen.Show()
}

func (u *UI) drawText(x, y int, s string) {
	for _, r := range s {
		u.screen.SetContent(x, y, r, nil, textStyle)
		x++
	}
}
