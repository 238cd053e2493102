package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	inputui "github.com/kk-code-lab/fbrowse/internal/ui/input"
	renderui "github.com/kk-code-lab/fbrowse/internal/ui/render"
)

// UI bundles what a session draws on and reads from.
type UI struct {
	Renderer *renderui.Renderer
	Input    Input
}

// Terminal owns the tcell screen shared by the sessions of one run.
type Terminal struct {
	screen tcell.Screen
	UI     UI
}

// TerminalOptions configures the screen.
type TerminalOptions struct {
	Keymap *inputui.Keymap
	Theme  renderui.ColorTheme
	Touch  bool // treat the mouse as a touchscreen
}

// OpenTerminal takes over the terminal.
func OpenTerminal(opts TerminalOptions) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewTerminal(screen, opts), nil
}

// NewTerminal wires an initialized screen into a UI.
func NewTerminal(screen tcell.Screen, opts TerminalOptions) *Terminal {
	keymap := opts.Keymap
	if keymap == nil {
		keymap = inputui.DefaultKeymap()
	}
	if opts.Touch {
		screen.EnableMouse()
	}
	screen.SetStyle(tcell.StyleDefault.Background(opts.Theme.Background).Foreground(opts.Theme.Foreground))

	handler := inputui.NewInputHandler(screen, keymap)
	handler.EnableTouch(opts.Touch)

	return &Terminal{
		screen: screen,
		UI: UI{
			Renderer: renderui.NewRenderer(renderui.NewScreenSurface(screen), opts.Theme, keymap),
			Input:    handler,
		},
	}
}

// Close restores the terminal.
func (t *Terminal) Close() error {
	t.screen.Fini()
	return nil
}
