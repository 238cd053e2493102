package render

import (
	statepkg "github.com/kk-code-lab/fbrowse/internal/state"
	"github.com/kk-code-lab/fbrowse/internal/ui/geom"
	"github.com/kk-code-lab/fbrowse/internal/ui/input"
)

// ButtonHint is one entry of the button box: the button to press and what
// it does. An empty label shows the key alone.
type ButtonHint struct {
	Button input.Button
	Label  string
}

// KeyLabeler names the key bound to a button. *input.Keymap implements it.
type KeyLabeler interface {
	KeyLabel(button input.Button) string
}

// ButtonContext is everything the button box depends on.
type ButtonContext struct {
	ShowDirectories   bool
	AtRoot            bool
	ParentSelected    bool
	DirectorySelected bool
	CanConfirm        bool
}

// ButtonContextFor reads the button context from the session state.
func ButtonContextFor(state *statepkg.BrowserState) ButtonContext {
	return ButtonContext{
		ShowDirectories:   state.Lister.ShowDirectories(),
		AtRoot:            state.Path == "/",
		ParentSelected:    state.IsParentSelected(),
		DirectorySelected: state.IsDirectorySelected(),
		CanConfirm:        state.CanConfirmSelection(),
	}
}

// BuildButtonBox lists the buttons that do something in ctx, in display
// order.
func BuildButtonBox(ctx ButtonContext) []ButtonHint {
	var hints []ButtonHint

	if ctx.ShowDirectories && !ctx.AtRoot {
		if ctx.ParentSelected {
			hints = append(hints, ButtonHint{Button: input.ButtonAccept})
		}
		hints = append(hints, ButtonHint{Button: input.ButtonCancel, Label: "Up one folder"})
	}

	switch {
	case ctx.DirectorySelected:
		hints = append(hints, ButtonHint{Button: input.ButtonAccept, Label: "Enter"})
	case ctx.CanConfirm:
		hints = append(hints, ButtonHint{Button: input.ButtonAccept})
	}

	if ctx.CanConfirm {
		hints = append(hints, ButtonHint{Button: input.ButtonSettings, Label: "Select"})
	}

	if !ctx.ShowDirectories {
		hints = append(hints, ButtonHint{Button: input.ButtonCancel})
	}

	return append(hints, ButtonHint{Button: input.ButtonMenu, Label: "Exit"})
}

// drawButtonBox paints hints left to right. A hint without a label is
// joined to the next one with a slash ("Enter/Left Up one folder").
func (r *Renderer) drawButtonBox(area geom.Rect, hints []ButtonHint) {
	r.surface.FillRect(area, r.theme.base())
	keyStyle := r.theme.base().Background(r.theme.ButtonKeyBg).Foreground(r.theme.ButtonKeyFg)
	labelStyle := r.theme.base().Foreground(r.theme.ButtonFg)

	x := area.X + 1
	maxX := area.X + area.W
	for i, hint := range hints {
		key := hint.Button.String()
		if r.keys != nil {
			if label := r.keys.KeyLabel(hint.Button); label != "" {
				key = label
			}
		}
		x = r.surface.WriteText(geom.Rect{X: x, Y: area.Y, W: maxX - x, H: 1}, key, AlignLeft, AlignTop, keyStyle)
		if hint.Label == "" && i+1 < len(hints) {
			x = r.surface.WriteText(geom.Rect{X: x, Y: area.Y, W: maxX - x, H: 1}, "/", AlignLeft, AlignTop, labelStyle)
			continue
		}
		if hint.Label != "" {
			x = r.surface.WriteText(geom.Rect{X: x, Y: area.Y, W: maxX - x, H: 1}, " "+hint.Label, AlignLeft, AlignTop, labelStyle)
		}
		x += 2
		if x >= maxX {
			return
		}
	}
}
