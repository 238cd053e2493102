package input

import statepkg "github.com/kk-code-lab/fbrowse/internal/state"

// Context is the part of the session the mapper looks at.
type Context struct {
	// ParentSelected is set while the parent-entry is highlighted.
	ParentSelected bool
	// TouchReleased is set when a finger was lifted inside the list after
	// pressing one of its rows.
	TouchReleased bool
}

// ContextFor builds a Context from the session state.
func ContextFor(state *statepkg.BrowserState, touchReleased bool) Context {
	return Context{
		ParentSelected: state.IsParentSelected(),
		TouchReleased:  touchReleased,
	}
}

// Mapper turns button presses into browser actions. It keeps no state.
type Mapper struct{}

func NewMapper() Mapper {
	return Mapper{}
}

// Map resolves button in ctx. A touch release wins over the button.
func (Mapper) Map(button Button, ctx Context) statepkg.Action {
	var action statepkg.Action
	if ctx.TouchReleased {
		action = statepkg.SelectAction{}
	} else {
		action = baseAction(button)
	}

	if _, ok := action.(statepkg.SelectAction); ok && ctx.ParentSelected {
		return statepkg.GoUpAction{}
	}
	return action
}

func baseAction(button Button) statepkg.Action {
	switch button {
	case ButtonMenu:
		return statepkg.CloseAction{}
	case ButtonUp:
		return statepkg.MoveUpAction{}
	case ButtonDown:
		return statepkg.MoveDownAction{}
	case ButtonAltLeft:
		return statepkg.ScrollUpAction{}
	case ButtonAltRight:
		return statepkg.ScrollDownAction{}
	case ButtonCancel:
		return statepkg.GoUpAction{}
	case ButtonAccept:
		return statepkg.SelectAction{}
	case ButtonSettings:
		return statepkg.ConfirmAction{}
	case ButtonRefresh:
		return statepkg.RefreshAction{}
	default:
		return statepkg.NoAction{}
	}
}
