package state

import "github.com/sirupsen/logrus"

// ===== REDUCER =====

// StateReducer applies actions to a BrowserState.
type StateReducer struct{}

// NewStateReducer creates a new reducer
func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

// Reduce applies action to state. Filesystem errors are returned but never
// close the session; the state is left consistent with an empty listing.
func (r *StateReducer) Reduce(state *BrowserState, action Action) (*BrowserState, error) {
	switch action.(type) {

	// ===== NAVIGATION =====

	case MoveUpAction:
		state.MoveUp()
		return state, nil

	case MoveDownAction:
		state.MoveDown()
		return state, nil

	case ScrollUpAction:
		state.PageUp()
		return state, nil

	case ScrollDownAction:
		state.PageDown()
		return state, nil

	case GoUpAction:
		// Without directory browsing there is nothing to go up to.
		if !state.Lister.ShowDirectories() {
			state.Quit()
			return state, nil
		}
		err := state.GoUp()
		logrus.WithField("path", state.Path).Debug("went up one directory")
		return state, err

	case RefreshAction:
		return state, state.Refresh()

	// ===== SELECTION =====

	case SelectAction:
		if state.IsDirectorySelected() {
			err := state.EnterDirectory()
			logrus.WithField("path", state.Path).Debug("entered directory")
			return state, err
		}
		r.confirm(state)
		return state, nil

	case ConfirmAction:
		r.confirm(state)
		return state, nil

	// ===== SESSION =====

	case CloseAction:
		state.Quit()
		return state, nil
	}

	return state, nil
}

func (r *StateReducer) confirm(state *BrowserState) {
	if state.CanConfirmSelection() {
		state.Confirm()
		logrus.WithField("selection", state.SelectedPath()).Debug("selection confirmed")
	}
}
