package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type MoveUpAction struct{}
type MoveDownAction struct{}
type ScrollUpAction struct{}   // one page towards the start, no wrap
type ScrollDownAction struct{} // one page towards the end, no wrap
type GoUpAction struct{}
type RefreshAction struct{}

// ===== SELECTION ACTIONS =====

// SelectAction enters the selected directory, or confirms anything else.
type SelectAction struct{}

// ConfirmAction accepts the selection when the accept policy allows it.
type ConfirmAction struct{}

// ===== SESSION ACTIONS =====

type CloseAction struct{}

// NoAction is produced for input that has no meaning in the browser.
type NoAction struct{}
