package app

import (
	"fmt"

	"github.com/sirupsen/logrus"

	fsutil "github.com/kk-code-lab/fbrowse/internal/fs"
	statepkg "github.com/kk-code-lab/fbrowse/internal/state"
	inputui "github.com/kk-code-lab/fbrowse/internal/ui/input"
	renderui "github.com/kk-code-lab/fbrowse/internal/ui/render"
)

// Input is the blocking source of button presses, plus the touch state
// polled between them.
type Input interface {
	WaitForButton() inputui.Button
	inputui.TouchSource
}

// Session runs one browsing dialog until the user confirms or cancels.
type Session struct {
	variant     Variant
	ui          UI
	state       *statepkg.BrowserState
	reducer     *statepkg.StateReducer
	mapper      inputui.Mapper
	touch       inputui.TouchTracker
	title       string
	subtitle    string
	defaultRoot string
}

// NewSession creates a session of the given variant.
func NewSession(ui UI, variant Variant) *Session {
	lister := fsutil.NewLister()
	variant.Configure(lister)
	state := statepkg.NewBrowserState(lister, variant.Policy())

	return &Session{
		variant:  variant,
		ui:       ui,
		state:    state,
		reducer:  statepkg.NewStateReducer(),
		mapper:   inputui.NewMapper(),
		title:    variant.Title(),
		subtitle: variant.Subtitle(),
	}
}

func (s *Session) SetFilter(filter string)      { s.state.Lister.SetFilter(filter) }
func (s *Session) SetShowDirectories(show bool) { s.state.Lister.SetShowDirectories(show) }
func (s *Session) SetShowParentEntry(show bool) { s.state.Lister.SetShowParentEntry(show) }
func (s *Session) SetShowFiles(show bool)       { s.state.Lister.SetShowFiles(show) }
func (s *Session) SetTitle(title string)        { s.title = title }
func (s *Session) SetSubtitle(subtitle string)  { s.subtitle = subtitle }

// SetDefaultRoot sets the directory used when Run gets an empty path.
func (s *Session) SetDefaultRoot(root string) { s.defaultRoot = root }

// AddExclude hides entries matching the glob pattern.
func (s *Session) AddExclude(pattern string) error {
	return s.state.Lister.AddExclude(pattern)
}

// State exposes the session state, mainly for tests.
func (s *Session) State() *statepkg.BrowserState { return s.state }

// Run shows the dialog starting at initialPath and blocks until it is
// closed. It reports whether a selection was confirmed and its full path.
func (s *Session) Run(initialPath string) (bool, string) {
	st := s.state
	st.Closed, st.Accepted = false, false
	s.touch.Reset()

	if err := s.variant.InitPath(st, initialPath, s.defaultRoot); err != nil {
		logrus.WithError(err).WithField("path", initialPath).Warn("no readable start directory")
	}
	st.Selected = 0
	s.variant.InitSelection(st, initialPath)

	log := logrus.WithField("title", s.title)
	log.WithField("path", st.Path).Debug("session started")

	for !st.Closed {
		s.step()
	}

	if !st.Accepted {
		log.Debug("session cancelled")
		return false, ""
	}
	result := st.SelectedPath()
	log.WithField("result", result).Debug("session accepted")
	return true, result
}

// step renders one frame, waits for input and applies it.
func (s *Session) step() {
	st := s.state
	view := renderui.View{
		Title:    s.title,
		Subtitle: s.subtitle,
		Buttons:  renderui.BuildButtonBox(renderui.ButtonContextFor(st)),
		Preview:  s.variant.Decorate(s.ui.Renderer.Theme()),
	}

	rows, rowHeight, touchRect := s.ui.Renderer.Layout(st, view)
	st.SetLayout(rows, rowHeight)
	s.touch.Observe(s.ui.Input, touchRect)
	st.UpdateViewport()

	if touched := s.ui.Renderer.Render(st, view, s.ui.Input); touched >= 0 {
		st.SelectIndex(touched)
		s.touch.Arm()
	}

	button := s.ui.Input.WaitForButton()
	released := s.touch.Released(s.ui.Input, touchRect)
	action := s.mapper.Map(button, inputui.ContextFor(st, released))

	if _, err := s.reducer.Reduce(st, action); err != nil {
		logrus.WithError(err).WithField("action", fmt.Sprintf("%T", action)).Warn("navigation failed")
	}
}
