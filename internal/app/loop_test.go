package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/fbrowse/internal/ui/geom"
	inputui "github.com/kk-code-lab/fbrowse/internal/ui/input"
	renderui "github.com/kk-code-lab/fbrowse/internal/ui/render"
)

type scriptStep struct {
	button inputui.Button
	touch  bool // the step changes the touch state
	press  bool
	x, y   int
}

func press(x, y int) scriptStep   { return scriptStep{touch: true, press: true, x: x, y: y} }
func release(x, y int) scriptStep { return scriptStep{touch: true, x: x, y: y} }

// scriptedInput replays button presses and touches.
type scriptedInput struct {
	t       *testing.T
	steps   []scriptStep
	pressed bool
	x, y    int
}

func (in *scriptedInput) WaitForButton() inputui.Button {
	if len(in.steps) == 0 {
		in.t.Errorf("input script exhausted before the session closed")
		return inputui.ButtonMenu
	}
	step := in.steps[0]
	in.steps = in.steps[1:]
	if step.touch {
		in.pressed, in.x, in.y = step.press, step.x, step.y
	}
	return step.button
}

func (in *scriptedInput) Available() bool         { return true }
func (in *scriptedInput) Pressed() bool           { return in.pressed }
func (in *scriptedInput) InRect(r geom.Rect) bool { return r.Contains(in.x, in.y) }

func buttons(bs ...inputui.Button) []scriptStep {
	steps := make([]scriptStep, len(bs))
	for i, b := range bs {
		steps[i] = scriptStep{button: b}
	}
	return steps
}

func newTestUI(t *testing.T, steps []scriptStep) (UI, *scriptedInput) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 12)

	in := &scriptedInput{t: t, steps: steps}
	return UI{
		Renderer: renderui.NewRenderer(renderui.NewScreenSurface(screen), renderui.GetColorTheme(), nil),
		Input:    in,
	}, in
}

func makeTree(t *testing.T, dirs []string, files []string) string {
	t.Helper()
	root := t.TempDir()
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			t.Fatalf("failed to create %s: %v", d, err)
		}
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(root, f), []byte(f), 0o644); err != nil {
			t.Fatalf("failed to create %s: %v", f, err)
		}
	}
	return root
}

func TestFileChooserNavigatesAndConfirms(t *testing.T) {
	root := makeTree(t, []string{"music"}, []string{"music/a.mp3", "music/b.mp3", "notes.txt"})
	ui, _ := newTestUI(t, buttons(
		inputui.ButtonDown,     // music
		inputui.ButtonAccept,   // enter music, ".." selected
		inputui.ButtonDown,     // a.mp3
		inputui.ButtonDown,     // b.mp3
		inputui.ButtonSettings, // confirm
	))

	accepted, path := NewFileChooser(ui, "Files", "").Run(root)
	if !accepted {
		t.Fatal("expected the session to be accepted")
	}
	if want := filepath.Join(root, "music", "b.mp3"); path != want {
		t.Fatalf("expected %q, got %q", want, path)
	}
}

func TestFileChooserCancel(t *testing.T) {
	root := makeTree(t, nil, []string{"a.txt"})
	ui, _ := newTestUI(t, buttons(inputui.ButtonMenu))

	accepted, path := NewFileChooser(ui, "Files", "").Run(root)
	if accepted || path != "" {
		t.Fatalf("expected cancellation, got %v %q", accepted, path)
	}
}

func TestGoUpReselectsDirectoryAndParentEntryGoesUp(t *testing.T) {
	root := makeTree(t, []string{"alpha", "beta"}, nil)
	ui, _ := newTestUI(t, buttons(
		inputui.ButtonCancel, // up: beta reselected
		inputui.ButtonAccept, // enter beta again, ".." selected
		inputui.ButtonAccept, // select on ".." goes up
		inputui.ButtonMenu,
	))
	session := NewFileChooser(ui, "Files", "")

	accepted, _ := session.Run(filepath.Join(root, "beta"))
	if accepted {
		t.Fatal("expected cancellation")
	}
	st := session.State()
	if st.Path != root+"/" {
		t.Fatalf("expected to end in %q, got %q", root+"/", st.Path)
	}
	if st.SelectedName() != "beta" {
		t.Fatalf("expected beta to be reselected, got %q", st.SelectedName())
	}
}

func TestGoUpClosesWithoutDirectories(t *testing.T) {
	root := makeTree(t, nil, []string{"a.txt"})
	ui, in := newTestUI(t, buttons(inputui.ButtonCancel, inputui.ButtonDown))
	session := NewFileChooser(ui, "Files", "")
	session.SetShowDirectories(false)

	if accepted, _ := session.Run(root); accepted {
		t.Fatal("expected cancellation")
	}
	if len(in.steps) != 1 {
		t.Fatalf("expected the session to close on the first press, %d steps left", len(in.steps))
	}
}

func TestFileChooserStartsOnRequestedFile(t *testing.T) {
	root := makeTree(t, nil, []string{"a.txt", "b.txt", "c.txt"})
	ui, _ := newTestUI(t, buttons(inputui.ButtonAccept))

	accepted, path := NewFileChooser(ui, "Files", "").Run(filepath.Join(root, "b.txt"))
	if !accepted || path != filepath.Join(root, "b.txt") {
		t.Fatalf("expected b.txt, got %v %q", accepted, path)
	}
}

func TestFileChooserFilterAndDefaultRoot(t *testing.T) {
	root := makeTree(t, nil, []string{"readme.md", "photo.PNG"})
	ui, _ := newTestUI(t, buttons(inputui.ButtonDown, inputui.ButtonAccept))
	session := NewFileChooser(ui, "Images", "")
	session.SetFilter("png,jpg")
	session.SetDefaultRoot(root)

	accepted, path := session.Run("")
	if !accepted || path != filepath.Join(root, "photo.PNG") {
		t.Fatalf("expected photo.PNG, got %v %q", accepted, path)
	}
}

func TestDirectoryChooser(t *testing.T) {
	root := makeTree(t, []string{"games", "music"}, []string{"notes.txt"})
	ui, _ := newTestUI(t, buttons(
		inputui.ButtonSettings, // ".." cannot be returned
		inputui.ButtonDown,     // games
		inputui.ButtonSettings,
	))
	session := NewDirectoryChooser(ui, "Folders", "")

	accepted, path := session.Run(root)
	if !accepted || path != filepath.Join(root, "games") {
		t.Fatalf("expected games, got %v %q", accepted, path)
	}
	if session.State().Lister.FileCount() != 0 {
		t.Fatal("directory chooser should not list files")
	}
}

func TestWallpaperChooser(t *testing.T) {
	skins := t.TempDir()
	user := filepath.Join(skins, "user")
	system := filepath.Join(skins, "system")
	for _, f := range []string{
		"user/Retro/wallpapers/sunset.png",
		"system/Retro/wallpapers/grid.png",
		"system/Default/wallpapers/plain.png",
		"system/Default/wallpapers/readme.txt",
	} {
		path := filepath.Join(skins, f)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("not really a png"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	ui, _ := newTestUI(t, buttons(inputui.ButtonUp, inputui.ButtonAccept))
	session := NewWallpaperChooser(ui, WallpaperRoots([]string{user, system}, "Retro"))

	accepted, path := session.Run("/somewhere/else/sunset.png")
	if !accepted {
		t.Fatal("expected a wallpaper to be chosen")
	}
	// grid, plain, sunset: starting at sunset, Up selects plain.
	if want := filepath.Join(system, "Default", "wallpapers", "plain.png"); path != want {
		t.Fatalf("expected %q, got %q", want, path)
	}
	if got := session.State().Lister.Files(); len(got) != 3 {
		t.Fatalf("expected three wallpapers, got %v", got)
	}
}

func TestWallpaperRoots(t *testing.T) {
	got := WallpaperRoots([]string{"/home/u/skins", "/usr/share/skins"}, "Retro")
	want := []string{
		"/home/u/skins/Retro/wallpapers",
		"/usr/share/skins/Retro/wallpapers",
		"/home/u/skins/Default/wallpapers",
		"/usr/share/skins/Default/wallpapers",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if got := WallpaperRoots([]string{"/s"}, "Default"); len(got) != 1 {
		t.Fatalf("Default skin should not be searched twice, got %v", got)
	}
}

func TestSaveChooserOffersNewFile(t *testing.T) {
	root := makeTree(t, []string{"docs"}, []string{"old.txt"})
	ui, _ := newTestUI(t, buttons(
		inputui.ButtonDown,   // docs
		inputui.ButtonAccept, // enter docs
		inputui.ButtonDown,   // new.txt
		inputui.ButtonAccept, // confirm
	))

	accepted, path := NewSaveChooser(ui, "Save", "new.txt").Run(root)
	if !accepted || path != filepath.Join(root, "docs", "new.txt") {
		t.Fatalf("expected docs/new.txt, got %v %q", accepted, path)
	}
}

func TestTouchReleaseSelectsRow(t *testing.T) {
	root := makeTree(t, []string{"music"}, []string{"notes.txt"})
	// title at row 0, path at row 1, list from row 2: notes.txt is on row 4
	ui, _ := newTestUI(t, []scriptStep{press(5, 4), release(5, 4)})

	accepted, path := NewFileChooser(ui, "Touch", "").Run(root)
	if !accepted || path != filepath.Join(root, "notes.txt") {
		t.Fatalf("expected notes.txt, got %v %q", accepted, path)
	}
}

func TestTouchLeavingListCancels(t *testing.T) {
	root := makeTree(t, []string{"music"}, []string{"notes.txt"})
	ui, in := newTestUI(t, []scriptStep{
		press(5, 4),
		press(5, 11), // drag onto the button box
		release(5, 11),
		{button: inputui.ButtonMenu},
	})

	accepted, _ := NewFileChooser(ui, "Touch", "").Run(root)
	if accepted {
		t.Fatal("a cancelled touch must not select")
	}
	if len(in.steps) != 0 {
		t.Fatalf("expected every step to be consumed, %d left", len(in.steps))
	}
}

func TestTerminalSessionWithSimulatedKeys(t *testing.T) {
	root := makeTree(t, []string{"music"}, []string{"notes.txt"})
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(40, 12)
	term := NewTerminal(screen, TerminalOptions{Theme: renderui.GetColorTheme()})
	defer func() {
		_ = term.Close()
	}()

	screen.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	accepted, path := NewFileChooser(term.UI, "Files", "").Run(root)
	if !accepted || path != filepath.Join(root, "notes.txt") {
		t.Fatalf("expected notes.txt, got %v %q", accepted, path)
	}
}
