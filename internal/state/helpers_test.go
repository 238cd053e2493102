package state

import (
	"os"
	"path/filepath"
	"testing"

	fsutil "github.com/kk-code-lab/fbrowse/internal/fs"
)

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

func newLoadedState(t *testing.T, root string, policy AcceptPolicy) *BrowserState {
	t.Helper()
	state := NewBrowserState(fsutil.NewLister(), policy)
	state.SetLayout(10, 1)
	if err := state.InitializePath(root, ""); err != nil {
		t.Fatalf("failed to initialize %s: %v", root, err)
	}
	return state
}

func selectName(t *testing.T, state *BrowserState, name string) {
	t.Helper()
	if !state.SelectByName(name) {
		t.Fatalf("%s not found in %v", name, state.Lister.Entries())
	}
}
