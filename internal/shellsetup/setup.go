// Package shellsetup prints the shell glue that lets the directory chooser
// change the working directory of the calling shell.
package shellsetup

import (
	"fmt"
	"io"
	"os"
	"path"
	"strconv"
	"strings"
)

// FunctionName is the name of the generated shell function.
const FunctionName = "fcd"

type ParentShellFunc func() string

type Config struct {
	// DetectParent names the shell that started the process. Defaults to
	// ParentShellName.
	DetectParent ParentShellFunc
	// Executable is the binary the function calls. Defaults to os.Executable.
	Executable string
}

// Write prints the fcd function for shellOverride, or for the detected shell
// when shellOverride is empty.
func Write(w io.Writer, shellOverride string, cfg Config) error {
	parent := cfg.DetectParent
	if parent == nil {
		parent = ParentShellName
	}

	shell := normalizeShellName(shellOverride)
	if shell == "" {
		shell = detectShell(os.Getenv, parent)
	}

	exe := cfg.Executable
	if exe == "" {
		var err error
		if exe, err = os.Executable(); err != nil {
			exe = "fbrowse"
		}
	}
	quoted := strconv.Quote(exe)

	var err error
	switch shell {
	case "bash", "zsh", "sh", "ksh", "dash", "ash":
		_, err = fmt.Fprintf(w, `%s() {
    fbrowse_out=$(mktemp) || return 1
    if command %s --mode dir --output "$fbrowse_out" "$@"; then
        fbrowse_dest=$(cat "$fbrowse_out" 2>/dev/null)
        if [ -d "$fbrowse_dest" ]; then
            cd "$fbrowse_dest" || true
        fi
    fi
    rm -f "$fbrowse_out"
    unset fbrowse_out fbrowse_dest
}
`, FunctionName, quoted)
	case "fish":
		_, err = fmt.Fprintf(w, `function %s
    set -l out (mktemp); or return 1
    if command %s --mode dir --output $out $argv
        set -l dest (cat $out 2>/dev/null)
        if test -d "$dest"
            builtin cd "$dest"
        end
    end
    rm -f $out
end
`, FunctionName, quoted)
	default:
		return fmt.Errorf("unsupported shell %q", shell)
	}
	return err
}

func detectShell(getenv func(string) string, parent ParentShellFunc) string {
	if shell := normalizeShellName(getenv("SHELL")); shell != "" {
		return shell
	}

	if parent != nil {
		if shell := normalizeShellName(parent()); shell != "" {
			return shell
		}
	}

	return "sh"
}

// ParentShellName returns the command name of the parent process, or "" when
// it cannot be read.
func ParentShellName() string {
	ppid := os.Getppid()
	if ppid <= 0 {
		return ""
	}
	comm, err := os.ReadFile("/proc/" + strconv.Itoa(ppid) + "/comm")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(comm))
}

func normalizeShellName(value string) string {
	value = extractExecutable(value)
	if value == "" {
		return ""
	}

	value = strings.Trim(value, `"'`)
	base := strings.ToLower(path.Base(value))
	// Login shells show up as "-bash".
	base = strings.TrimPrefix(base, "-")
	return strings.TrimSpace(base)
}

func extractExecutable(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	for _, quote := range []string{`"`, `'`} {
		if strings.HasPrefix(value, quote) {
			value = value[1:]
			if idx := strings.Index(value, quote); idx >= 0 {
				return value[:idx]
			}
			return value
		}
	}

	if idx := strings.IndexAny(value, " \t"); idx >= 0 {
		return value[:idx]
	}

	return value
}
