package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/kk-code-lab/fbrowse/internal/shellsetup"
)

var version = "dev"

func main() {
	// UTF-8 fallback so non-ASCII names display on minimal terminals.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errCancelled) {
			fmt.Fprintf(os.Stderr, "fbrowse: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "fbrowse [path]",
		Short: "Pick a file or directory",
		Long: `fbrowse shows a paged file browser and prints the confirmed path.

In wallpaper mode the argument is the current wallpaper, which is selected
initially. Cancelling the dialog exits with status 1.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.path = args[0]
			}
			opts.changed = func(name string) bool { return cmd.Flags().Changed(name) }
			return run(cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.mode, "mode", "m", modeFile, "dialog to show: file, dir, wallpaper or save")
	flags.StringVarP(&opts.filter, "filter", "f", "", "comma separated list of extensions to show")
	flags.BoolVar(&opts.noDirs, "no-dirs", false, "do not list directories")
	flags.BoolVar(&opts.noParent, "no-parent", false, "do not show the parent entry")
	flags.StringArrayVarP(&opts.exclude, "exclude", "x", nil, "glob pattern of names to hide (repeatable)")
	flags.StringVarP(&opts.configPath, "config", "c", "", "extra config file, applied last")
	flags.StringVarP(&opts.output, "output", "o", "", "write the selected path to this file instead of stdout")
	flags.StringVarP(&opts.title, "title", "t", "", "dialog title")
	flags.StringVar(&opts.newName, "new", "untitled", "name offered for a new file in save mode")
	flags.BoolVar(&opts.touch, "touch", true, "treat the mouse as a touchscreen")

	cmd.AddCommand(setupCmd())

	return cmd
}

// setupCmd prints the fcd shell function, which runs the directory chooser
// and changes into the confirmed directory.
func setupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup [shell]",
		Short: "Print shell integration (fcd function)",
		Long: `Print a shell function named fcd that opens the directory chooser and
changes into the confirmed directory. Add it to your shell startup file:

    eval "$(fbrowse setup)"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := ""
			if len(args) > 0 {
				shell = args[0]
			}
			return shellsetup.Write(cmd.OutOrStdout(), shell, shellsetup.Config{})
		},
	}
}
