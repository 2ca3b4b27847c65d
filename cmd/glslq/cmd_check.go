package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhamidi/glslq/config"
	"github.com/dhamidi/glslq/workspace"
)

func newCheckCmd() *cobra.Command {
	var watch bool
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Report syntax errors in shaders",
		Long: `Parse every shader under the given files or directories and report
syntax errors. Without arguments the roots from the config file are
checked.

With --watch, keep running and re-check files as they change.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if len(args) > 0 {
				cfg = withRoots(cfg, args)
			}
			ws := workspace.New(cfg)

			if watch {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
				defer stop()
				return watchWorkspace(ctx, os.Stdout, ws, interval)
			}

			if err := ws.ScanAll(); err != nil {
				return err
			}
			if failed := reportDiagnostics(os.Stdout, ws); failed > 0 {
				return fmt.Errorf("%d file(s) with errors", failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "re-check files when they change")
	cmd.Flags().DurationVar(&interval, "interval", workspace.DefaultPollInterval, "poll interval for --watch")

	return cmd
}

// withRoots returns a copy of cfg checking paths, relative to the
// working directory.
func withRoots(cfg *config.Config, paths []string) *config.Config {
	c := *cfg
	c.Roots = paths
	c.Dir = "."
	return &c
}

// reportDiagnostics prints every error in ws and a summary line, and
// returns the number of files with errors.
func reportDiagnostics(w io.Writer, ws *workspace.Workspace) int {
	diags := ws.Diagnostics()
	for _, d := range diags {
		printFileError(w, ws, d.Path)
	}
	total := len(ws.Paths())
	if len(diags) == 0 {
		fmt.Fprintln(w, okFmt(fmt.Sprintf("%d file(s) checked, no errors", total)))
	} else {
		fmt.Fprintln(w, errorFmt(fmt.Sprintf("%d file(s) checked, %d with errors", total, len(diags))))
	}
	return len(diags)
}

func printFileError(w io.Writer, ws *workspace.Workspace, path string) {
	if f := ws.GetFile(path); f != nil && f.Err != nil {
		printError(w, f.Err, f.Content)
	}
}

func watchWorkspace(ctx context.Context, w io.Writer, ws *workspace.Workspace, interval time.Duration) error {
	fw := workspace.NewFileWatcher(ws)
	fw.SetPollInterval(interval)
	fw.OnChange = func(path string, info *workspace.FileInfo) {
		switch {
		case info == nil:
			fmt.Fprintf(w, "%s: removed\n", path)
		case info.Err != nil:
			printError(w, info.Err, info.Content)
		default:
			fmt.Fprintln(w, okFmt(path+": ok"))
		}
	}
	fw.Run(ctx)
	return nil
}
