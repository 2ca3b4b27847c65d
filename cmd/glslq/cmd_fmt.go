package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/glslq/format"
)

func newFmtCmd() *cobra.Command {
	var fmtOverwrite bool
	var fmtList bool

	cmd := &cobra.Command{
		Use:   "fmt [file...]",
		Short: "Pretty-print shaders, preserving comments",
		Long: `Pretty-print shaders to stdout.

If no file is provided, reads GLSL source from stdin.

Use -w to overwrite files in place and -l to list the files whose
formatting differs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				if fmtOverwrite || fmtList {
					return fmt.Errorf("-w and -l require a file argument")
				}
				source, _, err := readSource(nil)
				if err != nil {
					return err
				}
				output, err := format.Source(source, cfg.PrinterOptions()...)
				if err != nil {
					printError(os.Stderr, err, source)
					return fmt.Errorf("format failed")
				}
				_, err = os.Stdout.Write(output)
				return err
			}

			failed := 0
			for _, filename := range args {
				source, err := os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
				output, err := format.SourceFile(source, filename, cfg.PrinterOptions()...)
				if err != nil {
					printError(os.Stderr, err, source)
					failed++
					continue
				}

				changed := !bytes.Equal(source, output)
				if fmtList && changed {
					fmt.Fprintln(os.Stdout, filename)
				}
				switch {
				case fmtOverwrite:
					if changed {
						if err := os.WriteFile(filename, output, 0644); err != nil {
							return err
						}
					}
				case !fmtList:
					if _, err := os.Stdout.Write(output); err != nil {
						return err
					}
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d file(s) could not be formatted", failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&fmtOverwrite, "write", "w", false, "overwrite files in place")
	cmd.Flags().BoolVarP(&fmtList, "list", "l", false, "list files whose formatting differs")

	return cmd
}
