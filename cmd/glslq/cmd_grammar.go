package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/spf13/cobra"

	"github.com/dhamidi/glslq/glsl/grammar"
)

func newGrammarCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "grammar [production...]",
		Short: "Print the reference EBNF grammar",
		Args:  cobra.ArbitraryArgs,
		Long: `Print the reference grammar of the GLSL syntax glslq accepts.
With production names, print only those productions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printGrammar(os.Stdout, args, list)
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, "list production names only")

	cmd.AddCommand(newGrammarCheckCmd())

	return cmd
}

func printGrammar(w io.Writer, names []string, list bool) error {
	g, err := grammar.Load()
	if err != nil {
		return err
	}
	if list {
		for _, name := range grammar.Names(g) {
			fmt.Fprintln(w, name)
		}
		return nil
	}
	if len(names) == 0 {
		_, err := w.Write(grammar.Source())
		return err
	}
	for _, name := range names {
		prod, ok := g[name]
		if !ok {
			return fmt.Errorf("unknown production %q", name)
		}
		if err := grammar.Write(w, prod); err != nil {
			return err
		}
	}
	return nil
}

func newGrammarCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:           "check <file>",
		Short:         "Parse and verify an EBNF grammar file",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			f, err := os.Open(filename)
			if err != nil {
				return fmt.Errorf("open file: %w", err)
			}
			defer f.Close()

			if _, err := grammar.Check(filename, f, startProduction); err != nil {
				printGrammarErrors(os.Stderr, err)
				return err
			}
			fmt.Fprintln(os.Stdout, okFmt("ok"), filename)
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", grammar.Start, "start production for verification (empty only checks syntax)")

	return cmd
}

// printGrammarErrors prints each error of an ebnf error list on its own
// line.
func printGrammarErrors(w io.Writer, err error) {
	if inner := errors.Unwrap(err); inner != nil {
		err = inner
	}
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Fprintln(w, errorFmt(v.Index(i).Interface()))
		}
		return
	}
	fmt.Fprintln(w, errorFmt(err))
}
