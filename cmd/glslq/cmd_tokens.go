package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/glslq/format"
	"github.com/dhamidi/glslq/glsl/parser"
)

func newTokensCmd() *cobra.Command {
	var outputFormat string
	var includeComments bool

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the tokens of a shader",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encoder, err := format.NewTokenEncoder(outputFormat, os.Stdout)
			if err != nil {
				return err
			}
			source, filename, err := readSource(args)
			if err != nil {
				return err
			}

			var opts []parser.Option
			if filename != "" {
				opts = append(opts, parser.WithFile(filename))
			}
			if includeComments {
				opts = append(opts, parser.WithComments())
			}

			tokens, lexErr := parser.Tokens(source, opts...)
			if err := encoder.Encode(tokens); err != nil {
				return fmt.Errorf("encode %s: %w", outputFormat, err)
			}
			if lexErr != nil {
				printError(os.Stderr, lexErr, source)
				return fmt.Errorf("tokenize failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format (line, json)")
	cmd.Flags().BoolVar(&includeComments, "comments", false, "include comment tokens")

	return cmd
}
