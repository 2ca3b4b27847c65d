package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/glslq/format"
	"github.com/dhamidi/glslq/glsl/parser"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var expression bool
	var statement bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a shader and dump its syntax tree",
		Long: `Parse a shader and dump its syntax tree.

Reads from stdin when no file is given. With --expr or --stmt the input
is a single expression or statement instead of a whole shader.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if expression && statement {
				return fmt.Errorf("--expr and --stmt are mutually exclusive")
			}
			encoder, err := format.NewEncoder(outputFormat, os.Stdout)
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			source, filename, err := readSource(args)
			if err != nil {
				return err
			}

			opts := cfg.ParserOptions()
			if filename != "" {
				opts = append(opts, parser.WithFile(filename))
			}
			var p *parser.Parser
			switch {
			case expression:
				p = parser.ParseExpression(bytes.NewReader(source), opts...)
			case statement:
				p = parser.ParseStatement(bytes.NewReader(source), opts...)
			default:
				p = parser.ParseTranslationUnit(bytes.NewReader(source), opts...)
			}
			node, err := p.Finish()
			if err != nil {
				printError(os.Stderr, err, source)
				return fmt.Errorf("parse failed")
			}

			if err := encoder.Encode(node); err != nil {
				return fmt.Errorf("encode %s: %w", outputFormat, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format ("+strings.Join(format.EncoderNames, ", ")+")")
	cmd.Flags().BoolVar(&expression, "expr", false, "parse a single expression")
	cmd.Flags().BoolVar(&statement, "stmt", false, "parse a single statement")

	return cmd
}
