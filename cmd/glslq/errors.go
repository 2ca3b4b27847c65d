package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	errorFmt   = color.New(color.FgRed, color.Bold).SprintFunc()
	okFmt      = color.New(color.FgGreen).SprintFunc()
	contextFmt = color.New(color.Faint).SprintFunc()
)

type contextError interface {
	FormatWithContext(source string) string
}

// printError writes err with its first line highlighted and, for syntax
// errors, the offending source line with a caret.
func printError(w io.Writer, err error, source []byte) {
	text := err.Error()
	if ce, ok := err.(contextError); ok {
		text = ce.FormatWithContext(string(source))
	}
	head, rest, _ := strings.Cut(text, "\n")
	fmt.Fprintln(w, errorFmt(head))
	if rest != "" {
		fmt.Fprint(w, contextFmt(strings.TrimRight(rest, "\n")), "\n")
	}
}
