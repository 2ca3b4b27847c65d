package main

import (
	"fmt"
	"io"
	"os"
)

// readSource reads the file named by args, or stdin when args is empty.
// The returned name is "" for stdin.
func readSource(args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return source, "", nil
	}
	source, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("read file: %w", err)
	}
	return source, args[0], nil
}
