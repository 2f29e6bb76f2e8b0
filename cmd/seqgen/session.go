package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/samcharles93/seqgen/internal/decoding"
)

const (
	inputLabel  = "User Input Sequence >> "
	outputLabel = "Model Out Sequence >> "
	quitWord    = "quit"
)

// runSession drives the interactive decode loop: one line in, one decoded
// sequence out, until the quit sentinel or end of input. Decode failures
// are reported and the session continues.
func runSession(ctx context.Context, d *decoding.Driver, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "--- Inference Process Started! ---")
	fmt.Fprintln(out, `[ Type "quit" on user input to stop the Process ]`)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "\n%s", inputLabel)
		if !scanner.Scan() {
			break
		}
		line := strings.ToLower(scanner.Text())
		if line == quitWord {
			fmt.Fprintln(out, "\n--- Inference Process has terminated! ---")
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		text, err := d.Generate(ctx, line)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "%s%s\n", outputLabel, text)
	}
	return scanner.Err()
}
