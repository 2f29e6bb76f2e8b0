package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func runCmd() *cli.Command {
	var input string

	flags := append(engineFlags(), searchFlags()...)
	flags = append(flags, loggingFlags()...)
	flags = append(flags,
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "decode a single input and exit (omit for interactive mode)",
			Destination: &input,
		},
	)

	return &cli.Command{
		Name:  "run",
		Usage: "Decode input sequences (interactive or single-shot)",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			applyEngineConfig(c, LoadConfig())
			log := newLogger()

			driver, err := buildDriver(log)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			log.Debug("driver ready", "search", string(driver.Mode), "beam_width", driver.Params.BeamWidth)

			if input != "" {
				text, err := driver.Generate(ctx, input)
				if err != nil {
					return cli.Exit(fmt.Sprintf("error: decode: %v", err), 1)
				}
				fmt.Printf("%s%s\n", outputLabel, text)
				return nil
			}

			return runSession(ctx, driver, os.Stdin, os.Stdout)
		},
	}
}
