package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/seqgen/internal/eval"
)

func evalCmd() *cli.Command {
	var (
		dataPath  string
		batchSize int64
	)

	flags := append(engineFlags(), searchFlags()...)
	flags = append(flags, loggingFlags()...)
	flags = append(flags,
		&cli.StringFlag{
			Name:        "data",
			Aliases:     []string{"d"},
			Usage:       "path to JSONL evaluation data ({\"source\",\"reference\"} per line)",
			Required:    true,
			Destination: &dataPath,
		},
		&cli.Int64Flag{
			Name:        "batch-size",
			Aliases:     []string{"batch_size"},
			Usage:       "items per evaluation batch",
			Value:       32,
			Destination: &batchSize,
		},
	)

	return &cli.Command{
		Name:  "eval",
		Usage: "Score the decoder against reference outputs",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			applyEngineConfig(c, LoadConfig())
			log := newLogger()

			f, err := os.Open(dataPath)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: open data: %v", err), 1)
			}
			defer func() { _ = f.Close() }()

			samples, err := eval.LoadSamples(f)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: load data: %v", err), 1)
			}

			driver, err := buildDriver(log)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			metric := eval.UnigramOverlap{}
			harness := &eval.Harness{
				Driver:    driver,
				Metric:    metric,
				BatchSize: int(batchSize),
				Log:       log,
			}

			score, err := harness.Run(ctx, samples)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: eval: %v", err), 1)
			}

			fmt.Printf("EVAL Result with %s search over %d samples\n",
				strings.ToUpper(string(driver.Mode)), len(samples))
			fmt.Printf("-- %s Score: %.2f\n", metric.Name(), score)
			return nil
		},
	}
}
