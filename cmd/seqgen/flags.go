package main

import "github.com/urfave/cli/v3"

var (
	vocabPath string
	vocabSize int64
	hidden    int64
	seed      int64

	searchMode string
	beamWidth  int64
	maxLen     int64
	maxRepeat  int64
	minLength  int64
	alpha      float64
	parallel   int64

	logLevel  string
	logFormat string
)

func engineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "vocab",
			Aliases:     []string{"v"},
			Usage:       "path to vocab.yaml (omit for the self-growing demo vocab)",
			Destination: &vocabPath,
		},
		&cli.Int64Flag{
			Name:        "vocab-size",
			Usage:       "vocabulary capacity of the built-in model",
			Value:       4096,
			Destination: &vocabSize,
		},
		&cli.Int64Flag{
			Name:        "hidden",
			Usage:       "hidden size of the built-in model",
			Value:       64,
			Destination: &hidden,
		},
		&cli.Int64Flag{
			Name:        "seed",
			Usage:       "weight seed of the built-in model",
			Value:       1,
			Destination: &seed,
		},
	}
}

func searchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "search",
			Aliases:     []string{"s"},
			Usage:       "search strategy (greedy, beam)",
			Value:       "beam",
			Destination: &searchMode,
		},
		&cli.Int64Flag{
			Name:        "beam-width",
			Aliases:     []string{"beam_width", "b"},
			Usage:       "number of live hypotheses per step",
			Value:       4,
			Destination: &beamWidth,
		},
		&cli.Int64Flag{
			Name:        "max-len",
			Aliases:     []string{"max_len"},
			Usage:       "max tokens generated per item",
			Value:       512,
			Destination: &maxLen,
		},
		&cli.Int64Flag{
			Name:        "max-repeat",
			Aliases:     []string{"max_repeat"},
			Usage:       "longest allowed run of one token before penalizing",
			Value:       5,
			Destination: &maxRepeat,
		},
		&cli.Int64Flag{
			Name:        "min-length",
			Aliases:     []string{"min_length"},
			Usage:       "length-penalty offset",
			Value:       5,
			Destination: &minLength,
		},
		&cli.Float64Flag{
			Name:        "alpha",
			Usage:       "length-penalty exponent",
			Value:       1.2,
			Destination: &alpha,
		},
		&cli.Int64Flag{
			Name:        "parallel",
			Usage:       "items decoded concurrently per batch (1 = sequential)",
			Value:       1,
			Destination: &parallel,
		},
	}
}

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json)",
			Value:       "pretty",
			Destination: &logFormat,
		},
	}
}
