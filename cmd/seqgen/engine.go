package main

import (
	"fmt"
	"os"

	"github.com/samcharles93/seqgen/internal/decoding"
	"github.com/samcharles93/seqgen/internal/logger"
	"github.com/samcharles93/seqgen/internal/model"
	"github.com/samcharles93/seqgen/internal/search"
	"github.com/samcharles93/seqgen/internal/tokenizer"
)

// buildDriver assembles the collaborators from the current flag values.
// The built-in deterministic model stands in for a trained one; a vocab
// file pins the tokenizer, otherwise it grows ids on the fly for demo use.
func buildDriver(log logger.Logger) (*decoding.Driver, error) {
	var tok *tokenizer.WordTokenizer
	if vocabPath != "" {
		loaded, err := tokenizer.LoadVocab(vocabPath)
		if err != nil {
			return nil, err
		}
		tok = loaded
		log.Debug("vocab loaded", "path", vocabPath, "size", tok.Size())
	} else {
		tok = tokenizer.NewWordTokenizer(tokenizer.DefaultConfig(), nil, int(vocabSize))
		tok.Grow = true
	}

	mode, err := decoding.ParseMode(searchMode)
	if err != nil {
		return nil, err
	}

	cfg := tok.Config()
	params := search.Params{
		BeamWidth: int(beamWidth),
		MaxLen:    int(maxLen),
		MaxRepeat: int(maxRepeat),
		MinLength: int(minLength),
		Alpha:     alpha,
		BOS:       cfg.BOSTokenID,
		EOS:       cfg.EOSTokenID,
		PAD:       cfg.PADTokenID,
	}
	if params.BeamWidth < 1 {
		return nil, fmt.Errorf("beam width must be at least 1")
	}
	if params.MaxLen < 2 {
		return nil, fmt.Errorf("max len must be at least 2")
	}

	size := int(vocabSize)
	if tok.Size() > size {
		size = tok.Size()
	}

	return &decoding.Driver{
		Model:     model.NewToy(size, int(hidden), seed),
		Tokenizer: tok,
		Mode:      mode,
		Params:    params,
		Parallel:  int(parallel),
		Log:       log,
	}, nil
}

func newLogger() logger.Logger {
	level := logger.ParseLevel(logLevel)
	if logFormat == "json" {
		return logger.JSON(os.Stderr, level)
	}
	return logger.Pretty(os.Stderr, level)
}
