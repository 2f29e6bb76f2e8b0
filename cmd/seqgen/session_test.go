package main

import (
	"context"
	"strings"
	"testing"

	"github.com/samcharles93/seqgen/internal/decoding"
	"github.com/samcharles93/seqgen/internal/logger"
	"github.com/samcharles93/seqgen/internal/model"
	"github.com/samcharles93/seqgen/internal/search"
	"github.com/samcharles93/seqgen/internal/tokenizer"
)

func sessionDriver(t *testing.T) *decoding.Driver {
	t.Helper()

	tok := tokenizer.NewWordTokenizer(tokenizer.DefaultConfig(), nil, 64)
	tok.Grow = true
	cfg := tok.Config()

	return &decoding.Driver{
		Model:     model.NewToy(64, 8, 7),
		Tokenizer: tok,
		Mode:      decoding.ModeGreedy,
		Params: search.Params{
			BeamWidth: 1,
			MaxLen:    8,
			MaxRepeat: 5,
			MinLength: 5,
			Alpha:     1.2,
			BOS:       cfg.BOSTokenID,
			EOS:       cfg.EOSTokenID,
			PAD:       cfg.PADTokenID,
		},
		Log: logger.Default(),
	}
}

func TestRunSession(t *testing.T) {
	t.Parallel()

	t.Run("quit ends the session", func(t *testing.T) {
		t.Parallel()
		var out strings.Builder
		err := runSession(context.Background(), sessionDriver(t), strings.NewReader("quit\n"), &out)
		if err != nil {
			t.Fatalf("runSession: %v", err)
		}
		got := out.String()
		if !strings.Contains(got, "Inference Process Started") {
			t.Errorf("missing start banner in %q", got)
		}
		if !strings.Contains(got, "Inference Process has terminated") {
			t.Errorf("missing termination line in %q", got)
		}
		if strings.Contains(got, outputLabel) {
			t.Errorf("unexpected decode output in %q", got)
		}
	})

	t.Run("quit is case-insensitive", func(t *testing.T) {
		t.Parallel()
		var out strings.Builder
		if err := runSession(context.Background(), sessionDriver(t), strings.NewReader("QUIT\n"), &out); err != nil {
			t.Fatalf("runSession: %v", err)
		}
		if !strings.Contains(out.String(), "Inference Process has terminated") {
			t.Errorf("missing termination line in %q", out.String())
		}
	})

	t.Run("decodes each line", func(t *testing.T) {
		t.Parallel()
		var out strings.Builder
		if err := runSession(context.Background(), sessionDriver(t), strings.NewReader("hello world\nquit\n"), &out); err != nil {
			t.Fatalf("runSession: %v", err)
		}
		got := out.String()
		if strings.Count(got, inputLabel) != 2 {
			t.Errorf("want 2 input prompts, got %d in %q", strings.Count(got, inputLabel), got)
		}
		if !strings.Contains(got, outputLabel) {
			t.Errorf("missing decode output in %q", got)
		}
	})

	t.Run("blank lines are skipped", func(t *testing.T) {
		t.Parallel()
		var out strings.Builder
		if err := runSession(context.Background(), sessionDriver(t), strings.NewReader("\n   \nquit\n"), &out); err != nil {
			t.Fatalf("runSession: %v", err)
		}
		if strings.Contains(out.String(), outputLabel) {
			t.Errorf("blank line should not decode: %q", out.String())
		}
	})

	t.Run("end of input ends the session", func(t *testing.T) {
		t.Parallel()
		var out strings.Builder
		if err := runSession(context.Background(), sessionDriver(t), strings.NewReader(""), &out); err != nil {
			t.Fatalf("runSession: %v", err)
		}
	})
}
