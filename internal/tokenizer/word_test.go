package tokenizer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()
	tok := NewWordTokenizer(DefaultConfig(), []string{"the", "cat", "sat"}, 0)

	ids, err := tok.Encode("the cat sat")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	text, err := tok.Decode(ids)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if text != "the cat sat" {
		t.Fatalf("round trip: got %q", text)
	}
}

func TestDecodeSkipsSpecialsAndStopsAtEOS(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	tok := NewWordTokenizer(cfg, []string{"hello", "world"}, 0)

	ids, _ := tok.Encode("hello world")
	seq := append([]int{cfg.BOSTokenID}, ids...)
	seq = append(seq, cfg.EOSTokenID, ids[0], cfg.PADTokenID)

	text, err := tok.Decode(seq)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if text != "hello world" {
		t.Fatalf("expected decode to stop at eos, got %q", text)
	}
}

func TestEncodeUnknownWordsMapToUNK(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	tok := NewWordTokenizer(cfg, []string{"known"}, 0)

	ids, _ := tok.Encode("known mystery")
	if len(ids) != 2 {
		t.Fatalf("expected 2 ids, got %v", ids)
	}
	if ids[1] != cfg.UNKTokenID {
		t.Fatalf("expected unk id %d, got %d", cfg.UNKTokenID, ids[1])
	}
}

func TestEncodeGrowAssignsFreshIDs(t *testing.T) {
	t.Parallel()
	tok := NewWordTokenizer(DefaultConfig(), nil, 16)
	tok.Grow = true

	first, _ := tok.Encode("alpha beta")
	again, _ := tok.Encode("alpha beta")
	if first[0] != again[0] || first[1] != again[1] {
		t.Fatalf("grow ids not stable: %v vs %v", first, again)
	}
	if first[0] == first[1] {
		t.Fatalf("distinct words share id %d", first[0])
	}

	text, _ := tok.Decode(first)
	if text != "alpha beta" {
		t.Fatalf("grown vocab round trip: got %q", text)
	}
}

func TestGrowRespectsLimit(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	tok := NewWordTokenizer(cfg, nil, 5) // room for exactly one word past the specials
	tok.Grow = true

	ids, _ := tok.Encode("one two")
	if ids[0] == cfg.UNKTokenID {
		t.Fatalf("first word should have been assigned, got unk")
	}
	if ids[1] != cfg.UNKTokenID {
		t.Fatalf("expected unk once limit is hit, got %d", ids[1])
	}
}

func TestLoadVocab(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.yaml")
	data := []byte(`config:
  pad_token_id: 0
  bos_token_id: 1
  eos_token_id: 2
  unk_token_id: 3
words:
  - bonjour
  - monde
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write vocab: %v", err)
	}

	tok, err := LoadVocab(path)
	if err != nil {
		t.Fatalf("load vocab: %v", err)
	}
	ids, _ := tok.Encode("bonjour monde")
	text, _ := tok.Decode(ids)
	if text != "bonjour monde" {
		t.Fatalf("vocab file round trip: got %q", text)
	}
}

func TestLoadVocabMissingFile(t *testing.T) {
	t.Parallel()
	if _, err := LoadVocab(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing vocab file")
	}
}
