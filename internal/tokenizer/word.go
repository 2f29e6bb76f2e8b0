package tokenizer

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// WordTokenizer is a whitespace word-level tokenizer backed by a vocabulary.
// Unknown words map to the UNK id, or, when Grow is enabled and the vocab
// has room, are assigned the next free id. Special-token ids never collide
// with word ids.
type WordTokenizer struct {
	cfg Config

	// Grow permits assigning fresh ids to unseen words during Encode,
	// up to Limit ids in total. Useful for the built-in demo mode where
	// no vocabulary file exists.
	Grow  bool
	Limit int

	mu    sync.RWMutex
	words map[string]int
	ids   []string // id -> word, "" for specials and unassigned
}

// vocabFile is the on-disk yaml layout.
type vocabFile struct {
	Config Config   `yaml:"config"`
	Words  []string `yaml:"words"`
}

// NewWordTokenizer builds a tokenizer over the given word list. Word ids
// start after the highest special id.
func NewWordTokenizer(cfg Config, words []string, limit int) *WordTokenizer {
	base := maxSpecial(cfg) + 1
	if limit < base+len(words) {
		limit = base + len(words)
	}
	t := &WordTokenizer{
		cfg:   cfg,
		Limit: limit,
		words: make(map[string]int, len(words)),
		ids:   make([]string, base, limit),
	}
	for _, w := range words {
		if _, ok := t.words[w]; ok {
			continue
		}
		t.words[w] = len(t.ids)
		t.ids = append(t.ids, w)
	}
	return t
}

// LoadVocab reads a yaml vocabulary file.
func LoadVocab(path string) (*WordTokenizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocab: %w", err)
	}
	var vf vocabFile
	if err := yaml.Unmarshal(data, &vf); err != nil {
		return nil, fmt.Errorf("parse vocab %s: %w", path, err)
	}
	return NewWordTokenizer(vf.Config, vf.Words, 0), nil
}

// Config returns the special-token layout.
func (t *WordTokenizer) Config() Config { return t.cfg }

// Size returns the number of assigned ids, specials included.
func (t *WordTokenizer) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.ids)
}

// Encode splits text on whitespace and maps each word to its id.
func (t *WordTokenizer) Encode(text string) ([]int, error) {
	fields := strings.Fields(strings.ToLower(text))
	ids := make([]int, 0, len(fields))

	t.mu.Lock()
	defer t.mu.Unlock()
	for _, w := range fields {
		id, ok := t.words[w]
		if !ok {
			if t.Grow && len(t.ids) < t.Limit {
				id = len(t.ids)
				t.words[w] = id
				t.ids = append(t.ids, w)
			} else {
				id = t.cfg.UNKTokenID
			}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Decode joins the words for the given ids, skipping pad, bos, and eos.
// Decoding stops at the first eos.
func (t *WordTokenizer) Decode(ids []int) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var b strings.Builder
	for _, id := range ids {
		switch id {
		case t.cfg.EOSTokenID:
			return b.String(), nil
		case t.cfg.PADTokenID, t.cfg.BOSTokenID:
			continue
		}
		word := ""
		if id >= 0 && id < len(t.ids) {
			word = t.ids[id]
		}
		if word == "" {
			word = "<unk>"
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(word)
	}
	return b.String(), nil
}

func maxSpecial(cfg Config) int {
	m := cfg.PADTokenID
	for _, id := range []int{cfg.BOSTokenID, cfg.EOSTokenID, cfg.UNKTokenID} {
		if id > m {
			m = id
		}
	}
	return m
}
