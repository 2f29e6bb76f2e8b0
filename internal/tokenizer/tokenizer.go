// Package tokenizer maps text to token-id sequences and back. The decoding
// engine treats the tokenizer as a black-box collaborator; the only
// structure it relies on is the special-token ids carried by Config.
package tokenizer

// Tokenizer converts between text and token ids.
type Tokenizer interface {
	Encode(text string) ([]int, error)
	Decode(ids []int) (string, error)
}

// Config carries the special-token ids a tokenizer was built with.
type Config struct {
	BOSTokenID int `yaml:"bos_token_id"`
	EOSTokenID int `yaml:"eos_token_id"`
	PADTokenID int `yaml:"pad_token_id"`
	UNKTokenID int `yaml:"unk_token_id"`
}

// DefaultConfig returns the id layout used by the built-in word tokenizer:
// pad=0, bos=1, eos=2, unk=3.
func DefaultConfig() Config {
	return Config{
		PADTokenID: 0,
		BOSTokenID: 1,
		EOSTokenID: 2,
		UNKTokenID: 3,
	}
}
