package api

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// DecodeRequest is the body of POST /v1/decode. Either input or inputs must
// be set. Search parameters are optional per-request overrides.
type DecodeRequest struct {
	Input  string   `json:"input,omitempty"`
	Inputs []string `json:"inputs,omitempty"`

	Search    string `json:"search,omitempty"`
	BeamWidth *int   `json:"beam_width,omitempty"`
	MaxLen    *int   `json:"max_len,omitempty"`
}

// texts normalizes the request to a non-empty input list.
func (r *DecodeRequest) texts() ([]string, error) {
	switch {
	case len(r.Inputs) > 0 && r.Input != "":
		return nil, fmt.Errorf("input and inputs are mutually exclusive")
	case len(r.Inputs) > 0:
		return r.Inputs, nil
	case r.Input != "":
		return []string{r.Input}, nil
	default:
		return nil, fmt.Errorf("input or inputs is required")
	}
}

// DecodeOutput is the result for one input item.
type DecodeOutput struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

// DecodeResponse is the body returned by POST /v1/decode.
type DecodeResponse struct {
	ID        string         `json:"id"`
	Object    string         `json:"object"`
	CreatedAt int64          `json:"created_at"`
	Search    string         `json:"search"`
	Outputs   []DecodeOutput `json:"outputs"`
}

// ResponseError is the error payload shape shared by all endpoints.
type ResponseError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

func decodeJSON[T any](r io.Reader) (*T, error) {
	var v T
	dec := json.NewDecoder(r)
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}
	return &v, nil
}
