package api

import (
	"context"
	"fmt"

	"github.com/samcharles93/seqgen/internal/decoding"
)

// Decoder is the slice of the decoding layer the server needs. It exists so
// handlers can be tested against a fake.
type Decoder interface {
	Decode(ctx context.Context, inputs []string, req *DecodeRequest) (decoding.Mode, []decoding.Result, error)
}

// DecodeService applies per-request overrides on top of a base driver
// configuration. The base driver is copied per request, so concurrent
// requests never share mutable search parameters.
type DecodeService struct {
	Base decoding.Driver
}

func NewDecodeService(base decoding.Driver) *DecodeService {
	return &DecodeService{Base: base}
}

func (s *DecodeService) Decode(ctx context.Context, inputs []string, req *DecodeRequest) (decoding.Mode, []decoding.Result, error) {
	d := s.Base

	if req.Search != "" {
		mode, err := decoding.ParseMode(req.Search)
		if err != nil {
			return "", nil, err
		}
		d.Mode = mode
	}
	if req.BeamWidth != nil {
		if *req.BeamWidth < 1 {
			return "", nil, fmt.Errorf("beam_width must be at least 1")
		}
		d.Params.BeamWidth = *req.BeamWidth
	}
	if req.MaxLen != nil {
		if *req.MaxLen < 2 {
			return "", nil, fmt.Errorf("max_len must be at least 2")
		}
		d.Params.MaxLen = *req.MaxLen
	}

	results, err := d.GenerateBatch(ctx, inputs)
	return d.Mode, results, err
}
