// Package api exposes the decoding engine over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
)

type Server struct {
	service Decoder
	clock   func() time.Time
}

func NewServer(service Decoder) *Server {
	return &Server{
		service: service,
		clock:   time.Now,
	}
}

func (s *Server) Register(e *echo.Echo) {
	e.POST("/v1/decode", s.handleDecode)
	e.GET("/v1/healthz", s.handleHealthz)
}

func (s *Server) handleDecode(c *echo.Context) error {
	if s.service == nil {
		return writeError(c, http.StatusInternalServerError, "server_error", "decode service not configured")
	}

	req, err := decodeJSON[DecodeRequest](c.Request().Body)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	inputs, err := req.texts()
	if err != nil {
		return writeBadRequest(c, err.Error())
	}

	mode, results, err := s.service.Decode(c.Request().Context(), inputs, req)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}

	outputs := make([]DecodeOutput, len(results))
	for i, r := range results {
		outputs[i] = DecodeOutput{Index: i, Text: r.Text}
		if r.Err != nil {
			outputs[i].Error = r.Err.Error()
		}
	}

	return c.JSON(http.StatusOK, DecodeResponse{
		ID:        newDecodeID(),
		Object:    "decode",
		CreatedAt: s.clock().Unix(),
		Search:    string(mode),
		Outputs:   outputs,
	})
}

func (s *Server) handleHealthz(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func writeBadRequest(c *echo.Context, msg string) error {
	return writeError(c, http.StatusBadRequest, "invalid_request_error", msg)
}

func writeError(c *echo.Context, status int, errType, msg string) error {
	return c.JSON(status, map[string]any{
		"error": ResponseError{
			Message: msg,
			Type:    errType,
		},
	})
}

func newDecodeID() string {
	return "dec_" + uuid.NewString()
}
