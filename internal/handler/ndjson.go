package handler

import (
	"encoding/json"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/slateworks/postparse/internal/errs"
)

// ndjsonSuccess is the success envelope for the NDJSON endpoint: line
// count plus the parsed values in input order.
type ndjsonSuccess struct {
	Status      string        `json:"status"`
	LinesCount  int           `json:"lines_count"`
	Data        []interface{} `json:"data"`
	ContentType string        `json:"content_type"`
}

// HandleNDJSON handles application/x-ndjson requests: one JSON value
// per non-empty line. A single bad line fails the whole request; no
// partial results are returned.
func (h *ContentHandler) HandleNDJSON() echo.HandlerFunc {
	return h.handle("handle_ndjson", func(c echo.Context) (interface{}, error) {
		body, err := readBody(c)
		if err != nil {
			return nil, err
		}

		lines := strings.Split(strings.TrimSpace(string(body)), "\n")

		data := make([]interface{}, 0, len(lines))
		for _, line := range lines {
			if strings.TrimSpace(line) == "" {
				continue
			}

			var value interface{}
			if err := json.Unmarshal([]byte(line), &value); err != nil {
				return nil, errs.NewParseError("Invalid NDJSON")
			}
			data = append(data, value)
		}

		return ndjsonSuccess{
			Status:      "success",
			LinesCount:  len(data),
			Data:        data,
			ContentType: contentType(c),
		}, nil
	})
}
