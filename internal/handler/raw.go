package handler

import (
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/slateworks/postparse/internal/errs"
)

// textSuccess is the shared success envelope for the plain text,
// HTML, and SVG endpoints: the body echoed back with its character
// length.
type textSuccess struct {
	Status      string `json:"status"`
	Received    string `json:"received"`
	Length      int    `json:"length"`
	ContentType string `json:"content_type"`
}

// binarySuccess is the success envelope for the binary endpoint.
type binarySuccess struct {
	Status      string `json:"status"`
	Size        int    `json:"size"`
	ContentType string `json:"content_type"`
	FirstBytes  []int  `json:"first_bytes"`
}

// handleText decodes the body as UTF-8 text and echoes it back with
// its length in characters (runes, not bytes). Bodies that are not
// valid UTF-8 get a structured decode error instead of garbage.
func (h *ContentHandler) handleText(operation string) echo.HandlerFunc {
	return h.handle(operation, func(c echo.Context) (interface{}, error) {
		body, err := readBody(c)
		if err != nil {
			return nil, err
		}

		if !utf8.Valid(body) {
			return nil, errs.NewDecodeError("Invalid UTF-8")
		}

		text := string(body)
		return textSuccess{
			Status:      "success",
			Received:    text,
			Length:      utf8.RuneCountInString(text),
			ContentType: contentType(c),
		}, nil
	})
}

// HandleText handles text/plain requests.
func (h *ContentHandler) HandleText() echo.HandlerFunc {
	return h.handleText("handle_text")
}

// HandleHTML handles text/html requests. The markup is echoed as-is;
// nothing is parsed or sanitized.
func (h *ContentHandler) HandleHTML() echo.HandlerFunc {
	return h.handleText("handle_html")
}

// HandleSVG handles image/svg+xml requests. Like HTML, the document
// is treated as opaque text.
func (h *ContentHandler) HandleSVG() echo.HandlerFunc {
	return h.handleText("handle_svg")
}

// HandleBinary handles application/octet-stream requests. Any byte
// sequence is accepted, including an empty one.
func (h *ContentHandler) HandleBinary() echo.HandlerFunc {
	return h.handle("handle_binary", func(c echo.Context) (interface{}, error) {
		body, err := readBody(c)
		if err != nil {
			return nil, err
		}

		limit := len(body)
		if limit > 10 {
			limit = 10
		}
		firstBytes := make([]int, 0, limit)
		for _, b := range body[:limit] {
			firstBytes = append(firstBytes, int(b))
		}

		return binarySuccess{
			Status:      "success",
			Size:        len(body),
			ContentType: contentType(c),
			FirstBytes:  firstBytes,
		}, nil
	})
}
