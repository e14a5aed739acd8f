package handler

import (
	"encoding/xml"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/slateworks/postparse/internal/errs"
)

// xmlSuccess is the success envelope for the XML endpoint: the root
// tag name plus each direct child tag mapped to its text content.
type xmlSuccess struct {
	Status      string            `json:"status"`
	RootTag     string            `json:"root_tag"`
	Data        map[string]string `json:"data"`
	ContentType string            `json:"content_type"`
}

// xmlNode is a generic element: its name, its direct text, and its
// child elements. Only one level of children is reported.
type xmlNode struct {
	XMLName  xml.Name
	Content  string    `xml:",chardata"`
	Children []xmlNode `xml:",any"`
}

// HandleXML handles application/xml requests. The document is parsed
// just far enough to report the root tag and the text of its direct
// children; deeper structure is ignored.
func (h *ContentHandler) HandleXML() echo.HandlerFunc {
	return h.handle("handle_xml", func(c echo.Context) (interface{}, error) {
		body, err := readBody(c)
		if err != nil {
			return nil, err
		}

		if !utf8.Valid(body) {
			return nil, errs.NewDecodeError("Invalid UTF-8")
		}

		var root xmlNode
		if err := xml.Unmarshal(body, &root); err != nil {
			return nil, errs.NewParseError("Invalid XML")
		}

		// Duplicate child tags collapse to the last occurrence.
		data := make(map[string]string, len(root.Children))
		for _, child := range root.Children {
			data[child.XMLName.Local] = child.Content
		}

		return xmlSuccess{
			Status:      "success",
			RootTag:     root.XMLName.Local,
			Data:        data,
			ContentType: contentType(c),
		}, nil
	})
}
