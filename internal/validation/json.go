package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// JSONPayload is the schema for the application/json profile.
//
// Fields are pointers so "absent" and "zero" stay distinguishable:
// an omitted age must fail required while an explicit age of 0 must
// pass the 0-150 range.
type JSONPayload struct {
	Name  *string `json:"name" validate:"required,min=2,max=100"`
	Email *string `json:"email" validate:"required,email"`
	Age   *int    `json:"age" validate:"required,gte=0,lte=150"`
}

// JSONData is the normalized, type-coerced result of a valid payload.
type JSONData struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

// Normalized returns the dereferenced payload. Only call after
// CheckJSONPayload reported no errors.
func (p *JSONPayload) Normalized() JSONData {
	return JSONData{
		Name:  *p.Name,
		Email: *p.Email,
		Age:   *p.Age,
	}
}

// jsonMessages maps field name and failed tag to the client-facing
// message, mirroring the form rule sets' per-reason messages.
var jsonMessages = map[string]map[string]string{
	"name": {
		"required": "Name is required",
		"min":      "Name must be at least 2 characters long",
		"max":      "Name cannot exceed 100 characters",
	},
	"email": {
		"required": "Email is required",
		"email":    "Please enter a valid email address",
	},
	"age": {
		"required": "Age is required",
		"gte":      "Age cannot be negative",
		"lte":      "Age cannot exceed 150",
	},
}

// CheckJSONPayload validates the payload against its schema tags and
// aggregates every violation into a field -> messages map. An empty
// map means the payload is valid.
func CheckJSONPayload(p *JSONPayload) map[string][]string {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	fieldErrors := make(map[string][]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// validator.Struct only fails this way on a non-struct
		// argument, which would be a programming error.
		fieldErrors["payload"] = []string{"Payload is not an object"}
		return fieldErrors
	}

	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())

		msg := jsonMessages[field][fe.Tag()]
		if msg == "" {
			// Fallback for tags without a curated message.
			if fe.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, fe.Tag(), fe.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, fe.Tag())
			}
		}

		fieldErrors[field] = append(fieldErrors[field], msg)
	}

	return fieldErrors
}

// TypeMismatchMessage is the message reported when a JSON field holds
// the wrong JSON type (e.g. a string where age expects an integer).
func TypeMismatchMessage(field, wantType string) string {
	label := field
	if label != "" {
		label = strings.ToUpper(label[:1]) + label[1:]
	}
	switch wantType {
	case "int":
		return label + " must be an integer"
	case "string":
		return label + " must be a string"
	default:
		return label + " has the wrong type"
	}
}
