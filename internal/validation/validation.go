// Package validation contains the logic for validating
// request data.
//
// Form-shaped input (multipart, urlencoded) is checked against
// declarative rule sets: static tables of field constraints plus a
// short list of named predicates. JSON input is checked with the
// `validator` library against struct tags. Either way the result is
// an aggregated field -> messages map the client can understand.
package validation

import (
	"mime/multipart"
	"net/url"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance backing the email
// predicate and the JSON payload schema. It is read-only after init,
// so concurrent use from handlers is safe.
var validate = validator.New()

// Result is the outcome of running one rule set over one request.
//
// Either Errors is empty and Values/Files hold the normalized input,
// or Errors lists every violated constraint keyed by field name.
type Result struct {
	// Values holds the first submitted value for each known field
	// that was present.
	Values map[string]string

	// Files holds descriptors for uploaded files that were checked.
	Files map[string]FileDescriptor

	// Errors maps field name to all of its violation messages, in
	// rule order.
	Errors map[string][]string
}

// Valid reports whether the input satisfied every rule.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// FileDescriptor summarizes one uploaded file: its client-reported
// name, byte size, and declared MIME type. Derived per request, never
// stored.
type FileDescriptor struct {
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// Predicate is one named custom check applied to a field value after
// the structural rules pass. Message is reported when Check fails.
type Predicate struct {
	Name    string
	Check   func(value string) bool
	Message string
}

// FieldRule is the declarative constraint table for a single field.
type FieldRule struct {
	Name     string
	Required bool

	// MinLen/MaxLen bound the value length in runes; zero means
	// unbounded.
	MinLen int
	MaxLen int

	// Messages are the client-facing strings keyed by failure reason.
	Messages FieldMessages

	// Predicates run in order; every failing predicate contributes
	// its message.
	Predicates []Predicate
}

// FieldMessages holds per-reason error strings for one field.
type FieldMessages struct {
	Required string
	TooShort string
	TooLong  string
}

// FileRule is the declarative constraint table for an uploaded file.
// Files are always optional; an absent file passes.
type FileRule struct {
	Name string

	// MaxSize bounds the upload in bytes. There is no minimum: a
	// zero-byte file is accepted.
	MaxSize int64

	// AllowedTypes whitelists declared MIME types.
	AllowedTypes []string

	Messages FileMessages
}

// FileMessages holds per-reason error strings for one file field.
type FileMessages struct {
	TooLarge    string
	InvalidType string
}

// RuleSet is the fixed list of constraints for one input shape.
// Rule sets are built once at process start and never mutated.
type RuleSet struct {
	Name   string
	Fields []FieldRule
	Files  []FileRule
}

// Validate runs the rule set over submitted form values and files.
//
// It is pure and total: it never mutates its inputs and it reports
// every violated constraint, not just the first. Unknown fields are
// ignored; files may be nil for rule sets without file rules.
func (rs RuleSet) Validate(values url.Values, files map[string][]*multipart.FileHeader) Result {
	result := Result{
		Values: make(map[string]string),
		Files:  make(map[string]FileDescriptor),
		Errors: make(map[string][]string),
	}

	for _, rule := range rs.Fields {
		value := values.Get(rule.Name)
		if msgs := rule.check(value); len(msgs) > 0 {
			result.Errors[rule.Name] = msgs
			continue
		}
		if value != "" {
			result.Values[rule.Name] = value
		}
	}

	for _, rule := range rs.Files {
		headers := files[rule.Name]
		if len(headers) == 0 {
			continue
		}
		header := headers[0]
		if msgs := rule.check(header); len(msgs) > 0 {
			result.Errors[rule.Name] = msgs
			continue
		}
		result.Files[rule.Name] = FileDescriptor{
			Name:        header.Filename,
			Size:        header.Size,
			ContentType: header.Header.Get("Content-Type"),
		}
	}

	return result
}

// check applies one field rule to one value and returns every
// violation message.
func (rule FieldRule) check(value string) []string {
	if value == "" {
		// A missing optional field passes with no further checks.
		if rule.Required {
			return []string{rule.Messages.Required}
		}
		return nil
	}

	var msgs []string
	length := len([]rune(value))

	if rule.MinLen > 0 && length < rule.MinLen {
		msgs = append(msgs, rule.Messages.TooShort)
	}
	if rule.MaxLen > 0 && length > rule.MaxLen {
		msgs = append(msgs, rule.Messages.TooLong)
	}
	for _, p := range rule.Predicates {
		if !p.Check(value) {
			msgs = append(msgs, p.Message)
		}
	}

	return msgs
}

// check applies one file rule to one uploaded part.
func (rule FileRule) check(header *multipart.FileHeader) []string {
	var msgs []string

	if rule.MaxSize > 0 && header.Size > rule.MaxSize {
		msgs = append(msgs, rule.Messages.TooLarge)
	}

	declared := header.Header.Get("Content-Type")
	allowed := false
	for _, t := range rule.AllowedTypes {
		if declared == t {
			allowed = true
			break
		}
	}
	if !allowed {
		msgs = append(msgs, rule.Messages.InvalidType)
	}

	return msgs
}
