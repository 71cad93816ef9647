package form

import (
	"net/url"
	"regexp"
	"strings"
)

// Submission holds sanitized field values for one request.
type Submission map[string]string

var (
	// Control characters other than tab and newline.
	reCtrl = regexp.MustCompile("[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]")
	// Characters outside the conventional email token alphabet.
	reNonEmail = regexp.MustCompile("[^a-zA-Z0-9!#$%&'*+\\-/=?^_`{|}~@.\\[\\]]")
)

// Sanitize extracts and normalizes the declared fields from raw form input.
// Absent fields become empty strings and unknown fields are ignored. It never
// fails; semantic checks happen in Validate.
func Sanitize(raw url.Values, schema Schema) Submission {
	s := make(Submission, len(schema.Fields))
	for _, field := range schema.Fields {
		value := strings.ReplaceAll(raw.Get(field.Name), "\r\n", "\n")
		value = strings.ReplaceAll(value, "\r", "\n")
		value = reCtrl.ReplaceAllString(value, "")
		if !field.Multiline {
			value = strings.ReplaceAll(value, "\n", " ")
			value = strings.ReplaceAll(value, "\t", " ")
		}
		if field.Kind == KindEmail {
			value = reNonEmail.ReplaceAllString(value, "")
		}
		s[field.Name] = strings.TrimSpace(value)
	}
	return s
}
