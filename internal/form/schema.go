package form

// FieldKind classifies how a field is sanitized and validated.
type FieldKind int

const (
	// KindText is free text.
	KindText FieldKind = iota
	// KindEmail is an email address.
	KindEmail
	// KindEnum is one of a fixed set of options offered by the form UI.
	KindEnum
)

// FieldSpec describes a single form field.
type FieldSpec struct {
	Name     string
	Label    string
	Required bool
	Kind     FieldKind
	// Multiline fields keep newlines through sanitization and render them
	// as <br> in the notification body.
	Multiline bool
	// Fallback is rendered in place of an empty optional value.
	Fallback string
	// ErrorLabel overrides Label in validation messages when set.
	ErrorLabel string
}

func (f FieldSpec) errorLabel() string {
	if f.ErrorLabel != "" {
		return f.ErrorLabel
	}
	return f.Label
}

// Column maps one CSV column to a field value.
type Column struct {
	Header string
	Field  string
	// Fallback is recorded in place of an empty value.
	Fallback string
}

// Schema is the static definition of one form type.
type Schema struct {
	ID             string
	Title          string
	Tagline        string
	AccentColor    string
	Subject        string
	SuccessMessage string
	// FailureMessage is a fmt template whose single %s is the fallback
	// human contact address.
	FailureMessage string
	FooterName     string
	Fields         []FieldSpec
	Columns        []Column
	StoreFile      string
	AuditFile      string
	// AuditFields are the identifying fields copied into audit log entries.
	AuditFields []string
}

// Field returns the spec for the named field.
func (s Schema) Field(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// BookSchema describes the book notification signup form.
func BookSchema() Schema {
	return Schema{
		ID:          "book",
		Title:       "New Book Notification Request",
		Tagline:     "The Encore Executive - Book Updates",
		AccentColor: "#e67e22",
		Subject:     "New Book Notification Request - The Encore Executive",
		SuccessMessage: `Thank you! You've been added to our book notification list. ` +
			`We'll keep you updated on "The Encore Executive" publication timeline.`,
		FailureMessage: "Sorry, there was an error processing your request. Please try again or contact us directly at %s",
		FooterName:     "book notification",
		Fields: []FieldSpec{
			{Name: "name", Label: "Name", Required: true},
			{Name: "email", Label: "Email", Required: true, Kind: KindEmail},
			{Name: "current_role", Label: "Current Role", ErrorLabel: "Current role", Fallback: "Not provided"},
			{Name: "interests", Label: "Areas of Interest", Multiline: true, Fallback: "No specific interests mentioned"},
		},
		Columns: []Column{
			{Header: "Name", Field: "name"},
			{Header: "Email", Field: "email"},
			{Header: "Current Role", Field: "current_role", Fallback: "Not provided"},
			{Header: "Interests", Field: "interests", Fallback: "Not specified"},
		},
		StoreFile:   "book_notifications.csv",
		AuditFile:   "book_submissions.log",
		AuditFields: []string{"name", "email"},
	}
}

// ContactSchema describes the executive strategy session request form.
func ContactSchema() Schema {
	return Schema{
		ID:          "contact",
		Title:       "New Executive Strategy Session Request",
		AccentColor: "#1a5276",
		Subject:     "New Executive Strategy Session Request - CareerNinja",
		SuccessMessage: "Thank you! Your request has been submitted successfully. " +
			"We will contact you within 24 hours to confirm your session details.",
		FailureMessage: "Sorry, there was an error submitting your request. Please try again or contact us directly at %s",
		FooterName:     "contact",
		Fields: []FieldSpec{
			{Name: "name", Label: "Name", Required: true},
			{Name: "email", Label: "Email", Required: true, Kind: KindEmail},
			{Name: "phone", Label: "Phone", Fallback: "Not provided"},
			{Name: "current_role", Label: "Current Role", ErrorLabel: "Current role", Required: true},
			{Name: "service", Label: "Service Interested In", ErrorLabel: "Service selection", Required: true, Kind: KindEnum},
			{Name: "message", Label: "Message", Multiline: true, Fallback: "No additional message provided"},
		},
		Columns: []Column{
			{Header: "Name", Field: "name"},
			{Header: "Email", Field: "email"},
			{Header: "Phone", Field: "phone", Fallback: "Not provided"},
			{Header: "Current Role", Field: "current_role"},
			{Header: "Service", Field: "service"},
			{Header: "Message", Field: "message", Fallback: "No additional message provided"},
		},
		StoreFile:   "contact_requests.csv",
		AuditFile:   "form_submissions.log",
		AuditFields: []string{"name", "email", "service"},
	}
}

// Schemas returns the built-in schemas keyed by ID.
func Schemas() map[string]Schema {
	book := BookSchema()
	contact := ContactSchema()
	return map[string]Schema{
		book.ID:    book,
		contact.ID: contact,
	}
}
