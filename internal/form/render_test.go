package form

import (
	"strings"
	"testing"
	"time"
)

var renderedAt = time.Date(2026, time.March, 7, 16, 5, 0, 0, time.UTC)

func TestRenderFallbacksForOptionalFields(t *testing.T) {
	s := Submission{"name": "Jane Smith", "email": "jane@x.com", "current_role": "", "interests": ""}
	msg, err := Render(s, BookSchema(), "kendraweinisch@gmail.com", renderedAt)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if msg.To != "kendraweinisch@gmail.com" {
		t.Fatalf("unexpected recipient %q", msg.To)
	}
	if msg.ReplyTo != "jane@x.com" {
		t.Fatalf("unexpected reply-to %q", msg.ReplyTo)
	}
	if msg.Subject != "New Book Notification Request - The Encore Executive" {
		t.Fatalf("unexpected subject %q", msg.Subject)
	}
	for _, want := range []string{"Not provided", "No specific interests mentioned", "Jane Smith"} {
		if !strings.Contains(msg.HTML, want) {
			t.Fatalf("body missing %q:\n%s", want, msg.HTML)
		}
	}
}

func TestRenderEscapesUntrustedText(t *testing.T) {
	s := Submission{"name": "<script>alert(1)</script>", "email": "jane@x.com"}
	msg, err := Render(s, BookSchema(), "to@example.com", renderedAt)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(msg.HTML, "<script>") {
		t.Fatal("unescaped markup reached the body")
	}
	if !strings.Contains(msg.HTML, "&lt;script&gt;alert(1)&lt;/script&gt;") {
		t.Fatalf("expected escaped markup in body:\n%s", msg.HTML)
	}
}

func TestRenderMultilineBecomesLineBreaks(t *testing.T) {
	s := Submission{
		"name":      "Jane Smith",
		"email":     "jane@x.com",
		"interests": "leadership\nboard <roles>",
	}
	msg, err := Render(s, BookSchema(), "to@example.com", renderedAt)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(msg.HTML, "leadership<br>\nboard &lt;roles&gt;") {
		t.Fatalf("expected <br> conversion after escaping:\n%s", msg.HTML)
	}
}

func TestRenderEmailAsMailtoLink(t *testing.T) {
	s := Submission{"name": "Jane Smith", "email": "jane@x.com"}
	msg, err := Render(s, BookSchema(), "to@example.com", renderedAt)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(msg.HTML, "<a href='mailto:jane@x.com'>jane@x.com</a>") {
		t.Fatalf("expected mailto link:\n%s", msg.HTML)
	}
}

func TestRenderTimestampFormat(t *testing.T) {
	s := Submission{"name": "Jane Smith", "email": "jane@x.com"}
	msg, err := Render(s, BookSchema(), "to@example.com", renderedAt)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(msg.HTML, "March 7, 2026, 4:05 pm") {
		t.Fatalf("expected human-readable timestamp:\n%s", msg.HTML)
	}
}

func TestRenderDeterministic(t *testing.T) {
	s := Submission{"name": "Jane Smith", "email": "jane@x.com", "interests": "a\nb"}
	first, err := Render(s, BookSchema(), "to@example.com", renderedAt)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	second, err := Render(s, BookSchema(), "to@example.com", renderedAt)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if first != second {
		t.Fatal("rendering the same submission twice must be byte-identical")
	}
}

func TestRenderContactSchemaFields(t *testing.T) {
	s := Submission{
		"name":         "Jane Smith",
		"email":        "jane@x.com",
		"current_role": "CEO",
		"service":      "Executive Coaching",
	}
	msg, err := Render(s, ContactSchema(), "to@example.com", renderedAt)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		"New Executive Strategy Session Request",
		"Service Interested In",
		"Executive Coaching",
		"Not provided",
		"No additional message provided",
	} {
		if !strings.Contains(msg.HTML, want) {
			t.Fatalf("body missing %q:\n%s", want, msg.HTML)
		}
	}
}
