package mail

import (
	"strings"
	"testing"
)

func TestEncodeHeaders(t *testing.T) {
	s := SMTP{From: "CareerNinja <noreply@yourcareerninja.com>"}
	raw := string(s.encode(Message{
		To:      "kendraweinisch@gmail.com",
		ReplyTo: "jane@x.com",
		Subject: "New Book Notification Request - The Encore Executive",
		HTML:    "<html><body>hi</body></html>",
	}))

	for _, want := range []string{
		"From: CareerNinja <noreply@yourcareerninja.com>\r\n",
		"To: kendraweinisch@gmail.com\r\n",
		"Reply-To: jane@x.com\r\n",
		"MIME-Version: 1.0\r\n",
		"Content-Type: text/html; charset=UTF-8\r\n",
	} {
		if !strings.Contains(raw, want) {
			t.Fatalf("encoded message missing %q:\n%s", want, raw)
		}
	}
	if !strings.HasSuffix(raw, "\r\n\r\n<html><body>hi</body></html>") {
		t.Fatalf("body not separated from headers:\n%s", raw)
	}
}

func TestEncodeOmitsEmptyReplyTo(t *testing.T) {
	s := SMTP{From: "noreply@yourcareerninja.com"}
	raw := string(s.encode(Message{To: "a@b.com", Subject: "x", HTML: "y"}))
	if strings.Contains(raw, "Reply-To:") {
		t.Fatalf("unexpected Reply-To header:\n%s", raw)
	}
}

func TestEnvelopeAddress(t *testing.T) {
	cases := map[string]string{
		"CareerNinja <noreply@yourcareerninja.com>": "noreply@yourcareerninja.com",
		"noreply@yourcareerninja.com":               "noreply@yourcareerninja.com",
		" plain@example.com ":                       "plain@example.com",
	}
	for in, want := range cases {
		if got := envelopeAddress(in); got != want {
			t.Fatalf("envelopeAddress(%q) = %q, want %q", in, got, want)
		}
	}
}
