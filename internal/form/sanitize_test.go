package form

import (
	"net/url"
	"testing"
)

func TestSanitizeAbsentFieldsBecomeEmpty(t *testing.T) {
	s := Sanitize(url.Values{}, BookSchema())
	for _, name := range []string{"name", "email", "current_role", "interests"} {
		if v, ok := s[name]; !ok || v != "" {
			t.Fatalf("expected empty value for %q, got %q (present=%v)", name, v, ok)
		}
	}
}

func TestSanitizeIgnoresUnknownFields(t *testing.T) {
	raw := url.Values{"name": {"Jane"}, "admin": {"true"}}
	s := Sanitize(raw, BookSchema())
	if _, ok := s["admin"]; ok {
		t.Fatal("unknown field should be dropped")
	}
}

func TestSanitizeTrimsAndStripsControlChars(t *testing.T) {
	raw := url.Values{"name": {"  Jane\x00\x1b Smith\t "}}
	s := Sanitize(raw, BookSchema())
	if s["name"] != "Jane Smith" {
		t.Fatalf("unexpected name %q", s["name"])
	}
}

func TestSanitizeKeepsNewlinesInMultilineFields(t *testing.T) {
	raw := url.Values{
		"interests": {"leadership\r\ncoaching\rboard roles"},
		"name":      {"line\none"},
	}
	s := Sanitize(raw, BookSchema())
	if s["interests"] != "leadership\ncoaching\nboard roles" {
		t.Fatalf("unexpected interests %q", s["interests"])
	}
	if s["name"] != "line one" {
		t.Fatalf("single-line field should flatten newlines, got %q", s["name"])
	}
}

func TestSanitizeFiltersEmailCharacters(t *testing.T) {
	raw := url.Values{"email": {" jane (at) <jane@x.com> "}}
	s := Sanitize(raw, BookSchema())
	if s["email"] != "janeatjane@x.com" {
		t.Fatalf("unexpected email %q", s["email"])
	}
}
