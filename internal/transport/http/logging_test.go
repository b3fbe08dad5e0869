package http

import (
	"testing"

	"github.com/labstack/echo/v4"
)

func TestSanitizeBodyMasksEmails(t *testing.T) {
	got := sanitizeBody([]byte("email=traveler%40example.com&destination=Rome"), echo.MIMEApplicationForm)
	fields, ok := got.(map[string]interface{})
	if !ok {
		t.Fatalf("expected form summary, got %T", got)
	}
	if fields["email"] != "t***@example.com" {
		t.Fatalf("expected masked email, got %v", fields["email"])
	}
	if fields["destination"] != "Rome" {
		t.Fatalf("expected destination kept, got %v", fields["destination"])
	}
}

func TestSanitizeBodyJSON(t *testing.T) {
	got := sanitizeBody([]byte(`{"visitor_token":"abc","note":"write me at a@b.io"}`), echo.MIMEApplicationJSON)
	fields, ok := got.(map[string]interface{})
	if !ok {
		t.Fatalf("expected json summary, got %T", got)
	}
	if fields["visitor_token"] != "redacted" {
		t.Fatalf("expected token redacted, got %v", fields["visitor_token"])
	}
	if fields["note"] != "write me at a***@b.io" {
		t.Fatalf("unexpected note %v", fields["note"])
	}
}

func TestSanitizeBodyHTML(t *testing.T) {
	got := sanitizeBody([]byte("<html></html>"), echo.MIMETextHTMLCharsetUTF8)
	summary, ok := got.(map[string]interface{})
	if !ok || summary["html_bytes"] != 13 {
		t.Fatalf("expected html size summary, got %v", got)
	}
	if sanitizeBody(nil, echo.MIMEApplicationJSON) != nil {
		t.Fatalf("expected nil for empty body")
	}
}

func TestCleanInput(t *testing.T) {
	if got := cleanInput("<b>Рим</b><script>alert(1)</script>"); got != "Рим" {
		t.Fatalf("expected markup stripped, got %q", got)
	}
	if got := cleanInput("Tom & Jerry"); got != "Tom & Jerry" {
		t.Fatalf("expected ampersand preserved, got %q", got)
	}
}
