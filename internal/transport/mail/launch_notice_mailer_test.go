package mail

import (
	"context"
	"net/smtp"
	"strings"
	"testing"
)

func TestLaunchNoticeMailerSends(t *testing.T) {
	m := NewLaunchNoticeMailer("smtp.example.com", "587", "", "", "hello@guideme.example", "https://guideme.example")

	var gotAddr string
	var gotTo []string
	var gotMsg string
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr = addr
		gotTo = to
		gotMsg = string(msg)
		if a != nil {
			t.Fatalf("expected no auth without credentials")
		}
		return nil
	}

	if err := m.SendLaunchSubscribed(context.Background(), "a@b.com"); err != nil {
		t.Fatalf("SendLaunchSubscribed returned error: %v", err)
	}
	if gotAddr != "smtp.example.com:587" {
		t.Fatalf("unexpected addr %q", gotAddr)
	}
	if len(gotTo) != 1 || gotTo[0] != "a@b.com" {
		t.Fatalf("unexpected recipients %v", gotTo)
	}
	if !strings.Contains(gotMsg, "To: a@b.com\r\n") || !strings.Contains(gotMsg, "https://guideme.example") {
		t.Fatalf("unexpected message %q", gotMsg)
	}
}

func TestLaunchNoticeMailerRequiresConfig(t *testing.T) {
	m := NewLaunchNoticeMailer("", "", "", "", "", "")
	if err := m.SendLaunchSubscribed(context.Background(), "a@b.com"); err == nil {
		t.Fatalf("expected configuration error")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	configured := NewLaunchNoticeMailer("smtp.example.com", "25", "", "", "x@y.z", "")
	if err := configured.SendLaunchSubscribed(ctx, "a@b.com"); err == nil {
		t.Fatalf("expected context error")
	}
}
