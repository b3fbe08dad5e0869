package mail

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/njprem/GuideMe_Site/internal/repository/ports"
)

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// LaunchNoticeMailer confirms launch subscriptions by plain-text email.
type LaunchNoticeMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	siteURL  string
	send     sendFunc
}

func NewLaunchNoticeMailer(host, port, username, password, from, siteURL string) *LaunchNoticeMailer {
	return &LaunchNoticeMailer{
		host:     strings.TrimSpace(host),
		port:     strings.TrimSpace(port),
		username: username,
		password: password,
		from:     strings.TrimSpace(from),
		siteURL:  strings.TrimSpace(siteURL),
		send:     smtp.SendMail,
	}
}

func (m *LaunchNoticeMailer) SendLaunchSubscribed(ctx context.Context, email string) error {
	if m == nil {
		return errors.New("mailer not configured")
	}
	if m.host == "" || m.port == "" || m.from == "" {
		return errors.New("mailer missing configuration")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := net.JoinHostPort(m.host, m.port)
	var auth smtp.Auth
	if m.username != "" || m.password != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}
	return m.send(addr, auth, m.from, []string{email}, m.compose(email))
}

func (m *LaunchNoticeMailer) compose(email string) []byte {
	body := "Спасибо! Мы сообщим вам, как только каталог гидов GuideMe будет готов."
	if m.siteURL != "" {
		body += fmt.Sprintf("\n\n%s", m.siteURL)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", email)
	b.WriteString("Subject: GuideMe: каталог гидов скоро откроется\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\r\n\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return []byte(b.String())
}

var _ ports.LaunchNotifier = (*LaunchNoticeMailer)(nil)
