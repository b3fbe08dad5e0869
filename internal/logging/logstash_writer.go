package logging

import (
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"time"
)

var (
	errEmptyAddr  = errors.New("logstash: empty address")
	errCoolingOff = errors.New("logstash: reconnect cooling off")
)

// LogstashWriter mirrors newline-delimited log records to a Logstash TCP input.
// Records are dropped, never queued, while the input is unreachable, so logging
// never blocks a request on the network.
type LogstashWriter struct {
	addr         string
	dialer       net.Dialer
	writeTimeout time.Duration
	cooldown     time.Duration

	mu      sync.Mutex
	conn    net.Conn
	retryAt time.Time
	closed  bool
	dropped uint64
}

type Option func(*LogstashWriter)

func WithDialTimeout(d time.Duration) Option {
	return func(w *LogstashWriter) { w.dialer.Timeout = d }
}

func WithWriteTimeout(d time.Duration) Option {
	return func(w *LogstashWriter) { w.writeTimeout = d }
}

func WithCooldown(d time.Duration) Option {
	return func(w *LogstashWriter) { w.cooldown = d }
}

func NewLogstashWriter(addr string, opts ...Option) (*LogstashWriter, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, errEmptyAddr
	}
	w := &LogstashWriter{
		addr:         addr,
		dialer:       net.Dialer{Timeout: 2 * time.Second},
		writeTimeout: time.Second,
		cooldown:     5 * time.Second,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Write always reports success for an open writer; failed deliveries are counted in Dropped.
func (w *LogstashWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	record := make([]byte, 0, len(p)+1)
	record = append(record, p...)
	if record[len(record)-1] != '\n' {
		record = append(record, '\n')
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return 0, io.ErrClosedPipe
	}
	if err := w.connectLocked(); err != nil {
		w.dropped++
		return len(p), nil
	}
	if w.writeTimeout > 0 {
		_ = w.conn.SetWriteDeadline(time.Now().Add(w.writeTimeout))
	}
	if _, err := w.conn.Write(record); err != nil {
		_ = w.conn.Close()
		w.conn = nil
		w.retryAt = time.Now().Add(w.cooldown)
		w.dropped++
	}
	return len(p), nil
}

// Dropped reports how many records could not be delivered.
func (w *LogstashWriter) Dropped() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dropped
}

func (w *LogstashWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	if w.conn == nil {
		return nil
	}
	err := w.conn.Close()
	w.conn = nil
	return err
}

func (w *LogstashWriter) connectLocked() error {
	if w.conn != nil {
		return nil
	}
	if time.Now().Before(w.retryAt) {
		return errCoolingOff
	}
	conn, err := w.dialer.Dial("tcp", w.addr)
	if err != nil {
		w.retryAt = time.Now().Add(w.cooldown)
		return err
	}
	w.conn = conn
	w.retryAt = time.Time{}
	return nil
}
