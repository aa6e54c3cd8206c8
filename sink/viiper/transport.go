package viiper

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/tkferris/sweepmap/sink/viiper/auth"
)

// TransportConfig controls timeouts and authentication of API connections.
type TransportConfig struct {
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Password     string
}

func DefaultTransportConfig() TransportConfig {
	return TransportConfig{
		DialTimeout:  3 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
}

// Responder answers requests of a mock transport.
type Responder func(path string, payload any, pathParams map[string]string) (string, error)

// Transport speaks the VIIPER management protocol.
//
// A request is `<path>[ <payload>]\x00`. The server answers with a single
// JSON line and closes the connection, so the response is read to EOF.
type Transport struct {
	addr   string
	cfg    TransportConfig
	mock   Responder
	logger *slog.Logger
}

func NewTransport(addr string, cfg TransportConfig, logger *slog.Logger) *Transport {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Transport{addr: addr, cfg: cfg, logger: logger}
}

// NewMockTransport returns a transport that answers through f without
// networking. Streams cannot be opened on it.
func NewMockTransport(f Responder) *Transport {
	return &Transport{addr: "mock", cfg: DefaultTransportConfig(), mock: f, logger: slog.New(slog.DiscardHandler)}
}

// dial connects and, with a password configured, authenticates and wraps
// the connection.
func (t *Transport) dial(ctx context.Context) (net.Conn, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}
	d := &net.Dialer{Timeout: t.cfg.DialTimeout}
	conn, err := d.DialContext(ctx, "tcp", t.addr)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}
	if tcp, ok := conn.(*net.TCPConn); ok {
		if err := tcp.SetNoDelay(true); err != nil {
			t.logger.Warn("failed to set TCP_NODELAY", "error", err)
		}
	}
	if t.cfg.Password == "" {
		return conn, nil
	}

	key, err := auth.DeriveKey(t.cfg.Password)
	if err != nil {
		conn.Close()
		return nil, err
	}
	if t.cfg.WriteTimeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(t.cfg.WriteTimeout))
	}
	n, err := auth.Client(bufio.NewReader(conn), conn, key)
	if err != nil {
		conn.Close()
		return nil, err
	}
	_ = conn.SetDeadline(time.Time{})
	secure, err := auth.WrapConn(conn, n.SessionKey(key))
	if err != nil {
		conn.Close()
		return nil, err
	}
	return secure, nil
}

// Do sends one request and returns the response without its trailing
// newline.
//
// Payloads: []byte and string are sent as-is, nil sends nothing and any
// other value is JSON encoded.
func (t *Transport) Do(ctx context.Context, path string, payload any, pathParams map[string]string) (string, error) {
	if t.mock != nil {
		return t.mock(path, payload, pathParams)
	}
	line := []byte(fillPath(path, pathParams))
	pb, err := toPayloadBytes(payload)
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}
	if len(pb) > 0 {
		line = append(append(line, ' '), pb...)
	}

	conn, err := t.dial(ctx)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	if t.cfg.WriteTimeout > 0 {
		_ = conn.SetWriteDeadline(time.Now().Add(t.cfg.WriteTimeout))
	}
	if _, err := conn.Write(append(line, '\x00')); err != nil {
		return "", fmt.Errorf("write: %w", err)
	}
	if t.cfg.ReadTimeout > 0 {
		_ = conn.SetReadDeadline(time.Now().Add(t.cfg.ReadTimeout))
	}
	resp, err := io.ReadAll(conn)
	if err != nil && len(resp) == 0 {
		return "", fmt.Errorf("read: %w", err)
	}
	return strings.TrimSuffix(string(resp), "\n"), nil
}

func fillPath(pattern string, params map[string]string) string {
	out := pattern
	for k, v := range params {
		out = strings.ReplaceAll(out, "{"+k+"}", url.PathEscape(v))
	}
	return strings.ToLower(out)
}

func toPayloadBytes(v any) ([]byte, error) {
	switch p := v.(type) {
	case nil:
		return nil, nil
	case []byte:
		return p, nil
	case string:
		return []byte(p), nil
	default:
		return json.Marshal(v)
	}
}
