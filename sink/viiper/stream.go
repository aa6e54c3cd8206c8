package viiper

import (
	"context"
	"encoding"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"
)

var ErrStreamClosed = errors.New("stream closed")

// Stream is the bidirectional byte channel of one device: input reports go
// to the device, feedback such as LED state comes back.
type Stream struct {
	conn  net.Conn
	BusID uint32
	DevID string

	mu     sync.Mutex
	closed bool
}

// OpenStream connects to the stream of an existing device.
func (c *Client) OpenStream(ctx context.Context, busID uint32, devID string) (*Stream, error) {
	if c.transport.mock != nil {
		return nil, fmt.Errorf("stream connections not supported with mock transport")
	}
	conn, err := c.transport.dial(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintf(conn, "bus/%d/%s\x00", busID, devID); err != nil {
		conn.Close()
		return nil, fmt.Errorf("write stream path: %w", err)
	}
	return &Stream{conn: conn, BusID: busID, DevID: devID}, nil
}

// WriteBinary sends one marshaled message to the device.
func (s *Stream) WriteBinary(v encoding.BinaryMarshaler) error {
	data, err := v.MarshalBinary()
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	_, err = s.Write(data)
	return err
}

func (s *Stream) Write(data []byte) (int, error) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return 0, ErrStreamClosed
	}
	return s.conn.Write(data)
}

// ReadMessages reads fixed-size messages until the stream fails or ctx is
// done, decoding each into a fresh value from newMsg and passing it to fn.
func (s *Stream) ReadMessages(ctx context.Context, size int, newMsg func() encoding.BinaryUnmarshaler, fn func(encoding.BinaryUnmarshaler)) error {
	stop := context.AfterFunc(ctx, func() { _ = s.conn.SetReadDeadline(time.Now()) })
	defer stop()

	buf := make([]byte, size)
	for {
		if _, err := io.ReadFull(s.conn, buf); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		msg := newMsg()
		if err := msg.UnmarshalBinary(buf); err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		fn(msg)
	}
}

func (s *Stream) SetWriteDeadline(t time.Time) error { return s.conn.SetWriteDeadline(t) }

// Close closes the connection. It is safe to call more than once.
func (s *Stream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.conn.Close()
}
