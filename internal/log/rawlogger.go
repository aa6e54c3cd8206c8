package log

import (
	"encoding/hex"
	"fmt"
	"io"
	"sync"
	"time"
)

// RawLogger dumps wire bytes exchanged with the output device.
type RawLogger interface {
	// Log records data. out is true for reports sent to the host and
	// false for feedback (LED state) coming back.
	Log(out bool, data []byte)
}

type rawLogger struct {
	w   io.Writer
	mu  sync.Mutex
	now func() time.Time
}

// NewRaw returns a RawLogger writing to w. A nil w discards everything.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w, now: time.Now}
}

func (r *rawLogger) Log(out bool, data []byte) {
	if r.w == nil || len(data) == 0 {
		return
	}
	dir := "KB->HOST"
	if !out {
		dir = "HOST->KB"
	}
	line := fmt.Sprintf("%s %s %d bytes: % x\n",
		r.now().Format("15:04:05.000"), dir, len(data), data)

	r.mu.Lock()
	_, _ = io.WriteString(r.w, line)
	r.mu.Unlock()
}

// Hex renders data as space separated hex bytes.
func Hex(data []byte) string {
	s := hex.EncodeToString(data)
	out := make([]byte, 0, len(s)+len(s)/2)
	for i := 0; i < len(s); i += 2 {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, s[i], s[i+1])
	}
	return string(out)
}
