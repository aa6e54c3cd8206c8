package viiper_test

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkferris/sweepmap/hid"
	"github.com/tkferris/sweepmap/keycode"
	"github.com/tkferris/sweepmap/sink/viiper"
	"github.com/tkferris/sweepmap/sink/viiper/api"
	"github.com/tkferris/sweepmap/sink/viiper/auth"
)

// fakeServer answers the management requests the sink makes and records
// the reports written to device streams.
type fakeServer struct {
	t        *testing.T
	ln       net.Listener
	password string
	leds     byte

	mu       sync.Mutex
	buses    []uint32
	requests []string
	reports  chan []byte
}

func startFake(t *testing.T, password string, buses ...uint32) *fakeServer {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	f := &fakeServer{t: t, ln: ln, password: password, leds: hid.LEDCapsLock, buses: buses, reports: make(chan []byte, 16)}
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go f.handle(conn)
		}
	}()
	t.Cleanup(func() { _ = ln.Close() })
	return f
}

func (f *fakeServer) addr() string { return f.ln.Addr().String() }

func (f *fakeServer) lines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func (f *fakeServer) handle(raw net.Conn) {
	defer raw.Close()
	var conn net.Conn = raw
	r := bufio.NewReader(raw)
	if f.password != "" {
		key, err := auth.DeriveKey(f.password)
		if err != nil {
			return
		}
		n, err := auth.Server(r, raw, key)
		if err != nil {
			var problem api.Error
			if errors.As(err, &problem) {
				b, _ := json.Marshal(problem)
				_, _ = raw.Write(append(b, '\n'))
			}
			return
		}
		secure, err := auth.WrapConn(raw, n.SessionKey(key))
		if err != nil {
			return
		}
		conn, r = secure, bufio.NewReader(secure)
	}

	line, err := r.ReadString('\x00')
	if err != nil {
		return
	}
	line = strings.TrimSuffix(line, "\x00")
	f.mu.Lock()
	f.requests = append(f.requests, line)
	f.mu.Unlock()

	path, payload, _ := strings.Cut(line, " ")
	parts := strings.Split(path, "/")
	if len(parts) == 3 && parts[0] == "bus" && parts[2] != "add" && parts[2] != "remove" && parts[2] != "list" {
		f.stream(conn, r)
		return
	}
	_, _ = io.WriteString(conn, f.respond(parts, payload)+"\n")
}

func (f *fakeServer) respond(parts []string, payload string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch strings.Join(parts, "/") {
	case "ping":
		return `{"server":"fake","version":"1.0"}`
	case "bus/list":
		b, _ := json.Marshal(api.BusListResponse{Buses: f.buses})
		return string(b)
	case "bus/create":
		id := uint32(1)
		if payload != "" {
			n, _ := strconv.ParseUint(payload, 10, 32)
			id = uint32(n)
		}
		f.buses = append(f.buses, id)
		return fmt.Sprintf(`{"busId":%d}`, id)
	case "bus/remove":
		return fmt.Sprintf(`{"busId":%s}`, payload)
	}
	if len(parts) != 3 {
		return `{"status":404,"title":"Not Found","detail":"unknown path"}`
	}
	switch parts[2] {
	case "add":
		var req api.DeviceCreateRequest
		if err := json.Unmarshal([]byte(payload), &req); err != nil || req.Type != viiper.KeyboardType {
			return `{"status":400,"title":"Bad Request","detail":"bad device"}`
		}
		vid := uint16(0x2e8a)
		if req.IDVendor != nil {
			vid = *req.IDVendor
		}
		return fmt.Sprintf(`{"busId":%s,"devId":"1","vid":"0x%04x","pid":"0x0010","type":"keyboard"}`, parts[1], vid)
	case "remove":
		return fmt.Sprintf(`{"busId":%s,"devId":%q}`, parts[1], payload)
	default:
		return `{"devices":[]}`
	}
}

func (f *fakeServer) stream(conn net.Conn, r *bufio.Reader) {
	if _, err := conn.Write([]byte{f.leds}); err != nil {
		return
	}
	for {
		hdr := make([]byte, 2)
		if _, err := io.ReadFull(r, hdr); err != nil {
			return
		}
		keys := make([]byte, hdr[1])
		if _, err := io.ReadFull(r, keys); err != nil {
			return
		}
		f.reports <- append(hdr, keys...)
	}
}

func TestSinkLifecycle(t *testing.T) {
	for _, password := range []string{"", "hunter2"} {
		t.Run(fmt.Sprintf("password=%q", password), func(t *testing.T) {
			srv := startFake(t, password)
			leds := make(chan hid.LEDState, 1)

			cfg := viiper.Config{Addr: srv.addr(), Password: password, VendorID: "0x1209", Timeout: 2 * time.Second}
			s, err := viiper.Open(context.Background(), cfg, nil, viiper.OnLEDs(func(st hid.LEDState) { leds <- st }))
			require.NoError(t, err)

			assert.Equal(t, api.Device{BusID: 1, DevID: "1", Vid: "0x1209", Pid: "0x0010", Type: "keyboard"}, s.Device())

			var r hid.Report
			r.Mods = keycode.ModLeftShift
			r.Press(uint8(keycode.KeyA))
			require.NoError(t, s.WriteReport(r))
			select {
			case got := <-srv.reports:
				assert.Equal(t, []byte{0x02, 1, 0x04}, got)
			case <-time.After(2 * time.Second):
				t.Fatal("report not received")
			}

			select {
			case st := <-leds:
				assert.True(t, st.CapsLock)
				assert.False(t, st.NumLock)
			case <-time.After(2 * time.Second):
				t.Fatal("led state not received")
			}
			assert.True(t, s.LEDs().CapsLock)

			require.NoError(t, s.Close())
			require.NoError(t, s.Close())
			assert.Equal(t, []string{
				"ping",
				"bus/list",
				"bus/create",
				`bus/1/add {"type":"keyboard","idVendor":4617}`,
				"bus/1/1",
				"bus/1/remove 1",
				"bus/remove 1",
			}, srv.lines())

			assert.ErrorIs(t, s.WriteReport(r), viiper.ErrStreamClosed)
		})
	}
}

func TestSinkExistingBus(t *testing.T) {
	tests := []struct {
		name    string
		buses   []uint32
		want    uint32
		wantBus uint32
		created bool
	}{
		{name: "first bus", buses: []uint32{3, 4}, wantBus: 3},
		{name: "requested bus", buses: []uint32{3, 4}, want: 4, wantBus: 4},
		{name: "requested bus missing", buses: []uint32{3}, want: 9, wantBus: 9, created: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := startFake(t, "", tt.buses...)
			s, err := viiper.Open(context.Background(), viiper.Config{Addr: srv.addr(), Bus: tt.want}, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBus, s.Device().BusID)
			require.NoError(t, s.Close())

			lines := srv.lines()
			assert.Equal(t, tt.created, contains(lines, "bus/create"))
			assert.Equal(t, tt.created, contains(lines, "bus/remove"))
		})
	}
}

func contains(lines []string, prefix string) bool {
	for _, l := range lines {
		if strings.HasPrefix(l, prefix) {
			return true
		}
	}
	return false
}

func TestSinkWrongPassword(t *testing.T) {
	srv := startFake(t, "right")
	_, err := viiper.Open(context.Background(), viiper.Config{Addr: srv.addr(), Password: "wrong"}, nil)
	assert.ErrorContains(t, err, "401 Unauthorized: invalid password")
}

func TestSinkBadVendorID(t *testing.T) {
	_, err := viiper.Open(context.Background(), viiper.Config{Addr: "127.0.0.1:9", VendorID: "zz"}, nil)
	assert.ErrorContains(t, err, "invalid id")
}

// mockClient answers from responses keyed by unfilled path and records
// every request.
func mockClient(responses map[string]string, err error) (*viiper.Client, *[]string) {
	var seen []string
	return viiper.NewClient(viiper.NewMockTransport(func(path string, payload any, _ map[string]string) (string, error) {
		seen = append(seen, path)
		if err != nil {
			return "", err
		}
		return responses[path], nil
	})), &seen
}

func TestClient(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name      string
		responses map[string]string
		err       error
		call      func(c *viiper.Client) (any, error)
		want      any
		wantErr   string
	}{
		{
			name:      "bus create",
			responses: map[string]string{"bus/create": `{"busId":42}`},
			call:      func(c *viiper.Client) (any, error) { return c.BusCreate(ctx, 42) },
			want:      &api.BusCreateResponse{BusID: 42},
		},
		{
			name:      "structured error",
			responses: map[string]string{"bus/create": `{"status":400,"title":"Bad Request","detail":"invalid busId"}`},
			call:      func(c *viiper.Client) (any, error) { return c.BusCreate(ctx, 0) },
			wantErr:   "400 Bad Request: invalid busId",
		},
		{
			name:      "devices list",
			responses: map[string]string{"bus/{id}/list": `{"devices":[{"busId":1,"devId":"1","vid":"0x1234","pid":"0xabcd","type":"keyboard"}]}`},
			call:      func(c *viiper.Client) (any, error) { return c.DevicesList(ctx, 1) },
			want:      &api.DevicesListResponse{Devices: []api.Device{{BusID: 1, DevID: "1", Vid: "0x1234", Pid: "0xabcd", Type: "keyboard"}}},
		},
		{
			name:      "device remove",
			responses: map[string]string{"bus/{id}/remove": `{"busId":1,"devId":"2"}`},
			call:      func(c *viiper.Client) (any, error) { return c.DeviceRemove(ctx, 1, "2") },
			want:      &api.DeviceRemoveResponse{BusID: 1, DevID: "2"},
		},
		{
			name:    "empty response",
			call:    func(c *viiper.Client) (any, error) { return c.Ping(ctx) },
			wantErr: "empty response",
		},
		{
			name:      "unknown field",
			responses: map[string]string{"bus/list": `{"buses":[1],"extra":true}`},
			call:      func(c *viiper.Client) (any, error) { return c.BusList(ctx) },
			wantErr:   "decode",
		},
		{
			name:    "transport error",
			err:     errors.New("dial fail"),
			call:    func(c *viiper.Client) (any, error) { return c.BusRemove(ctx, 1) },
			wantErr: "dial fail",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := mockClient(tt.responses, tt.err)
			got, err := tt.call(c)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContextCancellation(t *testing.T) {
	c := viiper.NewClient(viiper.NewTransport("127.0.0.1:9", viiper.DefaultTransportConfig(), nil))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.BusList(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewDetachesWhenStreamFails(t *testing.T) {
	c, seen := mockClient(map[string]string{
		"ping":            `{"server":"mock","version":"0"}`,
		"bus/list":        `{"buses":[]}`,
		"bus/create":      `{"busId":1}`,
		"bus/{id}/add":    `{"busId":1,"devId":"1","vid":"0x2e8a","pid":"0x0010","type":"keyboard"}`,
		"bus/{id}/remove": `{"busId":1,"devId":"1"}`,
		"bus/remove":      `{"busId":1}`,
	}, nil)
	_, err := viiper.New(context.Background(), c, viiper.Config{}, nil)
	assert.ErrorContains(t, err, "not supported with mock transport")
	assert.Equal(t, []string{"ping", "bus/list", "bus/create", "bus/{id}/add", "bus/{id}/remove", "bus/remove"}, *seen)
}
