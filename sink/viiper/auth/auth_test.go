package auth_test

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkferris/sweepmap/sink/viiper/api"
	"github.com/tkferris/sweepmap/sink/viiper/auth"
)

func TestDeriveKey(t *testing.T) {
	k1, err := auth.DeriveKey("test123")
	require.NoError(t, err)
	assert.Len(t, k1, 32)

	k2, err := auth.DeriveKey("test123")
	require.NoError(t, err)
	assert.Equal(t, k1, k2)

	k3, err := auth.DeriveKey("other")
	require.NoError(t, err)
	assert.NotEqual(t, k1, k3)

	_, err = auth.DeriveKey("")
	assert.ErrorIs(t, err, auth.ErrEmptyPassword)
}

func TestDeriveSessionKey(t *testing.T) {
	key := bytes.Repeat([]byte{1}, 32)
	a := auth.DeriveSessionKey(key, []byte("server"), []byte("client"))
	b := auth.DeriveSessionKey(key, []byte("client"), []byte("server"))
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, auth.Nonces{Client: []byte("client"), Server: []byte("server")}.SessionKey(key))
}

func TestHandshake(t *testing.T) {
	good, err := auth.DeriveKey("test123")
	require.NoError(t, err)
	bad, err := auth.DeriveKey("wrong")
	require.NoError(t, err)

	tests := []struct {
		name      string
		clientKey []byte
		wantErr   string
	}{
		{name: "matching keys", clientKey: good},
		{name: "wrong password", clientKey: bad, wantErr: "401 Unauthorized: invalid password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, s := net.Pipe()
			defer c.Close()

			type result struct {
				n   auth.Nonces
				err error
			}
			done := make(chan result, 1)
			go func() {
				defer s.Close()
				r := bufio.NewReader(s)
				ok, err := auth.IsHandshake(r)
				if err != nil || !ok {
					done <- result{err: errors.New("no handshake")}
					return
				}
				n, err := auth.Server(r, s, good)
				done <- result{n, err}
			}()

			n, err := auth.Client(bufio.NewReader(c), c, tt.clientKey)
			srv := <-done
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				var problem api.Error
				assert.True(t, errors.As(srv.err, &problem))
				assert.Equal(t, 401, problem.Status)
				return
			}
			require.NoError(t, err)
			require.NoError(t, srv.err)
			assert.Equal(t, n, srv.n)
			assert.Len(t, n.Client, auth.NonceSize)
			assert.Len(t, n.Server, auth.NonceSize)
		})
	}
}

func TestClientHandshakeResponses(t *testing.T) {
	key, err := auth.DeriveKey("test123")
	require.NoError(t, err)

	tests := []struct {
		name     string
		response string
		wantErr  string
	}{
		{name: "closed", response: "", wantErr: "401 Unauthorized: invalid password"},
		{name: "problem body", response: `{"status":403,"title":"Forbidden","detail":"no"}` + "\n", wantErr: "403 Forbidden: no"},
		{name: "garbage", response: "NOPE", wantErr: "invalid handshake response"},
		{name: "short nonce", response: "OK\x00abc", wantErr: "read server nonce"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sent bytes.Buffer
			_, err := auth.Client(bufio.NewReader(bytes.NewBufferString(tt.response)), &sent, key)
			assert.ErrorContains(t, err, tt.wantErr)
			assert.True(t, bytes.HasPrefix(sent.Bytes(), []byte(auth.HandshakeMagic)))
		})
	}

	_, err = auth.Client(bufio.NewReader(bytes.NewReader(nil)), io.Discard, nil)
	assert.ErrorContains(t, err, "missing key")
}

func TestServerHandshakeErrors(t *testing.T) {
	key, err := auth.DeriveKey("test123")
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   []byte
		wantErr string
	}{
		{name: "short magic", input: []byte("eV"), wantErr: "discard handshake magic"},
		{name: "short nonce", input: append([]byte(auth.HandshakeMagic), "short"...), wantErr: "read client nonce"},
		{name: "missing proof", input: append([]byte(auth.HandshakeMagic), make([]byte, auth.NonceSize)...), wantErr: "read client auth"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Server(bufio.NewReader(bytes.NewReader(tt.input)), io.Discard, key)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConn(t *testing.T) {
	key, err := auth.DeriveKey("test123")
	require.NoError(t, err)
	other, err := auth.DeriveKey("123test")
	require.NoError(t, err)

	tests := []struct {
		name      string
		serverKey []byte
		wantErr   string
	}{
		{name: "same key", serverKey: key},
		{name: "differing keys", serverKey: other, wantErr: "message authentication failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, s := net.Pipe()
			defer c.Close()
			defer s.Close()

			cc, err := auth.WrapConn(c, key)
			require.NoError(t, err)
			sc, err := auth.WrapConn(s, tt.serverKey)
			require.NoError(t, err)

			msgs := [][]byte{[]byte("Hello, World!"), []byte("second")}
			go func() {
				for _, m := range msgs {
					if _, err := cc.Write(m); err != nil {
						return
					}
				}
			}()

			for _, want := range msgs {
				got := make([]byte, len(want))
				_, err := io.ReadFull(sc, got)
				if tt.wantErr != "" {
					assert.ErrorContains(t, err, tt.wantErr)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
		})
	}

	_, err = auth.WrapConn(nil, []byte("short"))
	assert.Error(t, err)
}
