package auth

import (
	"bufio"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/tkferris/sweepmap/sink/viiper/api"
)

const (
	HandshakeMagic = "eVI1\x00"
	NonceSize      = 32
	authContext    = "VIIPER-Auth-v1"
	okPrefix       = "OK\x00"
)

// Nonces are the two random values a handshake exchanged.
type Nonces struct {
	Client []byte
	Server []byte
}

// SessionKey derives the key both ends encrypt with after the handshake.
func (n Nonces) SessionKey(key []byte) []byte {
	return DeriveSessionKey(key, n.Server, n.Client)
}

func clientProof(key, nonce []byte) []byte {
	mac := hmac.New(sha256.New, key)
	_, _ = mac.Write([]byte(authContext))
	_, _ = mac.Write(nonce)
	return mac.Sum(nil)
}

// Client sends magic, nonce and proof, then expects "OK\0" and the server
// nonce. A problem body in place of OK is returned as an api.Error.
func Client(r *bufio.Reader, w io.Writer, key []byte) (Nonces, error) {
	if len(key) == 0 {
		return Nonces{}, fmt.Errorf("handshake: missing key")
	}
	n := Nonces{Client: make([]byte, NonceSize)}
	if _, err := rand.Read(n.Client); err != nil {
		return Nonces{}, fmt.Errorf("generate client nonce: %w", err)
	}

	msg := append([]byte(HandshakeMagic), n.Client...)
	msg = append(msg, clientProof(key, n.Client)...)
	if _, err := w.Write(msg); err != nil {
		return Nonces{}, fmt.Errorf("write handshake: %w", err)
	}

	prefix := make([]byte, len(okPrefix))
	if _, err := io.ReadFull(r, prefix); err != nil {
		if err == io.EOF {
			return Nonces{}, api.Unauthorized("invalid password")
		}
		return Nonces{}, fmt.Errorf("read handshake response: %w", err)
	}
	if string(prefix) != okPrefix {
		rest, _ := io.ReadAll(r)
		line := strings.TrimSuffix(string(append(prefix, rest...)), "\n")
		var problem api.Error
		if err := json.Unmarshal([]byte(line), &problem); err == nil && problem.Problem() {
			return Nonces{}, problem
		}
		return Nonces{}, fmt.Errorf("invalid handshake response from server: %q", line)
	}

	n.Server = make([]byte, NonceSize)
	if _, err := io.ReadFull(r, n.Server); err != nil {
		return Nonces{}, fmt.Errorf("read server nonce: %w", err)
	}
	return n, nil
}

// IsHandshake reports whether r starts with the handshake magic.
func IsHandshake(r *bufio.Reader) (bool, error) {
	b, err := r.Peek(len(HandshakeMagic))
	if err != nil {
		return false, err
	}
	return string(b) == HandshakeMagic, nil
}

// Server verifies a client handshake and answers with its own nonce.
func Server(r *bufio.Reader, w io.Writer, key []byte) (Nonces, error) {
	if len(key) == 0 {
		return Nonces{}, fmt.Errorf("handshake: missing key")
	}
	if _, err := r.Discard(len(HandshakeMagic)); err != nil {
		return Nonces{}, fmt.Errorf("discard handshake magic: %w", err)
	}
	n := Nonces{Client: make([]byte, NonceSize)}
	if _, err := io.ReadFull(r, n.Client); err != nil {
		return Nonces{}, fmt.Errorf("read client nonce: %w", err)
	}
	proof := make([]byte, sha256.Size)
	if _, err := io.ReadFull(r, proof); err != nil {
		return Nonces{}, fmt.Errorf("read client auth: %w", err)
	}
	if !hmac.Equal(proof, clientProof(key, n.Client)) {
		return Nonces{}, api.Unauthorized("invalid password")
	}

	n.Server = make([]byte, NonceSize)
	if _, err := rand.Read(n.Server); err != nil {
		return Nonces{}, fmt.Errorf("generate server nonce: %w", err)
	}
	if _, err := w.Write(append([]byte(okPrefix), n.Server...)); err != nil {
		return Nonces{}, fmt.Errorf("write response: %w", err)
	}
	return n, nil
}
