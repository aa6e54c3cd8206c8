// Package api holds the request and response bodies of the VIIPER
// management protocol.
package api

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Error is a problem+json style error returned by the server.
type Error struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func (e Error) Error() string {
	if e.Status == 0 && e.Title == "" {
		return "unknown error"
	}
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.Title, e.Detail)
	}
	return fmt.Sprintf("%d %s: %s", e.Status, e.Title, e.Detail)
}

// Problem reports whether e carries anything. A success body decoded into
// an Error leaves it empty.
func (e Error) Problem() bool { return e.Status != 0 || e.Title != "" }

func Unauthorized(detail string) Error {
	return Error{Status: 401, Title: "Unauthorized", Detail: detail}
}

func NotFound(detail string) Error {
	return Error{Status: 404, Title: "Not Found", Detail: detail}
}

type PingResponse struct {
	Server  string `json:"server"`
	Version string `json:"version"`
}

type BusListResponse struct {
	Buses []uint32 `json:"buses"`
}

type BusCreateResponse struct {
	BusID uint32 `json:"busId"`
}

type BusRemoveResponse struct {
	BusID uint32 `json:"busId"`
}

type Device struct {
	BusID uint32 `json:"busId"`
	DevID string `json:"devId"`
	Vid   string `json:"vid"`
	Pid   string `json:"pid"`
	Type  string `json:"type"`
}

type DevicesListResponse struct {
	Devices []Device `json:"devices"`
}

type DeviceRemoveResponse struct {
	BusID uint32 `json:"busId"`
	DevID string `json:"devId"`
}

// DeviceCreateRequest is the body of bus/{id}/add.
type DeviceCreateRequest struct {
	Type      string  `json:"type"`
	IDVendor  *uint16 `json:"idVendor,omitempty"`
	IDProduct *uint16 `json:"idProduct,omitempty"`
}

// UnmarshalJSON accepts vendor and product IDs as numbers or as hex
// strings such as "0x12ac".
func (d *DeviceCreateRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type      string `json:"type"`
		IDVendor  any    `json:"idVendor,omitempty"`
		IDProduct any    `json:"idProduct,omitempty"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.Type = raw.Type
	var err error
	if d.IDVendor, err = optionalID(raw.IDVendor); err != nil {
		return fmt.Errorf("idVendor: %w", err)
	}
	if d.IDProduct, err = optionalID(raw.IDProduct); err != nil {
		return fmt.Errorf("idProduct: %w", err)
	}
	return nil
}

func optionalID(v any) (*uint16, error) {
	if v == nil {
		return nil, nil
	}
	id, err := ParseID(v)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// ParseID accepts a JSON number or a decimal or hex string.
func ParseID(v any) (uint16, error) {
	switch val := v.(type) {
	case float64:
		if val < 0 || val > 0xffff {
			return 0, fmt.Errorf("value %v out of uint16 range", val)
		}
		return uint16(val), nil
	case string:
		s := strings.TrimSpace(val)
		base := 10
		if lower := strings.ToLower(s); strings.HasPrefix(lower, "0x") {
			s, base = s[2:], 16
		} else if strings.ContainsAny(s, "abcdefABCDEF") {
			base = 16
		}
		n, err := strconv.ParseUint(s, base, 16)
		if err != nil {
			return 0, fmt.Errorf("invalid id %q: %w", val, err)
		}
		return uint16(n), nil
	default:
		return 0, fmt.Errorf("expected number or hex string, got %T", v)
	}
}
