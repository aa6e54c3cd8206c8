package viiper

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/tkferris/sweepmap/sink/viiper/api"
)

// KeyboardType is the device type of the VIIPER HID keyboard.
const KeyboardType = "keyboard"

// Client is the high-level VIIPER API client.
type Client struct{ transport *Transport }

func NewClient(t *Transport) *Client { return &Client{transport: t} }

// DeviceOptions overrides the USB IDs of a new device.
type DeviceOptions struct {
	VendorID  *uint16
	ProductID *uint16
}

// Ping returns the identity and version of the server.
func (c *Client) Ping(ctx context.Context) (*api.PingResponse, error) {
	raw, err := c.transport.Do(ctx, "ping", nil, nil)
	if err != nil {
		return nil, err
	}
	return parse[api.PingResponse](raw)
}

// BusList returns the numbers of all active virtual buses.
func (c *Client) BusList(ctx context.Context) (*api.BusListResponse, error) {
	raw, err := c.transport.Do(ctx, "bus/list", nil, nil)
	if err != nil {
		return nil, err
	}
	return parse[api.BusListResponse](raw)
}

// BusCreate creates bus busID. Zero lets the server pick a number.
func (c *Client) BusCreate(ctx context.Context, busID uint32) (*api.BusCreateResponse, error) {
	var payload any
	if busID != 0 {
		payload = strconv.FormatUint(uint64(busID), 10)
	}
	raw, err := c.transport.Do(ctx, "bus/create", payload, nil)
	if err != nil {
		return nil, err
	}
	return parse[api.BusCreateResponse](raw)
}

// BusRemove removes a bus and every device on it.
func (c *Client) BusRemove(ctx context.Context, busID uint32) (*api.BusRemoveResponse, error) {
	raw, err := c.transport.Do(ctx, "bus/remove", strconv.FormatUint(uint64(busID), 10), nil)
	if err != nil {
		return nil, err
	}
	return parse[api.BusRemoveResponse](raw)
}

// DeviceAdd attaches a device of devType to busID.
func (c *Client) DeviceAdd(ctx context.Context, busID uint32, devType string, o *DeviceOptions) (*api.Device, error) {
	req := api.DeviceCreateRequest{Type: devType}
	if o != nil {
		req.IDVendor, req.IDProduct = o.VendorID, o.ProductID
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal device create request: %w", err)
	}
	raw, err := c.transport.Do(ctx, "bus/{id}/add", string(body), busParams(busID))
	if err != nil {
		return nil, err
	}
	return parse[api.Device](raw)
}

// DeviceRemove detaches device devID from busID.
func (c *Client) DeviceRemove(ctx context.Context, busID uint32, devID string) (*api.DeviceRemoveResponse, error) {
	raw, err := c.transport.Do(ctx, "bus/{id}/remove", devID, busParams(busID))
	if err != nil {
		return nil, err
	}
	return parse[api.DeviceRemoveResponse](raw)
}

// DevicesList returns the devices attached to busID.
func (c *Client) DevicesList(ctx context.Context, busID uint32) (*api.DevicesListResponse, error) {
	raw, err := c.transport.Do(ctx, "bus/{id}/list", nil, busParams(busID))
	if err != nil {
		return nil, err
	}
	return parse[api.DevicesListResponse](raw)
}

func busParams(busID uint32) map[string]string {
	return map[string]string{"id": strconv.FormatUint(uint64(busID), 10)}
}

func parse[T any](data string) (*T, error) {
	if data == "" {
		return nil, errors.New("empty response")
	}
	var problem api.Error
	if err := json.Unmarshal([]byte(data), &problem); err == nil && problem.Problem() {
		return nil, problem
	}
	var out T
	dec := json.NewDecoder(bytes.NewReader([]byte(data)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &out, nil
}
