package cmd

// Devices lists input devices that can be used with run --input.device.
type Devices struct{}

func (d *Devices) Run() error {
	return listDevices()
}
