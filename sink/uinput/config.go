package uinput

// Config describes the virtual keyboard.
type Config struct {
	Name      string `help:"Name of the uinput keyboard" default:"sweepmap virtual keyboard" env:"SWEEPMAP_UINPUT_NAME"`
	VendorID  uint16 `help:"USB vendor ID reported by the uinput keyboard" default:"4617" env:"SWEEPMAP_UINPUT_VID"`
	ProductID uint16 `help:"USB product ID reported by the uinput keyboard" default:"34" env:"SWEEPMAP_UINPUT_PID"`
}
