package evdev

// Config selects the source keyboard.
type Config struct {
	Device string   `help:"Input device path or name" env:"SWEEPMAP_INPUT_DEVICE"`
	Grab   bool     `help:"Grab the device so its own key presses do not reach the system" default:"true" env:"SWEEPMAP_INPUT_GRAB" negatable:""`
	Map    []string `help:"Key position overrides as KEY_NAME=position" env:"SWEEPMAP_INPUT_MAP"`
}
