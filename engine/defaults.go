package engine

import (
	"github.com/tkferris/sweepmap/keycode"
	"github.com/tkferris/sweepmap/layer"
)

func layerOf(kc keycode.Keycode) layer.Layer { return layer.Layer(kc.Layer()) }

// defaultPress is the built-in meaning of keycodes the dispatcher passed on.
func (e *Engine) defaultPress(kc keycode.Keycode) {
	switch {
	case kc == keycode.NoKey, kc == keycode.Transparent:
	case kc.IsMouse():
		e.logger.Debug("mouse keys are not emitted", "keycode", kc)
	case kc.IsBasic(), kc.IsChord(), kc.IsModTap(), kc.IsLayerTap():
		e.Register(kc)
	case kc.IsTo():
		e.LayerMove(layerOf(kc))
	case kc.IsMomentary():
		e.LayerOn(layerOf(kc))
	case kc.IsOneShot():
		e.oneShot |= kc.Mods()
	case kc == keycode.Boot:
		e.logger.Info("bootloader key pressed")
		if e.onBoot != nil {
			e.onBoot()
		}
	case kc == keycode.Reboot:
		e.logger.Info("reboot key pressed, resetting state")
		e.Reset()
	case kc == keycode.ClearEEPROM:
		e.logger.Info("clear key pressed, back to the default layer")
		e.layers = layer.State{}
		e.oneShot = 0
	default:
		e.logger.Debug("keycode has no action", "keycode", kc)
	}
}

func (e *Engine) defaultRelease(kc keycode.Keycode) {
	switch {
	case kc.IsMouse():
	case kc.IsBasic(), kc.IsChord(), kc.IsModTap(), kc.IsLayerTap():
		e.Unregister(kc)
	case kc.IsMomentary():
		e.LayerOff(layerOf(kc))
	}
}
