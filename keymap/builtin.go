package keymap

import (
	"fmt"
	"strings"

	"github.com/tkferris/sweepmap/combo"
	"github.com/tkferris/sweepmap/keycode"
	"github.com/tkferris/sweepmap/layer"
	"github.com/tkferris/sweepmap/override"
)

func init() {
	register("colemak-dh", ColemakDH)
	register("graphite", Graphite)
}

// Indicator colors per layer.
const (
	ColorBlack  = "#000000"
	ColorRed    = "#ff0000"
	ColorGreen  = "#00ff00"
	ColorBlue   = "#0000ff"
	ColorYellow = "#ffff00"
	ColorPink   = "#ff80bf"
	ColorTeal   = "#008080"
)

// ColemakDH returns the Colemak Mod-DH keymap with home row mods.
func ColemakDH() *Keymap {
	k := &Keymap{Name: "colemak-dh", LayerNames: standardLayerNames()}
	resolve := k.resolver()
	k.Layers = []Grid{
		mustGrid(resolve, `
			KC_Q  KC_W        KC_F        KC_P        KC_B    KC_J  KC_L        KC_U        KC_Y        KC_SCLN
			KC_A  WIN_T(KC_R) ALT_T(KC_S) CTL_T(KC_T) KC_G    KC_M  CTL_T(KC_N) ALT_T(KC_E) WIN_T(KC_I) KC_O
			KC_Z  KC_X        KC_C        KC_D        KC_V    KC_K  KC_H        KC_COMM     KC_DOT      KC_SLSH
			KC_LSFT KC_BSPC   KC_SPC TO(SYM)`),
		mustGrid(resolve, `
			KC_CIRC KC_TILD KC_HASH KC_COLN KC_GRV     KC_PIPE KC_QUES KC_UNDS KC_BSLS KC_NO
			KC_AMPR KC_ASTR KC_LBRC KC_LPRN KC_LCBR    KC_RCBR KC_RPRN KC_RBRC KC_DQUO KC_PLUS
			KC_DLR  KC_LT   KC_GT   KC_EXLM KC_PERC    KC_AT   KC_MINS KC_EQL  KC_QUOT TO(FN)
			TO(ALPHA) KC_SPC  TO(NAV) TO(NUM)`),
		mustGrid(resolve, `
			KC_NO   KC_NO   KC_NO   KC_NO   KC_NO      KC_NO KC_P7 KC_P8 KC_P9 KC_NO
			KC_PDOT KC_PSLS KC_PAST KC_PMNS KC_PPLS    KC_NO KC_P4 KC_P5 KC_P6 KC_PEQL
			KC_NO   KC_NO   KC_NO   KC_NO   KC_NO      KC_NO KC_P1 KC_P2 KC_P3 KC_NO
			TO(ALPHA) TO(FN)  KC_P0 TO(NAV)`),
		mustGrid(resolve, `
			KC_NO KC_P  KC_Y    VIM_T  KC_LCBR    KC_U  KC_P2   KC_P3   KC_P4 KC_NO
			KC_W  KC_B  KC_E    VIM_F  KC_RCBR    KC_D  KC_LEFT KC_DOWN KC_UP KC_RGHT
			KC_NO KC_NO KC_CIRC KC_DLR KC_NO      KC_NO KC_COMM KC_NO   KC_NO KC_TRNS
			TO(ALPHA) KC_V  KC_LSFT KC_SCLN`),
		fnGrid(resolve, "KC_NO KC_NO KC_NO KC_NO", "KC_NO", "TO(GAMING) TO(MEDIA)"),
		mustGrid(resolve, `
			KC_NO   KC_NO   KC_VOLU KC_NO   KC_NO    KC_NO KC_NO KC_NO KC_NO KC_NO
			KC_MUTE KC_MPRV KC_MPLY KC_MNXT KC_NO    KC_NO KC_NO KC_NO KC_NO KC_NO
			KC_NO   KC_NO   KC_VOLD KC_NO   KC_NO    KC_NO KC_NO KC_NO KC_NO KC_NO
			TO(ALPHA) KC_NO  KC_NO KC_NO`),
		gamingGrid(resolve, "TO(ALPHA) KC_SPC KC_COMM KC_NO"),
		maintenanceGrid(resolve),
	}
	k.Overrides = override.Set{
		override.Basic(keycode.MaskShift, keycode.KeySpace, keycode.KeyTab),
		override.WithLayers(keycode.MaskShift, keycode.KeyPeriod, keycode.ArrowMacro, layer.MaskOf(layer.Alpha)),
	}
	return k
}

// Graphite returns the Graphite keymap. On top of the reference layout it
// carries combos, the SYM/NAV dual-function thumb, window-switch keys and
// the alt-tab latch.
func Graphite() *Keymap {
	k := &Keymap{Name: "graphite", LayerNames: standardLayerNames()}
	resolve := k.resolver()
	k.Layers = []Grid{
		mustGrid(resolve, `
			KC_Q KC_L         KC_D         KC_W         KC_Z    KC_SCLN KC_F         KC_O         KC_U         KC_J
			KC_N LGUI_T(KC_R) LALT_T(KC_T) LCTL_T(KC_S) KC_G    KC_Y    RCTL_T(KC_H) LALT_T(KC_A) RGUI_T(KC_E) KC_I
			KC_B KC_X         KC_M         KC_C         KC_V    KC_K    KC_P         KC_DOT       SFT_COMM     KC_MINS
			KC_LSFT KC_BSPC   KC_SPC SYM_NAV`),
		mustGrid(resolve, `
			KC_CIRC KC_TILD KC_HASH KC_COLN KC_GRV     KC_PIPE KC_QUES KC_SLSH KC_BSLS KC_NO
			KC_AMPR KC_ASTR KC_LBRC KC_LPRN KC_LCBR    KC_RCBR KC_RPRN KC_RBRC KC_DQUO KC_PLUS
			KC_DLR  KC_LT   KC_GT   KC_EXLM KC_PERC    KC_AT   KC_MINS KC_EQL  KC_QUOT TO(FN)
			TO(ALPHA) KC_SPC  TO(NAV) TO(NUM)`),
		mustGrid(resolve, `
			KC_NO   KC_NO   KC_NO   KC_NO   KC_NO      KC_NO   KC_P7 KC_P8 KC_P9 KC_NO
			KC_PDOT KC_PSLS KC_PAST KC_PMNS KC_PPLS    KC_BSPC KC_P4 KC_P5 KC_P6 KC_EQL
			KC_NO   KC_NO   KC_NO   KC_NO   KC_NO      KC_NO   KC_P1 KC_P2 KC_P3 KC_NO
			TO(ALPHA) TO(FN)  KC_P0 TO(NAV)`),
		mustGrid(resolve, `
			KC_NO      KC_Y KC_P    VIM_F  KC_LCBR    LCTL(KC_U) KC_P2   KC_P3   KC_P4 KC_NO
			KC_W       KC_B KC_E    VIM_T  KC_RCBR    LCTL(KC_D) KC_LEFT KC_DOWN KC_UP KC_RGHT
			LSFT(KC_V) KC_D KC_CIRC KC_DLR KC_U       KC_NO      KC_COMM KC_SCLN KC_NO ESC_BASE
			TO(ALPHA) KC_LALT  KC_LSFT KC_V`),
		fnGrid(resolve, "WIN_1 WIN_2 WIN_3 WIN_4", "ALT_TAB", "TO(GAMING) TO(MEDIA)"),
		mustGrid(resolve, `
			KC_NO   KC_NO   KC_VOLU KC_NO   KC_NO    KC_NO KC_NO   KC_BTN3 KC_NO   KC_NO
			KC_MUTE KC_MPRV KC_MPLY KC_MNXT KC_NO    KC_NO KC_MS_L KC_MS_D KC_MS_U KC_MS_R
			KC_NO   KC_NO   KC_VOLD KC_NO   KC_NO    KC_NO KC_WH_L KC_WH_D KC_WH_U KC_WH_R
			TO(ALPHA) KC_BTN1  KC_BTN2 KC_NO`),
		gamingGrid(resolve, "KC_COMM KC_SPC ALT_TAB TO(ALPHA)"),
		maintenanceGrid(resolve),
	}
	k.Overrides = override.Set{
		override.Basic(keycode.MaskShift, keycode.KeySpace, keycode.KeyTab),
		override.WithLayers(keycode.MaskShift, keycode.KeyPeriod, keycode.ArrowMacro, layer.MaskOf(layer.Alpha)),
		override.Basic(keycode.MaskShift, keycode.VimF, keycode.VimFF),
		override.Basic(keycode.MaskShift, keycode.VimT, keycode.VimTT),
		override.WithLayers(keycode.MaskShift, keycode.KeyU, keycode.LCtl(keycode.KeyR), layer.MaskOf(layer.Nav)),
		override.WithLayers(keycode.MaskAlt, keycode.KeyV, keycode.LCtl(keycode.KeyV), layer.MaskOf(layer.Nav)),
	}
	k.Combos = combo.Table{
		combo.New(keycode.KeyEnter, keycode.KeyBackspace, keycode.KeySpace).On(layer.Alpha),
		combo.New(keycode.KeyEscape, keycode.KeyBackspace, keycode.KeyLeftShift).On(layer.Alpha),
	}
	k.Colors = []string{ColorBlack, ColorRed, ColorGreen, ColorBlue, ColorYellow, ColorPink, ColorTeal, ""}
	return k
}

func fnGrid(resolve keycode.LayerResolver, topLeft, leftThumb, rightThumbs string) Grid {
	return mustGrid(resolve, fmt.Sprintf(`
		TO(QMK) %s         KC_NO KC_F7 KC_F8 KC_F9 KC_F12
		UNDO CUT COPY PASTE FIND      KC_NO KC_F4 KC_F5 KC_F6 KC_F11
		KC_NO KC_NO KC_NO KC_NO KC_NO KC_NO KC_F1 KC_F2 KC_F3 KC_F10
		TO(ALPHA) %s  %s`, topLeft, leftThumb, rightThumbs))
}

func gamingGrid(resolve keycode.LayerResolver, thumbs string) Grid {
	return mustGrid(resolve, `
		KC_Q KC_W KC_E KC_R KC_T    KC_Y KC_U KC_I  KC_O  KC_P
		KC_A KC_S KC_D KC_F KC_G    KC_H KC_J KC_K  KC_L  KC_NO
		KC_Z KC_X KC_C KC_V KC_B    KC_N KC_M KC_NO KC_NO KC_NO
		`+thumbs)
}

func maintenanceGrid(resolve keycode.LayerResolver) Grid {
	return mustGrid(resolve, `
		QK_BOOT KC_NO KC_NO KC_NO KC_NO    KC_NO KC_NO KC_NO KC_NO QK_RBT
		KC_NO   KC_NO KC_NO KC_NO KC_NO    KC_NO KC_NO KC_NO KC_NO KC_NO
		EE_CLR  KC_NO KC_NO KC_NO KC_NO    KC_NO KC_NO KC_NO KC_NO KC_NO
		TO(ALPHA) KC_NO  KC_NO KC_NO`)
}

func mustGrid(resolve keycode.LayerResolver, src string) Grid {
	g, err := ParseGrid(strings.Fields(src), resolve)
	if err != nil {
		panic(err)
	}
	return g
}

// ParseGrid parses one keycode name per position.
func ParseGrid(fields []string, resolve keycode.LayerResolver) (Grid, error) {
	var g Grid
	if len(fields) != NumKeys {
		return g, fmt.Errorf("%w: want %d keys, got %d", ErrKeyCount, NumKeys, len(fields))
	}
	for i, f := range fields {
		kc, err := keycode.Parse(f, resolve)
		if err != nil {
			return g, fmt.Errorf("position %d: %w", i, err)
		}
		g[i] = kc
	}
	return g, nil
}

func (k *Keymap) resolver() keycode.LayerResolver {
	return func(name string) (uint8, bool) {
		l, ok := k.LayerByName(name)
		return uint8(l), ok
	}
}
