package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xprop"
)

const (
	motifHintDecorations = 1 << 1
	motifDecorAll        = 1
)

// setMotifDecorations publishes _MOTIF_WM_HINTS, still the lingua
// franca for toggling server-side decorations.
func setMotifDecorations(xu *xgbutil.XUtil, win xproto.Window, decorated bool) error {
	decorations := uint(0)
	if decorated {
		decorations = motifDecorAll
	}
	return xprop.ChangeProp32(xu, win, "_MOTIF_WM_HINTS", "_MOTIF_WM_HINTS",
		motifHintDecorations, 0, decorations, 0, 0)
}
