package x11

import (
	"image"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"golang.org/x/image/draw"

	"github.com/lfrancke/termwin/internal/platform"
)

// Taskbar-sized variant published alongside the full icon so the WM
// does not have to downscale itself.
const smallIconSize = 16

// setWindowIcon publishes _NET_WM_ICON in two sizes.
func setWindowIcon(xu *xgbutil.XUtil, win xproto.Window, icon *platform.Icon) error {
	icons := []ewmh.WmIcon{packIcon(icon.Width, icon.Height, icon.RGBA)}
	if icon.Width > smallIconSize && icon.Height > smallIconSize {
		w, h, rgba := downscaleIcon(icon, smallIconSize)
		icons = append(icons, packIcon(w, h, rgba))
	}
	return ewmh.WmIconSet(xu, win, icons)
}

// packIcon converts straight RGBA bytes into the CARDINAL ARGB words
// _NET_WM_ICON expects.
func packIcon(width, height int, rgba []byte) ewmh.WmIcon {
	data := make([]uint, 0, width*height)
	for i := 0; i+3 < len(rgba); i += 4 {
		r, g, b, a := uint(rgba[i]), uint(rgba[i+1]), uint(rgba[i+2]), uint(rgba[i+3])
		data = append(data, a<<24|r<<16|g<<8|b)
	}
	return ewmh.WmIcon{
		Width:  uint(width),
		Height: uint(height),
		Data:   data,
	}
}

func downscaleIcon(icon *platform.Icon, size int) (int, int, []byte) {
	src := &image.NRGBA{
		Pix:    icon.RGBA,
		Stride: icon.Width * 4,
		Rect:   image.Rect(0, 0, icon.Width, icon.Height),
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Rect, src, src.Rect, draw.Over, nil)
	return size, size, dst.Pix
}
