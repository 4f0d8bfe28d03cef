package display

import (
	"testing"

	"github.com/lfrancke/termwin/internal/platform"
)

func TestUpdateIMEPosition_X11Offset(t *testing.T) {
	w, native := newWindowOn(t, platform.X11, platform.HandleX11)

	size := SizeInfo{PaddingX: 0, PaddingY: 0, CellWidth: 10, CellHeight: 20}
	w.UpdateIMEPosition(Point{Line: 0, Column: 0}, size)

	want := "SetIMECursorArea(0,20,20,20)"
	if got := native.count(want); got != 1 {
		t.Fatalf("expected %s, calls: %v", want, native.calls)
	}
}

func TestUpdateIMEPosition_NoOffsetElsewhere(t *testing.T) {
	w, native := newWindowOn(t, platform.Wayland, platform.HandleWayland)

	size := SizeInfo{PaddingX: 0, PaddingY: 0, CellWidth: 10, CellHeight: 20}
	w.UpdateIMEPosition(Point{Line: 0, Column: 0}, size)

	want := "SetIMECursorArea(0,0,20,20)"
	if got := native.count(want); got != 1 {
		t.Fatalf("expected %s, calls: %v", want, native.calls)
	}
}

func TestUpdateIMEPosition_GridArithmetic(t *testing.T) {
	w, native := newWindowOn(t, platform.Wayland, platform.HandleWayland)

	size := SizeInfo{PaddingX: 5, PaddingY: 7, CellWidth: 9, CellHeight: 18}
	w.UpdateIMEPosition(Point{Line: 3, Column: 12}, size)

	// x = 5 + 12*9 = 113, y = 7 + 3*18 = 61, area 18x18.
	want := "SetIMECursorArea(113,61,18,18)"
	if got := native.count(want); got != 1 {
		t.Fatalf("expected %s, calls: %v", want, native.calls)
	}
}
