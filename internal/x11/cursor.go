package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xcursor"

	"github.com/lfrancke/termwin/internal/platform"
)

// cursorGlyph maps the portable cursor shapes onto core X cursor font
// glyphs.
func cursorGlyph(shape platform.CursorShape) uint16 {
	switch shape {
	case platform.CursorText:
		return xcursor.XTerm
	case platform.CursorPointer:
		return xcursor.Hand2
	case platform.CursorCrosshair:
		return xcursor.Crosshair
	default:
		return xcursor.LeftPtr
	}
}

// SetCursorShape applies the glyph cursor for the given shape. Cursors
// are created lazily and cached on the connection.
func (w *Window) SetCursorShape(shape platform.CursorShape) {
	cursor, err := w.conn.glyphCursor(cursorGlyph(shape))
	if err != nil {
		return
	}
	w.currentCursor = cursor
	w.applyCursor(cursor)
}

// SetCursorVisible swaps between the current glyph cursor and a fully
// transparent one.
func (w *Window) SetCursorVisible(visible bool) {
	if visible {
		cursor := w.currentCursor
		if cursor == 0 {
			if c, err := w.conn.glyphCursor(xcursor.LeftPtr); err == nil {
				cursor = c
			}
		}
		w.applyCursor(cursor)
		return
	}
	if blank, err := w.conn.blankCursor(); err == nil {
		w.applyCursor(blank)
	}
}

func (w *Window) applyCursor(cursor xproto.Cursor) {
	xproto.ChangeWindowAttributes(w.conn.xu.Conn(), w.win.Id,
		xproto.CwCursor, []uint32{uint32(cursor)})
}

// glyphCursor returns a cached cursor for the given font glyph.
func (c *Conn) glyphCursor(glyph uint16) (xproto.Cursor, error) {
	if cursor, ok := c.cursors[glyph]; ok {
		return cursor, nil
	}
	cursor, err := xcursor.CreateCursor(c.xu, glyph)
	if err != nil {
		return 0, err
	}
	c.cursors[glyph] = cursor
	return cursor, nil
}

// blankCursor builds an invisible cursor from a 1x1 transparent pixmap.
func (c *Conn) blankCursor() (xproto.Cursor, error) {
	if c.blank != 0 {
		return c.blank, nil
	}

	pixmap, err := xproto.NewPixmapId(c.xu.Conn())
	if err != nil {
		return 0, err
	}
	if err := xproto.CreatePixmapChecked(
		c.xu.Conn(), 1, pixmap, xproto.Drawable(c.root), 1, 1,
	).Check(); err != nil {
		return 0, err
	}
	defer xproto.FreePixmap(c.xu.Conn(), pixmap)

	cursor, err := xproto.NewCursorId(c.xu.Conn())
	if err != nil {
		return 0, err
	}
	if err := xproto.CreateCursorChecked(
		c.xu.Conn(), cursor, pixmap, pixmap, 0, 0, 0, 0, 0, 0, 0, 0,
	).Check(); err != nil {
		return 0, err
	}

	c.blank = cursor
	return cursor, nil
}
