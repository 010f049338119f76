package screens

import (
	"fmt"

	"badge/badgeos/assets"
	"badge/badgeos/gfx"
	"badge/badgeos/nav"
)

// Menu row geometry: the first baseline and the distance between rows.
const (
	menuFirstRow = 44
	menuRowStep  = 20
	menuBox      = 10
)

// PageLabel formats the page indicator, for example "[2/3]".
func PageLabel(m *nav.Menu) string {
	return fmt.Sprintf("[%d/%d]", m.Page()+1, m.Pages())
}

// Menu draws the current page of m with the selection marked.
func Menu(d gfx.Display, m *nav.Menu) error {
	w, h := d.Size()
	if err := d.DrawImage(assets.Options, 0, 0); err != nil {
		return err
	}
	d.DrawTextbox(MenuTitle, gfx.FontLarge, gfx.Black, gfx.AlignLeft, headerTextX, 3, w-headerTextX, 0)

	label := PageLabel(m)
	d.DrawText(label, gfx.Black, w-gfx.TextWidth(gfx.FontMedium, label)-4, h-5)

	start, end := m.Visible()
	items := m.Items()
	for i := start; i < end; i++ {
		y := int16(menuFirstRow + (i-start)*menuRowStep)
		if i == m.Selected() {
			d.FillRect(10, y-9, menuBox, menuBox, gfx.Black)
		} else {
			d.StrokeRect(10, y-9, menuBox, menuBox, 3, gfx.Black)
		}
		d.DrawText(items[i], gfx.Black, 27, y)
	}
	return nil
}
