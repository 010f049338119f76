package nav

// ItemsPerPage is how many menu entries fit on one screen.
const ItemsPerPage = 4

// Menu is the paginated list shown in the Menu state. The page is always
// derived from the selection.
type Menu struct {
	items    []string
	selected int
}

// NewMenu returns a menu over items with the first entry selected.
func NewMenu(items []string) *Menu {
	return &Menu{items: append([]string(nil), items...)}
}

// Items returns the entries.
func (m *Menu) Items() []string { return m.items }

// Len returns the number of entries.
func (m *Menu) Len() int { return len(m.items) }

// Selected returns the selected index.
func (m *Menu) Selected() int { return m.selected }

// Page returns the zero-based page holding the selection.
func (m *Menu) Page() int { return m.selected / ItemsPerPage }

// Pages returns the number of pages; an empty menu has one.
func (m *Menu) Pages() int {
	if len(m.items) == 0 {
		return 1
	}
	return (len(m.items) + ItemsPerPage - 1) / ItemsPerPage
}

// Visible returns the half-open index range shown on the current page.
func (m *Menu) Visible() (start, end int) {
	start = m.Page() * ItemsPerPage
	end = start + ItemsPerPage
	if end > len(m.items) {
		end = len(m.items)
	}
	return start, end
}

// Up moves the selection back one entry, saturating at the first. It
// reports whether the selection moved.
func (m *Menu) Up() bool {
	if m.selected == 0 {
		return false
	}
	m.selected--
	return true
}

// Down moves the selection forward one entry, saturating at the last. It
// reports whether the selection moved.
func (m *Menu) Down() bool {
	if m.selected >= len(m.items)-1 {
		return false
	}
	m.selected++
	return true
}

// Select moves the selection to i, clamped to the valid range.
func (m *Menu) Select(i int) bool {
	if i >= len(m.items) {
		i = len(m.items) - 1
	}
	if i < 0 {
		i = 0
	}
	if i == m.selected {
		return false
	}
	m.selected = i
	return true
}
