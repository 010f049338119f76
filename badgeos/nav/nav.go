// Package nav is the menu and program navigation state machine.
//
// The machine owns the active program ID, the menu selection, the per-entry
// tick counter and the dirty flag that gates redraws. It never draws.
package nav

import (
	"time"

	"badge/badgeos/input"
	"badge/badgeos/program"
	"badge/hal"
)

// Machine is the navigation state. It is not safe for concurrent use; the
// foreground loop owns it.
type Machine struct {
	state   program.ID
	menu    *Menu
	table   *program.Table
	logger  hal.Logger
	dirty   bool
	ticks   uint32
	entered time.Time
}

// New returns a machine in state boot. An invalid boot ID starts in Menu.
func New(items []string, table *program.Table, boot program.ID, logger hal.Logger, now time.Time) *Machine {
	if table == nil {
		table = program.NewTable()
	}
	if !boot.Valid() {
		boot = program.Menu
	}
	return &Machine{
		state:   boot,
		menu:    NewMenu(items),
		table:   table,
		logger:  logger,
		dirty:   true,
		entered: now,
	}
}

// State returns the active program ID.
func (m *Machine) State() program.ID { return m.state }

// InMenu reports whether the menu is showing.
func (m *Machine) InMenu() bool { return m.state == program.Menu }

// Menu returns the menu model.
func (m *Machine) Menu() *Menu { return m.menu }

// Table returns the dispatch table.
func (m *Machine) Table() *program.Table { return m.table }

// Step applies one tick's buttons and reports whether the screen became
// stale. In a program only B has an effect; it returns to the menu.
func (m *Machine) Step(pressed input.Set, now time.Time) bool {
	if m.state != program.Menu {
		if pressed.Has(hal.ButtonB) {
			m.Exit(now)
			return true
		}
		return false
	}

	changed := false
	if pressed.Has(hal.ButtonUp) && m.menu.Up() {
		changed = true
	}
	if pressed.Has(hal.ButtonDown) && m.menu.Down() {
		changed = true
	}
	if changed {
		m.dirty = true
	}
	if pressed.Has(hal.ButtonA) {
		id := program.NotFound
		if m.menu.Len() > 0 {
			id = m.table.Lookup(m.menu.Selected())
		}
		m.Launch(id, now)
		return true
	}
	return changed
}

// Launch enters program id. Launching Menu is the same as Exit.
func (m *Machine) Launch(id program.ID, now time.Time) {
	if !id.Valid() {
		id = program.NotFound
	}
	m.transition(id, now)
}

// Exit returns to the menu.
func (m *Machine) Exit(now time.Time) {
	m.transition(program.Menu, now)
}

func (m *Machine) transition(to program.ID, now time.Time) {
	from := m.state
	m.state = to
	m.ticks = 0
	m.entered = now
	m.dirty = true
	if m.logger != nil {
		m.logger.WriteLineString("nav: " + from.String() + " -> " + to.String())
	}
}

// Dirty reports whether the screen needs a draw.
func (m *Machine) Dirty() bool { return m.dirty }

// MarkDirty forces the next flush to redraw.
func (m *Machine) MarkDirty() { m.dirty = true }

// MarkClean records that the current screen has been drawn.
func (m *Machine) MarkClean() { m.dirty = false }

// Tick advances the per-entry counter and returns the new value.
func (m *Machine) Tick() uint32 {
	m.ticks++
	return m.ticks
}

// Ticks returns the per-entry counter.
func (m *Machine) Ticks() uint32 { return m.ticks }

// ResetTicks sets the per-entry counter back to zero.
func (m *Machine) ResetTicks() { m.ticks = 0 }

// Entered returns when the active state was entered.
func (m *Machine) Entered() time.Time { return m.entered }
