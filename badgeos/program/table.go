package program

import "fmt"

// Table maps menu indices to program IDs and IDs to implementations.
//
// An index with no binding resolves to NotFound; that is a normal outcome,
// not an error.
type Table struct {
	bindings []ID
	programs [idCount]Program
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{}
}

// Bind maps menu index i to id.
func (t *Table) Bind(i int, id ID) error {
	if i < 0 {
		return fmt.Errorf("program: bind %d: negative index", i)
	}
	if !id.Valid() || id == Menu {
		return fmt.Errorf("program: bind %d: cannot bind %v", i, id)
	}
	for len(t.bindings) <= i {
		t.bindings = append(t.bindings, NotFound)
	}
	t.bindings[i] = id
	return nil
}

// Register installs p as the implementation of id.
func (t *Table) Register(id ID, p Program) error {
	if !id.Valid() || id == Menu {
		return fmt.Errorf("program: register %v: not a program", id)
	}
	if p == nil {
		return fmt.Errorf("program: register %v: nil program", id)
	}
	t.programs[id] = p
	return nil
}

// Lookup resolves menu index i.
func (t *Table) Lookup(i int) ID {
	if i < 0 || i >= len(t.bindings) {
		return NotFound
	}
	return t.bindings[i]
}

// Program returns the implementation of id. An unregistered ID falls back
// to the NotFound program; nil is returned only when that is missing too.
func (t *Table) Program(id ID) Program {
	if id.Valid() && t.programs[id] != nil {
		return t.programs[id]
	}
	return t.programs[NotFound]
}

// Bound returns how many menu indices have a binding slot.
func (t *Table) Bound() int { return len(t.bindings) }
