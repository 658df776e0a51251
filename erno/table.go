package erno

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	ErrReserved  = errors.New("erno: code lies in the reserved block")
	ErrDuplicate = errors.New("erno: code or name already defined")
	ErrName      = errors.New("erno: invalid code name")
)

// Table is a catalogue of caller-defined codes. Reserved kinds are always
// resolvable through a Table and cannot be redefined. A Table is safe for
// concurrent use; the zero value is ready to use.
type Table struct {
	mu     sync.RWMutex
	byCode map[Code]Info
	byName map[string]Code
}

// NewTable returns an empty table.
func NewTable() *Table { return &Table{} }

// Define adds a caller-defined code. Names are case-insensitive and unique
// across reserved and defined codes.
func (t *Table) Define(c Code, name, detail string) error {
	name = strings.TrimSpace(name)
	if c.Reserved() {
		return fmt.Errorf("%w: 0x%x (first caller value is 0x%x)", ErrReserved, uint64(c), uint64(UserBase))
	}

	if name == "" || strings.ContainsAny(name, " \t\r\n") {
		return fmt.Errorf("%w: %q", ErrName, name)
	}

	key := strings.ToLower(name)
	for _, info := range reserved {
		if info.Name == key {
			return fmt.Errorf("%w: name %q is reserved", ErrDuplicate, name)
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.byCode == nil {
		t.byCode = map[Code]Info{}
		t.byName = map[string]Code{}
	}

	if prev, ok := t.byCode[c]; ok {
		return fmt.Errorf("%w: 0x%x is %q", ErrDuplicate, uint64(c), prev.Name)
	}

	if prev, ok := t.byName[key]; ok {
		return fmt.Errorf("%w: %q is 0x%x", ErrDuplicate, name, uint64(prev))
	}

	t.byCode[c] = Info{Code: c, Name: name, Detail: detail}
	t.byName[key] = c

	return nil
}

// Lookup resolves a reserved or defined code.
func (t *Table) Lookup(c Code) (Info, bool) {
	if c.Known() {
		return reserved[c], true
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	info, ok := t.byCode[c]

	return info, ok
}

// Resolve finds a code by reserved or defined name, falling back to Parse for
// numeric input.
func (t *Table) Resolve(s string) (Code, error) {
	key := strings.ToLower(strings.TrimSpace(s))

	t.mu.RLock()
	c, ok := t.byName[key]
	t.mu.RUnlock()

	if ok {
		return c, nil
	}

	return Parse(s)
}

// Name returns the name of c, or its String form when c is unknown.
func (t *Table) Name(c Code) string {
	if info, ok := t.Lookup(c); ok {
		return info.Name
	}

	return c.String()
}

// Infos returns the defined codes sorted by value, reserved kinds excluded.
func (t *Table) Infos() []Info {
	t.mu.RLock()
	out := make([]Info, 0, len(t.byCode))
	for _, info := range t.byCode {
		out = append(out, info)
	}
	t.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })

	return out
}

// Len returns the number of defined codes.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.byCode)
}
