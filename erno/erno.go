// Package erno defines the integer error-code space shared by scg-core.
//
// A Code is a native word. Zero means no error; a small block of values is
// reserved for the generic failure kinds below, and callers define their own
// codes from UserBase upwards (see Table).
//
// Code implements error, so a code can be returned, compared with errors.Is
// and wrapped like any sentinel error. Use Err to get a nil error for None.
package erno

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/next-trace/scg-core/types"
)

// Code is an error code. The zero value is None.
type Code types.Word

// Reserved error kinds. These values are stable and must not be redefined.
const (
	None   Code = 0x0 // no error
	Handle Code = 0x1 // invalid reference
	State  Code = 0x2 // invalid state
	Range  Code = 0x3 // out of range
	String Code = 0x4 // invalid text
)

const (
	// ReservedMax is the last value of the library-reserved block.
	ReservedMax Code = 0xff

	// UserBase is the first value available to caller-defined codes.
	UserBase Code = ReservedMax + 1
)

var reserved = [...]Info{
	None:   {Code: None, Name: "none", Detail: "no error"},
	Handle: {Code: Handle, Name: "handle", Detail: "invalid reference"},
	State:  {Code: State, Name: "state", Detail: "invalid state"},
	Range:  {Code: Range, Name: "range", Detail: "out of range"},
	String: {Code: String, Name: "string", Detail: "invalid text"},
}

// Info describes a code.
type Info struct {
	Code   Code
	Name   string
	Detail string
}

// Reserved reports whether c lies in the library-reserved block.
func (c Code) Reserved() bool { return c <= ReservedMax }

// Known reports whether c is one of the reserved kinds defined by this package.
func (c Code) Known() bool { return c < Code(len(reserved)) }

// String returns the short name of a reserved kind, or the hex value otherwise.
func (c Code) String() string {
	if c.Known() {
		return reserved[c].Name
	}

	return "0x" + strconv.FormatUint(uint64(c), 16)
}

// Detail returns the human description of a reserved kind, or "" otherwise.
func (c Code) Detail() string {
	if c.Known() {
		return reserved[c].Detail
	}

	return ""
}

func (c Code) Error() string {
	if c.Known() {
		return fmt.Sprintf("erno: %s (0x%x)", reserved[c].Detail, uint64(c))
	}

	return fmt.Sprintf("erno: code 0x%x", uint64(c))
}

// Err returns c as an error, or nil for None.
func (c Code) Err() error {
	if c == None {
		return nil
	}

	return c
}

// Parse reads a code from a reserved name or a decimal, hex (0x) or octal
// (0o) number.
func Parse(s string) (Code, error) {
	s = strings.TrimSpace(s)
	for _, info := range reserved {
		if strings.EqualFold(s, info.Name) {
			return info.Code, nil
		}
	}

	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return None, fmt.Errorf("erno: parse %q: %w", s, err)
	}

	return Code(v), nil
}

// ReservedInfos returns the reserved kinds in code order.
func ReservedInfos() []Info {
	out := make([]Info, len(reserved))
	copy(out, reserved[:])

	return out
}
