// Package types defines the primitive type vocabulary used across scg-core.
//
// Every name is a Go type alias, so values interchange freely with the native
// types they stand for. The aliases exist so that portable code states a width
// contract instead of naming a machine type directly.
package types

// Bool is a two-valued boolean.
type Bool = bool

const (
	BoolFalse Bool = false
	BoolTrue  Bool = true
)

// Word is the native unsigned machine word; at least 64 bits on every GOARCH.
type Word = uint64

type (
	Word8  = uint8
	Word16 = uint16
	Word32 = uint32
	Word64 = uint64
)

// Int is the native signed integer; at least 64 bits on every GOARCH.
type Int = int64

type (
	Int8  = int8
	Int16 = int16
	Int32 = int32
	Int64 = int64
)

// Uint is the native unsigned integer; at least 64 bits on every GOARCH.
type Uint = uint64

type (
	Uint8  = uint8
	Uint16 = uint16
	Uint32 = uint32
	Uint64 = uint64
)

// Float is the native IEEE-754 floating point type.
type Float = float64

type (
	Float32 = float32
	Float64 = float64
)

// Size and Index span the native pointer range.
type (
	Size  = uint
	Index = uint
)

// String is a UTF-8 byte string. It cannot be absent; use *String or Bytes
// where absence has to be expressed.
type String = string

// Bytes is a raw byte sequence. A nil Bytes is absent, a non-nil empty one is
// present but empty.
type Bytes = []byte

// Text is satisfied by the byte-string and raw byte-sequence families.
type Text interface {
	~string | ~[]byte
}
