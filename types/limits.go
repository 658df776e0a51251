package types

import (
	"math"
	"math/bits"
)

// Width contracts, in bits. Native widths are the minimum guaranteed; sized
// widths are exact.
const (
	BitsWord   = 64
	BitsWord8  = 8
	BitsWord16 = 16
	BitsWord32 = 32
	BitsWord64 = 64

	BitsInt   = 64
	BitsInt8  = 8
	BitsInt16 = 16
	BitsInt32 = 32
	BitsInt64 = 64

	BitsUint   = 64
	BitsUint8  = 8
	BitsUint16 = 16
	BitsUint32 = 32
	BitsUint64 = 64

	BitsFloat   = 64
	BitsFloat32 = 32
	BitsFloat64 = 64

	// BitsSize is the pointer-range width of the build target (32 or 64).
	BitsSize  = bits.UintSize
	BitsIndex = bits.UintSize
)

// Boundary values.
const (
	MaxWord   Word   = math.MaxUint64
	MaxWord8  Word8  = math.MaxUint8
	MaxWord16 Word16 = math.MaxUint16
	MaxWord32 Word32 = math.MaxUint32
	MaxWord64 Word64 = math.MaxUint64

	MinInt   Int   = math.MinInt64
	MaxInt   Int   = math.MaxInt64
	MinInt8  Int8  = math.MinInt8
	MaxInt8  Int8  = math.MaxInt8
	MinInt16 Int16 = math.MinInt16
	MaxInt16 Int16 = math.MaxInt16
	MinInt32 Int32 = math.MinInt32
	MaxInt32 Int32 = math.MaxInt32
	MinInt64 Int64 = math.MinInt64
	MaxInt64 Int64 = math.MaxInt64

	MaxUint   Uint   = math.MaxUint64
	MaxUint8  Uint8  = math.MaxUint8
	MaxUint16 Uint16 = math.MaxUint16
	MaxUint32 Uint32 = math.MaxUint32
	MaxUint64 Uint64 = math.MaxUint64

	MaxFloat32 Float32 = math.MaxFloat32
	MaxFloat64 Float64 = math.MaxFloat64
	MaxFloat   Float   = math.MaxFloat64

	// SmallestFloat32 and SmallestFloat64 are the smallest positive, non-zero
	// (denormal) values.
	SmallestFloat32 Float32 = math.SmallestNonzeroFloat32
	SmallestFloat64 Float64 = math.SmallestNonzeroFloat64

	MaxSize  Size  = math.MaxUint
	MaxIndex Index = math.MaxUint
)
