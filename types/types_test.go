package types_test

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-core/types"
)

func TestWidthContracts(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		size uintptr
		min  int
	}{
		{"Word", unsafe.Sizeof(types.Word(0)), types.BitsWord},
		{"Word8", unsafe.Sizeof(types.Word8(0)), types.BitsWord8},
		{"Word16", unsafe.Sizeof(types.Word16(0)), types.BitsWord16},
		{"Word32", unsafe.Sizeof(types.Word32(0)), types.BitsWord32},
		{"Word64", unsafe.Sizeof(types.Word64(0)), types.BitsWord64},
		{"Int", unsafe.Sizeof(types.Int(0)), types.BitsInt},
		{"Int8", unsafe.Sizeof(types.Int8(0)), types.BitsInt8},
		{"Int16", unsafe.Sizeof(types.Int16(0)), types.BitsInt16},
		{"Int32", unsafe.Sizeof(types.Int32(0)), types.BitsInt32},
		{"Int64", unsafe.Sizeof(types.Int64(0)), types.BitsInt64},
		{"Uint", unsafe.Sizeof(types.Uint(0)), types.BitsUint},
		{"Uint8", unsafe.Sizeof(types.Uint8(0)), types.BitsUint8},
		{"Uint16", unsafe.Sizeof(types.Uint16(0)), types.BitsUint16},
		{"Uint32", unsafe.Sizeof(types.Uint32(0)), types.BitsUint32},
		{"Uint64", unsafe.Sizeof(types.Uint64(0)), types.BitsUint64},
		{"Float", unsafe.Sizeof(types.Float(0)), types.BitsFloat},
		{"Float32", unsafe.Sizeof(types.Float32(0)), types.BitsFloat32},
		{"Float64", unsafe.Sizeof(types.Float64(0)), types.BitsFloat64},
		{"Size", unsafe.Sizeof(types.Size(0)), types.BitsSize},
		{"Index", unsafe.Sizeof(types.Index(0)), types.BitsIndex},
	}

	for _, tc := range cases {
		assert.GreaterOrEqualf(t, int(tc.size)*8, tc.min, "%s narrower than its contract", tc.name)
	}

	assert.Equal(t, int(unsafe.Sizeof(uintptr(0)))*8, types.BitsSize, "Size must span the pointer range")
}

func TestBoundaryValuesRoundTrip(t *testing.T) {
	t.Parallel()

	var (
		w8  types.Word8  = 0
		w8x types.Word8  = 255
		w16 types.Word16 = 65535
		w32 types.Word32 = 4294967295
		w64 types.Word64 = 18446744073709551615
	)
	assert.Equal(t, uint64(0), uint64(w8))
	assert.Equal(t, uint64(255), uint64(w8x))
	assert.Equal(t, types.MaxWord8, w8x)
	assert.Equal(t, types.MaxWord16, w16)
	assert.Equal(t, types.MaxWord32, w32)
	assert.Equal(t, types.MaxWord64, w64)
	assert.Equal(t, types.Word(math.MaxUint64), types.MaxWord)

	var (
		i8lo  types.Int8  = -128
		i8hi  types.Int8  = 127
		i16lo types.Int16 = -32768
		i16hi types.Int16 = 32767
		i32lo types.Int32 = -2147483648
		i32hi types.Int32 = 2147483647
		i64lo types.Int64 = -9223372036854775808
		i64hi types.Int64 = 9223372036854775807
	)
	assert.Equal(t, types.MinInt8, i8lo)
	assert.Equal(t, types.MaxInt8, i8hi)
	assert.Equal(t, types.MinInt16, i16lo)
	assert.Equal(t, types.MaxInt16, i16hi)
	assert.Equal(t, types.MinInt32, i32lo)
	assert.Equal(t, types.MaxInt32, i32hi)
	assert.Equal(t, types.MinInt64, i64lo)
	assert.Equal(t, types.MaxInt64, i64hi)
	assert.Equal(t, types.MinInt, types.Int(i64lo))
	assert.Equal(t, types.MaxInt, types.Int(i64hi))

	var (
		u8  types.Uint8  = 255
		u16 types.Uint16 = 65535
		u32 types.Uint32 = 4294967295
		u64 types.Uint64 = 18446744073709551615
	)
	assert.Equal(t, types.MaxUint8, u8)
	assert.Equal(t, types.MaxUint16, u16)
	assert.Equal(t, types.MaxUint32, u32)
	assert.Equal(t, types.MaxUint64, u64)
	assert.Equal(t, types.Uint(u64), types.MaxUint)

	var (
		f32 types.Float32 = math.MaxFloat32
		f64 types.Float64 = math.MaxFloat64
		s32 types.Float32 = math.SmallestNonzeroFloat32
		s64 types.Float64 = math.SmallestNonzeroFloat64
	)
	assert.Equal(t, types.MaxFloat32, f32)
	assert.Equal(t, types.MaxFloat64, f64)
	assert.Equal(t, types.SmallestFloat32, s32)
	assert.Equal(t, types.SmallestFloat64, s64)
	assert.False(t, math.IsInf(float64(f32), 0))
	assert.False(t, math.IsInf(f64, 0))
}

func TestOverflowWrapsAtContractWidth(t *testing.T) {
	t.Parallel()

	w := types.MaxWord8
	w++
	require.Equal(t, types.Word8(0), w)

	i := types.MaxInt8
	i++
	require.Equal(t, types.MinInt8, i)
}

func TestBoolAndText(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, types.BoolFalse, types.BoolTrue)
	assert.True(t, types.BoolTrue)

	var s types.String = "héllo"
	b := types.Bytes(s)
	assert.Equal(t, s, types.String(b))
	assert.Equal(t, 6, textLen(s))
	assert.Equal(t, 6, textLen(b))
	assert.Equal(t, 0, textLen(types.Bytes(nil)))
}

func textLen[T types.Text](v T) int { return len(v) }
