package upcast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type celsius int8

func TestReflexive(t *testing.T) {
	assert.Equal(t, uint8(math.MaxUint8), ToUint8(uint8(math.MaxUint8)))
	assert.Equal(t, uint16(math.MaxUint16), ToUint16(uint16(math.MaxUint16)))
	assert.Equal(t, uint32(math.MaxUint32), ToUint32(uint32(math.MaxUint32)))
	assert.Equal(t, uint64(math.MaxUint64), ToUint64(uint64(math.MaxUint64)))
	assert.Equal(t, int8(math.MinInt8), ToInt8(int8(math.MinInt8)))
	assert.Equal(t, int16(math.MinInt16), ToInt16(int16(math.MinInt16)))
	assert.Equal(t, int32(math.MinInt32), ToInt32(int32(math.MinInt32)))
	assert.Equal(t, int64(math.MinInt64), ToInt64(int64(math.MinInt64)))
	assert.Equal(t, float32(math.MaxFloat32), ToFloat32(float32(math.MaxFloat32)))
	assert.Equal(t, math.SmallestNonzeroFloat64, ToFloat64(math.SmallestNonzeroFloat64))

	assert.Equal(t, int64(math.MaxInt64), FromInt64[int64](math.MaxInt64))
	assert.Equal(t, float64(-0.5), FromFloat64[float64](-0.5))
}

func TestIdentity(t *testing.T) {
	assert.Equal(t, uint8(7), Identity(uint8(7)))
	assert.Equal(t, int32(-7), Identity(int32(-7)))
	assert.Equal(t, float32(1.5), Identity(float32(1.5)))
	assert.Equal(t, celsius(-40), Identity(celsius(-40)))
	assert.True(t, math.IsInf(Identity(math.Inf(1)), 1))
}

func TestDirectFacts(t *testing.T) {
	assert.Equal(t, uint16(255), ToUint16(uint8(255)))
	assert.Equal(t, uint16(255), Uint8ToUint16(255))
	assert.Equal(t, uint32(math.MaxUint16), Uint16ToUint32(math.MaxUint16))
	assert.Equal(t, uint64(math.MaxUint32), Uint32ToUint64(math.MaxUint32))

	assert.Equal(t, int64(-1), ToInt64(int32(-1)))
	assert.Equal(t, int64(-1), Int32ToInt64(-1))
	assert.Equal(t, int16(math.MinInt8), Int8ToInt16(math.MinInt8))
	assert.Equal(t, int32(math.MaxInt16), Int16ToInt32(math.MaxInt16))

	tenth := float32(0.1)
	assert.Equal(t, float64(tenth), Float32ToFloat64(tenth))
	assert.Equal(t, float32(-1<<63), Int64ToFloat32(math.MinInt64))
}

func TestUint64ToFloat32Rounds(t *testing.T) {
	// 2^64-1 has no float32 representation; the nearest is 2^64.
	want := float32(1 << 64)
	assert.Equal(t, want, ToFloat32(uint64(math.MaxUint64)))
	assert.Equal(t, want, Uint64ToFloat32(math.MaxUint64))
	assert.Equal(t, float64(want), ToFloat64(uint64(math.MaxUint64)))
}

func TestTransitive(t *testing.T) {
	staged := ToUint64(ToUint32(ToUint16(uint8(200))))
	assert.Equal(t, uint64(200), staged)
	assert.Equal(t, staged, ToUint64(uint8(200)))
	assert.Equal(t, uint64(200), FromUint8[uint64](200))

	for _, v := range []int8{math.MinInt8, -1, 0, 1, math.MaxInt8} {
		chain := Float32ToFloat64(Int64ToFloat32(Int32ToInt64(Int16ToInt32(Int8ToInt16(v)))))
		assert.Equal(t, chain, ToFloat64(v), "int8 %d", v)
		assert.Equal(t, float64(v), ToFloat64(v))
	}

	for _, v := range []uint32{0, 1, 1<<24 + 1, math.MaxUint32} {
		chain := Uint64ToFloat32(Uint32ToUint64(v))
		assert.Equal(t, chain, ToFloat32(v), "uint32 %d", v)
		assert.Equal(t, chain, FromUint32[float32](v))
	}

	for _, v := range []int64{math.MinInt64, -(1 << 53), 1<<53 + 1, math.MaxInt64} {
		assert.Equal(t, Float32ToFloat64(Int64ToFloat32(v)), ToFloat64(v), "int64 %d", v)
	}
}

func TestFloat64RoundsThroughFloat32(t *testing.T) {
	// 2^24+1 is exact in float64 but not in float32.
	const odd = 1<<24 + 1
	assert.Equal(t, float64(1<<24), ToFloat64(int32(odd)))
	assert.Equal(t, float64(1<<24), ToFloat64(uint32(odd)))
	assert.Equal(t, float64(1<<24), FromInt32[float64](odd))
	assert.Equal(t, float32(1<<24), FromInt32[float32](odd))
	assert.Equal(t, int64(odd), FromInt32[int64](odd))

	// Float sources keep their precision.
	assert.Equal(t, float64(odd), ToFloat64(float64(odd)))
	assert.Equal(t, float64(1<<53-1), ToFloat64(float64(1<<53-1)))
}

func TestFloat32Predecessors(t *testing.T) {
	assert.Equal(t, float32(-1), ToFloat32(int64(-1)))
	assert.Equal(t, float32(1), ToFloat32(uint64(1)))
	assert.Equal(t, float32(-128), ToFloat32(int8(-128)))
	assert.Equal(t, float32(255), ToFloat32(uint8(255)))
}

func TestNamedKinds(t *testing.T) {
	assert.Equal(t, int64(-40), ToInt64(celsius(-40)))
	assert.Equal(t, float64(-40), ToFloat64(celsius(-40)))

	type bytes uint16
	assert.Equal(t, bytes(300), FromUint8[bytes](255)+45)
}

func sumTo[T Uint32Target](xs []uint16) T {
	var total T
	for _, x := range xs {
		total += FromUint16[T](x)
	}
	return total
}

func TestGenericTarget(t *testing.T) {
	xs := []uint16{math.MaxUint16, math.MaxUint16, 2}
	assert.Equal(t, uint32(2*math.MaxUint16+2), sumTo[uint32](xs))
	assert.Equal(t, uint64(2*math.MaxUint16+2), sumTo[uint64](xs))
	assert.Equal(t, float64(2*math.MaxUint16+2), sumTo[float64](xs))
}

func TestIsFloat(t *testing.T) {
	assert.True(t, isFloat[float32]())
	assert.True(t, isFloat[float64]())
	assert.False(t, isFloat[uint8]())
	assert.False(t, isFloat[uint64]())
	assert.False(t, isFloat[int8]())
	assert.False(t, isFloat[int64]())
	assert.False(t, isFloat[celsius]())
}
