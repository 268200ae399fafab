// Package upcast converts between primitive numeric kinds along lossless
// widening paths, checked entirely at compile time.
//
// The kinds follow two pyramids that meet at the floats:
//
//	uint8 → uint16 → uint32 → uint64 → float32 → float64
//	 int8 →  int16 →  int32 →  int64 → float32 → float64
//
// Every kind widens to itself. Signed and unsigned integers never mix, and
// nothing narrows. The one step that is not bit-exact is the 64-bit integer
// to float32 step, which rounds to nearest like any Go conversion. Integer
// values reaching float64 pass through that step, so ToFloat64(int32(x))
// equals float64(float32(x)).
//
// ToK accepts any source kind that widens to K:
//
//	var n uint64 = upcast.ToUint64(uint8(200))
//	upcast.ToUint32(uint64(1)) // compile error: uint64 does not satisfy Uint32Source
//
// FromK serves callers that are generic over the target. Inside a function
// constrained by Uint32Target, any kind up to uint32 can be widened into T:
//
//	func sum[T upcast.Uint32Target](xs []uint16) T {
//		var total T
//		for _, x := range xs {
//			total += upcast.FromUint16[T](x)
//		}
//		return total
//	}
//
// The single-step functions such as Uint8ToUint16 accept exactly one declared
// fact and ignore transitivity; prefer ToK and FromK.
//
// The constraints and functions are generated from the fact table in
// internal/relation/facts.cue.
package upcast

//go:generate go run ./cmd/upcastgen generate -o upcast_gen.go
