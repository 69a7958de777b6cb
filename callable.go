// callable.go
//
// Tagged callable abstraction for callbacks crossing the boundary.
//
// The fixtures enumerate exactly three callback signatures; each gets its own
// Go-side variant. The embedding caller supplies a boxed invocable (Applier)
// inside a VTFun Value; the probe binds it to the fixed signature and invokes
// it synchronously. Callables are never stored beyond the call that received
// them.
package ffiprobe

// Fixed callback signatures, one per wire shape.
type (
	// BinaryFn is the (int, int) -> int callback shape.
	BinaryFn func(a, b int64) int64
	// NiladicFn is the () -> void callback shape.
	NiladicFn func()
	// PointerFn is the (int, *int) -> int callback shape. The pointer is a
	// borrowed reference valid for this call only.
	PointerFn func(a int64, p *int64) int64
)

// Applier is the boxed invocable an embedding caller passes across the
// boundary. Arguments and result are tagged Values; the probe side treats the
// callable as opaque.
type Applier interface {
	Apply(args []Value) Value
}

type applierFunc func(args []Value) Value

func (f applierFunc) Apply(args []Value) Value { return f(args) }

// GoFun boxes a host Go function into a callable Value, the counterpart of a
// caller-supplied closure. Tests and the CLI use it to hand probes to probes.
func GoFun(fn func(args []Value) Value) Value {
	return Value{Tag: VTFun, Data: applierFunc(fn)}
}

// FunVal boxes any Applier into a VTFun Value.
func FunVal(ap Applier) Value { return Value{Tag: VTFun, Data: ap} }

func mustApplier(v Value) Applier {
	if v.Tag != VTFun {
		fail("expected callable, got " + v.String())
	}
	return v.Data.(Applier)
}

// HandleKindIntPtr tags a borrowed *int64 crossing into a pointer-shaped
// callback. derefInt reads through it.
const HandleKindIntPtr = "int*"

// bindBinary marshals a dynamic callable into the two-int signature.
func bindBinary(v Value) BinaryFn {
	ap := mustApplier(v)
	return func(a, b int64) int64 {
		return mustInt(ap.Apply([]Value{Int(a), Int(b)}))
	}
}

// bindNiladic marshals a dynamic callable into the no-arg, no-result
// signature. Whatever the callee returns is discarded.
func bindNiladic(v Value) NiladicFn {
	ap := mustApplier(v)
	return func() {
		ap.Apply(nil)
	}
}

// bindPointer marshals a dynamic callable into the pointer-arg signature.
// The *int64 crosses as an opaque int* handle scoped to the invocation; a
// callee that retains the handle past the call sees undefined behavior, as in
// the original fixtures.
func bindPointer(v Value) PointerFn {
	ap := mustApplier(v)
	return func(a int64, p *int64) int64 {
		return mustInt(ap.Apply([]Value{Int(a), HandleVal(HandleKindIntPtr, p)}))
	}
}
