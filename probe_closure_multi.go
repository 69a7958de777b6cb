// probe_closure_multi.go
//
// Multi-signature closure probes — three independent entry points, each
// taking a distinct callback shape and invoking it exactly once:
//  1. callWithBinaryClosure(f: Fun) -> Int        // (Int, Int) -> Int
//  2. callWithNiladicClosure(f: Fun) -> Null      // () -> void
//  3. callWithPointerClosure(f: Fun) -> Int       // (Int, int*) -> Int
//
// Plus derefInt(p: Handle) -> Int so a dynamically typed callee can read
// through the borrowed pointer argument.
package ffiprobe

func registerMultiClosureProbes(h *Harness) {
	// callWithBinaryClosure(f) -> Int
	h.Register("callWithBinaryClosure",
		[]ParamSpec{{Name: "f", Type: "Fun"}},
		"Int",
		func(_ *Harness, ctx CallCtx) Value {
			f := bindBinary(ctx.MustArg("f"))
			return Int(f(12, 24) * 2)
		},
	)
	h.SetDoc("callWithBinaryClosure", `Invoke f(12, 24) once and return the
result doubled.

Params:
	f: Fun — (Int, Int) -> Int

Returns:
	Int — f(12, 24) * 2`)

	// callWithNiladicClosure(f) -> Null
	h.Register("callWithNiladicClosure",
		[]ParamSpec{{Name: "f", Type: "Fun"}},
		"Null",
		func(_ *Harness, ctx CallCtx) Value {
			f := bindNiladic(ctx.MustArg("f"))
			f()
			return Null
		},
	)
	h.SetDoc("callWithNiladicClosure", `Invoke f() once, discarding any result.

Params:
	f: Fun — () -> void

Returns:
	Null`)

	// callWithPointerClosure(f) -> Int
	h.Register("callWithPointerClosure",
		[]ParamSpec{{Name: "f", Type: "Fun"}},
		"Int",
		func(_ *Harness, ctx CallCtx) Value {
			f := bindPointer(ctx.MustArg("f"))
			// Caller-owned local; the callee borrows it for this call only.
			local := int64(24)
			return Int(f(12, &local) * 2)
		},
	)
	h.SetDoc("callWithPointerClosure", `Invoke f(12, p) once, where p points at
a local Int holding 24, and return the result doubled. p is valid for the
duration of the call only; retaining it is undefined behavior.

Params:
	f: Fun — (Int, int*) -> Int

Returns:
	Int — f(12, &24) * 2`)

	// derefInt(p) -> Int
	h.Register("derefInt",
		[]ParamSpec{{Name: "p", Type: "Handle"}},
		"Int",
		func(_ *Harness, ctx CallCtx) Value {
			hv := asHandle(ctx.MustArg("p"), HandleKindIntPtr)
			p, ok := hv.Data.(*int64)
			if !ok || p == nil {
				fail("derefInt: bad pointer payload")
			}
			return Int(*p)
		},
	)
	h.SetDoc("derefInt", `Read the Int a borrowed int* handle points at.

Params:
	p: Handle — int* handle received inside a pointer-shaped callback

Returns:
	Int`)
}
