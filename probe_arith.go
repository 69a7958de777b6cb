// probe_arith.go
//
// Arithmetic probes:
//  1. add(a: Int, b: Int) -> Int
//  2. timedIncrementLoop() -> Num
//
// add is the reference two-int export every closure probe can also target.
// timedIncrementLoop exists to let a caller compare the cost of crossing the
// boundary a million times against a native-only loop of the same shape.
package ffiprobe

import (
	"time"
)

// incrementLoopCount is fixed by the fixture contract.
const incrementLoopCount = 1_000_000

func registerArithProbes(h *Harness) {
	// add(a, b) -> Int
	h.Register("add",
		[]ParamSpec{{Name: "a", Type: "Int"}, {Name: "b", Type: "Int"}},
		"Int",
		func(_ *Harness, ctx CallCtx) Value {
			a := mustInt(ctx.MustArg("a"))
			b := mustInt(ctx.MustArg("b"))
			// Plain two's-complement addition; overflow wraps, as in C.
			return Int(a + b)
		},
	)
	h.SetDoc("add", `Return a + b. Pure; no overflow checking.

Params:
	a: Int
	b: Int

Returns:
	Int`)

	// timedIncrementLoop() -> Num
	h.Register("timedIncrementLoop", nil, "Num",
		func(h *Harness, _ CallCtx) Value {
			var acc int64
			start := time.Now()
			for i := 0; i < incrementLoopCount; i++ {
				acc = mustInt(h.invoke("add", Int(acc), Int(1)))
			}
			elapsed := time.Since(start).Seconds()
			if acc != incrementLoopCount {
				failf("increment loop drifted: %d", acc)
			}
			return Num(elapsed)
		},
	)
	h.SetDoc("timedIncrementLoop", `Increment an accumulator 1,000,000 times by
dispatching add through the boundary, once per iteration.

Returns:
	Num — elapsed wall-clock seconds (always >= 0)

Notes:
	• Benchmarks boundary-crossing cost; compare against a native loop.`)
}
