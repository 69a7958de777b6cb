// probe_clock.go
//
// Clock utility probes:
//  1. sampleClock() -> Handle("clock")
//  2. clockValueSize() -> Int
//  3. elapsedSeconds(before: Handle, after: Handle) -> Num
package ffiprobe

// HandleKindClock tags opaque clock samples.
const HandleKindClock = "clock"

func registerClockProbes(h *Harness) {
	// sampleClock() -> Handle
	h.Register("sampleClock", nil, "Handle",
		func(_ *Harness, _ CallCtx) Value {
			return HandleVal(HandleKindClock, sampleTicks())
		},
	)
	h.SetDoc("sampleClock", `Take an opaque process-clock sample.

Returns:
	Handle — monotonic within this process run; only meaningful as an
	argument to elapsedSeconds against another sample from the same run.`)

	// clockValueSize() -> Int
	h.Register("clockValueSize", nil, "Int",
		func(_ *Harness, _ CallCtx) Value {
			return Int(clockValueBytes())
		},
	)
	h.SetDoc("clockValueSize", `Storage size in bytes of the opaque clock value,
for cross-boundary layout validation.

Returns:
	Int — a fixed positive constant for a given platform/build.`)

	// elapsedSeconds(before, after) -> Num
	h.Register("elapsedSeconds",
		[]ParamSpec{{Name: "before", Type: "Handle"}, {Name: "after", Type: "Handle"}},
		"Num",
		func(_ *Harness, ctx CallCtx) Value {
			before := clockArg(ctx, "before")
			after := clockArg(ctx, "after")
			return Num(ticksToSeconds(after - before))
		},
	)
	h.SetDoc("elapsedSeconds", `Difference between two clock samples, converted
to seconds by the platform ticks-per-second constant. If after was sampled
before before, the result may be negative; its meaning is undefined.

Params:
	before: Handle — clock sample
	after: Handle — clock sample from the same process run

Returns:
	Num — (after - before) in seconds`)
}

func clockArg(ctx CallCtx, name string) clockTicks {
	hv := asHandle(ctx.MustArg(name), HandleKindClock)
	t, ok := hv.Data.(clockTicks)
	if !ok {
		fail("bad clock payload in " + name)
	}
	return t
}
