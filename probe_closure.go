// probe_closure.go
//
// Single-callback closure probe:
//  1. invokeTwice(callback: Fun) -> Int
//  2. invokeBinary(a: Int, b: Int) -> Int
//
// invokeTwice validates that one two-int callable can cross the boundary and
// be invoked repeatedly; invokeBinary is a plain export usable as its target.
package ffiprobe

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

func registerClosureProbes(h *Harness) {
	// invokeTwice(callback) -> Int
	h.Register("invokeTwice",
		[]ParamSpec{{Name: "callback", Type: "Fun"}},
		"Int",
		func(h *Harness, ctx CallCtx) Value {
			cbv := ctx.MustArg("callback")
			cb := bindBinary(cbv)

			first := cb(12, 24)
			h.log.WithFields(logrus.Fields{
				"callback": fmt.Sprintf("%p", cbv.Data),
				"result":   first,
			}).Debug("invokeTwice: first invocation")

			return Int(cb(12, 24) * 2)
		},
	)
	h.SetDoc("invokeTwice", `Invoke callback(12, 24) twice and return the second
result doubled. The first result is logged, not returned.

Params:
	callback: Fun — (Int, Int) -> Int; must be non-null and correctly shaped
	(misuse is undefined, not validated)

Returns:
	Int — callback(12, 24) * 2`)

	// invokeBinary(a, b) -> Int
	h.Register("invokeBinary",
		[]ParamSpec{{Name: "a", Type: "Int"}, {Name: "b", Type: "Int"}},
		"Int",
		func(_ *Harness, ctx CallCtx) Value {
			return Int(mustInt(ctx.MustArg("a")) + mustInt(ctx.MustArg("b")))
		},
	)
	h.SetDoc("invokeBinary", `Plain two-int addition, provided as a ready-made
target for the callback probes.

Params:
	a: Int
	b: Int

Returns:
	Int`)
}
