// harness.go
//
// Probe registry and dispatch boundary.
//
// A Harness plays the role of the loaded fixture library: a flat table of
// exported, fixed-arity symbols that a dynamically typed embedding caller
// resolves by name and invokes with tagged Values. Registration declares the
// parameter names/types and return type for tooling; dispatch binds arguments
// positionally and converts probe panics to errors exactly once, at the
// boundary.
package ffiprobe

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ParamSpec documents one probe parameter: name plus a coarse type label
// ("Int", "Num", "Str", "Fun", "Handle", "Any") used by list/doc tooling.
type ParamSpec struct {
	Name string
	Type string
}

// CallCtx gives a probe implementation access to its bound arguments by
// parameter name.
type CallCtx interface {
	Arg(name string) (Value, bool)
	MustArg(name string) Value
}

// NativeImpl is the implementation signature of a registered probe.
type NativeImpl func(h *Harness, ctx CallCtx) Value

// NativeMeta describes one registered probe for enumeration.
type NativeMeta struct {
	Name   string
	Params []ParamSpec
	Ret    string
	Doc    string
}

type native struct {
	meta NativeMeta
	impl NativeImpl
}

// Harness holds the registered probes. All probes are synchronous and
// self-contained; the harness itself carries no mutable call state, so a
// single Harness may be invoked repeatedly and in any order.
type Harness struct {
	natives map[string]*native
	order   []string
	log     logrus.FieldLogger
}

// New returns a harness with every probe group registered.
func New() *Harness {
	h := &Harness{natives: map[string]*native{}}

	// Default logger stays quiet: observability emits are debug-level noise
	// unless the host opts in via SetLogger.
	lg := logrus.New()
	lg.SetOutput(io.Discard)
	h.log = lg

	registerArithProbes(h)
	registerClosureProbes(h)
	registerMultiClosureProbes(h)
	registerClockProbes(h)
	return h
}

// SetLogger replaces the harness logger used for probe observability output
// (e.g. callback address/result emits).
func (h *Harness) SetLogger(lg logrus.FieldLogger) {
	if lg == nil {
		fail("nil logger")
	}
	h.log = lg
}

// Register installs a probe under name. Duplicate names are a programming
// error and panic at startup.
func (h *Harness) Register(name string, params []ParamSpec, ret string, impl NativeImpl) {
	if _, dup := h.natives[name]; dup {
		panic("ffiprobe: duplicate probe name: " + name)
	}
	h.natives[name] = &native{
		meta: NativeMeta{Name: name, Params: params, Ret: ret},
		impl: impl,
	}
	h.order = append(h.order, name)
}

// SetDoc attaches a docstring to a registered probe.
func (h *Harness) SetDoc(name, doc string) {
	if n, ok := h.natives[name]; ok {
		n.meta.Doc = doc
	}
}

// Probes enumerates registered probes in registration order.
func (h *Harness) Probes() []NativeMeta {
	out := make([]NativeMeta, 0, len(h.order))
	for _, name := range h.order {
		out = append(out, h.natives[name].meta)
	}
	return out
}

// Lookup returns the metadata for one probe.
func (h *Harness) Lookup(name string) (NativeMeta, bool) {
	n, ok := h.natives[name]
	if !ok {
		return NativeMeta{}, false
	}
	return n.meta, true
}

// callFrame binds declared parameter names to positional arguments.
type callFrame struct {
	params []ParamSpec
	args   []Value
}

func (c *callFrame) Arg(name string) (Value, bool) {
	for i, p := range c.params {
		if p.Name == name {
			return c.args[i], true
		}
	}
	return Null, false
}

func (c *callFrame) MustArg(name string) Value {
	v, ok := c.Arg(name)
	if !ok {
		fail("missing argument: " + name)
	}
	return v
}

// Call resolves name and invokes the probe with args bound positionally.
// Unknown symbols and argument-count mismatches are host-side errors; once
// dispatch enters the probe, misuse follows the fixtures' undefined-behavior
// contract (failures surface as wrapped errors, not validation).
func (h *Harness) Call(name string, args ...Value) (v Value, err error) {
	n, ok := h.natives[name]
	if !ok {
		return Null, errors.Errorf("unknown probe: %s", name)
	}
	if len(args) != len(n.meta.Params) {
		return Null, errors.Errorf("probe %s: want %d args, got %d",
			name, len(n.meta.Params), len(args))
	}
	defer recoverCallErr(name, &err)
	v = n.impl(h, &callFrame{params: n.meta.Params, args: args})
	return v, nil
}

// ProbeFun boxes a registered probe as a callable Value, so one probe can be
// handed to another as its callback target (e.g. invokeBinary into
// invokeTwice).
func (h *Harness) ProbeFun(name string) (Value, error) {
	n, ok := h.natives[name]
	if !ok {
		return Null, errors.Errorf("unknown probe: %s", name)
	}
	return GoFun(func(args []Value) Value {
		return n.impl(h, &callFrame{params: n.meta.Params, args: args})
	}), nil
}

// invoke dispatches through the same path as Call but keeps the panic
// discipline of the caller. timedIncrementLoop uses it so each iteration pays
// the full boundary cost (lookup, frame binding, tagged marshalling).
func (h *Harness) invoke(name string, args ...Value) Value {
	n, ok := h.natives[name]
	if !ok {
		fail("unknown probe: " + name)
	}
	return n.impl(h, &callFrame{params: n.meta.Params, args: args})
}
