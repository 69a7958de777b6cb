// value.go
//
// Runtime value carrier for the probe boundary.
//
// The harness is called from a dynamically typed embedding caller, so every
// argument and result crosses as a tagged Value. This is the minimal slice of
// a host value model the probes need: scalars, boxed callables, and opaque
// handles. There is no map/array machinery here on purpose — no probe takes
// or returns an aggregate.
package ffiprobe

import (
	"fmt"
	"strconv"
)

// ValueTag enumerates the runtime kinds a Value may hold. The tag determines
// which Go type Value.Data carries.
type ValueTag int

const (
	VTNull   ValueTag = iota // null (no payload)
	VTBool                   // bool
	VTInt                    // int64
	VTNum                    // float64
	VTStr                    // string
	VTFun                    // Applier (boxed callable supplied by the caller)
	VTHandle                 // *Handle (opaque host value)
)

// Value is the universal carrier used at the probe boundary.
//
// Invariants:
//   - When Tag==VTNull, Data is nil.
//   - When Tag==VTHandle, Data is *Handle.
//   - When Tag==VTFun, Data satisfies Applier.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// String renders a human-friendly debug representation.
func (v Value) String() string {
	switch v.Tag {
	case VTNull:
		return "null"
	case VTBool:
		return fmt.Sprintf("%v", v.Data.(bool))
	case VTInt:
		return strconv.FormatInt(v.Data.(int64), 10)
	case VTNum:
		return strconv.FormatFloat(v.Data.(float64), 'g', -1, 64)
	case VTStr:
		return fmt.Sprintf("%q", v.Data.(string))
	case VTFun:
		return "<fun>"
	case VTHandle:
		return "<handle " + v.Data.(*Handle).Kind + ">"
	default:
		return "<unknown>"
	}
}

// Null is the singleton null Value.
var Null = Value{Tag: VTNull}

// Primitive constructors for convenience.
func Bool(b bool) Value   { return Value{Tag: VTBool, Data: b} }
func Int(n int64) Value   { return Value{Tag: VTInt, Data: n} }
func Num(f float64) Value { return Value{Tag: VTNum, Data: f} }
func Str(s string) Value  { return Value{Tag: VTStr, Data: s} }

// Handle is an opaque, universal host value (Lua-like userdata). Kind is a
// semantic tag checked on unboxing; Data is whatever the owning probe stored.
type Handle struct {
	Kind string
	Data any
}

// HandleVal boxes kind/data into a VTHandle Value.
func HandleVal(kind string, data any) Value {
	return Value{Tag: VTHandle, Data: &Handle{Kind: kind, Data: data}}
}

func asHandle(v Value, want string) *Handle {
	if v.Tag != VTHandle {
		fail("expected handle")
	}
	h := v.Data.(*Handle)
	if want != "" && h.Kind != want {
		fail("wrong handle kind: have " + h.Kind + ", want " + want)
	}
	return h
}

// mustInt unboxes a VTInt or fails. Bools coerce 0/1 the way C callers see
// them; anything else is a boundary misuse.
func mustInt(v Value) int64 {
	switch v.Tag {
	case VTInt:
		return v.Data.(int64)
	case VTBool:
		if v.Data.(bool) {
			return 1
		}
		return 0
	}
	fail("expected Int, got " + v.String())
	return 0
}
