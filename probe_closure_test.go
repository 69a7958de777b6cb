package ffiprobe

import "testing"

// adder returns a boxed (Int, Int) -> Int closure counting its invocations.
func adder(calls *int) Value {
	return GoFun(func(args []Value) Value {
		*calls++
		return Int(args[0].Data.(int64) + args[1].Data.(int64))
	})
}

// ===== Single-callback probe =====

func Test_Closure_invokeTwice_returns_72(t *testing.T) {
	h := New()
	var calls int
	eqi(t, h, 72, "invokeTwice", adder(&calls)) // (12+24)*2
	if calls != 2 {
		t.Fatalf("callback should be invoked exactly twice, got %d", calls)
	}
}

func Test_Closure_invokeBinary_as_callback_target(t *testing.T) {
	h := New()
	fn, err := h.ProbeFun("invokeBinary")
	if err != nil {
		t.Fatalf("ProbeFun: %v", err)
	}
	eqi(t, h, 72, "invokeTwice", fn)
}

func Test_Closure_invokeBinary_plain(t *testing.T) {
	h := New()
	eqi(t, h, 36, "invokeBinary", Int(12), Int(24))
}

// ===== Multi-signature probes: one invocation each =====

func Test_Closure_multi_matrix(t *testing.T) {
	t.Run("binary", func(t *testing.T) {
		h := New()
		var calls int
		eqi(t, h, 72, "callWithBinaryClosure", adder(&calls))
		if calls != 1 {
			t.Fatalf("binary closure invoked %d times, want 1", calls)
		}
	})

	t.Run("niladic", func(t *testing.T) {
		h := New()
		var calls int
		f := GoFun(func(_ []Value) Value {
			calls++
			return Null
		})
		v := callOK(t, h, "callWithNiladicClosure", f)
		if v.Tag != VTNull {
			t.Fatalf("niladic probe should return Null, got %s", v)
		}
		if calls != 1 {
			t.Fatalf("niladic closure invoked %d times, want 1", calls)
		}
	})

	t.Run("pointer", func(t *testing.T) {
		h := New()
		var calls int
		f := GoFun(func(args []Value) Value {
			calls++
			a := args[0].Data.(int64)
			deref := callOK(t, h, "derefInt", args[1])
			return Int(a + deref.Data.(int64))
		})
		eqi(t, h, 72, "callWithPointerClosure", f) // (12+24)*2
		if calls != 1 {
			t.Fatalf("pointer closure invoked %d times, want 1", calls)
		}
	})
}

func Test_Closure_pointer_result_ignores_pointer(t *testing.T) {
	// A callee that never reads through the pointer is fine too.
	h := New()
	f := GoFun(func(args []Value) Value {
		return args[0] // returns a = 12
	})
	eqi(t, h, 24, "callWithPointerClosure", f)
}

// ===== Boundary misuse surfaces as errors, not validation =====

func Test_Closure_non_callable_rejected_at_bind(t *testing.T) {
	h := New()
	callErr(t, h, "expected callable", "invokeTwice", Int(7))
	callErr(t, h, "expected callable", "callWithNiladicClosure", Str("nope"))
}

func Test_Closure_derefInt_wrong_handle_kind(t *testing.T) {
	h := New()
	s := callOK(t, h, "sampleClock")
	callErr(t, h, "wrong handle kind", "derefInt", s)
}
