package ffiprobe

import "testing"

func Test_Value_String_renderings(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Null, "null"},
		{Bool(true), "true"},
		{Int(-42), "-42"},
		{Num(1.5), "1.5"},
		{Str("hi"), `"hi"`},
		{GoFun(func([]Value) Value { return Null }), "<fun>"},
		{HandleVal("clock", clockTicks(7)), "<handle clock>"},
	}
	for _, tc := range cases {
		if got := tc.v.String(); got != tc.want {
			t.Fatalf("String(%v tag=%d): want %q, got %q", tc.v.Data, tc.v.Tag, tc.want, got)
		}
	}
}

func Test_Value_GoFun_applies(t *testing.T) {
	f := GoFun(func(args []Value) Value {
		return Int(int64(len(args)))
	})
	ap := f.Data.(Applier)
	if got := ap.Apply([]Value{Null, Null, Null}); got.Data.(int64) != 3 {
		t.Fatalf("Apply: want 3, got %s", got)
	}
}
