package ffiprobe

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestHarnessUnknownProbe(t *testing.T) {
	h := New()
	_, err := h.Call("noSuchProbe")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown probe")
}

func TestHarnessArityMismatch(t *testing.T) {
	h := New()
	_, err := h.Call("add", Int(1))
	require.Error(t, err)
	require.Contains(t, err.Error(), "want 2 args, got 1")

	_, err = h.Call("sampleClock", Int(1))
	require.Error(t, err)
}

func TestHarnessRegistrationSurface(t *testing.T) {
	h := New()

	names := make([]string, 0)
	for _, m := range h.Probes() {
		names = append(names, m.Name)
	}
	require.Equal(t, []string{
		"add", "timedIncrementLoop",
		"invokeTwice", "invokeBinary",
		"callWithBinaryClosure", "callWithNiladicClosure",
		"callWithPointerClosure", "derefInt",
		"sampleClock", "clockValueSize", "elapsedSeconds",
	}, names)

	m, ok := h.Lookup("invokeTwice")
	require.True(t, ok)
	require.Equal(t, "Int", m.Ret)
	require.Len(t, m.Params, 1)
	require.Equal(t, "Fun", m.Params[0].Type)
	require.NotEmpty(t, m.Doc)

	_, ok = h.Lookup("missing")
	require.False(t, ok)
}

func TestHarnessDuplicateRegistrationPanics(t *testing.T) {
	h := New()
	require.Panics(t, func() {
		h.Register("add", nil, "Int", func(*Harness, CallCtx) Value { return Null })
	})
}

func TestHarnessProbeFunUnknown(t *testing.T) {
	h := New()
	_, err := h.ProbeFun("missing")
	require.Error(t, err)
}

func TestHarnessProbesAreOrderIndependent(t *testing.T) {
	// No ordering constraints between probe groups: interleave them.
	h := New()
	s := callOK(t, h, "sampleClock")
	eqi(t, h, 3, "add", Int(1), Int(2))
	callOK(t, h, "elapsedSeconds", s, s)
	eqi(t, h, 36, "invokeBinary", Int(12), Int(24))
	eqi(t, h, 3, "add", Int(1), Int(2))
}

func TestHarnessObservabilityEmit(t *testing.T) {
	h := New()
	lg, hook := test.NewNullLogger()
	lg.SetLevel(logrus.DebugLevel)
	h.SetLogger(lg)

	var calls int
	eqi(t, h, 72, "invokeTwice", adder(&calls))

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	require.EqualValues(t, 36, entry.Data["result"])
	require.NotEmpty(t, entry.Data["callback"])
}

func TestHarnessProbePanicBecomesError(t *testing.T) {
	h := New()
	boom := GoFun(func(_ []Value) Value {
		panic("callee blew up")
	})
	_, err := h.Call("callWithNiladicClosure", boom)
	require.Error(t, err)
	require.Contains(t, err.Error(), "callee blew up")
}
