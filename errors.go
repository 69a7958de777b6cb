// errors.go
//
// Panic/error discipline at the probe boundary. Inside a probe, misuse of the
// host surface aborts via fail(); the panic is converted to an ordinary Go
// error exactly once, at Harness.Call. Nothing below the boundary returns
// errors — the probes preserve the fixtures' "undefined on misuse" contract
// and do not validate callback signatures or pointer lifetimes.
package ffiprobe

import (
	"fmt"

	"github.com/pkg/errors"
)

type rtErr struct {
	msg string
}

func fail(msg string) { panic(rtErr{msg: msg}) }

func failf(format string, args ...any) { panic(rtErr{msg: fmt.Sprintf(format, args...)}) }

// recoverCallErr converts a probe panic into an error, leaving non-rtErr
// panics annotated so programming errors still surface loudly.
func recoverCallErr(name string, errp *error) {
	r := recover()
	if r == nil {
		return
	}
	switch sig := r.(type) {
	case rtErr:
		*errp = errors.Errorf("probe %s: %s", name, sig.msg)
	default:
		*errp = errors.Errorf("probe %s: panic: %v", name, r)
	}
}
