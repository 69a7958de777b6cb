// clock_ticks.go
//
// Opaque process-clock representation backing the clock probes.
//
// A sample is the process's consumed CPU time (user + system) expressed in
// ticks at clocksPerSec resolution — the shape of C's clock_t under the POSIX
// CLOCKS_PER_SEC constant. Samples are monotonic within one process lifetime,
// carry no cross-process meaning, and are only valid for subtraction against
// another sample from the same run.
package ffiprobe

import (
	"os"
	"sync"
	"unsafe"

	"github.com/shirou/gopsutil/v4/process"
)

// clockTicks is the opaque clock value. Fixed-width so the caller-visible
// storage size is a platform constant.
type clockTicks int64

// clocksPerSec converts ticks to seconds. POSIX pins CLOCKS_PER_SEC to one
// million regardless of the actual timer granularity.
const clocksPerSec = 1_000_000

var (
	selfOnce sync.Once
	selfProc *process.Process
	selfErr  error
)

func self() *process.Process {
	selfOnce.Do(func() {
		selfProc, selfErr = process.NewProcess(int32(os.Getpid()))
	})
	if selfErr != nil {
		failf("clock: cannot resolve own process: %v", selfErr)
	}
	return selfProc
}

// sampleTicks reads the current process CPU time as ticks.
func sampleTicks() clockTicks {
	times, err := self().Times()
	if err != nil {
		failf("clock: cpu times: %v", err)
	}
	return clockTicks((times.User + times.System) * clocksPerSec)
}

// ticksToSeconds converts a tick difference to seconds. A negative delta
// (misordered samples) converts as-is; its meaning is undefined by contract.
func ticksToSeconds(delta clockTicks) float64 {
	return float64(delta) / clocksPerSec
}

// clockValueBytes is the storage size of the opaque value, exposed for
// cross-boundary layout validation.
func clockValueBytes() int64 {
	return int64(unsafe.Sizeof(clockTicks(0)))
}
