//go:build unix

package main

import (
	"runtime"
	"time"

	"golang.org/x/sys/unix"
)

// processUsage reports the peak resident set size in bytes and the CPU time
// consumed by this process so far.
func processUsage() (peakRSS int64, cpu time.Duration, ok bool) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, 0, false
	}
	peakRSS = int64(ru.Maxrss)
	if runtime.GOOS != "darwin" {
		// Linux and the BSDs report kilobytes.
		peakRSS *= 1024
	}
	cpu = time.Duration(ru.Utime.Nano() + ru.Stime.Nano())
	return peakRSS, cpu, true
}
