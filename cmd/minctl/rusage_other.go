//go:build !unix

package main

import "time"

func processUsage() (peakRSS int64, cpu time.Duration, ok bool) {
	return 0, 0, false
}
