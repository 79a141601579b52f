// Package profiler records named scopes for speedscope captures when built
// with the "profile" tag, and reports runtime counters in every build.
package profiler

import "runtime"

// Stats is a snapshot of runtime counters for on-screen display.
type Stats struct {
	HeapAlloc  uint64
	Mallocs    uint64
	Goroutines int
	CPUs       int
}

func ReadStats() Stats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Stats{
		HeapAlloc:  m.Alloc,
		Mallocs:    m.Mallocs,
		Goroutines: runtime.NumGoroutine(),
		CPUs:       runtime.NumCPU(),
	}
}
