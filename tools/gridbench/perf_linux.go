//go:build linux
// +build linux

package main

import (
	"fmt"

	perf "github.com/hodgesds/perf-utils"
)

// reportCounters re-runs the build under the kernel perf counters and prints
// cycle and instruction counts
func reportCounters(build func()) {
	cycles, err := perf.CPUCycles(func() error {
		build()
		return nil
	})
	if err != nil {
		fmt.Printf("perf counters unavailable: %s\n", err.Error())
		return
	}
	instructions, err := perf.CPUInstructions(func() error {
		build()
		return nil
	})
	if err != nil {
		fmt.Printf("perf counters unavailable: %s\n", err.Error())
		return
	}
	fmt.Printf("\tcycles = %d, instructions = %d\n", cycles.Value, instructions.Value)
}
