//go:build !linux
// +build !linux

package main

// Kernel perf counters are Linux only
func reportCounters(build func()) {}
