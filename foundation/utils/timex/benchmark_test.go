// File: benchmark_test.go
// Title: Time of Day Benchmarks
// Description: Benchmarks for parsing and array generation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial benchmarks

package timex

import "testing"

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Parse("14:30:15")
	}
}

func BenchmarkBuildArraySeconds(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = BuildArray(Min, Max, Seconds, true)
	}
}

func BenchmarkBuildArrayBySteps(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = BuildArrayBySteps(Min, Max, 15, Minutes, true)
	}
}
