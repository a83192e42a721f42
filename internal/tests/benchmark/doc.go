// Package benchmark provides performance benchmarks for TeachWhat.
//
// Run benchmarks with:
//
//	go test -bench=. -benchmem ./internal/tests/benchmark/...
//
// Run only the storage engines:
//
//	go test -bench=BenchmarkStore -benchmem -benchtime=5s ./internal/tests/benchmark/...
//
// Compare results:
//
//	go test -bench=. -benchmem -count=5 ./internal/tests/benchmark/... | tee benchmark.txt
//	benchstat old.txt new.txt
package benchmark
