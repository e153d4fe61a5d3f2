// Package sorting provides in-place int32 sorts and a benchmarkable task
// around them.
//
// Algorithms:
//
//   - AlgoShell:   Shell sort with halving gaps. Sequential, O(n²) worst case.
//   - AlgoBatcher: Batcher's odd-even merge sort. Both halves and both
//     interleaved merges fork through parallel.Strategy.Invoke; each merge's
//     compare-exchange sweep is a Strategy.For. The network needs a
//     power-of-two length, so the task pads with math.MaxInt32 and trims.
//   - AlgoRadix:   LSD radix sort, four 8-bit passes over sign-flipped keys.
//     Each pass counts digits per chunk, merges the histograms once in chunk
//     order, then scatters every chunk in parallel. Stable.
//
// Task slot convention (see NewTask):
//
//	input  0:  []int32  first array
//	input  1:  []int32  optional second array, concatenated after the first
//	output 0:  []int32  len ≥ total input length
package sorting
