// Package builder generates deterministic benchmark fixtures.
//
// Every stochastic fixture draws from an explicitly seeded MT19937 engine; there
// is no package-level RNG. The engine and the bounded draw UniformInt are
// bit-compatible with the 32-bit Mersenne Twister and the bounded integer
// distribution shipped by common C++ standard libraries, so a fixture built
// here from seed s equals the one produced by those toolchains from seed s.
// That keeps reference checksums (for example, the shortest-path distance sum
// over the 5000-vertex graph from seed 42) stable across implementations.
//
// Fixtures:
//
//   - DenseGraph:     n×n row-major weight matrix, NoEdge for absent edges.
//   - RandomInts:     n values drawn uniformly from a closed interval.
//   - StripedComplex: sparse complex operands with a known product.
//
// Options follow the functional style: option constructors panic on
// meaningless values, builders return sentinel errors wrapped with context.
package builder
