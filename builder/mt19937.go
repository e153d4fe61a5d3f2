// SPDX-License-Identifier: MIT
// Package: taskbench/builder
//
// mt19937.go — 32-bit Mersenne Twister.
//
// Output sequence matches the reference MT19937 (Matsumoto & Nishimura 1998)
// with the 1812433253 seeding recurrence; for seed 5489 the first value is
// 3499211612. The engine is NOT goroutine-safe.

package builder

const (
	mtN         = 624
	mtM         = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
	mtInitMul   = 1812433253

	// DefaultSeed is the reference engine's default seed.
	DefaultSeed uint32 = 5489
)

// MT19937 is a seeded 32-bit Mersenne Twister. It also satisfies
// math/rand.Source64, so rand.New(NewMT19937(s)) works where a *rand.Rand is
// expected.
type MT19937 struct {
	state [mtN]uint32
	idx   int
}

// NewMT19937 returns an engine seeded with seed.
func NewMT19937(seed uint32) *MT19937 {
	m := &MT19937{}
	m.reseed(seed)
	return m
}

func (m *MT19937) reseed(seed uint32) {
	m.state[0] = seed
	for i := 1; i < mtN; i++ {
		prev := m.state[i-1]
		m.state[i] = mtInitMul*(prev^(prev>>30)) + uint32(i)
	}
	m.idx = mtN
}

// twist regenerates the whole state block.
func (m *MT19937) twist() {
	var y, v uint32
	for i := 0; i < mtN; i++ {
		y = (m.state[i] & mtUpperMask) | (m.state[(i+1)%mtN] & mtLowerMask)
		v = m.state[(i+mtM)%mtN] ^ (y >> 1)
		if y&1 != 0 {
			v ^= mtMatrixA
		}
		m.state[i] = v
	}
	m.idx = 0
}

// Uint32 returns the next tempered 32-bit output.
func (m *MT19937) Uint32() uint32 {
	if m.idx >= mtN {
		m.twist()
	}
	y := m.state[m.idx]
	m.idx++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Uint64 joins two consecutive outputs, high word first.
func (m *MT19937) Uint64() uint64 {
	hi := uint64(m.Uint32())
	return hi<<32 | uint64(m.Uint32())
}

// Int63 implements math/rand.Source.
func (m *MT19937) Int63() int64 { return int64(m.Uint64() >> 1) }

// Seed implements math/rand.Source; only the low 32 bits are used.
func (m *MT19937) Seed(seed int64) { m.reseed(uint32(seed)) }
