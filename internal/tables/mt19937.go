package tables

import "github.com/coopchess/garbochess/internal/bits"

// mt19937 is a reference Mersenne Twister (MT19937) generator. The Zobrist
// words must be reproducible bit-for-bit across runs, so this is a
// from-scratch implementation of the standard 32-bit MT19937 recurrence
// rather than math/rand, whose algorithm and seeding are not specified to
// be stable. Every word-level operation runs through the bits package
// rather than native operators, matching how GarboChess's original host
// represented these words.
type mt19937 struct {
	state [624]uint32
	index int
}

func newMT19937(seed uint32) *mt19937 {
	m := &mt19937{index: 624}
	m.state[0] = seed
	for i := 1; i < 624; i++ {
		prev := m.state[i-1]
		m.state[i] = uint32(1812433253)*bits.Xor(prev, bits.Shr(prev, 30)) + uint32(i)
	}
	return m
}

func (m *mt19937) generate() {
	const (
		matrixA   uint32 = 0x9908b0df
		upperMask uint32 = 0x80000000
		lowerMask uint32 = 0x7fffffff
	)
	for i := 0; i < 624; i++ {
		y := bits.Or(bits.And(m.state[i], upperMask), bits.And(m.state[(i+1)%624], lowerMask))
		next := bits.Xor(m.state[(i+397)%624], bits.Shr(y, 1))
		if bits.Test(y, 0) {
			next = bits.Xor(next, matrixA)
		}
		m.state[i] = next
	}
	m.index = 0
}

// next32 returns the next 32-bit tempered output word.
func (m *mt19937) next32() uint32 {
	if m.index >= 624 {
		m.generate()
	}
	y := m.state[m.index]
	y = bits.Xor(y, bits.Shr(y, 11))
	y = bits.Xor(y, bits.And(bits.Shl(y, 7), 0x9d2c5680))
	y = bits.Xor(y, bits.And(bits.Shl(y, 15), 0xefc60000))
	y = bits.Xor(y, bits.Shr(y, 18))
	m.index++
	return y
}
