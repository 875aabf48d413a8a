// Package bits provides the 32-bit logical primitives the rest of the
// engine is built on. GarboChess's original host represented every bitboard,
// hash half, and mask as a plain number, so every logical operation went
// through an explicit helper; this package keeps that shape so the
// tables and search code that was ported against it reads the same way,
// even though Go's native operators would do just as well.
package bits

// And returns the bitwise AND of a and b.
func And(a, b uint32) uint32 { return a & b }

// Or returns the bitwise OR of a and b.
func Or(a, b uint32) uint32 { return a | b }

// Xor returns the bitwise XOR of a and b.
func Xor(a, b uint32) uint32 { return a ^ b }

// Not returns the bitwise complement of a.
func Not(a uint32) uint32 { return ^a }

// Shl returns a shifted left by n bits.
func Shl(a uint32, n uint) uint32 { return a << n }

// Shr returns a shifted right by n bits (logical, not arithmetic).
func Shr(a uint32, n uint) uint32 { return a >> n }

// Set returns a with bit n set.
func Set(a uint32, n uint) uint32 { return a | (1 << n) }

// Clear returns a with bit n cleared.
func Clear(a uint32, n uint) uint32 { return a &^ (1 << n) }

// Test reports whether bit n of a is set.
func Test(a uint32, n uint) bool { return a&(1<<n) != 0 }
