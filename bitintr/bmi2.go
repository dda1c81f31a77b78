// Copyright 2025 go-bitintr Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bitintr

// This file provides the Bit Manipulation Instruction Set 2 (BMI2).

// Bzhi zeroes the bits of x at position n and above.
//
// Only the low 8 bits of n are used. n must be smaller than BitSize[T]();
// builds tagged bitintr_checked panic otherwise and default builds return x
// unchanged, as the BZHI instruction does.
//
// Example:
//
//	Bzhi(uint32(0b1111_0010), 5) // 0b0001_0010
func Bzhi[T Integers](x T, n uint32) T {
	checkBzhi[T](n)
	if BitSize[T]() == 64 {
		return T(impl.bzhi64(uint64(x), n))
	}
	return T(impl.bzhi32(ToUint32(x), n))
}

// Pdep deposits the contiguous low bits of x at the positions of the set bits
// of mask, lowest first. Bits not selected by mask are zero.
//
// Example:
//
//	n := uint16(0b1011_1110_1001_0011)
//	Pdep(n, 0b0110_0011_1000_0101) // 0b0000_0010_0000_0101
//	Pdep(n, 0b1110_1011_1110_1111) // 0b1110_1001_0010_0011
func Pdep[T Integers](x, mask T) T {
	if BitSize[T]() == 64 {
		return T(impl.pdep64(uint64(x), uint64(mask)))
	}
	return T(impl.pdep32(ToUint32(x), ToUint32(mask)))
}

// Pext extracts the bits of x at the positions of the set bits of mask into
// the contiguous low bits of the result, lowest first. The remaining high
// bits are zero.
//
// Example:
//
//	n := uint16(0b1011_1110_1001_0011)
//	Pext(n, 0b0110_0011_1000_0101) // 0b0000_0000_0011_0101
//	Pext(n, 0b1110_1011_1110_1111) // 0b0001_0111_0100_0011
func Pext[T Integers](x, mask T) T {
	if BitSize[T]() == 64 {
		return T(impl.pext64(uint64(x), uint64(mask)))
	}
	return T(impl.pext32(ToUint32(x), ToUint32(mask)))
}

// Mulx returns the unsigned product of x and y as two halves of BitSize[T]()
// bits each. Signed operands are multiplied as their unsigned bit patterns.
//
// Example:
//
//	lo, hi := Mulx(uint8(128), uint8(128)) // 0b0000_0000, 0b0100_0000
func Mulx[T Integers](x, y T) (lo, hi T) {
	switch w := BitSize[T](); w {
	case 64:
		l, h := impl.mulx64(uint64(x), uint64(y))
		return T(l), T(h)
	case 32:
		l, h := impl.mulx32(uint32(x), uint32(y))
		return T(l), T(h)
	default:
		// The full product of two 8 or 16-bit operands fits in the low half.
		l, _ := impl.mulx32(ToUint32(x), ToUint32(y))
		return T(l), T(l >> w)
	}
}
