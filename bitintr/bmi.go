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

// This file provides the Bit Manipulation Instruction Set 1 (BMI1).

// Andn returns the bitwise AND of inverted x with y.
//
// Example:
//
//	Andn(uint8(0b0100_0000), uint8(0b0101_1101)) // 0b0001_1101
func Andn[T Integers](x, y T) T {
	if BitSize[T]() == 64 {
		return T(impl.andn64(uint64(x), uint64(y)))
	}
	return T(impl.andn32(ToUint32(x), ToUint32(y)))
}

// Bextr extracts the length bits of source starting at bit start into the
// least significant bits of the result. The remaining bits are zero.
//
// Only the low 8 bits of start and length are used. start and length must be
// smaller than BitSize[T](); builds tagged bitintr_checked panic otherwise.
// Default builds return what the BEXTR instruction returns: zero when start
// is past the operand, and every bit above start when start+length is.
//
// Example:
//
//	Bextr(uint8(0b0101_0000), 4, 4) // 0b0000_0101
func Bextr[T Integers](source, start, length T) T {
	s, l := ToUint64(start), ToUint64(length)
	checkBextr[T]("bextr", s, l)
	return bextr(source, bextrControl(s, l))
}

// Bextri is Bextr with start in bits [7:0] and length in bits [15:8] of rng,
// the immediate form of the instruction.
//
// Example:
//
//	Bextri(uint16(0b0101_0000), 0b0100_0000_0100) // 0b0000_0101
func Bextri[T Integers](source T, rng uint32) T {
	checkBextr[T]("bextri", uint64(rng&0xFF), uint64(rng>>8&0xFF))
	return bextr(source, rng&0xFFFF)
}

func bextr[T Integers](source T, control uint32) T {
	if BitSize[T]() == 64 {
		return T(impl.bextr64(uint64(source), control))
	}
	return T(impl.bextr32(ToUint32(source), control))
}

// Blsi isolates the lowest set bit of x: the result has only that bit set,
// or is zero when x is zero.
//
// Example:
//
//	Blsi(uint8(0b1101_0000)) // 0b0001_0000
func Blsi[T Integers](x T) T {
	if BitSize[T]() == 64 {
		return T(impl.blsi64(uint64(x)))
	}
	return T(impl.blsi32(ToUint32(x)))
}

// Blsmsk sets every bit up to and including the lowest set bit of x and
// clears the rest. Blsmsk(0) has every bit set.
//
// Example:
//
//	Blsmsk(uint8(0b0011_0000)) // 0b0001_1111
func Blsmsk[T Integers](x T) T {
	if BitSize[T]() == 64 {
		return T(impl.blsmsk64(uint64(x)))
	}
	return T(impl.blsmsk32(ToUint32(x)))
}

// Blsr clears the lowest set bit of x.
//
// x must not be zero; builds tagged bitintr_checked panic on Blsr(0) and
// default builds return 0.
//
// Example:
//
//	Blsr(uint8(0b0011_0000)) // 0b0010_0000
func Blsr[T Integers](x T) T {
	checkBlsr(x)
	if BitSize[T]() == 64 {
		return T(impl.blsr64(uint64(x)))
	}
	return T(impl.blsr32(ToUint32(x)))
}
