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

// This file provides AMD's Trailing Bit Manipulation (TBM) instructions.
//
// Each one is a single closed-form expression of x and x±1 in wrapping
// arithmetic. Compilers lower these expressions to the TBM instruction where
// it exists, so there is no separate software algorithm. None of them has a
// precondition: all-zero and all-one operands are valid.

// Blcfill clears all bits below the least significant zero bit of x.
// If x has no zero bit it returns 0.
//
// Example:
//
//	Blcfill(uint8(0b0101_0111)) // 0b0101_0000
//	Blcfill(uint8(0b1111_1111)) // 0
func Blcfill[T Integers](x T) T {
	return x & (x + 1)
}

// Blci sets all bits of x except the least significant zero bit, which is
// cleared. If x has no zero bit it sets all bits.
//
// Example:
//
//	Blci(uint8(0b0101_0000)) // 0b1111_1110
func Blci[T Integers](x T) T {
	return x | ^(x + 1)
}

// Blcic isolates the least significant zero bit of x as a set bit and clears
// all other bits. If x has no zero bit it returns 0.
//
// Example:
//
//	Blcic(uint8(0b0101_0001)) // 0b0000_0010
func Blcic[T Integers](x T) T {
	return ^x & (x + 1)
}

// Blcmsk sets the least significant zero bit of x and all bits below it and
// clears all bits above it. If x has no zero bit it sets all bits.
//
// Example:
//
//	Blcmsk(uint8(0b0101_0001)) // 0b0000_0011
func Blcmsk[T Integers](x T) T {
	return x ^ (x + 1)
}

// Blcs sets the least significant zero bit of x. If x has no zero bit it
// returns x.
//
// Example:
//
//	Blcs(uint8(0b0101_0001)) // 0b0101_0011
func Blcs[T Integers](x T) T {
	return x | (x + 1)
}

// Blsfill sets all bits of x below the least significant set bit. If x is
// zero it sets all bits.
//
// Example:
//
//	Blsfill(uint8(0b0101_0100)) // 0b0101_0111
func Blsfill[T Integers](x T) T {
	return x | (x - 1)
}

// Blsic clears the least significant set bit of x and sets all other bits.
// If x is zero it sets all bits.
//
// Example:
//
//	Blsic(uint8(0b0101_0100)) // 0b1111_1011
func Blsic[T Integers](x T) T {
	return ^x | (x - 1)
}

// T1mskc clears the trailing one bits of x and sets all other bits. If bit 0
// of x is clear it sets all bits; if x has no zero bit it returns 0.
//
// Example:
//
//	T1mskc(uint8(0b0101_0111)) // 0b1111_1000
func T1mskc[T Integers](x T) T {
	return ^x | (x + 1)
}

// Tzmsk sets the trailing zero bits of x and clears all others. If x is zero
// it sets all bits; if bit 0 of x is set it returns 0.
//
// Example:
//
//	Tzmsk(uint8(0b0101_1000)) // 0b0000_0111
func Tzmsk[T Integers](x T) T {
	return ^x & (x - 1)
}
