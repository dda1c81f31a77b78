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

// This file provides the counting instructions: POPCNT and LZCNT (ABM),
// TZCNT (BMI1) and the ARM CLZ and CLS.
//
// Narrow types are widened to 32 bits before reaching the kernel; the
// results are adjusted for the bits that were added.

// Popcnt counts the number of set bits (1s) in x.
//
// Example:
//
//	Popcnt(uint16(0b0101_1010)) // 4
func Popcnt[T Integers](x T) T {
	if BitSize[T]() == 64 {
		return T(impl.popcnt64(uint64(x)))
	}
	return T(impl.popcnt32(ToUint32(x)))
}

// Lzcnt counts the number of leading zero bits in x.
// Lzcnt(0) is BitSize[T]().
//
// Example:
//
//	Lzcnt(uint16(0b0101_1010)) // 9
func Lzcnt[T Integers](x T) T {
	w := BitSize[T]()
	if w == 64 {
		return T(impl.lzcnt64(uint64(x)))
	}
	return T(impl.lzcnt32(ToUint32(x)) - uint32(32-w))
}

// Clz is the ARM name of Lzcnt.
func Clz[T Integers](x T) T {
	return Lzcnt(x)
}

// Tzcnt counts the number of trailing zero bits in x, which is the index of
// the lowest set bit. Tzcnt(0) is BitSize[T]().
//
// Example:
//
//	Tzcnt(uint16(0b1001_0000)) // 4
func Tzcnt[T Integers](x T) T {
	w := BitSize[T]()
	if w == 64 {
		return T(impl.tzcnt64(uint64(x)))
	}
	// A sentinel bit just above the operand bounds the count at w. For w ==
	// 32 the shift produces zero and the kernel bounds it itself.
	return T(impl.tzcnt32(ToUint32(x) | uint32(1)<<w))
}

// Cls counts the leading bits equal to the sign bit, not counting the sign
// bit itself. When every bit is equal it returns BitSize[T]()-1.
//
// Example:
//
//	Cls(uint16(0b1111_1111_1100_1010)) // 9
//	Cls(uint8(0b1111_1111))            // 7
func Cls[T Integers](x T) T {
	return Lzcnt(FromUint64[T](clsOperand(x)))
}
