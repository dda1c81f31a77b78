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

// Software algorithms for the counting instructions. They work on the
// zero-extended bit pattern so signed and unsigned types share one
// implementation, and they avoid math/bits so that they can be checked
// against the compiler intrinsics.

// BasePopcnt counts the set bits of x with a SWAR reduction.
func BasePopcnt[T Integers](x T) T {
	return T(popcntBits(ToUint64(x)))
}

// BaseLzcnt counts the leading zero bits of x. BaseLzcnt(0) is BitSize[T]().
func BaseLzcnt[T Integers](x T) T {
	return T(lzcntBits(ToUint64(x), uint64(BitSize[T]())))
}

// BaseTzcnt counts the trailing zero bits of x. BaseTzcnt(0) is BitSize[T]().
func BaseTzcnt[T Integers](x T) T {
	return T(tzcntBits(ToUint64(x), widthMask[T]()))
}

// BaseCls counts the leading bits equal to the sign bit, excluding the sign
// bit itself, using BaseLzcnt.
func BaseCls[T Integers](x T) T {
	return T(lzcntBits(clsOperand[T](x), uint64(BitSize[T]())))
}

// popcntBits is the Hacker's Delight 5-1 population count.
func popcntBits(v uint64) uint64 {
	v -= (v >> 1) & 0x5555555555555555
	v = (v & 0x3333333333333333) + ((v >> 2) & 0x3333333333333333)
	v = (v + (v >> 4)) & 0x0F0F0F0F0F0F0F0F
	return (v * 0x0101010101010101) >> 56
}

// lzcntBits smears the highest set bit of v to the right and counts the
// zeros left above it. v must not have bits set at or above w.
func lzcntBits(v, w uint64) uint64 {
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	return w - popcntBits(v)
}

// tzcntBits counts the ones of the mask below the lowest set bit of v.
func tzcntBits(v, mask uint64) uint64 {
	return popcntBits(^v & (v - 1) & mask)
}

// clsOperand returns ((x >>arith (W-1)) ^ x) << 1 | 1 as a W-bit pattern. Its
// leading zero count is the number of redundant sign bits of x; the low bit
// bounds the count at W-1.
func clsOperand[T Integers](x T) uint64 {
	w := BitSize[T]()
	mask := widthMask[T]()
	v := ToUint64(x)
	var sign uint64
	if v>>(w-1) != 0 {
		sign = mask
	}
	return (((sign ^ v) << 1) | 1) & mask
}
