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

// BaseAndn returns ^x & y.
func BaseAndn[T Integers](x, y T) T {
	return ^x & y
}

// BaseBextr extracts length bits of source starting at bit start.
//
// Only the low 8 bits of start and length are used, as in the BEXTR control
// word. A start at or past the bit width yields zero and a length at or past
// the remaining width keeps every bit above start.
func BaseBextr[T Integers](source, start, length T) T {
	s, l := ToUint64(start), ToUint64(length)
	checkBextr[T]("bextr", s, l)
	return T(bextrBits(ToUint64(source), bextrControl(s, l)))
}

// BaseBextri is BaseBextr with start in bits [7:0] and length in bits [15:8]
// of rng.
func BaseBextri[T Integers](source T, rng uint32) T {
	checkBextr[T]("bextri", uint64(rng&0xFF), uint64(rng>>8&0xFF))
	return T(bextrBits(ToUint64(source), rng&0xFFFF))
}

// BaseBlsi isolates the lowest set bit of x. BaseBlsi(0) is 0.
func BaseBlsi[T Integers](x T) T {
	return x & -x
}

// BaseBlsmsk sets every bit up to and including the lowest set bit of x.
// BaseBlsmsk(0) has all bits set.
func BaseBlsmsk[T Integers](x T) T {
	return x ^ (x - 1)
}

// BaseBlsr clears the lowest set bit of x. x must not be zero.
func BaseBlsr[T Integers](x T) T {
	checkBlsr(x)
	return x & (x - 1)
}

// bextrControl packs start and length into a BEXTR control word.
func bextrControl(start, length uint64) uint32 {
	return uint32(start&0xFF) | uint32(length&0xFF)<<8
}

// bextrBits applies a BEXTR control word to the zero-extended value v.
func bextrBits(v uint64, control uint32) uint64 {
	start := control & 0xFF
	length := control >> 8 & 0xFF
	v >>= start
	if length < 64 {
		v &= 1<<length - 1
	}
	return v
}
