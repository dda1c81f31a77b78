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

// BaseBzhi zeroes the bits of x at positions n and above.
//
// Only the low 8 bits of n are used. An index at or past the bit width
// returns x unchanged.
func BaseBzhi[T Integers](x T, n uint32) T {
	checkBzhi[T](n)
	return T(bzhiBits(ToUint64(x), n))
}

func bzhiBits(v uint64, n uint32) uint64 {
	idx := n & 0xFF
	if idx >= 64 {
		return v
	}
	return v & (1<<idx - 1)
}

// BasePdep scatters the low bits of x to the positions of the set bits of
// mask, lowest first. Bits not selected by mask are zero.
//
// The loop visits one mask bit per iteration, so it runs at most
// BitSize[T]() times.
func BasePdep[T Integers](x, mask T) T {
	var res T
	bb := T(1)
	for mask != 0 {
		if x&bb != 0 {
			res |= mask & -mask
		}
		mask &= mask - 1
		bb += bb
	}
	return res
}

// BasePext gathers the bits of x at the positions of the set bits of mask
// into the low bits of the result, lowest first.
func BasePext[T Integers](x, mask T) T {
	var res T
	bb := T(1)
	for mask != 0 {
		if x&mask&-mask != 0 {
			res |= bb
		}
		mask &= mask - 1
		bb += bb
	}
	return res
}

// BaseMulx returns the double-width unsigned product of x and y split into
// its low and high halves.
//
// Widths up to 32 bits multiply in 64-bit arithmetic. 64-bit operands are
// split into 32-bit halves and the four partial products are summed with
// their carries.
func BaseMulx[T Integers](x, y T) (lo, hi T) {
	a, b := ToUint64(x), ToUint64(y)
	if w := BitSize[T](); w <= 32 {
		p := a * b
		return T(p), T(p >> w)
	}
	l, h := mulx64(a, b)
	return T(l), T(h)
}

func mulx64(x, y uint64) (lo, hi uint64) {
	const mask32 = 1<<32 - 1
	x0, x1 := x&mask32, x>>32
	y0, y1 := y&mask32, y>>32
	w0 := x0 * y0
	t := x1*y0 + w0>>32
	w1 := t & mask32
	w2 := t >> 32
	w1 += x0 * y1
	hi = x1*y1 + w2 + w1>>32
	lo = x * y
	return lo, hi
}
