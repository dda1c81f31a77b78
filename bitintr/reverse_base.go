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

// BaseRbit reverses the bit order of x with masked swap passes of halving
// granularity. 8-bit values use the three-operation multiply formula.
func BaseRbit[T Integers](x T) T {
	v := ToUint64(x)
	w := BitSize[T]()
	if w == 8 {
		return T(((v * 0x80200802) & 0x0884422110) * 0x0101010101 >> 32)
	}
	v = (v&0x5555555555555555)<<1 | (v&0xAAAAAAAAAAAAAAAA)>>1
	v = (v&0x3333333333333333)<<2 | (v&0xCCCCCCCCCCCCCCCC)>>2
	v = (v&0x0F0F0F0F0F0F0F0F)<<4 | (v&0xF0F0F0F0F0F0F0F0)>>4
	return T(revBits(v, w))
}

// BaseRev reverses the byte order of x.
func BaseRev[T Integers](x T) T {
	return T(revBits(ToUint64(x), BitSize[T]()))
}

// revBits swaps the bytes of the low w bits of v.
func revBits(v uint64, w int) uint64 {
	if w > 8 {
		v = (v&0x00FF00FF00FF00FF)<<8 | (v&0xFF00FF00FF00FF00)>>8
	}
	if w > 16 {
		v = (v&0x0000FFFF0000FFFF)<<16 | (v&0xFFFF0000FFFF0000)>>16
	}
	if w > 32 {
		v = v<<32 | v>>32
	}
	return v
}

// BaseRotateLeft rotates x left by n bits. n is taken modulo the bit width.
func BaseRotateLeft[T Integers](x T, n uint) T {
	w := uint(BitSize[T]())
	n %= w
	if n == 0 {
		return x
	}
	v := ToUint64(x)
	return T(v<<n | v>>(w-n))
}

// BaseRotateRight rotates x right by n bits. n is taken modulo the bit width.
func BaseRotateRight[T Integers](x T, n uint) T {
	w := uint(BitSize[T]())
	n %= w
	if n == 0 {
		return x
	}
	v := ToUint64(x)
	return T(v>>n | v<<(w-n))
}
