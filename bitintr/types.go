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

// Package bitintr provides portable bit manipulation intrinsics.
//
// Every operation is named after the CPU instruction it models (POPCNT,
// LZCNT, TZCNT, ANDN, BEXTR, BLSI, BLSMSK, BLSR, BZHI, PDEP, PEXT, MULX, the
// AMD TBM group, and the ARM CLZ, CLS, RBIT and REV instructions) and is
// available for every fixed-width integer type. When the running CPU
// implements the instruction the call is routed to it; otherwise a software
// algorithm producing the same bits is used. The software algorithms are
// exported with a Base prefix so they can be called and tested directly.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-bitintr/bitintr"
//
//	n := uint16(0b1011_1110_1001_0011)
//	m := uint16(0b0110_0011_1000_0101)
//	d := bitintr.Pdep(n, m) // 0b0000_0010_0000_0101
//	e := bitintr.Pext(n, m) // 0b0000_0000_0011_0101
//
// Signed types are processed through their two's-complement bit pattern, so
// Pdep(int8(x), int8(m)) has the same bits as Pdep(uint8(x), uint8(m)).
package bitintr

import "unsafe"

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Integers is a constraint for all integer types accepted by the intrinsics.
// 128-bit integers do not exist in Go and are not supported.
type Integers interface {
	SignedInts | UnsignedInts
}

// Zero returns the additive identity of T.
func Zero[T Integers]() T {
	return 0
}

// One returns the multiplicative identity of T.
func One[T Integers]() T {
	return 1
}

// ByteSize returns the size of T in bytes.
func ByteSize[T Integers]() int {
	var dummy T
	return int(unsafe.Sizeof(dummy))
}

// BitSize returns the size of T in bits.
func BitSize[T Integers]() int {
	return ByteSize[T]() * 8
}

// WrappingNeg returns the two's-complement negation of x. It never overflows:
// the negation of the minimum signed value is itself and the negation of an
// unsigned value is 2^W - x.
func WrappingNeg[T Integers](x T) T {
	return -x
}

// WrappingAdd returns x + y modulo 2^W.
func WrappingAdd[T Integers](x, y T) T {
	return x + y
}

// WrappingSub returns x - y modulo 2^W.
func WrappingSub[T Integers](x, y T) T {
	return x - y
}

// ToUint64 returns the bit pattern of x zero-extended to 64 bits.
// ToUint64(int8(-1)) is 0xFF, not 0xFFFF_FFFF_FFFF_FFFF.
func ToUint64[T Integers](x T) uint64 {
	return uint64(x) & widthMask[T]()
}

// ToUint32 returns the low 32 bits of the bit pattern of x, zero-extended
// for narrower types.
func ToUint32[T Integers](x T) uint32 {
	return uint32(ToUint64(x))
}

// FromUint64 truncates v to the width of T.
func FromUint64[T Integers](v uint64) T {
	return T(v)
}

// FromUint32 converts v to T, truncating for narrower types and
// zero-extending for wider ones.
func FromUint32[T Integers](v uint32) T {
	return T(v)
}

// FromUint16 converts v to T, truncating for 8-bit types and zero-extending
// for wider ones.
func FromUint16[T Integers](v uint16) T {
	return T(v)
}

// widthMask returns a uint64 with the low BitSize[T]() bits set.
func widthMask[T Integers]() uint64 {
	return ^uint64(0) >> (64 - BitSize[T]())
}
