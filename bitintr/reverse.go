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

import "encoding/binary"

// hostLittleEndian reports the byte order of the running machine.
var hostLittleEndian = binary.NativeEndian.Uint16([]byte{1, 0}) == 1

// Rbit reverses the bit order of x: bit 0 becomes bit W-1 and so on.
// Rbit(Rbit(x)) == x for every x.
//
// Example:
//
//	Rbit(uint8(0b0011_0001))                // 0b1000_1100
//	Rbit(uint16(0b0000_0000_0100_1011))     // 0b1101_0010_0000_0000
func Rbit[T Integers](x T) T {
	switch w := BitSize[T](); w {
	case 64:
		return T(impl.rbit64(uint64(x)))
	default:
		return T(impl.rbit32(ToUint32(x)) >> (32 - w))
	}
}

// Rev reverses the byte order of x. It is the ARM REV instruction.
//
// Example:
//
//	Rev(uint16(0b1111_1111_1100_1010)) // 0b1100_1010_1111_1111
func Rev[T Integers](x T) T {
	switch w := BitSize[T](); w {
	case 8:
		return x
	case 64:
		return T(impl.rev64(uint64(x)))
	default:
		return T(impl.rev32(ToUint32(x)) >> (32 - w))
	}
}

// SwapBytes is an alias of Rev.
func SwapBytes[T Integers](x T) T {
	return Rev(x)
}

// ToBigEndian converts x from host byte order to big-endian byte order.
// On big-endian hosts it returns x unchanged.
func ToBigEndian[T Integers](x T) T {
	if hostLittleEndian {
		return Rev(x)
	}
	return x
}

// ToLittleEndian converts x from host byte order to little-endian byte
// order. On little-endian hosts it returns x unchanged.
func ToLittleEndian[T Integers](x T) T {
	if hostLittleEndian {
		return x
	}
	return Rev(x)
}

// FromBigEndian converts a big-endian x to host byte order.
func FromBigEndian[T Integers](x T) T {
	return ToBigEndian(x)
}

// FromLittleEndian converts a little-endian x to host byte order.
func FromLittleEndian[T Integers](x T) T {
	return ToLittleEndian(x)
}

// RotateLeft rotates x left by n bits. n is taken modulo BitSize[T](), so
// rotating by the bit width is the identity.
func RotateLeft[T Integers](x T, n uint) T {
	w := uint(BitSize[T]())
	n %= w
	switch w {
	case 8:
		return T(impl.rotl8(uint8(x), n))
	case 16:
		return T(impl.rotl16(uint16(x), n))
	case 32:
		return T(impl.rotl32(uint32(x), n))
	default:
		return T(impl.rotl64(uint64(x), n))
	}
}

// RotateRight rotates x right by n bits. n is taken modulo BitSize[T]().
func RotateRight[T Integers](x T, n uint) T {
	w := uint(BitSize[T]())
	return RotateLeft(x, w-n%w)
}
