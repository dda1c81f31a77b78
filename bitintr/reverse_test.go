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

import (
	"math/rand/v2"
	"testing"
)

func TestRbit(t *testing.T) {
	t.Run("uint8", func(t *testing.T) {
		tests := []struct {
			input, want uint8
		}{
			{0b0011_0001, 0b1000_1100},
			{0b1101_0011, 0b1100_1011},
			{0b0000_0001, 0b1000_0000},
			{0xFF, 0xFF},
			{0, 0},
		}
		for _, tt := range tests {
			if got := Rbit(tt.input); got != tt.want {
				t.Errorf("Rbit(%#08b) = %#08b, want %#08b", tt.input, got, tt.want)
			}
			if got := Rbit(int8(tt.input)); got != int8(tt.want) {
				t.Errorf("Rbit(int8(%#08b)) = %#08b, want %#08b", tt.input, uint8(got), tt.want)
			}
		}
	})

	t.Run("uint16", func(t *testing.T) {
		tests := []struct {
			input, want uint16
		}{
			{0b0000_0000_0100_1011, 0b1101_0010_0000_0000},
			{0b1101_0011_1110_1010, 0b0101_0111_1100_1011},
		}
		for _, tt := range tests {
			if got := Rbit(tt.input); got != tt.want {
				t.Errorf("Rbit(%#x) = %#x, want %#x", tt.input, got, tt.want)
			}
			if got := Rbit(int16(tt.input)); got != int16(tt.want) {
				t.Errorf("Rbit(int16(%#x)) = %#x, want %#x", tt.input, uint16(got), tt.want)
			}
		}
	})

	t.Run("uint32", func(t *testing.T) {
		tests := []struct {
			input, want uint32
		}{
			{0b11111111, 0b11111111_00000000_00000000_00000000},
			{
				0b1101_0011_1110_1010_1101_0011_1010_1010,
				0b0101_0101_1100_1011_0101_0111_1100_1011,
			},
		}
		for _, tt := range tests {
			if got := Rbit(tt.input); got != tt.want {
				t.Errorf("Rbit(%#x) = %#x, want %#x", tt.input, got, tt.want)
			}
			if got := Rbit(int32(tt.input)); got != int32(tt.want) {
				t.Errorf("Rbit(int32(%#x)) = %#x, want %#x", tt.input, uint32(got), tt.want)
			}
		}
	})

	t.Run("uint64", func(t *testing.T) {
		tests := []struct {
			input, want uint64
		}{
			{
				0b1101_0011_0010_1010_1111_0011_1010_1010_1101_0011_1110_1010_1101_0011_1010_1010,
				0b0101_0101_1100_1011_0101_0111_1100_1011_0101_0101_1100_1111_0101_0100_1100_1011,
			},
			{0x0123456789ABCDEF, 0xF7B3D591E6A2C480},
			{1, 1 << 63},
		}
		for _, tt := range tests {
			if got := Rbit(tt.input); got != tt.want {
				t.Errorf("Rbit(%#x) = %#x, want %#x", tt.input, got, tt.want)
			}
			if got := Rbit(int64(tt.input)); got != int64(tt.want) {
				t.Errorf("Rbit(int64(%#x)) = %#x, want %#x", tt.input, uint64(got), tt.want)
			}
		}
	})
}

func TestRev(t *testing.T) {
	if got := Rev(uint16(0b1111_1111_1100_1010)); got != 0b1100_1010_1111_1111 {
		t.Errorf("Rev(0xffca) = %#x, want 0xcaff", got)
	}
	if got := Rev(uint16(0b1100_1010_1111_1111)); got != 0b1111_1111_1100_1010 {
		t.Errorf("Rev(0xcaff) = %#x, want 0xffca", got)
	}
	if got := Rev(uint8(0x12)); got != 0x12 {
		t.Errorf("Rev(uint8(0x12)) = %#x, want 0x12", got)
	}
	if got := Rev(uint32(0x12345678)); got != 0x78563412 {
		t.Errorf("Rev(0x12345678) = %#x, want 0x78563412", got)
	}
	if got := Rev(int32(-2)); got != int32(-16777217) {
		// 0xFFFFFFFE reversed is 0xFEFFFFFF.
		t.Errorf("Rev(int32(-2)) = %#x, want 0xfeffffff", uint32(got))
	}
	if got := SwapBytes(uint64(0x0102030405060708)); got != 0x0807060504030201 {
		t.Errorf("SwapBytes(0x0102030405060708) = %#x, want 0x0807060504030201", got)
	}
}

func testInvolution[T Integers](t *testing.T) {
	check := func(x T) {
		if got := Rbit(Rbit(x)); got != x {
			t.Fatalf("Rbit(Rbit(%#x)) = %#x", ToUint64(x), ToUint64(got))
		}
		if got := Rev(Rev(x)); got != x {
			t.Fatalf("Rev(Rev(%#x)) = %#x", ToUint64(x), ToUint64(got))
		}
		if got := BaseRbit(BaseRbit(x)); got != x {
			t.Fatalf("BaseRbit(BaseRbit(%#x)) = %#x", ToUint64(x), ToUint64(got))
		}
		if got := BaseRev(BaseRev(x)); got != x {
			t.Fatalf("BaseRev(BaseRev(%#x)) = %#x", ToUint64(x), ToUint64(got))
		}
	}

	if BitSize[T]() <= 16 {
		n := 1 << BitSize[T]()
		for i := range n {
			check(T(i))
		}
		return
	}
	rng := rand.New(rand.NewPCG(1, 2))
	for range 10000 {
		check(T(rng.Uint64()))
	}
}

func TestInvolution(t *testing.T) {
	t.Run("uint8", testInvolution[uint8])
	t.Run("int8", testInvolution[int8])
	t.Run("uint16", testInvolution[uint16])
	t.Run("int16", testInvolution[int16])
	t.Run("uint32", testInvolution[uint32])
	t.Run("int32", testInvolution[int32])
	t.Run("uint64", testInvolution[uint64])
	t.Run("int64", testInvolution[int64])
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name        string
		left, right uint64
		wantLeft    uint64
		wantRight   uint64
	}{
		{
			name:      "u8_by_3",
			left:      uint64(RotateLeft(uint8(0b1000_0011), 3)),
			right:     uint64(RotateRight(uint8(0b1000_0011), 3)),
			wantLeft:  0b0001_1100,
			wantRight: 0b0111_0000,
		},
		{
			name:      "u16_by_width",
			left:      uint64(RotateLeft(uint16(0xABCD), 16)),
			right:     uint64(RotateRight(uint16(0xABCD), 16)),
			wantLeft:  0xABCD,
			wantRight: 0xABCD,
		},
		{
			name:      "u32_by_36",
			left:      uint64(RotateLeft(uint32(0x12345678), 36)),
			right:     uint64(RotateRight(uint32(0x12345678), 36)),
			wantLeft:  0x23456781,
			wantRight: 0x81234567,
		},
		{
			name:      "i8_minus_one",
			left:      ToUint64(RotateLeft(int8(-1), 5)),
			right:     ToUint64(RotateRight(int8(-1), 5)),
			wantLeft:  0xFF,
			wantRight: 0xFF,
		},
		{
			name:      "u64_by_4",
			left:      uint64(RotateLeft(uint64(0x0123456789ABCDEF), 4)),
			right:     uint64(RotateRight(uint64(0x0123456789ABCDEF), 4)),
			wantLeft:  0x123456789ABCDEF0,
			wantRight: 0xF0123456789ABCDE,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.left != tt.wantLeft {
				t.Errorf("RotateLeft = %#x, want %#x", tt.left, tt.wantLeft)
			}
			if tt.right != tt.wantRight {
				t.Errorf("RotateRight = %#x, want %#x", tt.right, tt.wantRight)
			}
		})
	}
}

func TestByteOrder(t *testing.T) {
	x := uint32(0x11223344)
	be, le := ToBigEndian(x), ToLittleEndian(x)
	if hostLittleEndian {
		if be != 0x44332211 || le != x {
			t.Errorf("little-endian host: ToBigEndian = %#x, ToLittleEndian = %#x", be, le)
		}
	} else {
		if be != x || le != 0x44332211 {
			t.Errorf("big-endian host: ToBigEndian = %#x, ToLittleEndian = %#x", be, le)
		}
	}
	if got := FromBigEndian(be); got != x {
		t.Errorf("FromBigEndian(ToBigEndian(x)) = %#x, want %#x", got, x)
	}
	if got := FromLittleEndian(le); got != x {
		t.Errorf("FromLittleEndian(ToLittleEndian(x)) = %#x, want %#x", got, x)
	}
	if got := ToBigEndian(uint8(0x7F)); got != 0x7F {
		t.Errorf("ToBigEndian(uint8(0x7f)) = %#x, want 0x7f", got)
	}
}
