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

import "testing"

type flags uint16

func TestSizes(t *testing.T) {
	tests := []struct {
		name      string
		bits      int
		wantBits  int
		bytes     int
		wantBytes int
	}{
		{"int8", BitSize[int8](), 8, ByteSize[int8](), 1},
		{"uint16", BitSize[uint16](), 16, ByteSize[uint16](), 2},
		{"int32", BitSize[int32](), 32, ByteSize[int32](), 4},
		{"uint64", BitSize[uint64](), 64, ByteSize[uint64](), 8},
		{"flags", BitSize[flags](), 16, ByteSize[flags](), 2},
	}
	for _, tt := range tests {
		if tt.bits != tt.wantBits || tt.bytes != tt.wantBytes {
			t.Errorf("%s: BitSize = %d, ByteSize = %d, want %d, %d",
				tt.name, tt.bits, tt.bytes, tt.wantBits, tt.wantBytes)
		}
	}
}

func TestConversions(t *testing.T) {
	if got := ToUint64(int8(-1)); got != 0xFF {
		t.Errorf("ToUint64(int8(-1)) = %#x, want 0xff", got)
	}
	if got := ToUint64(int32(-2)); got != 0xFFFFFFFE {
		t.Errorf("ToUint64(int32(-2)) = %#x, want 0xfffffffe", got)
	}
	if got := ToUint32(int16(-1)); got != 0xFFFF {
		t.Errorf("ToUint32(int16(-1)) = %#x, want 0xffff", got)
	}
	if got := ToUint32(uint64(0x1_0000_0002)); got != 2 {
		t.Errorf("ToUint32(0x100000002) = %#x, want 2", got)
	}
	if got := FromUint64[int8](0x1FF); got != -1 {
		t.Errorf("FromUint64[int8](0x1ff) = %d, want -1", got)
	}
	if got := FromUint32[uint64](0xFFFFFFFF); got != 0xFFFFFFFF {
		t.Errorf("FromUint32[uint64](0xffffffff) = %#x", got)
	}
	if got := FromUint16[int8](0x80); got != -128 {
		t.Errorf("FromUint16[int8](0x80) = %d, want -128", got)
	}
}

func TestWrapping(t *testing.T) {
	if got := WrappingNeg(int8(-128)); got != -128 {
		t.Errorf("WrappingNeg(int8(-128)) = %d, want -128", got)
	}
	if got := WrappingNeg(uint8(1)); got != 0xFF {
		t.Errorf("WrappingNeg(uint8(1)) = %d, want 255", got)
	}
	if got := WrappingAdd(uint16(0xFFFF), 2); got != 1 {
		t.Errorf("WrappingAdd(0xffff, 2) = %d, want 1", got)
	}
	if got := WrappingSub(int32(-2147483648), 1); got != 2147483647 {
		t.Errorf("WrappingSub(MinInt32, 1) = %d, want MaxInt32", got)
	}
	if Zero[uint32]() != 0 || One[int64]() != 1 {
		t.Error("Zero or One returned the wrong identity")
	}
}

func TestNamedTypes(t *testing.T) {
	f := flags(0b1011_0000)
	if got := Popcnt(f); got != 3 {
		t.Errorf("Popcnt(flags) = %d, want 3", got)
	}
	if got := Blsi(f); got != 0b0001_0000 {
		t.Errorf("Blsi(flags) = %#b, want 0b10000", got)
	}
	if got := Pext(f, 0xF0); got != 0b1011 {
		t.Errorf("Pext(flags, 0xf0) = %#b, want 0b1011", got)
	}
}
