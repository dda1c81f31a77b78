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

//go:build !noasm && amd64

package asm

// ABM

// Popcnt32 executes POPCNTL.
func Popcnt32(x uint32) uint32

// Popcnt64 executes POPCNTQ.
func Popcnt64(x uint64) uint64

// Lzcnt32 executes LZCNTL. Lzcnt32(0) is 32.
func Lzcnt32(x uint32) uint32

// Lzcnt64 executes LZCNTQ. Lzcnt64(0) is 64.
func Lzcnt64(x uint64) uint64

// BMI1

// Tzcnt32 executes TZCNTL. Tzcnt32(0) is 32.
func Tzcnt32(x uint32) uint32

// Tzcnt64 executes TZCNTQ. Tzcnt64(0) is 64.
func Tzcnt64(x uint64) uint64

// Andn32 executes ANDNL, returning ^x & y.
func Andn32(x, y uint32) uint32

// Andn64 executes ANDNQ, returning ^x & y.
func Andn64(x, y uint64) uint64

// Bextr32 executes BEXTRL with start in control[7:0] and length in
// control[15:8].
func Bextr32(src, control uint32) uint32

// Bextr64 executes BEXTRQ with start in control[7:0] and length in
// control[15:8].
func Bextr64(src uint64, control uint32) uint64

func Blsi32(x uint32) uint32
func Blsi64(x uint64) uint64
func Blsmsk32(x uint32) uint32
func Blsmsk64(x uint64) uint64
func Blsr32(x uint32) uint32
func Blsr64(x uint64) uint64

// BMI2

// Bzhi32 executes BZHIL with the index in n[7:0].
func Bzhi32(x, n uint32) uint32

// Bzhi64 executes BZHIQ with the index in n[7:0].
func Bzhi64(x uint64, n uint32) uint64

func Pdep32(x, mask uint32) uint32
func Pdep64(x, mask uint64) uint64
func Pext32(x, mask uint32) uint32
func Pext64(x, mask uint64) uint64

// Mulx32 executes MULXL and returns the low and high halves of x*y.
func Mulx32(x, y uint32) (lo, hi uint32)

// Mulx64 executes MULXQ and returns the low and high halves of x*y.
func Mulx64(x, y uint64) (lo, hi uint64)
