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

//go:build !amd64 || noasm

package asm

// Stub implementations for non-amd64 or noasm builds.
// These should never be called - the bitintr package uses its software and
// intrinsic kernels instead.

func Popcnt32(x uint32) uint32 { panic("POPCNT not available") }
func Popcnt64(x uint64) uint64 { panic("POPCNT not available") }
func Lzcnt32(x uint32) uint32  { panic("LZCNT not available") }
func Lzcnt64(x uint64) uint64  { panic("LZCNT not available") }

func Tzcnt32(x uint32) uint32                   { panic("BMI1 not available") }
func Tzcnt64(x uint64) uint64                   { panic("BMI1 not available") }
func Andn32(x, y uint32) uint32                 { panic("BMI1 not available") }
func Andn64(x, y uint64) uint64                 { panic("BMI1 not available") }
func Bextr32(src, control uint32) uint32        { panic("BMI1 not available") }
func Bextr64(src uint64, control uint32) uint64 { panic("BMI1 not available") }
func Blsi32(x uint32) uint32                    { panic("BMI1 not available") }
func Blsi64(x uint64) uint64                    { panic("BMI1 not available") }
func Blsmsk32(x uint32) uint32                  { panic("BMI1 not available") }
func Blsmsk64(x uint64) uint64                  { panic("BMI1 not available") }
func Blsr32(x uint32) uint32                    { panic("BMI1 not available") }
func Blsr64(x uint64) uint64                    { panic("BMI1 not available") }

func Bzhi32(x, n uint32) uint32          { panic("BMI2 not available") }
func Bzhi64(x uint64, n uint32) uint64   { panic("BMI2 not available") }
func Pdep32(x, mask uint32) uint32       { panic("BMI2 not available") }
func Pdep64(x, mask uint64) uint64       { panic("BMI2 not available") }
func Pext32(x, mask uint32) uint32       { panic("BMI2 not available") }
func Pext64(x, mask uint64) uint64       { panic("BMI2 not available") }
func Mulx32(x, y uint32) (lo, hi uint32) { panic("BMI2 not available") }
func Mulx64(x, y uint64) (lo, hi uint64) { panic("BMI2 not available") }
