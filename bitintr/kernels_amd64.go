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

//go:build amd64 && !noasm

package bitintr

import "github.com/ajroetker/go-bitintr/bitintr/asm"

// installKernels overrides the intrinsic table with the assembly kernels of
// every instruction group the CPU implements.
func installKernels(f Features, k *kernels) DispatchLevel {
	level := DispatchIntrinsic

	if f.POPCNT {
		k.popcnt32 = asm.Popcnt32
		k.popcnt64 = asm.Popcnt64
		k.impls["popcnt"] = DispatchABM.String()
	}
	if f.ABM {
		k.lzcnt32 = asm.Lzcnt32
		k.lzcnt64 = asm.Lzcnt64
		k.impls["lzcnt"] = DispatchABM.String()
		level = DispatchABM
	}
	if f.BMI1 {
		k.tzcnt32 = asm.Tzcnt32
		k.tzcnt64 = asm.Tzcnt64
		k.andn32 = asm.Andn32
		k.andn64 = asm.Andn64
		k.bextr32 = asm.Bextr32
		k.bextr64 = asm.Bextr64
		k.blsi32 = asm.Blsi32
		k.blsi64 = asm.Blsi64
		k.blsmsk32 = asm.Blsmsk32
		k.blsmsk64 = asm.Blsmsk64
		k.blsr32 = asm.Blsr32
		k.blsr64 = asm.Blsr64
		for _, op := range []string{"tzcnt", "andn", "bextr", "blsi", "blsmsk", "blsr"} {
			k.impls[op] = DispatchBMI1.String()
		}
		level = DispatchBMI1
	}
	if f.BMI2 {
		k.bzhi32 = asm.Bzhi32
		k.bzhi64 = asm.Bzhi64
		k.pdep32 = asm.Pdep32
		k.pdep64 = asm.Pdep64
		k.pext32 = asm.Pext32
		k.pext64 = asm.Pext64
		k.mulx32 = asm.Mulx32
		k.mulx64 = asm.Mulx64
		for _, op := range []string{"bzhi", "pdep", "pext", "mulx"} {
			k.impls[op] = DispatchBMI2.String()
		}
		level = DispatchBMI2
	}
	return level
}
