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

package bitintr

// installKernels keeps the math/bits table. On AArch64 the compiler lowers it
// to CLZ, RBIT and REV, which is reported as the armv8 level.
func installKernels(f Features, k *kernels) DispatchLevel {
	if !f.ARMv8 {
		return DispatchIntrinsic
	}
	for _, op := range []string{"lzcnt", "tzcnt", "rbit", "rev"} {
		k.impls[op] = DispatchARMv8.String()
	}
	return DispatchARMv8
}
