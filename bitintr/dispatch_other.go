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

//go:build !amd64 && !arm64

package bitintr

import "github.com/klauspost/cpuid/v2"

func detectFeatures() Features {
	// Other architectures rely on math/bits intrinsics where the compiler
	// has them and on the software algorithms otherwise.
	return Features{Vendor: cpuid.CPU.VendorString}
}
