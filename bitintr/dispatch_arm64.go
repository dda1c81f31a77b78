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

//go:build arm64

package bitintr

import (
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

func detectFeatures() Features {
	// CLZ, RBIT and REV are part of the ARMv8-A base architecture. ASIMD is
	// checked for consistency with the rest of the feature probing.
	return Features{
		Vendor: cpuid.CPU.VendorString,
		ARMv8:  cpu.ARM64.HasASIMD,
	}
}
