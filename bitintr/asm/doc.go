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

// Package asm holds the amd64 kernels backing the bitintr dispatch table.
// Each function executes exactly one ABM, BMI1 or BMI2 instruction and must
// only be called after the corresponding CPU feature has been detected. On
// other architectures, or with the noasm build tag, every function panics.
package asm
