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
	"maps"
	"math/bits"
	"os"
	"strconv"
)

// DispatchLevel represents the instruction group backing the dispatched
// operations.
type DispatchLevel int

const (
	// DispatchSoftware indicates every operation runs its Base algorithm.
	DispatchSoftware DispatchLevel = iota

	// DispatchIntrinsic indicates math/bits compiler intrinsics for the
	// counting, reversal, rotation and multiply operations.
	DispatchIntrinsic

	// DispatchABM indicates x86 POPCNT and LZCNT.
	DispatchABM

	// DispatchBMI1 indicates x86 BMI1 (ANDN, BEXTR, BLSI, BLSMSK, BLSR, TZCNT).
	DispatchBMI1

	// DispatchBMI2 indicates x86 BMI2 (BZHI, PDEP, PEXT, MULX).
	DispatchBMI2

	// DispatchARMv8 indicates AArch64, where the compiler lowers the count
	// and reversal operations to CLZ, RBIT and REV.
	DispatchARMv8
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchSoftware:
		return "software"
	case DispatchIntrinsic:
		return "intrinsic"
	case DispatchABM:
		return "abm"
	case DispatchBMI1:
		return "bmi1"
	case DispatchBMI2:
		return "bmi2"
	case DispatchARMv8:
		return "armv8"
	default:
		return "unknown"
	}
}

// Features describes the bit manipulation extensions of the running CPU.
type Features struct {
	Vendor string
	POPCNT bool
	ABM    bool // LZCNT
	BMI1   bool
	BMI2   bool
	TBM    bool
	ARMv8  bool
}

// kernels holds the per-width implementation of every dispatched
// instruction. Narrower types are routed through the 32-bit entries on their
// zero-extended bit pattern.
type kernels struct {
	popcnt32 func(uint32) uint32
	popcnt64 func(uint64) uint64
	lzcnt32  func(uint32) uint32
	lzcnt64  func(uint64) uint64
	tzcnt32  func(uint32) uint32
	tzcnt64  func(uint64) uint64

	rbit32 func(uint32) uint32
	rbit64 func(uint64) uint64
	rev32  func(uint32) uint32
	rev64  func(uint64) uint64
	rotl8  func(uint8, uint) uint8
	rotl16 func(uint16, uint) uint16
	rotl32 func(uint32, uint) uint32
	rotl64 func(uint64, uint) uint64

	andn32   func(x, y uint32) uint32
	andn64   func(x, y uint64) uint64
	bextr32  func(src, control uint32) uint32
	bextr64  func(src uint64, control uint32) uint64
	blsi32   func(uint32) uint32
	blsi64   func(uint64) uint64
	blsmsk32 func(uint32) uint32
	blsmsk64 func(uint64) uint64
	blsr32   func(uint32) uint32
	blsr64   func(uint64) uint64

	bzhi32 func(x, n uint32) uint32
	bzhi64 func(x uint64, n uint32) uint64
	pdep32 func(x, mask uint32) uint32
	pdep64 func(x, mask uint64) uint64
	pext32 func(x, mask uint32) uint32
	pext64 func(x, mask uint64) uint64
	mulx32 func(x, y uint32) (lo, hi uint32)
	mulx64 func(x, y uint64) (lo, hi uint64)

	// impls maps an operation name to the name of the implementation
	// serving it.
	impls map[string]string
}

var (
	// impl is the active kernel table, written once by init().
	impl kernels

	currentLevel    DispatchLevel
	currentName     string
	currentFeatures Features
)

func init() {
	currentFeatures = detectFeatures()
	if NoHardwareEnv() {
		impl = baseKernels()
		currentLevel = DispatchSoftware
	} else {
		impl = intrinsicKernels()
		currentLevel = installKernels(currentFeatures, &impl)
	}
	currentName = currentLevel.String()
}

// CurrentLevel returns the highest instruction group in use.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a human-readable name for the current dispatch level.
// For example: "bmi2", "armv8", "software".
func CurrentName() string {
	return currentName
}

// CPUFeatures returns the detected bit manipulation extensions. Detection
// runs even when BITINTR_NO_HW forces the software path.
func CPUFeatures() Features {
	return currentFeatures
}

// Implementation returns the implementation name serving op ("software",
// "intrinsic", "abm", "bmi1", "bmi2"), or "" for an unknown op.
func Implementation(op string) string {
	return impl.impls[op]
}

// Implementations returns a copy of the operation to implementation map.
func Implementations() map[string]string {
	return maps.Clone(impl.impls)
}

// NoHardwareEnv checks if the BITINTR_NO_HW environment variable is set.
// When set, every operation uses its software algorithm regardless of CPU
// capabilities. This is useful for testing and debugging.
func NoHardwareEnv() bool {
	val := os.Getenv("BITINTR_NO_HW")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// baseKernels returns the table of software algorithms.
func baseKernels() kernels {
	k := kernels{
		popcnt32: BasePopcnt[uint32],
		popcnt64: BasePopcnt[uint64],
		lzcnt32:  BaseLzcnt[uint32],
		lzcnt64:  BaseLzcnt[uint64],
		tzcnt32:  BaseTzcnt[uint32],
		tzcnt64:  BaseTzcnt[uint64],

		rbit32: BaseRbit[uint32],
		rbit64: BaseRbit[uint64],
		rev32:  BaseRev[uint32],
		rev64:  BaseRev[uint64],
		rotl8:  BaseRotateLeft[uint8],
		rotl16: BaseRotateLeft[uint16],
		rotl32: BaseRotateLeft[uint32],
		rotl64: BaseRotateLeft[uint64],

		andn32: BaseAndn[uint32],
		andn64: BaseAndn[uint64],
		bextr32: func(src, control uint32) uint32 {
			return uint32(bextrBits(uint64(src), control))
		},
		bextr64:  bextrBits,
		blsi32:   BaseBlsi[uint32],
		blsi64:   BaseBlsi[uint64],
		blsmsk32: BaseBlsmsk[uint32],
		blsmsk64: BaseBlsmsk[uint64],
		blsr32:   func(x uint32) uint32 { return x & (x - 1) },
		blsr64:   func(x uint64) uint64 { return x & (x - 1) },

		bzhi32: func(x, n uint32) uint32 {
			return uint32(bzhiBits(uint64(x), n))
		},
		bzhi64: bzhiBits,
		pdep32: BasePdep[uint32],
		pdep64: BasePdep[uint64],
		pext32: BasePext[uint32],
		pext64: BasePext[uint64],
		mulx32: BaseMulx[uint32],
		mulx64: BaseMulx[uint64],

		impls: make(map[string]string),
	}
	for _, op := range opNames {
		k.impls[op] = DispatchSoftware.String()
	}
	return k
}

// intrinsicKernels replaces the software counting, reversal, rotation and
// multiply algorithms with math/bits, which the compiler lowers to single
// instructions where the target has them.
func intrinsicKernels() kernels {
	k := baseKernels()
	k.popcnt32 = func(x uint32) uint32 { return uint32(bits.OnesCount32(x)) }
	k.popcnt64 = func(x uint64) uint64 { return uint64(bits.OnesCount64(x)) }
	k.lzcnt32 = func(x uint32) uint32 { return uint32(bits.LeadingZeros32(x)) }
	k.lzcnt64 = func(x uint64) uint64 { return uint64(bits.LeadingZeros64(x)) }
	k.tzcnt32 = func(x uint32) uint32 { return uint32(bits.TrailingZeros32(x)) }
	k.tzcnt64 = func(x uint64) uint64 { return uint64(bits.TrailingZeros64(x)) }

	k.rbit32 = bits.Reverse32
	k.rbit64 = bits.Reverse64
	k.rev32 = bits.ReverseBytes32
	k.rev64 = bits.ReverseBytes64
	k.rotl8 = func(x uint8, n uint) uint8 { return bits.RotateLeft8(x, int(n)) }
	k.rotl16 = func(x uint16, n uint) uint16 { return bits.RotateLeft16(x, int(n)) }
	k.rotl32 = func(x uint32, n uint) uint32 { return bits.RotateLeft32(x, int(n)) }
	k.rotl64 = func(x uint64, n uint) uint64 { return bits.RotateLeft64(x, int(n)) }

	k.mulx32 = func(x, y uint32) (lo, hi uint32) {
		hi, lo = bits.Mul32(x, y)
		return lo, hi
	}
	k.mulx64 = func(x, y uint64) (lo, hi uint64) {
		hi, lo = bits.Mul64(x, y)
		return lo, hi
	}

	for _, op := range []string{"popcnt", "lzcnt", "tzcnt", "rbit", "rev", "rotate", "mulx"} {
		k.impls[op] = DispatchIntrinsic.String()
	}
	return k
}

// opNames lists the operations tracked in kernels.impls.
var opNames = []string{
	"popcnt", "lzcnt", "tzcnt",
	"rbit", "rev", "rotate",
	"andn", "bextr", "blsi", "blsmsk", "blsr",
	"bzhi", "pdep", "pext", "mulx",
}
