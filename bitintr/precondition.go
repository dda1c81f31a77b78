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

import "fmt"

// PreconditionError reports a call that violated the documented contract of
// an operation, such as Blsr(0) or Bzhi with an index past the operand width.
//
// It is only raised, as a panic value, by builds tagged bitintr_checked.
// Default builds return the result the hardware instruction would produce and
// never fault.
type PreconditionError struct {
	// Op is the operation name, e.g. "blsr".
	Op string

	// Detail describes the violated condition.
	Detail string
}

// Error implements the error interface.
func (e *PreconditionError) Error() string {
	return fmt.Sprintf("bitintr: %s precondition violated: %s", e.Op, e.Detail)
}

// Checked reports whether precondition violations panic (bitintr_checked
// builds) or silently produce the masked hardware result.
func Checked() bool {
	return checkedBuild
}

func panicPrecondition(op, format string, args ...any) {
	panic(&PreconditionError{Op: op, Detail: fmt.Sprintf(format, args...)})
}

// checkBextr validates the start and length operands of a bit field extract.
func checkBextr[T Integers](op string, start, length uint64) {
	if !checkedBuild {
		return
	}
	w := uint64(BitSize[T]())
	if start >= w {
		panicPrecondition(op, "start %d >= bit width %d", start, w)
	}
	if length >= w {
		panicPrecondition(op, "length %d >= bit width %d", length, w)
	}
}

func checkBzhi[T Integers](n uint32) {
	if checkedBuild && n >= uint32(BitSize[T]()) {
		panicPrecondition("bzhi", "bit position %d >= bit width %d", n, BitSize[T]())
	}
}

func checkBlsr[T Integers](x T) {
	if checkedBuild && x == 0 {
		panicPrecondition("blsr", "operand is zero")
	}
}
