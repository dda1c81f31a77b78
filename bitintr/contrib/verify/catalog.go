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

// Package verify checks that the dispatched bitintr operations produce the
// same bits as their software algorithms on the running machine.
//
// Every operation is described by an Op in a fixed catalogue. Run sweeps the
// operand space of each (operation, integer type) pair on a worker pool,
// exhaustively for 8-bit operands and by deterministic sampling otherwise,
// and reports every disagreement as a Mismatch.
//
// The TBM group has no separate hardware path; its reference side is the
// same operation expressed through the BMI1 software algorithms, so a sweep
// still checks the closed-form formulas.
package verify

import (
	"fmt"
	"strings"
)

// Operand describes how the verifier draws an operation argument.
type Operand int

const (
	// Value is a full-width operand of the integer type under test.
	Value Operand = iota

	// Index is a bit position or count. It is drawn from [0, W) in checked
	// builds and from [0, W+8) otherwise.
	Index

	// Range is a BEXTRI range descriptor: start in bits [7:0] and length in
	// bits [15:8], each drawn like an Index.
	Range
)

// String returns the operand name used in usage strings.
func (o Operand) String() string {
	switch o {
	case Value:
		return "x"
	case Index:
		return "n"
	case Range:
		return "range"
	default:
		return "?"
	}
}

// Op describes one operation of the catalogue.
type Op struct {
	// Name is the lower-case instruction name, e.g. "pdep".
	Name string

	// Group is the instruction set the operation belongs to: "abm", "bmi1",
	// "bmi2", "tbm" or "arm".
	Group string

	// Operands lists the arguments in call order.
	Operands []Operand

	// Results is 2 for mulx (low and high halves) and 1 otherwise.
	Results int

	// Summary is a one-line description.
	Summary string
}

// Arity returns the number of arguments of op.
func (op Op) Arity() int {
	return len(op.Operands)
}

// Usage returns a call template such as "bextr x n n".
func (op Op) Usage() string {
	parts := []string{op.Name}
	for _, o := range op.Operands {
		parts = append(parts, o.String())
	}
	return strings.Join(parts, " ")
}

var (
	unaryOperands  = []Operand{Value}
	binaryOperands = []Operand{Value, Value}
	indexOperands  = []Operand{Value, Index}
)

var catalog = []Op{
	{Name: "popcnt", Group: "abm", Operands: unaryOperands, Results: 1, Summary: "count set bits"},
	{Name: "lzcnt", Group: "abm", Operands: unaryOperands, Results: 1, Summary: "count leading zero bits"},
	{Name: "tzcnt", Group: "bmi1", Operands: unaryOperands, Results: 1, Summary: "count trailing zero bits"},
	{Name: "cls", Group: "arm", Operands: unaryOperands, Results: 1, Summary: "count leading sign bits"},
	{Name: "rbit", Group: "arm", Operands: unaryOperands, Results: 1, Summary: "reverse bit order"},
	{Name: "rev", Group: "arm", Operands: unaryOperands, Results: 1, Summary: "reverse byte order"},
	{Name: "rotl", Group: "arm", Operands: indexOperands, Results: 1, Summary: "rotate left"},
	{Name: "rotr", Group: "arm", Operands: indexOperands, Results: 1, Summary: "rotate right"},
	{Name: "andn", Group: "bmi1", Operands: binaryOperands, Results: 1, Summary: "^x & y"},
	{Name: "bextr", Group: "bmi1", Operands: []Operand{Value, Index, Index}, Results: 1, Summary: "extract bit field by start and length"},
	{Name: "bextri", Group: "tbm", Operands: []Operand{Value, Range}, Results: 1, Summary: "extract bit field by range descriptor"},
	{Name: "blsi", Group: "bmi1", Operands: unaryOperands, Results: 1, Summary: "isolate lowest set bit"},
	{Name: "blsmsk", Group: "bmi1", Operands: unaryOperands, Results: 1, Summary: "mask up to lowest set bit"},
	{Name: "blsr", Group: "bmi1", Operands: unaryOperands, Results: 1, Summary: "reset lowest set bit"},
	{Name: "bzhi", Group: "bmi2", Operands: indexOperands, Results: 1, Summary: "zero bits from index upward"},
	{Name: "pdep", Group: "bmi2", Operands: binaryOperands, Results: 1, Summary: "parallel bit deposit"},
	{Name: "pext", Group: "bmi2", Operands: binaryOperands, Results: 1, Summary: "parallel bit extract"},
	{Name: "mulx", Group: "bmi2", Operands: binaryOperands, Results: 2, Summary: "full-width unsigned multiply"},
	{Name: "blcfill", Group: "tbm", Operands: unaryOperands, Results: 1, Summary: "clear trailing one bits"},
	{Name: "blci", Group: "tbm", Operands: unaryOperands, Results: 1, Summary: "set all but lowest clear bit"},
	{Name: "blcic", Group: "tbm", Operands: unaryOperands, Results: 1, Summary: "isolate lowest clear bit"},
	{Name: "blcmsk", Group: "tbm", Operands: unaryOperands, Results: 1, Summary: "mask up to lowest clear bit"},
	{Name: "blcs", Group: "tbm", Operands: unaryOperands, Results: 1, Summary: "set lowest clear bit"},
	{Name: "blsfill", Group: "tbm", Operands: unaryOperands, Results: 1, Summary: "fill below lowest set bit"},
	{Name: "blsic", Group: "tbm", Operands: unaryOperands, Results: 1, Summary: "complement of isolated lowest set bit"},
	{Name: "t1mskc", Group: "tbm", Operands: unaryOperands, Results: 1, Summary: "inverse mask of trailing ones"},
	{Name: "tzmsk", Group: "tbm", Operands: unaryOperands, Results: 1, Summary: "mask of trailing zeros"},
}

// Ops returns the catalogue in a stable order.
func Ops() []Op {
	return append([]Op(nil), catalog...)
}

// Lookup returns the operation named name (case-insensitive; "clz" is
// accepted for lzcnt and "swapbytes" for rev).
func Lookup(name string) (Op, error) {
	name = strings.ToLower(name)
	switch name {
	case "clz":
		name = "lzcnt"
	case "swapbytes":
		name = "rev"
	}
	if op, ok := byName[name]; ok {
		return op, nil
	}
	return Op{}, fmt.Errorf("%w: %q", ErrUnknownOp, name)
}

var byName = func() map[string]Op {
	m := make(map[string]Op, len(catalog))
	for _, op := range catalog {
		m[op.Name] = op
	}
	return m
}()
