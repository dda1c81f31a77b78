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

package verify

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/ajroetker/go-bitintr/bitintr"
)

var (
	// ErrInvalidWidth is returned for a bit width other than 8, 16, 32 or 64.
	ErrInvalidWidth = errors.New("invalid width")

	// ErrUnknownOp is returned for an operation name not in the catalogue.
	ErrUnknownOp = errors.New("unknown operation")

	// ErrArity is returned when an evaluation receives the wrong number of
	// arguments.
	ErrArity = errors.New("wrong number of arguments")
)

// Widths lists the supported bit widths.
var Widths = []int{8, 16, 32, 64}

// Type identifies a fixed-width integer type.
type Type struct {
	Bits   int
	Signed bool
}

// String returns the Go name of the type, e.g. "int16".
func (t Type) String() string {
	if t.Signed {
		return "int" + strconv.Itoa(t.Bits)
	}
	return "uint" + strconv.Itoa(t.Bits)
}

// Mask returns the low t.Bits bits set.
func (t Type) Mask() uint64 {
	return ^uint64(0) >> (64 - t.Bits)
}

// NewType validates bits and returns the corresponding type.
func NewType(bits int, signed bool) (Type, error) {
	if !slices.Contains(Widths, bits) {
		return Type{}, fmt.Errorf("%w: %d", ErrInvalidWidth, bits)
	}
	return Type{Bits: bits, Signed: signed}, nil
}

// ParseType parses a Go integer type name such as "uint32" or "int8".
func ParseType(s string) (Type, error) {
	signed := !strings.HasPrefix(s, "uint")
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "u"), "int")
	if !strings.HasPrefix(strings.TrimPrefix(s, "u"), "int") {
		return Type{}, fmt.Errorf("%w: %q", ErrInvalidWidth, s)
	}
	bits, err := strconv.Atoi(digits)
	if err != nil {
		return Type{}, fmt.Errorf("%w: %q", ErrInvalidWidth, s)
	}
	return NewType(bits, signed)
}

// Types returns the unsigned and signed type of every width, in order.
func Types(widths []int) ([]Type, error) {
	types := make([]Type, 0, 2*len(widths))
	for _, w := range widths {
		u, err := NewType(w, false)
		if err != nil {
			return nil, err
		}
		types = append(types, u, Type{Bits: w, Signed: true})
	}
	return types, nil
}

// Evaluator computes an operation on the zero-extended bit patterns of its
// arguments and returns the result bits. hi is only meaningful for mulx.
type Evaluator func(op string, t Type, args []uint64) (lo, hi uint64, err error)

// Hardware evaluates through the dispatched bitintr operations, which use
// the CPU instructions selected at start-up.
func Hardware(op string, t Type, args []uint64) (lo, hi uint64, err error) {
	return evaluate(op, t, args, false)
}

// Software evaluates through the Base software algorithms, or for the TBM
// group through the BMI1 software algorithms.
func Software(op string, t Type, args []uint64) (lo, hi uint64, err error) {
	return evaluate(op, t, args, true)
}

func evaluate(op string, t Type, args []uint64, software bool) (lo, hi uint64, err error) {
	tab, ok := tables[t]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidWidth, t.Bits)
	}
	o, ok := byName[op]
	if !ok {
		if o, err = Lookup(op); err != nil {
			return 0, 0, err
		}
	}
	if len(args) != o.Arity() {
		return 0, 0, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, o.Name, o.Arity(), len(args))
	}
	var a [3]uint64
	copy(a[:], args)
	return tab.eval(o.Name, software, a)
}

// table evaluates the catalogue for one integer type.
type table interface {
	eval(op string, software bool, args [3]uint64) (lo, hi uint64, err error)
}

// kernel is one operation on T. Index and Range arguments are passed as raw
// bits; Value arguments are converted to T by the kernel.
type kernel[T bitintr.Integers] func(x T, y, z uint64) (lo, hi T)

type pair[T bitintr.Integers] struct {
	hw, sw kernel[T]
}

type typed[T bitintr.Integers] map[string]pair[T]

func (m typed[T]) eval(op string, software bool, args [3]uint64) (lo, hi uint64, err error) {
	p, ok := m[op]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownOp, op)
	}
	k := p.hw
	if software {
		k = p.sw
	}
	// Checked builds panic on precondition violations; report them as
	// errors so a single bad input does not end a sweep or a CLI call.
	defer func() {
		if r := recover(); r != nil {
			var pe *bitintr.PreconditionError
			if e, isErr := r.(error); isErr && errors.As(e, &pe) {
				err = pe
				return
			}
			panic(r)
		}
	}()
	l, h := k(bitintr.FromUint64[T](args[0]), args[1], args[2])
	return bitintr.ToUint64(l), bitintr.ToUint64(h), nil
}

var tables = map[Type]table{
	{Bits: 8}:                kernelsFor[uint8](),
	{Bits: 8, Signed: true}:  kernelsFor[int8](),
	{Bits: 16}:               kernelsFor[uint16](),
	{Bits: 16, Signed: true}: kernelsFor[int16](),
	{Bits: 32}:               kernelsFor[uint32](),
	{Bits: 32, Signed: true}: kernelsFor[int32](),
	{Bits: 64}:               kernelsFor[uint64](),
	{Bits: 64, Signed: true}: kernelsFor[int64](),
}

func unary[T bitintr.Integers](f func(T) T) kernel[T] {
	return func(x T, _, _ uint64) (T, T) { return f(x), 0 }
}

func binary[T bitintr.Integers](f func(T, T) T) kernel[T] {
	return func(x T, y, _ uint64) (T, T) { return f(x, T(y)), 0 }
}

func kernelsFor[T bitintr.Integers]() typed[T] {
	// Trailing ones of x, built from BMI1: everything up to the lowest zero
	// bit, minus that bit.
	trailingOnes := func(x T) T {
		return bitintr.BaseBlsmsk(^x) &^ bitintr.BaseBlsi(^x)
	}

	return typed[T]{
		"popcnt": {unary(bitintr.Popcnt[T]), unary(bitintr.BasePopcnt[T])},
		"lzcnt":  {unary(bitintr.Lzcnt[T]), unary(bitintr.BaseLzcnt[T])},
		"tzcnt":  {unary(bitintr.Tzcnt[T]), unary(bitintr.BaseTzcnt[T])},
		"cls":    {unary(bitintr.Cls[T]), unary(bitintr.BaseCls[T])},
		"rbit":   {unary(bitintr.Rbit[T]), unary(bitintr.BaseRbit[T])},
		"rev":    {unary(bitintr.Rev[T]), unary(bitintr.BaseRev[T])},
		"rotl": {
			func(x T, n, _ uint64) (T, T) { return bitintr.RotateLeft(x, uint(n)), 0 },
			func(x T, n, _ uint64) (T, T) { return bitintr.BaseRotateLeft(x, uint(n)), 0 },
		},
		"rotr": {
			func(x T, n, _ uint64) (T, T) { return bitintr.RotateRight(x, uint(n)), 0 },
			func(x T, n, _ uint64) (T, T) { return bitintr.BaseRotateRight(x, uint(n)), 0 },
		},
		"andn": {binary(bitintr.Andn[T]), binary(bitintr.BaseAndn[T])},
		"bextr": {
			func(x T, s, l uint64) (T, T) { return bitintr.Bextr(x, T(s), T(l)), 0 },
			func(x T, s, l uint64) (T, T) { return bitintr.BaseBextr(x, T(s), T(l)), 0 },
		},
		"bextri": {
			func(x T, r, _ uint64) (T, T) { return bitintr.Bextri(x, uint32(r)), 0 },
			func(x T, r, _ uint64) (T, T) { return bitintr.BaseBextri(x, uint32(r)), 0 },
		},
		"blsi":   {unary(bitintr.Blsi[T]), unary(bitintr.BaseBlsi[T])},
		"blsmsk": {unary(bitintr.Blsmsk[T]), unary(bitintr.BaseBlsmsk[T])},
		"blsr":   {unary(bitintr.Blsr[T]), unary(bitintr.BaseBlsr[T])},
		"bzhi": {
			func(x T, n, _ uint64) (T, T) { return bitintr.Bzhi(x, uint32(n)), 0 },
			func(x T, n, _ uint64) (T, T) { return bitintr.BaseBzhi(x, uint32(n)), 0 },
		},
		"pdep": {binary(bitintr.Pdep[T]), binary(bitintr.BasePdep[T])},
		"pext": {binary(bitintr.Pext[T]), binary(bitintr.BasePext[T])},
		"mulx": {
			func(x T, y, _ uint64) (T, T) { return bitintr.Mulx(x, T(y)) },
			func(x T, y, _ uint64) (T, T) { return bitintr.BaseMulx(x, T(y)) },
		},

		"blcfill": {unary(bitintr.Blcfill[T]), unary(func(x T) T { return bitintr.BaseAndn(bitintr.BaseBlsmsk(^x), x) })},
		"blci":    {unary(bitintr.Blci[T]), unary(func(x T) T { return ^bitintr.BaseBlsi(^x) })},
		"blcic":   {unary(bitintr.Blcic[T]), unary(func(x T) T { return bitintr.BaseBlsi(^x) })},
		"blcmsk":  {unary(bitintr.Blcmsk[T]), unary(func(x T) T { return bitintr.BaseBlsmsk(^x) })},
		"blcs":    {unary(bitintr.Blcs[T]), unary(func(x T) T { return x | bitintr.BaseBlsi(^x) })},
		"blsfill": {unary(bitintr.Blsfill[T]), unary(func(x T) T { return x | bitintr.BaseBlsmsk(x) })},
		"blsic":   {unary(bitintr.Blsic[T]), unary(func(x T) T { return ^bitintr.BaseBlsi(x) })},
		"t1mskc":  {unary(bitintr.T1mskc[T]), unary(func(x T) T { return ^trailingOnes(x) })},
		"tzmsk":   {unary(bitintr.Tzmsk[T]), unary(func(x T) T { return bitintr.BaseBlsmsk(x) &^ bitintr.BaseBlsi(x) })},
	}
}
