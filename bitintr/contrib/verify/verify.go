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
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ajroetker/go-bitintr/bitintr"
	"github.com/ajroetker/go-bitintr/bitintr/contrib/workerpool"
)

// Options configures a verification run. The zero value verifies every
// operation on every width with the default sample counts.
type Options struct {
	// Widths restricts the run to these bit widths. Both the signed and the
	// unsigned type of each width are checked. Default: 8, 16, 32, 64.
	Widths []int

	// Ops restricts the run to these operation names. Default: all.
	Ops []string

	// Samples is the number of random first operands drawn for 32 and 64-bit
	// types, in addition to the boundary values. 8 and 16-bit first operands
	// are enumerated. Default: 10000.
	Samples int

	// Partners is the number of random second operands combined with every
	// first operand, in addition to the boundary values. 8-bit second
	// operands are enumerated. Default: 16.
	Partners int

	// Seed makes the sampled operands reproducible.
	Seed uint64

	// BatchSize is the number of cases a worker takes at a time.
	// Default: 4096.
	BatchSize int

	// MaxMismatches caps the mismatches kept per result. The total count is
	// always reported. Default: 16.
	MaxMismatches int

	// Hardware and Software evaluate the two sides of the comparison.
	// Default: the package-level Hardware and Software evaluators.
	Hardware Evaluator
	Software Evaluator

	// OnResult, if set, is called after each (operation, type) pair
	// completes.
	OnResult func(Result)
}

func (o Options) withDefaults() Options {
	if len(o.Widths) == 0 {
		o.Widths = Widths
	}
	if o.Samples <= 0 {
		o.Samples = 10000
	}
	if o.Partners <= 0 {
		o.Partners = 16
	}
	if o.BatchSize <= 0 {
		o.BatchSize = 4096
	}
	if o.MaxMismatches <= 0 {
		o.MaxMismatches = 16
	}
	if o.Hardware == nil {
		o.Hardware = Hardware
	}
	if o.Software == nil {
		o.Software = Software
	}
	return o
}

// Mismatch is one input on which the two evaluators disagree.
type Mismatch struct {
	Op       string
	Type     Type
	Args     []uint64
	Hardware [2]uint64
	Software [2]uint64
}

// String formats the mismatch as "op(type args) = hw, software sw".
func (m Mismatch) String() string {
	args := make([]string, len(m.Args))
	for i, a := range m.Args {
		args[i] = fmt.Sprintf("%#x", a)
	}
	return fmt.Sprintf("%s(%s %s) = %#x:%#x, software %#x:%#x",
		m.Op, m.Type, strings.Join(args, ", "),
		m.Hardware[1], m.Hardware[0], m.Software[1], m.Software[0])
}

// Result summarises one (operation, type) pair.
type Result struct {
	Op   string
	Type Type

	// Implementation names the dispatch level serving the operation.
	Implementation string

	// Cases is the number of inputs compared.
	Cases int

	// Failed is the number of inputs that disagreed.
	Failed int

	// Mismatches holds up to Options.MaxMismatches failing inputs.
	Mismatches []Mismatch

	Duration time.Duration
}

// OK reports whether every input agreed.
func (r Result) OK() bool {
	return r.Failed == 0
}

// Report is the outcome of Run.
type Report struct {
	Level    string
	Features bitintr.Features
	Checked  bool
	Results  []Result
	Duration time.Duration
}

// Cases returns the number of inputs compared across all results.
func (r *Report) Cases() int {
	n := 0
	for _, res := range r.Results {
		n += res.Cases
	}
	return n
}

// Failed returns the number of disagreeing inputs across all results.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		n += res.Failed
	}
	return n
}

// OK reports whether every result agreed.
func (r *Report) OK() bool {
	return r.Failed() == 0
}

// Run compares opts.Hardware with opts.Software on the operand space of every
// selected operation and type, fanning the work out over pool. A nil pool
// gets a temporary one with GOMAXPROCS workers.
//
// Mismatches are returned in the report, not as an error. Run returns an
// error for invalid options, for an evaluator error, and when ctx ends; in
// the last case the report holds the results completed so far.
func Run(ctx context.Context, pool *workerpool.Pool, opts Options) (*Report, error) {
	opts = opts.withDefaults()
	types, err := Types(opts.Widths)
	if err != nil {
		return nil, err
	}
	ops, err := selectOps(opts.Ops)
	if err != nil {
		return nil, err
	}
	if pool == nil {
		pool = workerpool.New(0)
		defer pool.Close()
	}

	report := &Report{
		Level:    bitintr.CurrentName(),
		Features: bitintr.CPUFeatures(),
		Checked:  bitintr.Checked(),
	}
	start := time.Now()
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9E3779B97F4A7C15))
	for _, t := range types {
		doms := newDomains(t, opts, rng)
		for _, op := range ops {
			res, err := runOne(ctx, pool, op, t, doms, opts)
			if err != nil {
				report.Duration = time.Since(start)
				return report, fmt.Errorf("verify: %s/%s: %w", op.Name, t, err)
			}
			report.Results = append(report.Results, res)
			if opts.OnResult != nil {
				opts.OnResult(res)
			}
		}
	}
	report.Duration = time.Since(start)
	return report, nil
}

func selectOps(names []string) ([]Op, error) {
	if len(names) == 0 {
		return Ops(), nil
	}
	ops := make([]Op, 0, len(names))
	for _, name := range names {
		op, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// domains holds the operand values drawn for one type.
type domains struct {
	wide     []uint64 // first operands of unary and binary operations
	partners []uint64 // other Value operands
	indices  []uint64

	// Field extracts take every first operand on 8 and 16-bit types, so
	// their start and length come from the shorter fields list there.
	exhaustive bool
	fields     []uint64
	ranges     []uint64
}

func boundaryValues(t Type) []uint64 {
	top := uint64(1) << (t.Bits - 1)
	vals := []uint64{
		0, 1, 2, top, top >> 1, ^top,
		0x5555555555555555, 0xAAAAAAAAAAAAAAAA, 0x0F0F0F0F0F0F0F0F, 0x8000000000000001,
		^uint64(0),
	}
	for i := range vals {
		vals[i] &= t.Mask()
	}
	return vals
}

func enumerate(n uint64) []uint64 {
	vals := make([]uint64, n)
	for i := range vals {
		vals[i] = uint64(i)
	}
	return vals
}

func newDomains(t Type, opts Options, rng *rand.Rand) domains {
	var d domains
	if t.Bits <= 16 {
		d.wide = enumerate(1 << t.Bits)
	} else {
		d.wide = boundaryValues(t)
		for range opts.Samples {
			d.wide = append(d.wide, rng.Uint64()&t.Mask())
		}
	}
	if t.Bits == 8 {
		d.partners = enumerate(1 << 8)
	} else {
		d.partners = boundaryValues(t)
		for range opts.Partners {
			d.partners = append(d.partners, rng.Uint64()&t.Mask())
		}
	}

	// Indices past the width are outside the documented domain. Checked
	// builds reject them, default builds return the hardware result.
	limit := uint64(t.Bits)
	if !bitintr.Checked() {
		limit += 8
	}
	d.indices = enumerate(limit)
	d.exhaustive = t.Bits <= 16
	d.fields = d.indices
	if t.Bits == 16 {
		d.fields = enumerate(uint64(t.Bits))
		if !bitintr.Checked() {
			d.fields = append(d.fields, uint64(t.Bits), uint64(t.Bits)+7, 0xFF)
		}
	}
	for _, s := range d.fields {
		for _, l := range d.fields {
			d.ranges = append(d.ranges, s|l<<8)
		}
	}
	return d
}

// operandDomains returns the value list of each argument of op.
func (d domains) operandDomains(op Op) [][]uint64 {
	fieldOp := false
	for _, o := range op.Operands[1:] {
		if o == Range {
			fieldOp = true
		}
	}
	if len(op.Operands) > 2 {
		fieldOp = true
	}

	doms := make([][]uint64, len(op.Operands))
	for i, o := range op.Operands {
		switch {
		case o == Index && fieldOp:
			doms[i] = d.fields
		case o == Index:
			doms[i] = d.indices
		case o == Range:
			doms[i] = d.ranges
		case i == 0 && (!fieldOp || d.exhaustive):
			doms[i] = d.wide
		default:
			doms[i] = d.partners
		}
	}
	return doms
}

// valid reports whether args are inside the domain of op. Only checked
// builds restrict the domain.
func valid(op Op, args []uint64) bool {
	return !bitintr.Checked() || op.Name != "blsr" || args[0] != 0
}

func runOne(ctx context.Context, pool *workerpool.Pool, op Op, t Type, d domains, opts Options) (Result, error) {
	start := time.Now()
	doms := d.operandDomains(op)
	total := 1
	for _, dom := range doms {
		total *= len(dom)
	}

	var (
		cases  atomic.Int64
		failed atomic.Int64
		mu     sync.Mutex
		kept   []Mismatch
	)
	err := pool.Sweep(ctx, total, opts.BatchSize, func(first, last int) error {
		args := make([]uint64, len(doms))
		var n int64
		for k := first; k < last; k++ {
			rem := k
			for j := len(doms) - 1; j >= 0; j-- {
				args[j] = doms[j][rem%len(doms[j])]
				rem /= len(doms[j])
			}
			if !valid(op, args) {
				continue
			}
			n++

			hlo, hhi, err := opts.Hardware(op.Name, t, args)
			if err != nil {
				return fmt.Errorf("hardware %v: %w", args, err)
			}
			slo, shi, err := opts.Software(op.Name, t, args)
			if err != nil {
				return fmt.Errorf("software %v: %w", args, err)
			}
			if op.Results < 2 {
				hhi, shi = 0, 0
			}
			if hlo == slo && hhi == shi {
				continue
			}
			failed.Add(1)
			mu.Lock()
			if len(kept) < opts.MaxMismatches {
				kept = append(kept, Mismatch{
					Op:       op.Name,
					Type:     t,
					Args:     append([]uint64(nil), args...),
					Hardware: [2]uint64{hlo, hhi},
					Software: [2]uint64{slo, shi},
				})
			}
			mu.Unlock()
		}
		cases.Add(n)
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return Result{
		Op:             op.Name,
		Type:           t,
		Implementation: implementationOf(op),
		Cases:          int(cases.Load()),
		Failed:         int(failed.Load()),
		Mismatches:     kept,
		Duration:       time.Since(start),
	}, nil
}

// implementationOf maps a catalogue operation to the dispatch entry serving
// it. The TBM group is closed-form arithmetic in every build.
func implementationOf(op Op) string {
	switch op.Name {
	case "cls":
		return bitintr.Implementation("lzcnt")
	case "rotl", "rotr":
		return bitintr.Implementation("rotate")
	case "bextri":
		return bitintr.Implementation("bextr")
	}
	if impl := bitintr.Implementation(op.Name); impl != "" {
		return impl
	}
	return "formula"
}
