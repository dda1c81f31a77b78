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

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-bitintr/bitintr/contrib/verify"
)

// ErrOperand is returned for an operand that cannot be represented in the
// requested type.
var ErrOperand = errors.New("invalid operand")

func (a *app) evalCmd() *cobra.Command {
	var (
		width    int
		signed   bool
		software bool
	)
	cmd := &cobra.Command{
		Use:   "eval OP ARGS...",
		Short: "Evaluate one operation on the given operands",
		Long: `Evaluate one operation on the given operands and print the result in
binary, hexadecimal and decimal.

Operands use Go integer literal syntax, so 0x, 0b and 0o prefixes and
underscores are accepted. Negative values are accepted for signed types.
Bit indices and BEXTRI range descriptors are unsigned 32-bit values.`,
		Example: "  bitintr eval --width 16 pdep 0b1011111010010011 0b0110001110000101\n" +
			"  bitintr eval --width 64 mulx 0xdeadbeefcafebabe 0x0123456789abcdef",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := verify.Lookup(args[0])
			if err != nil {
				return err
			}
			if got := len(args) - 1; got != op.Arity() {
				return fmt.Errorf("%w: usage is %q, got %d operands", verify.ErrArity, op.Usage(), got)
			}
			ty, err := verify.NewType(width, signed)
			if err != nil {
				return err
			}
			vals := make([]uint64, op.Arity())
			for i, kind := range op.Operands {
				if vals[i], err = parseOperand(args[i+1], ty, kind); err != nil {
					return err
				}
			}

			evaluate, side := verify.Hardware, "dispatched"
			if software {
				evaluate, side = verify.Software, "software"
			}
			lo, hi, err := evaluate(op.Name, ty, vals)
			if err != nil {
				return err
			}
			a.logger.Debug("evaluated",
				zap.String("op", op.Name),
				zap.Stringer("type", ty),
				zap.String("side", side),
				zap.Uint64s("args", vals),
				zap.Uint64("lo", lo),
				zap.Uint64("hi", hi))

			if op.Results == 2 {
				fmt.Fprintf(a.stdout, "lo  %s\nhi  %s\n", formatValue(lo, ty), formatValue(hi, ty))
				return nil
			}
			fmt.Fprintln(a.stdout, formatValue(lo, ty))
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVarP(&width, "width", "w", 32, "operand width in bits: 8, 16, 32 or 64")
	f.BoolVarP(&signed, "signed", "s", false, "treat operands as signed integers")
	f.BoolVar(&software, "software", false, "evaluate with the software algorithm instead of the dispatched one")
	return cmd
}

// parseOperand parses a Go integer literal for an operand of the given kind
// and returns its bit pattern in the low ty.Bits bits.
func parseOperand(s string, ty verify.Type, kind verify.Operand) (uint64, error) {
	if kind != verify.Value {
		v, err := strconv.ParseUint(s, 0, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %s operand %q: %w", ErrOperand, kind, s, err)
		}
		return v, nil
	}
	if strings.HasPrefix(s, "-") {
		if !ty.Signed {
			return 0, fmt.Errorf("%w: negative value %q for %s", ErrOperand, s, ty)
		}
		v, err := strconv.ParseInt(s, 0, ty.Bits)
		if err != nil {
			return 0, fmt.Errorf("%w: %q for %s: %w", ErrOperand, s, ty, err)
		}
		return uint64(v) & ty.Mask(), nil
	}
	// Signed types also accept the unsigned spelling of their bit pattern,
	// e.g. 0xFF for int8(-1).
	v, err := strconv.ParseUint(s, 0, ty.Bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q for %s: %w", ErrOperand, s, ty, err)
	}
	return v, nil
}

// formatValue renders v as zero-padded binary and hexadecimal followed by
// its decimal value in ty.
func formatValue(v uint64, ty verify.Type) string {
	v &= ty.Mask()
	dec := strconv.FormatUint(v, 10)
	if ty.Signed {
		shift := 64 - ty.Bits
		dec = strconv.FormatInt(int64(v<<shift)>>shift, 10)
	}
	return fmt.Sprintf("0b%0*b  0x%0*x  %s", ty.Bits, v, ty.Bits/4, v, dec)
}
