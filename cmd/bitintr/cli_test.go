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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-bitintr/bitintr"
	"github.com/ajroetker/go-bitintr/bitintr/contrib/verify"
)

func execute(ctx context.Context, t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}

func TestInfo(t *testing.T) {
	clearEnv(t)
	out, _, err := execute(context.Background(), t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "dispatch level:")
	assert.Contains(t, out, bitintr.CurrentName())
	assert.Contains(t, out, "implementations:")
	for name := range bitintr.Implementations() {
		assert.Contains(t, out, name)
	}
}

func TestOps(t *testing.T) {
	clearEnv(t)
	out, _, err := execute(context.Background(), t, "ops")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(verify.Ops())+1)
	assert.Contains(t, out, "pdep x x")
	assert.Contains(t, out, "bextri x range")
	assert.Contains(t, out, "bzhi x n")
}

func TestEval(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "pdep",
			args: []string{"eval", "-w", "16", "pdep", "0b1011111010010011", "0b0110001110000101"},
			want: "0b0000001000000101  0x0205  517\n",
		},
		{
			name: "software",
			args: []string{"eval", "-w", "16", "--software", "pext", "0b1011_1110_1001_0011", "0b0110_0011_1000_0101"},
			want: "0b0000000000110101  0x0035  53\n",
		},
		{
			name: "mulx",
			args: []string{"eval", "-w", "64", "mulx", "0xdeadbeefcafebabe", "0x0123456789abcdef"},
			want: "lo  0b0111111010110110100010011111010011101010010001000111110101100010  0x7eb689f4ea447d62  9130636979535641954\n" +
				"hi  0b0000000011111101010110111101111011101110101100101010000000011101  0x00fd5bdeeeb2a01d  71314182153347101\n",
		},
		{
			name: "signed negative",
			args: []string{"eval", "-w", "16", "-s", "rev", "--", "-2"},
			want: "0b1111111011111111  0xfeff  -257\n",
		},
		{
			name: "signed bit pattern",
			args: []string{"eval", "-w", "8", "-s", "blsr", "0xff"},
			want: "0b11111110  0xfe  -2\n",
		},
		{
			name: "alias",
			args: []string{"eval", "-w", "32", "clz", "1"},
			want: "0b00000000000000000000000000011111  0x0000001f  31\n",
		},
		{
			name: "bextri",
			args: []string{"eval", "-w", "16", "bextri", "0x50", "0x0404"},
			want: "0b0000000000000101  0x0005  5\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(context.Background(), t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown op", []string{"eval", "frobnicate", "1"}, verify.ErrUnknownOp},
		{"too few operands", []string{"eval", "pdep", "1"}, verify.ErrArity},
		{"too many operands", []string{"eval", "popcnt", "1", "2"}, verify.ErrArity},
		{"out of range", []string{"eval", "-w", "8", "popcnt", "256"}, ErrOperand},
		{"negative unsigned", []string{"eval", "-w", "8", "popcnt", "--", "-1"}, ErrOperand},
		{"negative index", []string{"eval", "-s", "bzhi", "1", "--", "-1"}, ErrOperand},
		{"not a number", []string{"eval", "popcnt", "ten"}, ErrOperand},
		{"bad width", []string{"eval", "-w", "12", "popcnt", "1"}, verify.ErrInvalidWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(context.Background(), t, tt.args...)
			assert.ErrorIs(t, err, tt.want)
			assert.NotContains(t, err.Error(), "verify", "eval errors name the eval command only")
		})
	}
}

func TestParseOperand(t *testing.T) {
	u8, i8 := verify.Type{Bits: 8}, verify.Type{Bits: 8, Signed: true}

	v, err := parseOperand("-128", i8, verify.Value)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x80), v)

	v, err = parseOperand("0o377", u8, verify.Value)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xFF), v)

	_, err = parseOperand("-129", i8, verify.Value)
	assert.ErrorIs(t, err, ErrOperand)

	v, err = parseOperand("300", u8, verify.Index)
	require.NoError(t, err)
	assert.Equal(t, uint64(300), v, "indices are not limited to the operand width")

	_, err = parseOperand("0x1_0000_0000", u8, verify.Range)
	assert.ErrorIs(t, err, ErrOperand)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "0b10000000  0x80  128", formatValue(0x80, verify.Type{Bits: 8}))
	assert.Equal(t, "0b10000000  0x80  -128", formatValue(0x80, verify.Type{Bits: 8, Signed: true}))
	assert.Equal(t, "0b0000000000000001  0x0001  1", formatValue(0x10001, verify.Type{Bits: 16}))
}

func TestVerify(t *testing.T) {
	clearEnv(t)
	metrics := filepath.Join(t.TempDir(), "bitintr.prom")

	out, _, err := execute(context.Background(), t, "verify",
		"--widths", "8", "--ops", "popcnt,pdep,bextr,blcfill",
		"--workers", "2", "--metrics-file", metrics)
	require.NoError(t, err)
	assert.Contains(t, out, "ok: 8 results")
	assert.NotContains(t, out, "IMPLEMENTATION", "passing results are only listed with --verbose")

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "bitintr_verify_success 1")
	assert.Contains(t, text, `bitintr_verify_cases{implementation="formula",op="blcfill",type="int8"} 256`)
	assert.Contains(t, text, `bitintr_verify_cases{implementation="`+bitintr.Implementation("pdep")+`",op="pdep",type="uint8"} 65536`)
	assert.Contains(t, text, `bitintr_verify_mismatches{implementation="`+bitintr.Implementation("popcnt")+`",op="popcnt",type="uint8"} 0`)
	assert.Contains(t, text, "bitintr_dispatch_info{")
	assert.Contains(t, text, "bitintr_log_entries_total{")
}

func TestVerifyVerbose(t *testing.T) {
	clearEnv(t)
	out, _, err := execute(context.Background(), t, "verify", "-v", "--widths", "16", "--ops", "tzcnt")
	require.NoError(t, err)
	assert.Contains(t, out, "IMPLEMENTATION")
	assert.Contains(t, out, "tzcnt")
	assert.Contains(t, out, "int16")
}

func TestVerifyEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("BITINTR_LOG_FORMAT", "json")
	t.Setenv("BITINTR_SAMPLES", "10")
	t.Setenv("BITINTR_PARTNERS", "2")

	_, stderr, err := execute(context.Background(), t, "verify", "--widths", "64", "--ops", "mulx")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"starting verification"`)
	assert.Contains(t, stderr, `"samples":10`)
	assert.Contains(t, stderr, `"partners":2`)

	// Flags override the environment.
	_, stderr, err = execute(context.Background(), t, "verify", "--log-format", "console",
		"--samples", "3", "--widths", "64", "--ops", "mulx")
	require.NoError(t, err)
	assert.NotContains(t, stderr, `"msg"`)
	assert.Contains(t, stderr, "starting verification")
}

func TestVerifyErrors(t *testing.T) {
	clearEnv(t)

	_, _, err := execute(context.Background(), t, "verify", "--samples", "0")
	assert.ErrorIs(t, err, ErrInvalidSamples)

	_, _, err = execute(context.Background(), t, "verify", "--ops", "frobnicate")
	assert.ErrorIs(t, err, verify.ErrUnknownOp)

	_, _, err = execute(context.Background(), t, "verify", "--widths", "24")
	assert.ErrorIs(t, err, verify.ErrInvalidWidth)

	t.Setenv("BITINTR_LOG_FORMAT", "xml")
	_, _, err = execute(context.Background(), t, "info")
	assert.ErrorIs(t, err, ErrInvalidLogFormat)
}

func TestVerifyCanceled(t *testing.T) {
	clearEnv(t)
	metrics := filepath.Join(t.TempDir(), "bitintr.prom")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := execute(ctx, t, "verify", "--widths", "8", "--metrics-file", metrics)
	assert.ErrorIs(t, err, context.Canceled)

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), "bitintr_verify_success 0")
}
