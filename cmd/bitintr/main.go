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

// Command bitintr inspects and verifies the bit manipulation operations of
// the bitintr package on the running machine.
//
// Usage:
//
//	bitintr info
//	bitintr ops
//	bitintr eval [--width 32] [--signed] [--software] OP ARGS...
//	bitintr verify [--widths 8,16,32,64] [--ops pdep,pext] [--samples N] [--metrics-file FILE]
//
// Settings are also read from BITINTR_* environment variables, optionally
// loaded from a dotenv file given with --env-file. Flags take precedence.
//
// Example:
//
//	bitintr eval --width 16 pdep 0b1011111010010011 0b0110001110000101
//	bitintr verify --widths 32,64 --samples 100000
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
