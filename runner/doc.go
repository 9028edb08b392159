// SPDX-License-Identifier: MIT

// Package runner is the calling harness around hypercube.Multiply.
//
// It validates a Config, builds the operands from a seeded generator so that
// every rank holds identical copies, launches one goroutine per rank on an
// in-process comm.World, and gathers the root's accumulator together with a
// few post-run checks:
//
//	cfg := runner.DefaultConfig()
//	cfg.N, cfg.Procs = 64, 8
//	res, err := runner.Run(cfg)
//	if err != nil { ... }
//	fmt.Println(res.Agree, res.Residual())
//
// Errors:
//   - ErrBadSize            — N < 1.
//   - ErrProcsNotPowerOfTwo — Procs is not 2^d (p = 3, 6, ... are rejected
//     before any rank starts).
package runner
