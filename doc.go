// Package hypermm multiplies dense square matrices on a hypercube of
// cooperating ranks, following Nelson's recursive scheme: exchange A along
// one cube dimension and B along another, combine the four partial products
// of a group of four in closed form, and halve larger groups recursively.
//
// 🚀 What is inside?
//
//	• Dense matrices and the local multiply-accumulate kernel
//	• Seeded operand generation, identical on every rank
//	• An in-process process-group runtime: paired exchange, collective split
//	• The recursive hypercube orchestrator with per-level tracing
//	• A harness and CLI that validate, run, time and print a product
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/     — Dense type, MulAdd/MulAddRange kernels, validators, comparison
//	builder/    — deterministic random operands (RandomDense, RandomPair, Identity)
//	comm/       — Group interface, World of goroutine ranks, Exchange/Split/Release
//	hypercube/  — Multiply and MultiplyDense, group partitioning, options
//	runner/     — Config, Run, Result (agreement, residual, timing)
//	cmd/hypermm — command-line front end
//
// Quick ASCII picture of one group of four (bit 0 horizontal, bit 1 vertical):
//
//	    0 ──A── 1
//	    │       │
//	    B       B
//	    │       │
//	    2 ──A── 3
//
// Every rank starts with full copies of A and B and ends with the full
// product in its own C.
//
//	go install github.com/katalvlaran/hypermm/cmd/hypermm@latest
package hypermm
