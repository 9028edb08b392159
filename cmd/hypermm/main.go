// SPDX-License-Identifier: MIT

// Command hypermm multiplies two seeded random n×n matrices with the
// hypercube algorithm on p in-process ranks.
//
// Usage:
//
//	hypermm [-n size] [-p procs] [--seed s] [-T] [-d] [-v] [--no-quadrant] [klog flags]
//
// The process count must be a power of two. With -d the operands and the
// root's result are printed; with -T the wall time of the multiply.
package main

import (
	goflag "flag"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/hypermm/runner"
)

func main() {
	defer klog.Flush()

	if err := newRootCommand().Execute(); err != nil {
		klog.Exitf("hypermm: %v", err)
	}
}

func newRootCommand() *cobra.Command {
	cfg := runner.DefaultConfig()
	var debug, noQuadrant bool

	cmd := &cobra.Command{
		Use:           "hypermm",
		Short:         "Hypercube matrix multiplication on in-process ranks",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg.QuadrantCombine = !noQuadrant
			return run(cmd, cfg, debug)
		},
	}

	fs := cmd.Flags()
	fs.IntVarP(&cfg.N, "size", "n", cfg.N, "matrix dimension")
	fs.IntVarP(&cfg.Procs, "procs", "p", cfg.Procs, "number of ranks (power of two)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "operand generator seed")
	fs.BoolVarP(&cfg.Timed, "time", "T", false, "time the multiply")
	fs.BoolVarP(&debug, "debug", "d", false, "print A, B and the result")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "trace every recursion frame")
	fs.BoolVar(&noQuadrant, "no-quadrant", false, "split groups of four instead of the closed-form combine")

	// klog's own -v would clash with ours; expose its verbosity as --log-v.
	klogFlags := goflag.NewFlagSet("klog", goflag.ExitOnError)
	klog.InitFlags(klogFlags)
	klogFlags.VisitAll(func(f *goflag.Flag) {
		pf := pflag.PFlagFromGoFlag(f)
		if pf.Name == "v" {
			pf.Name, pf.Shorthand = "log-v", ""
		}
		cmd.PersistentFlags().AddFlag(pf)
	})

	return cmd
}

func run(cmd *cobra.Command, cfg runner.Config, debug bool) error {
	out := cmd.OutOrStdout()
	if debug {
		fmt.Fprintf(out, "Flags set: Time=%t, Debug=%t, n=%d, p=%d, seed=%d\n",
			cfg.Timed, debug, cfg.N, cfg.Procs, cfg.Seed)
	}

	fmt.Fprintln(out, "Running hypercube algorithm...")
	res, err := runner.Run(cfg)
	if err != nil {
		return err
	}
	if cfg.Timed {
		fmt.Fprintf(out, "Hypercube algorithm execution time: %f seconds\n", res.Elapsed.Seconds())
	}
	if !res.Agree {
		klog.Warning("ranks disagree on the result")
	}
	if debug {
		if err := res.Dump(out); err != nil {
			return err
		}
		fmt.Fprintf(out, "max |C - A×B| = %g, messages = %d, open groups = %d\n",
			res.Residual(), res.Messages, res.OpenGroups)
	}
	if res.OpenGroups != 0 {
		return fmt.Errorf("%d sub-groups were not released", res.OpenGroups)
	}

	return nil
}
