// Copyright ©2025 The GUDA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command opt-bench benchmarks the MNK baseline against its blocked,
// multithreaded, and combined variants across the standard matrix sizes.
//
// Usage:
//
//	opt-bench [flags] [numThreads [blockSize]]
//
// Missing or malformed positional arguments fall back to the defaults
// (4 threads, block size 32); zero or negative values clamp to 1.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/LynnColeArt/gemmbench"
)

func main() {
	var (
		output = flag.String("o", "mnk_optimized_times.csv", "Results CSV file")
		verify = flag.Bool("verify", false, "Check each kernel against the Gonum reference product")
	)
	flag.Parse()

	numThreads := positionalInt(flag.Arg(0), gemmbench.DefaultNumThreads)
	blockSize := positionalInt(flag.Arg(1), gemmbench.DefaultBlockSize)

	fmt.Println(gemmbench.CPUInfo())
	fmt.Printf("Running with %d threads and block size %d\n", numThreads, blockSize)

	kernels := []gemmbench.Kernel{
		gemmbench.Named(gemmbench.MNK{}, "Original MNK"),
		gemmbench.NewBlocked(blockSize),
		gemmbench.NewThreaded(numThreads),
		gemmbench.NewThreadedBlocked(numThreads, blockSize),
	}

	report, err := gemmbench.CreateReport(*output, gemmbench.KernelNames(kernels))
	if err != nil {
		log.Fatalf("Failed to create results file: %v", err)
	}

	cfg := gemmbench.DefaultConfig()
	cfg.Progress = os.Stdout
	cfg.Verify = *verify

	runner, err := gemmbench.NewRunner(cfg, kernels, report)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := runner.Run(); err != nil {
		report.Close()
		log.Fatalf("Benchmark failed: %v", err)
	}
	if err := report.Close(); err != nil {
		log.Fatalf("Failed to finalize results file: %v", err)
	}

	fmt.Printf("\nBenchmarking complete. Results saved to %s\n", *output)
}

// positionalInt parses an optional positional argument. Missing or malformed
// values fall back to the default; values below 1 clamp to 1. Bad input is
// never fatal for this tool.
func positionalInt(arg string, fallback int) int {
	if arg == "" {
		return fallback
	}
	v, err := strconv.Atoi(arg)
	if err != nil {
		return fallback
	}
	if v < 1 {
		return 1
	}
	return v
}
