// Copyright ©2025 The GUDA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command loop-orders benchmarks the six GEMM loop-order permutations
// (MNK, MKN, NMK, NKM, KMN, KNM) across the standard matrix sizes and
// writes the size × ordering mean-time table as CSV.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/LynnColeArt/gemmbench"
)

func main() {
	var (
		output = flag.String("o", "gemm_times.csv", "Results CSV file")
		verify = flag.Bool("verify", false, "Check each kernel against the Gonum reference product")
	)
	flag.Parse()

	fmt.Println(gemmbench.CPUInfo())

	kernels := gemmbench.LoopOrders()

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
