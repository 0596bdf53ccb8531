package main

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/nordlow/druntime/galloc"
	"github.com/nordlow/druntime/galloc/matrix"
)

var (
	allocCount   int
	allocSize    int
	allocThreads int
	allocNoScan  bool
	allocGlobal  bool
)

var allocCmd = &cobra.Command{
	Use:   "alloc",
	Short: "Allocate a workload of fixed-size slots and report throughput",
	RunE:  runAlloc,
}

func init() {
	allocCmd.Flags().IntVar(&allocCount, "count", 100000, "Allocations per worker")
	allocCmd.Flags().IntVar(&allocSize, "size", 32, "Requested allocation size in bytes")
	allocCmd.Flags().IntVar(&allocThreads, "threads", 1, "Number of concurrent goroutine workers")
	allocCmd.Flags().BoolVar(&allocNoScan, "no-scan", false, "Allocate from the unscanned pool")
	allocCmd.Flags().
		BoolVar(&allocGlobal, "global", false, "Use the spinlock-guarded global instance instead of one thread-local instance per worker")
	rootCmd.AddCommand(allocCmd)
}

type allocReport struct {
	Workers    int           `json:"workers"`
	PerWorker  int           `json:"per_worker"`
	Total      int           `json:"total"`
	Elapsed    time.Duration `json:"elapsed_ns"`
	AllocsPerS float64       `json:"allocs_per_sec"`
}

func runAlloc(cmd *cobra.Command, args []string) error {
	var attr matrix.AttrBits
	if allocNoScan {
		attr = galloc.NoScan
	}

	start := time.Now()
	var wg sync.WaitGroup
	errs := make(chan error, allocThreads)

	for w := 0; w < allocThreads; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			var g galloc.Allocator
			if allocGlobal {
				g = galloc.Global()
			} else {
				g = galloc.NewThreadLocal(sizeClassConfig)
			}
			for i := 0; i < allocCount; i++ {
				if _, err := g.Qalloc(allocSize, attr); err != nil {
					errs <- fmt.Errorf("worker %d: alloc %d: %w", worker, i, err)
					return
				}
			}
			printVerbose("worker %d: completed %d allocations\n", worker, allocCount)
			log.Info("worker finished", "worker", worker, "allocations", allocCount)
		}(w)
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		return err
	}

	elapsed := time.Since(start)
	total := allocThreads * allocCount
	report := allocReport{
		Workers:    allocThreads,
		PerWorker:  allocCount,
		Total:      total,
		Elapsed:    elapsed,
		AllocsPerS: float64(total) / elapsed.Seconds(),
	}

	if jsonOut {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printInfo("workers=%d per_worker=%d total=%d elapsed=%s allocs/sec=%.0f\n",
		report.Workers, report.PerWorker, report.Total, report.Elapsed, report.AllocsPerS)
	return nil
}
