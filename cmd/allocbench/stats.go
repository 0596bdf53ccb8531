package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nordlow/druntime/galloc"
	"github.com/nordlow/druntime/galloc/pool"
)

var (
	statsWarmCount int
	statsWarmSize  int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Warm a fresh thread-local instance and print per-pool occupancy",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&statsWarmCount, "warm", 1000, "Allocations to perform before reporting")
	statsCmd.Flags().IntVar(&statsWarmSize, "size", 32, "Size of each warm-up allocation")
	rootCmd.AddCommand(statsCmd)
}

type poolStat struct {
	SizeClass     int  `json:"size_class"`
	Scanned       bool `json:"scanned"`
	NumPages      int  `json:"num_pages"`
	OccupiedSlots int  `json:"occupied_slots"`
	TotalSlots    int  `json:"total_slots"`
}

func runStats(cmd *cobra.Command, args []string) error {
	g := galloc.NewThreadLocal(sizeClassConfig)
	for i := 0; i < statsWarmCount; i++ {
		if _, err := g.Qalloc(statsWarmSize, 0); err != nil {
			return fmt.Errorf("allocbench: warm-up allocation %d: %w", i, err)
		}
	}

	var stats []poolStat
	g.Matrix().AllPools(func(p *pool.Pool) {
		st := poolStat{SizeClass: p.SizeClass(), Scanned: p.Scanned(), NumPages: p.NumPages()}
		for i := 0; i < p.NumPages(); i++ {
			e := p.PageEntry(i)
			st.TotalSlots += e.Occ.Len()
			st.OccupiedSlots += e.Occ.CountOnes()
		}
		if st.NumPages > 0 {
			stats = append(stats, st)
		}
	})

	if jsonOut {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	for _, st := range stats {
		printInfo("class=%-6d scanned=%-5v pages=%-3d occupied=%d/%d\n",
			st.SizeClass, st.Scanned, st.NumPages, st.OccupiedSlots, st.TotalSlots)
	}
	return nil
}
