package main

import (
	"fmt"
	"math/bits"

	"github.com/Hellblazer/bloomier/internal/filter"
)

// dumpWords prints every non-zero word of the bit array.
func dumpWords(params filter.Params, words []uint64) {
	fmt.Printf("%-10s %-18s %4s\n", "WORD", "BITS", "SET")
	fmt.Println()

	nonZero := 0
	for i, w := range words {
		if w == 0 {
			continue
		}
		nonZero++
		fmt.Printf("%-10d %#018x %4d\n", i, w, bits.OnesCount64(w))
	}

	fmt.Println()
	fmt.Printf("Non-zero words: %d of %d (m=%d)\n", nonZero, len(words), params.M)
}

func printStats(s filter.Stats) {
	fmt.Printf("seed:        %#x\n", s.Seed)
	fmt.Printf("k:           %d\n", s.K)
	fmt.Printf("m:           %d (%d words)\n", s.M, s.Words)
	fmt.Printf("set bits:    %d\n", s.SetBits)
	fmt.Printf("fill ratio:  %.4f\n", s.FillRatio)
	fmt.Printf("population:  %.1f\n", float64(s.EstimatedPopulation))
}
