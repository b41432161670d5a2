package main

import (
	"fmt"
	"time"

	"github.com/Hellblazer/bloomier/internal/common"
	"github.com/Hellblazer/bloomier/internal/filter"
)

var fruits = []string{
	"apple", "banana", "cherry", "durian", "elderberry", "fig", "grapefruit",
	"honeydew", "imbe", "jackfruit", "kiwi", "lime", "mango", "nectarine",
	"orange", "peach", "quince", "raspberry", "strawberry", "tangerine",
	"ugni", "voavanga", "watermelon", "ximenia", "yuzu", "zarzamora",
}

// runSeed adds x rounds of fruit keys ("apple0", "banana0", ...) starting at
// *seedIndex.
func runSeed(bf *filter.BloomFilter[string], x int, seedIndex *int) {
	start := time.Now()
	count := 0
	startIndex := *seedIndex

	for i := 0; i < x; i++ {
		for _, fruit := range fruits {
			key := fmt.Sprintf("%s%d", fruit, *seedIndex)
			if err := bf.Add(key); err != nil {
				fmt.Printf("seed error: %v\n", err)
				continue
			}
			count++
		}
		*seedIndex++
	}

	if count == 0 {
		return
	}
	avgPerEntry := time.Since(start) / time.Duration(count)
	common.LogDuration(start, "seeded %d keys (%d * %d, index %d-%d) - %v/key",
		count, len(fruits), x, startIndex, *seedIndex-1, avgPerEntry)
}
