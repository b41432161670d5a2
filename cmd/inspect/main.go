package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Hellblazer/bloomier/internal/filter"
	"github.com/Hellblazer/bloomier/internal/mixhash"
	"github.com/Hellblazer/bloomier/internal/snapshot"
)

func main() {
	asJSON := flag.Bool("json", false, "print stats as JSON")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-json] <file> [key...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	path := flag.Arg(0)
	bf, err := snapshot.Load(path, mixhash.String)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open snapshot: %v\n", err)
		os.Exit(1)
	}

	if *asJSON {
		if err := snapshot.WriteStats(os.Stdout, bf.Stats()); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write stats: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Printf("Inspecting snapshot: %s\n", path)
		fmt.Println()
		printStats(bf.Stats())
	}

	for _, key := range flag.Args()[1:] {
		if bf.Contains(key) {
			fmt.Printf("%s: maybe\n", key)
		} else {
			fmt.Printf("%s: no\n", key)
		}
	}
}

func printStats(s filter.Stats) {
	fmt.Printf("seed:        %#x\n", s.Seed)
	fmt.Printf("k:           %d\n", s.K)
	fmt.Printf("m:           %d (%d words)\n", s.M, s.Words)
	fmt.Printf("set bits:    %d\n", s.SetBits)
	fmt.Printf("fill ratio:  %.4f\n", s.FillRatio)
	fmt.Printf("population:  %.1f\n", float64(s.EstimatedPopulation))
}
