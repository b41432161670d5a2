package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Hellblazer/bloomier/internal/mixhash"
	"github.com/Hellblazer/bloomier/internal/snapshot"
)

func inspectFile(path string) {
	fmt.Printf("Inspecting snapshot: %s\n", path)
	fmt.Println()

	bf, err := snapshot.Load(path, mixhash.Bytes)
	if err != nil {
		fmt.Printf("failed to open snapshot: %v\n", err)
		return
	}
	printStats(bf.Stats())

	// The stats file is advisory; report it only when it disagrees.
	saved, err := snapshot.LoadStats(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		fmt.Println("stats file: missing")
	case err != nil:
		fmt.Printf("stats file: %v\n", err)
	case saved != bf.Stats():
		fmt.Println("stats file: out of date")
	}
	fmt.Println()
}
