package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/Hellblazer/bloomier/internal/filter"
	"github.com/Hellblazer/bloomier/internal/mixhash"
	"github.com/Hellblazer/bloomier/internal/snapshot"
)

var commands = []string{
	"add", "has", "locate", "stats", "dump", "clear", "seed",
	"save", "load", "inspect", "history", "exit", "quit",
}

type session struct {
	bf        *filter.BloomFilter[string]
	file      string
	seedIndex int
	history   *History
}

func main() {
	seed := flag.Uint64("seed", 0, "hash seed")
	n := flag.Uint64("n", 10000, "expected insertions")
	p := flag.Float64("p", 0.01, "target false positive rate")
	k := flag.Uint("k", 0, "explicit hash count (requires -m)")
	m := flag.Uint64("m", 0, "explicit bit count (requires -k)")
	file := flag.String("file", "", "snapshot file loaded at start and used by save")
	flag.Parse()

	s := &session{file: *file}
	if err := s.open(*seed, *n, *p, uint32(*k), *m); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create filter: %v\n", err)
		os.Exit(1)
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(func(prefix string) []string {
		var out []string
		for _, c := range commands {
			if strings.HasPrefix(c, strings.ToLower(prefix)) {
				out = append(out, c)
			}
		}
		return out
	})

	history, err := newHistory(line)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
	}
	s.history = history

	fmt.Println("bloomier - bloom filter shell")
	fmt.Printf("config: %v\n", s.bf.Params())
	fmt.Println("commands: add <key>... | has <key>... | locate <key> | stats | dump | clear | seed <x> | save [file] | load <file> | inspect <file> | history [n] | exit")

	for {
		input, err := line.Prompt("> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				break
			}
			fmt.Fprintf(os.Stderr, "input error: %v\n", err)
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if s.history != nil {
			s.history.add(input)
		}

		if !s.run(strings.Fields(input)) {
			break
		}
	}

	if s.history != nil {
		if err := s.history.save(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save history: %v\n", err)
		}
	}
}

// open loads s.file when it exists, otherwise builds a fresh filter.
func (s *session) open(seed, n uint64, p float64, k uint32, m uint64) error {
	if s.file != "" {
		bf, err := snapshot.Load(s.file, mixhash.String)
		if err == nil {
			s.bf = bf
			fmt.Printf("loaded %s\n", s.file)
			return nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	var err error
	if k != 0 || m != 0 {
		s.bf, err = filter.NewWithParams(mixhash.String, filter.Params{Seed: seed, K: k, M: m})
	} else {
		s.bf, err = filter.NewString(seed, n, p)
	}
	return err
}

// run executes one command and reports whether the shell should continue.
func (s *session) run(parts []string) bool {
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "add":
		if len(args) == 0 {
			fmt.Println("usage: add <key>...")
			return true
		}
		for _, key := range args {
			if err := s.bf.Add(key); err != nil {
				fmt.Printf("add error: %v\n", err)
				return true
			}
		}
		fmt.Println("ok")
	case "has":
		if len(args) == 0 {
			fmt.Println("usage: has <key>...")
			return true
		}
		for _, key := range args {
			if s.bf.Contains(key) {
				fmt.Printf("%s: maybe\n", key)
			} else {
				fmt.Printf("%s: no\n", key)
			}
		}
	case "locate":
		if len(args) != 1 {
			fmt.Println("usage: locate <key>")
			return true
		}
		locate(s.bf, args[0])
	case "stats":
		printStats(s.bf.Stats())
	case "dump":
		dumpWords(s.bf.Params(), s.bf.Words())
	case "clear":
		s.bf.Clear()
		fmt.Println("ok")
	case "seed":
		if len(args) != 1 {
			fmt.Println("usage: seed <x>")
			return true
		}
		x, err := strconv.Atoi(args[0])
		if err != nil || x < 1 {
			fmt.Println("seed: x must be a positive integer")
			return true
		}
		runSeed(s.bf, x, &s.seedIndex)
	case "save":
		path := s.file
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" || len(args) > 1 {
			fmt.Println("usage: save [file]")
			return true
		}
		if err := snapshot.Save[string](path, s.bf); err != nil {
			fmt.Printf("save error: %v\n", err)
			return true
		}
		s.file = path
		fmt.Printf("saved %s\n", path)
	case "load":
		if len(args) != 1 {
			fmt.Println("usage: load <file>")
			return true
		}
		bf, err := snapshot.Load(args[0], mixhash.String)
		if err != nil {
			fmt.Printf("load error: %v\n", err)
			return true
		}
		s.bf = bf
		s.file = args[0]
		fmt.Printf("loaded %s: %v\n", args[0], bf.Params())
	case "inspect":
		if len(args) != 1 {
			fmt.Println("usage: inspect <file>")
			return true
		}
		inspectFile(args[0])
	case "history":
		if s.history == nil {
			fmt.Println("history unavailable")
			return true
		}
		n := 0
		if len(args) == 1 {
			n, _ = strconv.Atoi(args[0])
		}
		for _, c := range s.history.list(n) {
			fmt.Println(c)
		}
	case "exit", "quit":
		return false
	default:
		fmt.Println("unknown command")
	}
	return true
}

func locate(bf *filter.BloomFilter[string], key string) {
	idx, err := bf.Indices(key)
	if err != nil {
		fmt.Printf("warning: %v\n", err)
	}
	words := bf.Words()
	for i, pos := range idx {
		set := words[pos/64]&(1<<(pos%64)) != 0
		fmt.Printf("%2d: bit=%-12d word=%-8d set=%v\n", i, pos, pos/64, set)
	}
	fmt.Printf("identity=%#08x\n", uint32(bf.IdentityHash(key)))
}
