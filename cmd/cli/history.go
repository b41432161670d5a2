package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

const maxHistorySize = 1000

// History mirrors the liner history so it can be listed, and persists it
// to ~/.bloomier_history.
type History struct {
	line     *liner.State
	commands []string
	file     string
}

func newHistory(line *liner.State) (*History, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	h := &History{
		line:     line,
		commands: make([]string, 0, maxHistorySize),
		file:     filepath.Join(home, ".bloomier_history"),
	}

	// Load existing history
	if err := h.load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return h, nil
}

func (h *History) load() error {
	data, err := os.ReadFile(h.file)
	if err != nil {
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			h.append(line)
		}
	}
	return nil
}

func (h *History) add(cmd string) {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return
	}

	// Don't add duplicates of the last command
	if len(h.commands) > 0 && h.commands[len(h.commands)-1] == cmd {
		return
	}
	h.append(cmd)
}

func (h *History) append(cmd string) {
	h.commands = append(h.commands, cmd)
	h.line.AppendHistory(cmd)

	if len(h.commands) > maxHistorySize {
		h.commands = h.commands[len(h.commands)-maxHistorySize:]
	}
}

func (h *History) save() error {
	f, err := os.Create(h.file)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = h.line.WriteHistory(f)
	return err
}

func (h *History) list(n int) []string {
	if n <= 0 || n > len(h.commands) {
		n = len(h.commands)
	}

	start := len(h.commands) - n
	return h.commands[start:]
}
