// Command tui plays blockfall in the terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marisvali/blockfall/world"
)

func main() {
	debug := flag.Bool("debug", false, "write a debug log to the temp folder")
	configFile := flag.String("config", "", "YAML file with the game rules")
	seed := flag.Int64("seed", 0, "random seed, 0 for a new one every run")
	record := flag.String("record", "", "write the playthrough to this file on exit")
	flag.Parse()

	log, closer := NewLogger(*debug)
	defer func() { _ = closer.Close() }()

	c := world.DefaultConfig()
	if *configFile != "" {
		var err error
		c, err = world.LoadConfig(os.DirFS(filepath.Dir(*configFile)),
			filepath.Base(*configFile))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	m, err := NewModel(c, *seed, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Info("start", "seed", *seed, "playthrough", m.playthrough.Id)

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		log.Error("program error", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *record != "" {
		p := final.(Model).playthrough
		if err := os.WriteFile(*record, p.Serialize(), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		log.Info("recorded", "file", *record, "frames", len(p.History))
	}
}
