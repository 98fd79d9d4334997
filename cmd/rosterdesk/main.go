// cmd/rosterdesk/main.go
//
// Entry point for the rosterdesk terminal client.
//
// Flow:
// 1. Load configuration from the environment
// 2. Open the persisted session store and the logbook
// 3. Launch the TUI; the session gate decides login vs scheduling

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/rosterdesk/internal/api"
	"github.com/kingrea/rosterdesk/internal/config"
	"github.com/kingrea/rosterdesk/internal/logbook"
	"github.com/kingrea/rosterdesk/internal/session"
	"github.com/kingrea/rosterdesk/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	sessions, err := session.Open(cfg.StateDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session store: %v\n", err)
		os.Exit(1)
	}

	book, err := logbook.New(cfg.LogPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening logbook: %v\n", err)
		os.Exit(1)
	}
	defer book.Close()

	client := api.NewClient(cfg.APIURL, sessions)

	p := tea.NewProgram(
		tui.NewApp(cfg, sessions, client, book),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
