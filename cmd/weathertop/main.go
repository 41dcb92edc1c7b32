package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"weathertop/internal/config"
	"weathertop/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	city := flag.String("city", "", "City to load on startup (e.g. London,GB)")
	unit := flag.String("unit", "", "Temperature unit: celsius or fahrenheit")
	refresh := flag.Int("refresh", 0, "Auto-refresh interval in seconds")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Flags override file and defaults
	if *city != "" {
		cfg.City = *city
	}
	if *unit != "" {
		cfg.DefaultUnit = *unit
		if _, err := cfg.Unit(); err != nil {
			fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
			os.Exit(1)
		}
	}
	if *refresh > 0 {
		cfg.RefreshSeconds = *refresh
	}

	p := tea.NewProgram(ui.NewModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
