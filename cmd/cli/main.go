package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/bkinbkin/MinecraftStatFileAnalyzer/app"
)

// Scriptable variant of the analyzer: one tab-separated line per matching
// record, progress noise on stderr so the output stays pipeable.
func main() {
	query := flag.String("q", "", "Stat key to query")
	configPath := flag.String("config", "stats_config.yaml", "Path to configuration file")
	flag.Parse()

	if *query == "" {
		fmt.Fprintln(os.Stderr, "Error: stat key is required. Use -q <stat key>")
		os.Exit(1)
	}

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	rl, err := app.NewRunLogger(os.Stderr, cfg.Scan.LogDir)
	if err != nil {
		log.Fatalf("Failed to create run logger: %v", err)
	}

	records, err := app.BuildRecords(cfg, rl)
	if cerr := rl.Close(); cerr != nil {
		log.Printf("Error closing run log: %v", cerr)
	}
	if err != nil {
		log.Fatalf("Scan error: %v", err)
	}

	for _, g := range app.GroupRecords(app.FilterRecords(records, *query)) {
		for _, r := range g.Records {
			fmt.Printf("%s\t%s\t%s\t%d\t%s\n", r.World, r.Player, r.Category, r.Value, r.Path)
		}
	}
}
