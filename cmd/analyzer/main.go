package main

import (
	"flag"
	"log"
	"os"

	"github.com/bkinbkin/MinecraftStatFileAnalyzer/app"
)

func main() {
	configPath := flag.String("config", "stats_config.yaml", "Path to configuration file")
	root := flag.String("root", "", "Override the scan root path")
	stat := flag.String("stat", "", "Override the target stat key")
	limit := flag.Int("limit", -1, "Keep only the first N located files, 0 disables the limit")
	flag.Parse()

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *root != "" {
		cfg.Scan.RootPath = *root
	}
	if *stat != "" {
		cfg.Report.TargetStat = *stat
	}
	if *limit >= 0 {
		cfg.Scan.LimitEnabled = *limit > 0
		cfg.Scan.LimitCount = *limit
	}

	if err := app.Run(cfg, os.Stdout); err != nil {
		log.Fatalf("error: %v", err)
	}
}
