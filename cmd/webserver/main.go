package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/bkinbkin/MinecraftStatFileAnalyzer/app"
	webapp "github.com/bkinbkin/MinecraftStatFileAnalyzer/web/run"
)

func main() {
	configPath := flag.String("config", "stats_config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	rl, err := app.NewRunLogger(os.Stdout, cfg.Scan.LogDir)
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

	server := &webapp.WebApp{
		AppConfig: cfg,
		Records:   records,
	}

	addr := server.GetListenAddr()
	log.Printf("Serving stats report on %s", addr)
	if err := http.ListenAndServe(addr, server.GetRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
