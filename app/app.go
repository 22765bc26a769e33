package app

import (
	"fmt"
	"io"
	"log"

	"github.com/bkinbkin/MinecraftStatFileAnalyzer/models"
)

// Run executes the whole pipeline: locate, load, flatten, report. Progress
// lines and the final report both go to out.
func Run(cfg *models.AppConfig, out io.Writer) error {
	rl, err := NewRunLogger(out, cfg.Scan.LogDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := rl.Close(); err != nil {
			log.Printf("Error closing run log: %v", err)
		}
	}()

	records, err := BuildRecords(cfg, rl)
	if err != nil {
		return err
	}

	WriteReport(out, records, ReportOptions{
		TargetStat: cfg.Report.TargetStat,
		GroupLimit: cfg.Report.GroupLimit,
	})
	return nil
}

// BuildRecords runs locate, load and flatten without reporting. The CLI, TUI
// and web front ends reuse it to get the in-memory record set.
func BuildRecords(cfg *models.AppConfig, rl *RunLogger) ([]models.FlatRecord, error) {
	limit := 0
	if cfg.Scan.LimitEnabled {
		limit = cfg.Scan.LimitCount
	}

	paths, err := LocateStatsFiles(cfg.Scan.RootPath, cfg.Scan.FilePattern, cfg.Scan.StatsDirName, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate %s: %w", cfg.Scan.RootPath, err)
	}

	store := BuildStore(paths, rl)
	return Flatten(store), nil
}
