package app

import "github.com/bkinbkin/MinecraftStatFileAnalyzer/models"

// Flatten expands the store into one record per (world, player, category,
// item). Entries with a nil document or nil category map contribute nothing.
// No filtering, aggregation or deduplication happens here; the order of the
// result is unspecified and the reporter sorts what it needs.
func Flatten(store models.WorldStore) []models.FlatRecord {
	var records []models.FlatRecord
	for _, players := range store {
		for _, entry := range players {
			if entry.Doc == nil || entry.Doc.Stats == nil {
				continue
			}
			for category, items := range entry.Doc.Stats {
				for item, value := range items {
					records = append(records, models.FlatRecord{
						World:    entry.World,
						Player:   entry.Player,
						Category: category,
						Item:     item,
						Value:    value,
						Path:     entry.Path,
					})
				}
			}
		}
	}
	return records
}
