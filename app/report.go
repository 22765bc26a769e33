package app

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/bkinbkin/MinecraftStatFileAnalyzer/models"
)

type ReportOptions struct {
	TargetStat string
	GroupLimit int // rows kept per group, <= 0 means unlimited
}

// ReportGroup is one category's rows, already sorted.
type ReportGroup struct {
	Category string
	Records  []models.FlatRecord
}

// FilterRecords keeps the records whose item key matches target,
// case-insensitively.
func FilterRecords(records []models.FlatRecord, target string) []models.FlatRecord {
	var out []models.FlatRecord
	for _, r := range records {
		if strings.EqualFold(r.Item, target) {
			out = append(out, r)
		}
	}
	return out
}

// GroupRecords partitions records by category. Groups come back ordered by
// category name ascending; rows within a group by value descending. Equal
// values order by player id then world, case-insensitively, so the output
// does not depend on filesystem traversal order.
func GroupRecords(records []models.FlatRecord) []ReportGroup {
	byCategory := make(map[string][]models.FlatRecord)
	for _, r := range records {
		byCategory[r.Category] = append(byCategory[r.Category], r)
	}

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]ReportGroup, 0, len(names))
	for _, name := range names {
		rows := byCategory[name]
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].Value != rows[j].Value {
				return rows[i].Value > rows[j].Value
			}
			pi, pj := strings.ToLower(rows[i].Player), strings.ToLower(rows[j].Player)
			if pi != pj {
				return pi < pj
			}
			return strings.ToLower(rows[i].World) < strings.ToLower(rows[j].World)
		})
		groups = append(groups, ReportGroup{Category: name, Records: rows})
	}
	return groups
}

const (
	colWorld    = 20
	colPlayer   = 38
	colCategory = 22
	colItem     = 28
	colValue    = 10
	ruleWidth   = colWorld + colPlayer + colCategory + colItem + colValue + 16
)

// WriteReport renders the grouped fixed-width report for the target stat and
// returns the number of matching records before per-group truncation.
func WriteReport(w io.Writer, records []models.FlatRecord, opts ReportOptions) int {
	matched := FilterRecords(records, opts.TargetStat)
	groups := GroupRecords(matched)

	for _, g := range groups {
		rows := g.Records
		if opts.GroupLimit > 0 && len(rows) > opts.GroupLimit {
			rows = rows[:opts.GroupLimit]
		}

		fmt.Fprintf(w, "\n=== %s ===\n", g.Category)
		fmt.Fprintf(w, "%-*s %-*s %-*s %-*s %*s  %s\n",
			colWorld, "World", colPlayer, "UUID", colCategory, "Category",
			colItem, "Item", colValue, "Value", "File Path")
		fmt.Fprintln(w, strings.Repeat("-", ruleWidth))

		for _, r := range rows {
			fmt.Fprintf(w, "%-*s %-*s %-*s %-*s %*d  %s\n",
				colWorld, r.World, colPlayer, r.Player, colCategory, r.Category,
				colItem, r.Item, colValue, r.Value, r.Path)
		}
	}

	fmt.Fprintf(w, "\nTotal matching records: %d\n", len(matched))
	return len(matched)
}
