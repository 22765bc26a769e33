package models

import "strings"

// StatsDocument is the parsed content of one per-player stats file.
// DataVersion is carried through for display but never interpreted.
type StatsDocument struct {
	Stats       map[string]map[string]int64 `json:"stats"`
	DataVersion int                         `json:"dataVersion"`
}

// LoadedEntry pairs a parsed document with where it came from. World and
// Player keep the casing seen on disk; the store normalizes its own keys.
type LoadedEntry struct {
	World  string
	Player string
	Path   string
	Doc    *StatsDocument
}

// WorldStore maps lower-cased world label to lower-cased player id to the
// entry loaded for that pair. Each leaf holds at most one entry.
type WorldStore map[string]map[string]LoadedEntry

// Put inserts an entry under its normalized (world, player) key, replacing
// any previous entry for that key. Replacement is whole-entry, never a merge.
func (s WorldStore) Put(e LoadedEntry) {
	worldKey := strings.ToLower(e.World)
	players, ok := s[worldKey]
	if !ok {
		players = make(map[string]LoadedEntry)
		s[worldKey] = players
	}
	players[strings.ToLower(e.Player)] = e
}

// FlatRecord is one denormalized (world, player, category, item) fact with
// the path of the file it was read from. Never mutated after creation.
type FlatRecord struct {
	World    string
	Player   string
	Category string
	Item     string
	Value    int64
	Path     string
}
