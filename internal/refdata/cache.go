package refdata

import (
	"encoding/json"
	"os"
)

// loadCache reads a previously persisted snapshot from a JSON file.
func loadCache(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	snap := Empty()
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// saveCache writes the snapshot to a JSON file for use on a later start
// when live sources are unavailable.
func saveCache(path string, snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
