package watch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"ListingSentinel/internal/model"
)

// LoadState reads the watchlist from a JSON file. Returns an empty state if the file doesn't exist.
func LoadState(filePath string) (*model.WatchState, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.WatchState{Entries: map[string]*model.WatchEntry{}}, nil
		}
		return nil, err
	}
	var state model.WatchState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	if state.Entries == nil {
		state.Entries = map[string]*model.WatchEntry{}
	}
	return &state, nil
}

// SaveState writes the watchlist to a JSON file, creating its directory.
func SaveState(filePath string, state *model.WatchState) error {
	state.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(filePath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(filePath, data, 0644)
}
