package watchlist

import (
	"encoding/json"
	"os"
	"time"

	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/model"
)

// Source is one watched document with its configured entities and the
// outcome of its last analysis run.
type Source struct {
	Name          string         `json:"name"`
	URL           string         `json:"url,omitempty"`
	Path          string         `json:"path,omitempty"`
	Entities      model.Entities `json:"entities"`
	LastRunAt     time.Time      `json:"last_run_at,omitempty"`
	LastScore     float64        `json:"last_score,omitempty"`
	LastRiskLevel string         `json:"last_risk_level,omitempty"`
	RunCount      int            `json:"run_count,omitempty"`
}

// State is the persisted watchlist.
type State struct {
	Sources   []Source  `json:"sources"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoadState reads the watchlist from a JSON file. Returns an empty state if
// the file doesn't exist.
func LoadState(filePath string) (*State, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &State{}, nil
		}
		return nil, err
	}
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// SaveState writes the watchlist to a JSON file.
func SaveState(filePath string, state *State) error {
	state.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
