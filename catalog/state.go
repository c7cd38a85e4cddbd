package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

type (
	// State is the resumption point between build-items runs. It is
	// committed alongside the catalog so a CI job picks up where the
	// previous run stopped.
	State struct {
		Index              int   `json:"index"`
		BatchSize          int   `json:"batchSize"`
		CreatedAt          int64 `json:"createdAt"`
		LastRun            int64 `json:"lastRun"`
		LastAdded          int   `json:"lastAdded"`
		LastProcessed      int   `json:"lastProcessed"`
		LastSkippedNonItem int   `json:"lastSkippedNonItem"`
		TotalTitles        int   `json:"totalTitles"`
		TotalItems         int   `json:"totalItems"`
	}
)

const (
	titlesFile = "eq_titles.json"
	stateFile  = "eq_state.json"
	itemsFile  = "eq_items.json"
)

// readJSONFile returns false without touching dest when the file does not
// exist yet.
func readJSONFile(path string, dest any) (found bool, err error) {
	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to read %q: %w", path, err)
	}

	if err = json.Unmarshal(contents, dest); err != nil {
		return false, fmt.Errorf("failed to parse %q: %w", path, err)
	}

	return true, nil
}

func writeJSONFile(path string, v any) error {
	contents, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize contents of %q: %w", path, err)
	}

	if err = os.WriteFile(path, append(contents, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to save %q: %w", path, err)
	}

	return nil
}
