package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jehiah/go-strftime"
)

// ExpandPath substitutes strftime verbs in path, e.g. "bench-%Y%m%d.json".
func ExpandPath(path string, t time.Time) string {
	return strftime.Format(path, t)
}

// WriteJSON writes r to path after expanding strftime verbs against the
// report timestamp. It returns the path actually written.
func WriteJSON(r *Report, path string) (string, error) {
	path = ExpandPath(path, r.Meta.Timestamp)

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create report dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
