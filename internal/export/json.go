package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Sricharanredd/jira-team-1/internal/timeline"
)

// WriteJSON writes layout as indented JSON.
func WriteJSON(w io.Writer, layout *timeline.Layout) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(layout); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
