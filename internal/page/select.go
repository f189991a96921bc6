package page

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/colonyops/beacon/internal/core/host"
)

// SelectElements returns the ids matching any of patterns, preserving the
// order of ids. Patterns use doublestar syntax over slash-separated ids.
func SelectElements(ids []host.ElementID, patterns []string) ([]host.ElementID, error) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid element pattern %q", p)
		}
	}

	var out []host.ElementID
	for _, id := range ids {
		for _, p := range patterns {
			if doublestar.MatchUnvalidated(p, string(id)) {
				out = append(out, id)
				break
			}
		}
	}
	return out, nil
}
