package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/beacon/internal/core/styles"
	"github.com/colonyops/beacon/internal/page"
)

func resourcesMarkdown() string {
	var b strings.Builder
	b.WriteString("# Campus Safety Resources\n\n")
	for _, r := range page.Resources() {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", r.Title, r.Description)
	}

	b.WriteString("# Emergency Numbers\n\n")
	b.WriteString("| Service | Number |\n|---|---|\n")
	for _, c := range page.EmergencyContacts() {
		fmt.Fprintf(&b, "| %s | `%s` |\n", c.Name, c.Number)
	}
	b.WriteString("\nSelect a number below and press **enter** to place a quick call.\n")
	return b.String()
}

// renderResources renders the resources tab with the active palette's
// glamour style. On renderer failure the raw markdown is returned.
func renderResources(width int) string {
	md := resourcesMarkdown()

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styles.CurrentPalette.Glamour),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to create markdown renderer")
		return md
	}

	out, err := r.Render(md)
	if err != nil {
		log.Error().Err(err).Msg("failed to render resources")
		return md
	}
	return strings.TrimRight(out, "\n")
}
