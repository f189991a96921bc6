package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/beacon/internal/core/styles"
	"github.com/colonyops/beacon/internal/page"
)

// renderEmergencyModal renders the emergency dialog centered in the screen
// area. It replaces the background.
func renderEmergencyModal(d *page.EmergencyDialog, width, height int) string {
	var b strings.Builder
	for i, c := range d.Options() {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s %s  %s",
			styles.StatValueStyle.Render(fmt.Sprintf("%d", i+1)),
			styles.IconPhone+" "+c.Name,
			styles.MutedStyle.Render(c.Number),
		)
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render("Emergency Assistance"),
		"",
		"Who do you need to reach?",
		"",
		b.String(),
		styles.ModalHelpStyle.Render("1-9 call  esc cancel"),
	)

	return lipgloss.Place(
		width, height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(content),
	)
}
