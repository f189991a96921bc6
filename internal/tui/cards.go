package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/beacon/internal/core/host"
	"github.com/colonyops/beacon/internal/core/styles"
	vis "github.com/colonyops/beacon/internal/core/viewport"
	"github.com/colonyops/beacon/internal/page"
)

type card struct {
	id    host.ElementID
	icon  string
	title string
	body  string
}

type cardSection struct {
	title string
	cards []card
}

func cardSections() []cardSection {
	var resources, emergency, courses []card
	for _, r := range page.Resources() {
		resources = append(resources, card{id: r.ID(), icon: styles.IconShield, title: r.Title, body: r.Description})
	}
	for _, c := range page.EmergencyContacts() {
		emergency = append(emergency, card{id: c.ID(), icon: styles.IconPhone, title: c.Name, body: c.Number})
	}
	for _, c := range page.Courses() {
		courses = append(courses, card{id: c.ID(), icon: styles.IconFirstAid, title: c.Title, body: c.Schedule})
	}

	return []cardSection{
		{title: "Safety Resources", cards: resources},
		{title: "Emergency Contacts", cards: emergency},
		{title: "Safety Courses", cards: courses},
	}
}

// renderCards lays the sections out top to bottom and returns the content
// together with the span of every card in content lines.
func renderCards(sections []cardSection, width int, revealed func(host.ElementID) bool) (string, map[host.ElementID]vis.Span) {
	width = max(width, 20)
	spans := make(map[host.ElementID]vis.Span)

	var b strings.Builder
	line := 0
	write := func(s string) {
		if line > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(s)
		line += lipgloss.Height(s)
	}

	for i, sec := range sections {
		if i > 0 {
			write("")
		}
		write(styles.HeaderStyle.Render(sec.title))

		for _, c := range sec.cards {
			rendered := renderCard(c, width, revealed(c.id))
			spans[c.id] = vis.Span{Top: line, Height: lipgloss.Height(rendered)}
			write(rendered)
		}
	}

	return b.String(), spans
}

// renderCard draws a card. Both variants have the same height so revealing a
// card never moves the layout.
func renderCard(c card, width int, revealed bool) string {
	style := styles.CardStyle
	title := styles.MutedStyle.Render(c.icon + " " + c.title)
	if revealed {
		style = styles.CardRevealedStyle
		title = styles.TitleStyle.Render(c.icon + " " + c.title)
	}
	return style.Width(width - 2).Render(title + "\n" + c.body)
}
