package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/beacon/internal/core/styles"
	"github.com/colonyops/beacon/internal/page"
)

var tabTitles = map[string]string{
	page.TabOverview:  "Overview",
	page.TabResources: "Resources",
	page.TabReport:    "Report",
	page.TabMap:       "Campus Map",
	page.TabCourses:   "Courses",
	page.TabContact:   "Contact",
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch {
	case m.page.Emergency.IsOpen():
		content = renderEmergencyModal(m.page.Emergency, m.width, m.height)
	case m.form != nil:
		content = m.renderForm()
	default:
		content = m.renderPage()
	}

	return m.toasts.Overlay(content, m.width, m.height)
}

func (m Model) renderPage() string {
	bodyHeight := max(m.height-chromeHeight, 1)
	body := lipgloss.NewStyle().
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(m.renderBody())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderTabs(),
		styles.DividerStyle.Render(strings.Repeat("─", m.width)),
		body,
		m.help.View(m.keys),
	)
}

func (m Model) renderHeader() string {
	title := styles.HeaderStyle.Render(styles.IconShield + " Campus Safety")
	meta := styles.MutedStyle.Render(fmt.Sprintf("theme: %s", m.theme))
	gap := max(m.width-lipgloss.Width(title)-lipgloss.Width(meta)-1, 1)
	return title + strings.Repeat(" ", gap) + meta
}

func (m Model) renderTabs() string {
	active := m.page.Tabs.ActiveIndex()
	names := m.page.Tabs.Names()
	parts := make([]string, len(names))
	for i, name := range names {
		style := styles.TabStyle
		if i == active {
			style = styles.TabActiveStyle
		}
		parts[i] = style.Render(tabTitles[name])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderBody() string {
	switch m.page.Tabs.Active() {
	case page.TabOverview:
		return lipgloss.JoinVertical(lipgloss.Left, m.renderStats(), "", m.cards.View())
	case page.TabResources:
		return m.renderResources()
	case page.TabReport:
		return renderPrompt(
			"Report an Incident",
			"Reports go straight to campus police. You can choose to stay anonymous.",
			"Press enter to open the report form.",
		)
	case page.TabMap:
		return m.renderMap()
	case page.TabCourses:
		return m.renderCourses()
	case page.TabContact:
		return renderPrompt(
			"Contact Us",
			"Questions or suggestions for the safety office.",
			"Press enter to write a message.",
		)
	}
	return ""
}

func (m Model) renderStats() string {
	stats := m.page.Stats()
	if len(stats) == 0 {
		return ""
	}

	cellWidth := max(m.width/len(stats), 12)
	cell := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)

	cells := make([]string, len(stats))
	for i, s := range stats {
		value := m.screen.Text(page.StatID(s.ID), "0")
		cells[i] = cell.Render(styles.StatValueStyle.Render(value) + "\n" + styles.StatLabelStyle.Render(s.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m Model) renderResources() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Quick Call"))
	for i, c := range page.EmergencyContacts() {
		b.WriteByte('\n')
		b.WriteString(renderListItem(i == m.cursor, styles.IconPhone+" "+c.Name, c.Number))
	}
	b.WriteString("\n\n")
	b.WriteString(m.resources)
	return b.String()
}

func (m Model) renderMap() string {
	switch m.page.Map.State() {
	case page.MapLoading:
		return renderPrompt("Campus Map", styles.IconSpinner+" Loading...", "")
	case page.MapLoaded:
		var b strings.Builder
		b.WriteString(styles.TitleStyle.Render("Campus Map"))
		for i, f := range m.page.Map.Features() {
			icon := styles.IconBuilding
			if f.Point {
				icon = styles.IconFirstAid
			}
			b.WriteByte('\n')
			b.WriteString(renderListItem(i == m.cursor, icon+" "+f.Label, f.Type))
		}
		return b.String()
	default:
		return renderPrompt(
			"Campus Map",
			"Emergency phones, security offices and safe routes around campus.",
			"Press enter to load the interactive map.",
		)
	}
}

func (m Model) renderCourses() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Safety Courses"))
	for i, c := range page.Courses() {
		b.WriteByte('\n')
		b.WriteString(renderListItem(i == m.cursor, c.Title, c.Schedule))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.MutedStyle.Render("Press enter to enroll."))
	return b.String()
}

func (m Model) renderForm() string {
	title := "Incident Report"
	if m.formKind == formContact {
		title = "Contact Us"
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.TitleStyle.Render(title),
		"",
		m.form.View(),
		styles.ModalHelpStyle.Render("esc cancel"),
	)
	modal := styles.ModalStyle.BorderForeground(styles.CurrentPalette.Primary).Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func renderPrompt(title, body, hint string) string {
	parts := []string{styles.TitleStyle.Render(title), "", body}
	if hint != "" {
		parts = append(parts, "", styles.MutedStyle.Render(hint))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderListItem(selected bool, label, detail string) string {
	cursor := "  "
	style := styles.MutedStyle
	if selected {
		cursor = "> "
		style = styles.TitleStyle
	}
	return cursor + style.Render(label) + "  " + styles.MutedStyle.Render(detail)
}
