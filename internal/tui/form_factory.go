package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/colonyops/beacon/internal/core/styles"
	"github.com/colonyops/beacon/internal/page"
)

type formKind int

const (
	formNone formKind = iota
	formIncident
	formContact
)

// drafts holds form values across renders. Fields are bound by pointer so
// it lives on the heap and is shared by Model copies.
type drafts struct {
	incident page.IncidentReport
	contact  page.ContactMessage
}

// Required fields are checked on submit by the page so the failure is
// reported as a notification rather than inline.
func newIncidentForm(d *drafts, width int) *huh.Form {
	options := huh.NewOptions(page.ReportTypes...)
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Type of incident").
				Options(options...).
				Value(&d.incident.Type),
			huh.NewInput().
				Title("Location").
				Placeholder("e.g. North parking lot").
				Value(&d.incident.Location),
			huh.NewInput().
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&d.incident.Date),
			huh.NewText().
				Title("Description").
				Value(&d.incident.Description),
			huh.NewConfirm().
				Title("Submit anonymously?").
				Value(&d.incident.Anonymous),
		),
	).WithTheme(styles.FormTheme()).WithWidth(width).WithShowHelp(true)
}

func newContactForm(d *drafts, width int) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&d.contact.Name),
			huh.NewInput().
				Title("Email").
				Value(&d.contact.Email),
			huh.NewInput().
				Title("Subject").
				Value(&d.contact.Subject),
			huh.NewText().
				Title("Message").
				Value(&d.contact.Message),
			huh.NewConfirm().
				Title("Subscribe to the safety newsletter?").
				Value(&d.contact.Newsletter),
		),
	).WithTheme(styles.FormTheme()).WithWidth(width).WithShowHelp(true)
}
