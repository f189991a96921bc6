package page

import (
	"errors"
	"strings"
)

// ErrMissingFields is returned when a form is submitted with a required
// field left blank.
var ErrMissingFields = errors.New("required fields missing")

const (
	msgMissingFields   = "Please fill in all required fields"
	msgReportSubmitted = "Your incident report has been submitted"
	msgMessageSent     = "Your message has been sent"
)

// IncidentReport is the payload of the incident report form.
type IncidentReport struct {
	Type        string `json:"type"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Anonymous   bool   `json:"anonymous"`
}

// Missing returns the names of the required fields that are blank.
func (r IncidentReport) Missing() []string {
	return blank(
		"type", r.Type,
		"location", r.Location,
		"date", r.Date,
		"description", r.Description,
	)
}

// ContactMessage is the payload of the contact form.
type ContactMessage struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
	Newsletter bool   `json:"newsletter"`
}

// Missing returns the names of the required fields that are blank.
func (m ContactMessage) Missing() []string {
	return blank(
		"name", m.Name,
		"email", m.Email,
		"subject", m.Subject,
		"message", m.Message,
	)
}

// blank takes name/value pairs and returns the names whose value is empty
// after trimming whitespace.
func blank(pairs ...string) []string {
	var missing []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			missing = append(missing, pairs[i])
		}
	}
	return missing
}
