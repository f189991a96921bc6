package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIncidentReport_Missing(t *testing.T) {
	tests := []struct {
		name   string
		report IncidentReport
		want   []string
	}{
		{
			name: "empty",
			want: []string{"type", "location", "date", "description"},
		},
		{
			name:   "anonymous is optional",
			report: IncidentReport{Type: "other", Location: "Gym", Date: "today", Description: "noise"},
		},
		{
			name:   "whitespace only",
			report: IncidentReport{Type: "other", Location: " ", Date: "today", Description: "noise"},
			want:   []string{"location"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.report.Missing())
		})
	}
}

func TestContactMessage_Missing(t *testing.T) {
	m := ContactMessage{Name: "Ana", Newsletter: true}
	assert.Equal(t, []string{"email", "subject", "message"}, m.Missing())
}
