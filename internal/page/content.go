package page

import (
	"github.com/colonyops/beacon/internal/core/host"
)

// Resource is a campus safety resource card.
type Resource struct {
	Slug        string
	Title       string
	Description string
}

// ID returns the element id of the resource card.
func (r Resource) ID() host.ElementID {
	return host.ElementID("resources/" + r.Slug)
}

// EmergencyContact is a number reachable from the emergency dialog and the
// quick call buttons.
type EmergencyContact struct {
	Slug   string
	Name   string
	Number string
}

// ID returns the element id of the emergency card.
func (c EmergencyContact) ID() host.ElementID {
	return host.ElementID("emergency/" + c.Slug)
}

// Course is a safety course open for registration.
type Course struct {
	Slug     string
	Title    string
	Schedule string
}

// ID returns the element id of the course card.
func (c Course) ID() host.ElementID {
	return host.ElementID("courses/" + c.Slug)
}

// StatID returns the element id a statistic renders into.
func StatID(id string) host.ElementID {
	return host.ElementID("stats/" + id)
}

var resources = []Resource{
	{Slug: "campus-police", Title: "Campus Police", Description: "Sworn officers on patrol around the clock. Report crimes and request assistance."},
	{Slug: "safe-walk", Title: "Safe Walk Escort", Description: "Trained student escorts walk with you anywhere on campus after dark."},
	{Slug: "counseling", Title: "Counseling Center", Description: "Confidential support for students affected by crime, harassment or crisis."},
	{Slug: "health-center", Title: "Student Health Center", Description: "Walk-in urgent care, first aid supplies and medical advice."},
	{Slug: "alerts", Title: "Campus Alerts", Description: "Sign up for text and email alerts about emergencies and closures."},
}

var emergencyContacts = []EmergencyContact{
	{Slug: "emergency-services", Name: "Emergency Services", Number: "911"},
	{Slug: "campus-police", Name: "Campus Police", Number: "555-0100"},
	{Slug: "crisis-line", Name: "Crisis Hotline", Number: "988"},
	{Slug: "health-center", Name: "Health Center", Number: "555-0199"},
}

var courses = []Course{
	{Slug: "self-defense", Title: "Self-Defense Basics", Schedule: "Tuesdays 6pm"},
	{Slug: "first-aid", Title: "First Aid & CPR", Schedule: "Saturdays 10am"},
	{Slug: "situational-awareness", Title: "Situational Awareness", Schedule: "Thursdays 5pm"},
}

// ReportTypes are the incident categories offered by the report form.
var ReportTypes = []string{"theft", "harassment", "vandalism", "suspicious-activity", "other"}

// Resources returns the resource cards in display order.
func Resources() []Resource {
	return append([]Resource(nil), resources...)
}

// EmergencyContacts returns the emergency contacts in display order.
func EmergencyContacts() []EmergencyContact {
	return append([]EmergencyContact(nil), emergencyContacts...)
}

// Courses returns the courses in display order.
func Courses() []Course {
	return append([]Course(nil), courses...)
}

// CardElements returns the element id of every card on the page in display
// order: resources, emergency contacts, then courses.
func CardElements() []host.ElementID {
	var ids []host.ElementID
	for _, r := range resources {
		ids = append(ids, r.ID())
	}
	for _, c := range emergencyContacts {
		ids = append(ids, c.ID())
	}
	for _, c := range courses {
		ids = append(ids, c.ID())
	}
	return ids
}
