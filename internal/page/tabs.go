package page

import (
	"fmt"
	"slices"
)

// Tab names in display order.
const (
	TabOverview  = "overview"
	TabResources = "resources"
	TabReport    = "report"
	TabMap       = "map"
	TabCourses   = "courses"
	TabContact   = "contact"
)

// Tabs tracks which pane is active. Exactly one tab is active at a time.
type Tabs struct {
	names  []string
	active int
}

// NewTabs returns tabs over names with the first one active.
func NewTabs(names ...string) *Tabs {
	if len(names) == 0 {
		names = []string{TabOverview, TabResources, TabReport, TabMap, TabCourses, TabContact}
	}
	return &Tabs{names: names}
}

func (t *Tabs) Names() []string {
	return slices.Clone(t.names)
}

// Active returns the name of the active tab.
func (t *Tabs) Active() string {
	return t.names[t.active]
}

// ActiveIndex returns the position of the active tab.
func (t *Tabs) ActiveIndex() int {
	return t.active
}

// Select activates the named tab.
func (t *Tabs) Select(name string) error {
	i := slices.Index(t.names, name)
	if i < 0 {
		return fmt.Errorf("unknown tab %q", name)
	}
	t.active = i
	return nil
}

// Next activates the following tab, wrapping around.
func (t *Tabs) Next() {
	t.active = (t.active + 1) % len(t.names)
}

// Prev activates the preceding tab, wrapping around.
func (t *Tabs) Prev() {
	t.active = (t.active - 1 + len(t.names)) % len(t.names)
}
