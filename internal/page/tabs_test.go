package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabs(t *testing.T) {
	tabs := NewTabs()
	assert.Equal(t, TabOverview, tabs.Active())

	require.NoError(t, tabs.Select(TabMap))
	assert.Equal(t, TabMap, tabs.Active())

	assert.Error(t, tabs.Select("settings"))
	assert.Equal(t, TabMap, tabs.Active(), "failed select keeps the active tab")

	tabs.Next()
	assert.Equal(t, TabCourses, tabs.Active())

	require.NoError(t, tabs.Select(TabOverview))
	tabs.Prev()
	assert.Equal(t, TabContact, tabs.Active())
	tabs.Next()
	assert.Equal(t, 0, tabs.ActiveIndex())
}

func TestEmergencyDialog(t *testing.T) {
	p := newTestPage(t)

	assert.False(t, p.Emergency.IsOpen())
	p.Emergency.Open()
	assert.True(t, p.Emergency.IsOpen())

	p.Emergency.Choose(p.Emergency.Options()[0])
	assert.True(t, p.Emergency.IsOpen())
	assert.Equal(t, []string{"Simulating call to Emergency Services (911)"}, p.messages())

	p.Emergency.Close()
	assert.False(t, p.Emergency.IsOpen())
}
