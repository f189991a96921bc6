package page

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/beacon/internal/core/notify"
)

func TestCampusMap_Load(t *testing.T) {
	p := newTestPage(t)

	assert.Equal(t, MapIdle, p.Map.State())
	assert.Nil(t, p.Map.Features())
	assert.False(t, p.Map.Click("library"))

	p.Map.Load()
	assert.Equal(t, MapLoading, p.Map.State())

	p.clock.Advance(1499 * time.Millisecond)
	assert.Equal(t, MapLoading, p.Map.State())
	assert.Empty(t, p.screen.Attached())

	p.clock.Advance(time.Millisecond)
	assert.Equal(t, MapLoaded, p.Map.State())
	require.Len(t, p.screen.Attached(), 1)
	assert.Equal(t, msgMapLoaded, p.screen.Attached()[0].Message)
	assert.Equal(t, notify.KindSuccess, p.screen.Attached()[0].Kind)
	assert.Len(t, p.Map.Features(), 6)
}

func TestCampusMap_LoadTwiceIsNoop(t *testing.T) {
	p := newTestPage(t)

	p.Map.Load()
	p.clock.Advance(500 * time.Millisecond)
	p.Map.Load()
	p.clock.Advance(time.Second)
	p.Map.Load()
	p.clock.Advance(5 * time.Second)

	assert.Equal(t, 1, p.screen.AttachCount())
}

func TestCampusMap_Click(t *testing.T) {
	p := newTestPage(t)
	p.Map.Load()
	p.clock.Advance(1500 * time.Millisecond)

	assert.True(t, p.Map.Click("emergency-phone"))
	assert.True(t, p.Map.Click("library"))

	msgs := p.messages()
	assert.Equal(t, []string{
		msgMapLoaded,
		"You clicked on a emergency phone",
		"You clicked on a library",
	}, msgs)
}

func TestMapState_String(t *testing.T) {
	assert.Equal(t, "loading", MapLoading.String())
	assert.Equal(t, "MapState(9)", MapState(9).String())
}
