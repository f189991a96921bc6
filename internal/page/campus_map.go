package page

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/beacon/internal/core/host"
	"github.com/colonyops/beacon/internal/core/notify"
)

// MapState is the load state of the campus map.
type MapState int

const (
	MapIdle MapState = iota
	MapLoading
	MapLoaded
)

func (s MapState) String() string {
	switch s {
	case MapIdle:
		return "idle"
	case MapLoading:
		return "loading"
	case MapLoaded:
		return "loaded"
	default:
		return fmt.Sprintf("MapState(%d)", int(s))
	}
}

// MapFeature is a clickable building or point on the map.
type MapFeature struct {
	Type  string
	Label string
	Point bool
}

var mapFeatures = []MapFeature{
	{Type: "academic", Label: "Academic Building"},
	{Type: "residence", Label: "Residence Hall"},
	{Type: "library", Label: "Library"},
	{Type: "emergency-phone", Label: "Emergency Phone", Point: true},
	{Type: "security-office", Label: "Security Office", Point: true},
	{Type: "health-center", Label: "Health Center", Point: true},
}

const msgMapLoaded = "Campus safety map loaded successfully"

// CampusMap simulates loading the interactive campus map.
type CampusMap struct {
	sched  host.Scheduler
	notify Notifier
	delay  time.Duration
	logger zerolog.Logger

	state MapState
	timer host.TimerHandle
}

func NewCampusMap(sched host.Scheduler, n Notifier, delay time.Duration, logger zerolog.Logger) *CampusMap {
	return &CampusMap{
		sched:  sched,
		notify: n,
		delay:  delay,
		logger: logger,
	}
}

func (m *CampusMap) State() MapState {
	return m.state
}

// Load starts loading the map. Calls while loading or loaded are ignored.
func (m *CampusMap) Load() {
	if m.state != MapIdle {
		return
	}
	m.state = MapLoading
	m.timer = m.sched.After(m.delay, m.loaded)
	m.logger.Debug().Dur("delay", m.delay).Msg("loading campus map")
}

func (m *CampusMap) loaded() {
	if m.state != MapLoading {
		return
	}
	m.state = MapLoaded
	m.timer = 0
	m.notify.Notify(msgMapLoaded, notify.KindSuccess)
}

// Features returns the clickable features. The map has none until loaded.
func (m *CampusMap) Features() []MapFeature {
	if m.state != MapLoaded {
		return nil
	}
	return append([]MapFeature(nil), mapFeatures...)
}

// Click reports a click on the feature of the given type. It returns false
// when the map is not loaded.
func (m *CampusMap) Click(featureType string) bool {
	if m.state != MapLoaded {
		return false
	}
	m.notify.Notify(fmt.Sprintf("You clicked on a %s", strings.Replace(featureType, "-", " ", 1)), notify.KindInfo)
	return true
}
