package tui

import (
	"github.com/colonyops/beacon/internal/core/host"
)

// Screen is the host.Presentation for the terminal UI. Toasts go to the
// ToastController, counter text and reveal state are kept per element and
// read back while rendering.
type Screen struct {
	*ToastController
	texts    map[host.ElementID]string
	revealed map[host.ElementID]bool
}

var _ host.Presentation = (*Screen)(nil)

func NewScreen() *Screen {
	return &Screen{
		ToastController: NewToastController(),
		texts:           make(map[host.ElementID]string),
		revealed:        make(map[host.ElementID]bool),
	}
}

func (s *Screen) WriteText(el host.ElementID, value string) {
	s.texts[el] = value
}

func (s *Screen) ApplyRevealStyle(el host.ElementID) {
	s.revealed[el] = true
}

// Text returns the last text written to el, or fallback when none was.
func (s *Screen) Text(el host.ElementID, fallback string) string {
	if v, ok := s.texts[el]; ok {
		return v
	}
	return fallback
}

// Revealed reports whether el has been revealed.
func (s *Screen) Revealed(el host.ElementID) bool {
	return s.revealed[el]
}
