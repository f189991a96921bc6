package hosttest

import (
	"github.com/colonyops/beacon/internal/core/host"
	"github.com/colonyops/beacon/internal/core/notify"
)

// Toast is what the Screen knows about an attached notification.
type Toast struct {
	Handle   host.Handle
	Kind     notify.Kind
	Message  string
	Opacity  float64
	OffsetX  float64
	Detached bool
}

// Screen is a recording host.Presentation.
type Screen struct {
	next     host.Handle
	toasts   map[host.Handle]*Toast
	order    []host.Handle
	texts    map[host.ElementID][]string
	revealed map[host.ElementID]int
}

var _ host.Presentation = (*Screen)(nil)

func NewScreen() *Screen {
	return &Screen{
		toasts:   make(map[host.Handle]*Toast),
		texts:    make(map[host.ElementID][]string),
		revealed: make(map[host.ElementID]int),
	}
}

func (s *Screen) AttachNotification(kind notify.Kind, message string) host.Handle {
	s.next++
	s.toasts[s.next] = &Toast{Handle: s.next, Kind: kind, Message: message, Opacity: 1}
	s.order = append(s.order, s.next)
	return s.next
}

func (s *Screen) SetOpacity(h host.Handle, opacity float64) {
	if t, ok := s.toasts[h]; ok {
		t.Opacity = opacity
	}
}

func (s *Screen) SetTransform(h host.Handle, offsetX float64) {
	if t, ok := s.toasts[h]; ok {
		t.OffsetX = offsetX
	}
}

func (s *Screen) Detach(h host.Handle) {
	if t, ok := s.toasts[h]; ok {
		t.Detached = true
	}
}

func (s *Screen) WriteText(el host.ElementID, value string) {
	s.texts[el] = append(s.texts[el], value)
}

func (s *Screen) ApplyRevealStyle(el host.ElementID) {
	s.revealed[el]++
}

// Attached returns the notifications still on screen, oldest first.
func (s *Screen) Attached() []Toast {
	var out []Toast
	for _, h := range s.order {
		if t := s.toasts[h]; !t.Detached {
			out = append(out, *t)
		}
	}
	return out
}

// Toast returns the record for h.
func (s *Screen) Toast(h host.Handle) (Toast, bool) {
	t, ok := s.toasts[h]
	if !ok {
		return Toast{}, false
	}
	return *t, true
}

// AttachCount returns how many notifications were ever attached.
func (s *Screen) AttachCount() int {
	return len(s.order)
}

// Texts returns every value written to el, in order.
func (s *Screen) Texts(el host.ElementID) []string {
	return s.texts[el]
}

// RevealCount returns how many times the reveal style was applied to el.
func (s *Screen) RevealCount(el host.ElementID) int {
	return s.revealed[el]
}
