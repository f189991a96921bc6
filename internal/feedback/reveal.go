package feedback

import (
	"github.com/rs/zerolog"

	"github.com/colonyops/beacon/internal/core/host"
)

// DefaultRevealThreshold is the visible fraction that triggers a reveal.
const DefaultRevealThreshold = 0.1

// RevealAnimator applies the reveal style to each watched element the first
// time it becomes visible, then stops watching it.
type RevealAnimator struct {
	detector  host.VisibilityDetector
	screen    host.Presentation
	threshold float64
	logger    zerolog.Logger
	pending   map[host.ElementID]struct{}
	revealed  map[host.ElementID]struct{}
}

func NewRevealAnimator(detector host.VisibilityDetector, screen host.Presentation, threshold float64, logger zerolog.Logger) *RevealAnimator {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultRevealThreshold
	}
	return &RevealAnimator{
		detector:  detector,
		screen:    screen,
		threshold: threshold,
		logger:    logger,
		pending:   make(map[host.ElementID]struct{}),
		revealed:  make(map[host.ElementID]struct{}),
	}
}

// Watch registers elements for a one-shot reveal. Elements already pending
// or revealed are skipped.
func (r *RevealAnimator) Watch(elements ...host.ElementID) {
	for _, el := range elements {
		if r.Pending(el) || r.Revealed(el) {
			continue
		}
		r.pending[el] = struct{}{}
		r.detector.Observe(el, r.threshold, r.handle)
	}
}

// Pending reports whether el is watched and not yet revealed.
func (r *RevealAnimator) Pending(el host.ElementID) bool {
	_, ok := r.pending[el]
	return ok
}

// Revealed reports whether el has been revealed.
func (r *RevealAnimator) Revealed(el host.ElementID) bool {
	_, ok := r.revealed[el]
	return ok
}

// PendingCount returns the number of elements still waiting to be revealed.
func (r *RevealAnimator) PendingCount() int {
	return len(r.pending)
}

func (r *RevealAnimator) handle(entry host.Intersection) {
	if !entry.Intersecting {
		return
	}
	if _, ok := r.pending[entry.Element]; !ok {
		r.logger.Trace().Str("element", string(entry.Element)).Msg("duplicate visibility event ignored")
		return
	}

	delete(r.pending, entry.Element)
	r.revealed[entry.Element] = struct{}{}
	r.screen.ApplyRevealStyle(entry.Element)
	r.detector.Unobserve(entry.Element)
	r.logger.Debug().Str("element", string(entry.Element)).Float64("ratio", entry.Ratio).Msg("element revealed")
}
