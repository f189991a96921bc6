// Package printer renders feedback to a plain writer, one line per event.
package printer

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/beacon/internal/core/host"
	"github.com/colonyops/beacon/internal/core/notify"
	"github.com/colonyops/beacon/internal/core/styles"
)

type entry struct {
	kind    notify.Kind
	message string
}

// Presenter is a host.Presentation that logs feedback as timestamped lines.
// Counter text updates are kept and only printed by Summary unless
// ShowText is set.
type Presenter struct {
	mu    sync.Mutex
	out   io.Writer
	start time.Time
	now   func() time.Time

	next     host.Handle
	attached map[host.Handle]entry
	texts    map[host.ElementID]string

	ShowText bool
}

var _ host.Presentation = (*Presenter)(nil)

func NewPresenter(out io.Writer) *Presenter {
	p := &Presenter{
		out:      out,
		now:      time.Now,
		attached: make(map[host.Handle]entry),
		texts:    make(map[host.ElementID]string),
	}
	p.start = p.now()
	return p
}

func (p *Presenter) AttachNotification(kind notify.Kind, message string) host.Handle {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.next++
	p.attached[p.next] = entry{kind: kind, message: message}

	label := lipgloss.NewStyle().Foreground(styles.KindColor(kind)).Bold(true).
		Render(styles.NotifyIcon(kind) + " " + kind.Title())
	p.line("%s  %s", label, message)
	return p.next
}

func (p *Presenter) SetOpacity(h host.Handle, opacity float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if e, ok := p.attached[h]; ok && opacity < 1 {
		p.line("%s", styles.MutedStyle.Render("fading: "+e.message))
	}
}

// SetTransform has no line representation.
func (p *Presenter) SetTransform(host.Handle, float64) {}

func (p *Presenter) Detach(h host.Handle) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if e, ok := p.attached[h]; ok {
		delete(p.attached, h)
		p.line("%s", styles.MutedStyle.Render(styles.IconClose+" removed: "+e.message))
	}
}

func (p *Presenter) WriteText(el host.ElementID, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.texts[el] = value
	if p.ShowText {
		p.line("%s = %s", el, value)
	}
}

func (p *Presenter) ApplyRevealStyle(el host.ElementID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.line("%s", styles.TitleStyle.Render("revealed "+string(el)))
}

// Attached returns the number of notifications currently shown.
func (p *Presenter) Attached() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.attached)
}

// Summary writes the last text of every element, sorted by element id.
func (p *Presenter) Summary() {
	p.mu.Lock()
	defer p.mu.Unlock()

	ids := make([]string, 0, len(p.texts))
	for id := range p.texts {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)

	for _, id := range ids {
		p.line("%s %s", styles.StatLabelStyle.Render(id+":"), styles.StatValueStyle.Render(p.texts[host.ElementID(id)]))
	}
}

func (p *Presenter) line(format string, args ...any) {
	elapsed := p.now().Sub(p.start).Truncate(time.Millisecond)
	_, _ = fmt.Fprintf(p.out, "%s %s\n", styles.MutedStyle.Render(fmt.Sprintf("[%8s]", elapsed)), fmt.Sprintf(format, args...))
}
