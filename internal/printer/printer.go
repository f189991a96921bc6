package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/beacon/internal/core/styles"
)

type ctxKey struct{}

// Printer writes command output prefixed with status icons.
type Printer struct {
	out io.Writer
}

func New(out io.Writer) *Printer {
	return &Printer{out: out}
}

// NewContext returns a context carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one writing to stdout.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) Successf(format string, args ...any) {
	p.status(styles.CurrentPalette.Success, styles.IconNotifySuccess, format, args...)
}

func (p *Printer) Infof(format string, args ...any) {
	p.status(styles.CurrentPalette.Primary, styles.IconNotifyInfo, format, args...)
}

func (p *Printer) Warnf(format string, args ...any) {
	p.status(styles.CurrentPalette.Warning, styles.IconNotifyWarning, format, args...)
}

func (p *Printer) Errorf(format string, args ...any) {
	p.status(styles.CurrentPalette.Error, styles.IconNotifyError, format, args...)
}

func (p *Printer) status(color lipgloss.Color, icon, format string, args ...any) {
	prefix := lipgloss.NewStyle().Foreground(color).Bold(true).Render(icon)
	_, _ = fmt.Fprintf(p.out, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}
