package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/beacon/internal/core/styles"
)

const (
	toastWidth = 46
	// toastSlide is how far a fully transformed toast moves right.
	toastSlide = 4
)

// ToastView renders toast notifications and composites them as an overlay.
type ToastView struct {
	controller *ToastController
}

func NewToastView(controller *ToastController) *ToastView {
	return &ToastView{controller: controller}
}

// View renders the toast stack as a single string with toasts stacked
// vertically (oldest at top, newest at bottom).
func (v *ToastView) View() string {
	toasts := v.controller.attached()
	if len(toasts) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		rendered = append(rendered, renderToast(t))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func renderToast(t toast) string {
	style := styles.ToastStyle(t.kind)
	if t.fading() {
		style = styles.ToastFadingStyle
	}

	title := styles.ToastTitleStyle.
		Foreground(styles.KindColor(t.kind)).
		Render(styles.NotifyIcon(t.kind) + " " + t.kind.Title())
	body := style.Width(toastWidth).Render(title + "\n" + t.message)

	shift := min(max(int(t.offset*toastSlide), 0), toastSlide)
	return lipgloss.NewStyle().
		MarginLeft(shift).
		MarginRight(toastSlide - shift).
		Render(body)
}

// Overlay composites the toast stack over background in the lower-right corner.
func (v *ToastView) Overlay(background string, width, height int) string {
	toastContent := v.View()
	if toastContent == "" {
		return background
	}

	toastW := lipgloss.Width(toastContent)
	toastH := lipgloss.Height(toastContent)

	rightX := max(width-toastW-1, 0)
	bottomY := max(height-toastH-1, 0)

	return overlayAt(background, toastContent, rightX, bottomY)
}

// overlayAt draws fg over bg with its top-left corner at column x, row y.
func overlayAt(bg, fg string, x, y int) string {
	bgLines := strings.Split(bg, "\n")
	for i, line := range strings.Split(fg, "\n") {
		row := y + i
		for row >= len(bgLines) {
			bgLines = append(bgLines, "")
		}

		base := bgLines[row]
		left := ansi.Truncate(base, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		right := ""
		if end := x + ansi.StringWidth(line); ansi.StringWidth(base) > end {
			right = ansi.TruncateLeft(base, end, "")
		}
		bgLines[row] = left + line + right
	}
	return strings.Join(bgLines, "\n")
}
