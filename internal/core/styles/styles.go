// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/beacon/internal/core/notify"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	HeaderStyle    lipgloss.Style
	TitleStyle     lipgloss.Style
	MutedStyle     lipgloss.Style
	DividerStyle   lipgloss.Style
	TabStyle       lipgloss.Style
	TabActiveStyle lipgloss.Style

	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style

	StatValueStyle lipgloss.Style
	StatLabelStyle lipgloss.Style

	CardStyle         lipgloss.Style
	CardRevealedStyle lipgloss.Style

	ToastInfoStyle    lipgloss.Style
	ToastSuccessStyle lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style
	ToastFadingStyle  lipgloss.Style
	ToastTitleStyle   lipgloss.Style
)

func init() {
	p, _ := GetPalette(DefaultTheme)
	SetTheme(p)
}

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	HeaderStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		Padding(0, 1)
	TitleStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Bold(true)
	MutedStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	DividerStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	TabStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Padding(0, 1)
	TabActiveStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		Underline(true).
		Padding(0, 1)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Error).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Error)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)

	StatValueStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	StatLabelStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(p.Surface).
		Foreground(p.Muted).
		Padding(0, 1)
	CardRevealedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Secondary).
		Foreground(p.Foreground).
		Padding(0, 1)

	toastBase := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), false, false, false, true).
		Padding(0, 1)
	ToastInfoStyle = toastBase.BorderForeground(p.Primary)
	ToastSuccessStyle = toastBase.BorderForeground(p.Success)
	ToastWarningStyle = toastBase.BorderForeground(p.Warning)
	ToastErrorStyle = toastBase.BorderForeground(p.Error)
	ToastFadingStyle = toastBase.
		BorderForeground(p.Surface).
		Foreground(p.Muted).
		Faint(true)
	ToastTitleStyle = lipgloss.NewStyle().Bold(true)
}

// ToastStyle returns the style for a notification of kind k.
func ToastStyle(k notify.Kind) lipgloss.Style {
	switch k {
	case notify.KindSuccess:
		return ToastSuccessStyle
	case notify.KindWarning:
		return ToastWarningStyle
	case notify.KindError:
		return ToastErrorStyle
	default:
		return ToastInfoStyle
	}
}

// KindColor returns the palette color for kind k.
func KindColor(k notify.Kind) lipgloss.Color {
	switch k {
	case notify.KindSuccess:
		return CurrentPalette.Success
	case notify.KindWarning:
		return CurrentPalette.Warning
	case notify.KindError:
		return CurrentPalette.Error
	default:
		return CurrentPalette.Primary
	}
}
