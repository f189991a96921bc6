package styles

import "github.com/colonyops/beacon/internal/core/notify"

var (
	IconNotifyInfo    = "ⓘ"
	IconNotifySuccess = "✔"
	IconNotifyWarning = "⚠"
	IconNotifyError   = "✖"
	IconClose         = "×"
	IconPhone         = "☎"
	IconShield        = "⛨"
	IconFirstAid      = "✚"
	IconBuilding      = "▣"
	IconSpinner       = "◌"
)

// NotifyIcon returns the icon shown next to a notification of kind k.
func NotifyIcon(k notify.Kind) string {
	switch k {
	case notify.KindSuccess:
		return IconNotifySuccess
	case notify.KindWarning:
		return IconNotifyWarning
	case notify.KindError:
		return IconNotifyError
	default:
		return IconNotifyInfo
	}
}
