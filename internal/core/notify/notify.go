// Package notify defines the notification vocabulary shared by the feedback
// engine and its presentation layers.
package notify

import (
	"strings"
)

// Kind represents the visual category of a notification.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Kinds returns every supported kind in display order.
func Kinds() []Kind {
	return []Kind{KindInfo, KindSuccess, KindWarning, KindError}
}

// IsValid reports whether k is one of the supported kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindInfo, KindSuccess, KindWarning, KindError:
		return true
	default:
		return false
	}
}

// OrDefault returns k when valid and KindInfo otherwise.
func (k Kind) OrDefault() Kind {
	if k.IsValid() {
		return k
	}
	return KindInfo
}

// Title returns the capitalised kind used as the notification heading.
func (k Kind) Title() string {
	s := string(k.OrDefault())
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseKind maps a free-form kind name onto a Kind. Unknown names become
// KindInfo.
func ParseKind(s string) Kind {
	return Kind(strings.ToLower(strings.TrimSpace(s))).OrDefault()
}

// ID identifies a notification. IDs are assigned in creation order and never
// reused within a session.
type ID uint64

// State is the lifecycle position of a notification.
type State int

const (
	StateVisible State = iota
	StateFading
	StateRemoved
)

func (s State) String() string {
	switch s {
	case StateVisible:
		return "visible"
	case StateFading:
		return "fading"
	case StateRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Notification is a snapshot of a single notification.
type Notification struct {
	ID      ID
	Kind    Kind
	Message string
	State   State
}
