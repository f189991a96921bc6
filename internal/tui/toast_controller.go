package tui

import (
	"github.com/colonyops/beacon/internal/core/host"
	"github.com/colonyops/beacon/internal/core/notify"
)

type toast struct {
	handle  host.Handle
	kind    notify.Kind
	message string
	opacity float64
	offset  float64
}

func (t toast) fading() bool {
	return t.opacity < 1
}

// ToastController holds the notifications currently attached to the screen.
// Lifecycle decisions belong to the feedback engine; the controller only
// records what it is told to show.
type ToastController struct {
	toasts []toast
	next   host.Handle
}

func NewToastController() *ToastController {
	return &ToastController{}
}

// AttachNotification adds a toast at the bottom of the stack.
func (c *ToastController) AttachNotification(kind notify.Kind, message string) host.Handle {
	c.next++
	c.toasts = append(c.toasts, toast{
		handle:  c.next,
		kind:    kind,
		message: message,
		opacity: 1,
	})
	return c.next
}

func (c *ToastController) SetOpacity(h host.Handle, opacity float64) {
	if i := c.index(h); i >= 0 {
		c.toasts[i].opacity = opacity
	}
}

func (c *ToastController) SetTransform(h host.Handle, offsetX float64) {
	if i := c.index(h); i >= 0 {
		c.toasts[i].offset = offsetX
	}
}

// Detach removes the toast. Unknown handles are ignored.
func (c *ToastController) Detach(h host.Handle) {
	if i := c.index(h); i >= 0 {
		c.toasts = append(c.toasts[:i], c.toasts[i+1:]...)
	}
}

// HasToasts returns true if there are any attached toasts.
func (c *ToastController) HasToasts() bool {
	return len(c.toasts) > 0
}

// attached returns the attached toasts, oldest first.
func (c *ToastController) attached() []toast {
	return c.toasts
}

func (c *ToastController) index(h host.Handle) int {
	for i, t := range c.toasts {
		if t.handle == h {
			return i
		}
	}
	return -1
}
