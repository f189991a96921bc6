package page

import (
	"fmt"

	"github.com/colonyops/beacon/internal/core/notify"
)

// EmergencyDialog is the modal listing numbers to call.
type EmergencyDialog struct {
	notify Notifier
	open   bool
}

func NewEmergencyDialog(n Notifier) *EmergencyDialog {
	return &EmergencyDialog{notify: n}
}

func (d *EmergencyDialog) Open()        { d.open = true }
func (d *EmergencyDialog) Close()       { d.open = false }
func (d *EmergencyDialog) IsOpen() bool { return d.open }

// Options returns the contacts offered by the dialog.
func (d *EmergencyDialog) Options() []EmergencyContact {
	return EmergencyContacts()
}

// Choose simulates calling c. The dialog stays open.
func (d *EmergencyDialog) Choose(c EmergencyContact) notify.ID {
	return Call(d.notify, c)
}

// Call simulates calling c and reports it as an info notification.
func Call(n Notifier, c EmergencyContact) notify.ID {
	return n.Notify(fmt.Sprintf("Simulating call to %s (%s)", c.Name, c.Number), notify.KindInfo)
}
