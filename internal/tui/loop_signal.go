package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/beacon/internal/core/eventloop"
)

// loopSignalMsg reports that timer callbacks are queued on the event loop.
type loopSignalMsg struct{}

// waitForLoop blocks until the loop has work. The callbacks themselves are
// drained in Update so the feedback engine only ever runs on the program
// goroutine.
func waitForLoop(l *eventloop.Loop) tea.Cmd {
	return func() tea.Msg {
		<-l.Signal()
		return loopSignalMsg{}
	}
}
