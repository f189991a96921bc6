package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/beacon/internal/core/notify"
	"github.com/colonyops/beacon/pkg/tuitest"
)

func TestToastView_EmptyOverlayKeepsBackground(t *testing.T) {
	v := NewToastView(NewToastController())

	assert.Empty(t, v.View())
	assert.Equal(t, "background", v.Overlay("background", 80, 24))
}

func TestToastView_RendersTitleAndMessage(t *testing.T) {
	c := NewToastController()
	c.AttachNotification(notify.KindError, "Please fill in all required fields")
	v := NewToastView(c)

	out := tuitest.StripANSI(v.View())
	assert.Contains(t, out, "Error")
	assert.Contains(t, out, "Please fill in all required fields")
}

func TestToastView_FadingToastKeepsStackWidth(t *testing.T) {
	c := NewToastController()
	c.AttachNotification(notify.KindInfo, "steady")
	h := c.AttachNotification(notify.KindInfo, "leaving")
	v := NewToastView(c)

	before := lipgloss.Width(v.View())
	c.SetOpacity(h, 0)
	c.SetTransform(h, 1)

	assert.Equal(t, before, lipgloss.Width(v.View()))
}

func TestToastView_OverlayBottomRight(t *testing.T) {
	c := NewToastController()
	c.AttachNotification(notify.KindSuccess, "saved")
	v := NewToastView(c)

	bg := strings.TrimRight(strings.Repeat(strings.Repeat(".", 80)+"\n", 24), "\n")
	out := tuitest.StripANSI(v.Overlay(bg, 80, 24))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 24)

	assert.Equal(t, strings.Repeat(".", 80), lines[0], "top rows untouched")
	assert.Equal(t, strings.Repeat(".", 80), lines[23], "bottom margin untouched")

	found := -1
	for i, line := range lines {
		if strings.Contains(line, "saved") {
			found = i
		}
	}
	require.Positive(t, found)
	assert.True(t, strings.HasPrefix(lines[found], "....."), "toast is right aligned")
}

func TestOverlayAt(t *testing.T) {
	bg := "abcdefgh\nijklmnop"

	assert.Equal(t, "abXYefgh\nijklmnop", overlayAt(bg, "XY", 2, 0))
	assert.Equal(t, "abcdefgh\nijklmnop\n   Z", overlayAt(bg, "Z", 3, 2))
	assert.Equal(t, "abcdefgh\nijkl    QQ", overlayAt("abcdefgh\nijkl", "QQ", 8, 1))
}
