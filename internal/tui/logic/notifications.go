package logic

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/hy4ri/tabgrid/internal/logger"
)

// notify is swapped out in tests.
var notify = func(title, message string) error {
	return beeep.Notify(title, message, "")
}

// notifyItemCmd sends a desktop notification naming the activated item.
func (h *Handler) notifyItemCmd(tab int, title string) tea.Cmd {
	heading := "tabgrid"
	if tab >= 0 && tab < len(h.Tabs) {
		heading = h.Tabs[tab].Title
	}

	return func() tea.Msg {
		if err := notify(heading, "Selected: "+title); err != nil {
			logger.Printf("failed to send notification: %v", err)
		}
		return nil
	}
}
