package terminal

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ResponsiveTUIHelper tracks the terminal size for bubbletea models.
type ResponsiveTUIHelper struct {
	width  int
	height int
}

// NewResponsiveTUIHelper creates a new responsive TUI helper with default dimensions
func NewResponsiveTUIHelper() *ResponsiveTUIHelper {
	return &ResponsiveTUIHelper{
		width:  80, // Default width
		height: 24, // Default height
	}
}

// SetSize updates the terminal dimensions
func (h *ResponsiveTUIHelper) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// GetSize returns the current terminal dimensions
func (h *ResponsiveTUIHelper) GetSize() (int, int) {
	return h.width, h.height
}

// GetContentWidth returns the width left for a line of content after padding.
func (h *ResponsiveTUIHelper) GetContentWidth() int {
	contentWidth := h.width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}
	return contentWidth
}

// HandleWindowSizeMsg is a helper function to handle tea.WindowSizeMsg
func (h *ResponsiveTUIHelper) HandleWindowSizeMsg(msg tea.WindowSizeMsg) {
	h.SetSize(msg.Width, msg.Height)
}
