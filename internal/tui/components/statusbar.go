package components

import (
	"strings"

	"github.com/developerashkan/Gantt-Chart-Generator/internal/tui/styles"
)

// HelpItem is one key binding shown in the status bar.
type HelpItem struct {
	Key  string
	Desc string
}

// StatusBar renders a bottom help bar showing contextual key bindings.
type StatusBar struct {
	items []HelpItem
}

// NewStatusBar creates a StatusBar for the given bindings.
func NewStatusBar(items ...HelpItem) StatusBar {
	return StatusBar{items: items}
}

// Render returns the status bar padded to width. Items are joined with " • ".
func (s StatusBar) Render(width int) string {
	parts := make([]string, 0, len(s.items))
	for _, item := range s.items {
		part := styles.KeyStyle.Render(item.Key)
		if item.Desc != "" {
			part += " " + item.Desc
		}
		parts = append(parts, part)
	}

	return styles.StatusBarStyle.Width(width).Render(strings.Join(parts, " • "))
}
