package live

import "github.com/charmbracelet/lipgloss"

var badgeStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("15")).
	Background(lipgloss.Color("160")).
	Padding(0, 1)

// Badge returns the status-line "LIVE" indicator, or the empty string in
// scripted mode. Rendering is pure, so re-rendering a frame can never stack
// duplicate badges.
func (d *Dispatcher) Badge() string {
	if !d.Live() {
		return ""
	}
	return badgeStyle.Render("LIVE")
}
