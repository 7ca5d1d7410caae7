package app

import (
	"fmt"
	"strings"

	runewidth "github.com/mattn/go-runewidth"

	"stagehand/internal/tour"
)

const progressBarWidth = 24

// renderTransportBar draws the tour transport from a playback frame: step
// markers, narration, the advisory progress fill, and the prev/next hints
// with the ends greyed out when clamped.
func renderTransportBar(frame tour.Frame, width int) string {
	if !frame.Visible {
		return ""
	}
	if !frame.Playing {
		body := pickerGroupStyle.Render("Guided tour") + "\n" +
			helpStyle.Render("pick a tour with ctrl+t")
		return transportStyle.Width(maxInt(width-2, 10)).Render(body)
	}

	title := fmt.Sprintf("%s · step %d/%d", frame.ArcTitle, frame.StepIndex+1, frame.StepCount)
	markers := renderMarkers(frame.Markers)

	prev := "◀ prev"
	if frame.AtStart {
		prev = markerPendingStyle.Render(prev)
	} else {
		prev = markerCurrentStyle.Render(prev)
	}
	next := "next ▶"
	if frame.AtEnd {
		next = markerPendingStyle.Render(next)
	} else {
		next = markerCurrentStyle.Render(next)
	}

	lines := []string{
		pickerGroupStyle.Render(title) + "  " + markers,
		narrationStyle.Render(wrapNarration(frame.Narration, maxInt(width-6, 20))),
		renderProgress(frame.Progress) + "  " + prev + "  " + next,
	}
	return transportStyle.Width(maxInt(width-2, 10)).Render(strings.Join(lines, "\n"))
}

func renderMarkers(markers []tour.MarkerState) string {
	var b strings.Builder
	for i, marker := range markers {
		if i > 0 {
			b.WriteString(" ")
		}
		switch marker {
		case tour.MarkerDone:
			b.WriteString(markerDoneStyle.Render("●"))
		case tour.MarkerCurrent:
			b.WriteString(markerCurrentStyle.Render("◉"))
		default:
			b.WriteString(markerPendingStyle.Render("○"))
		}
	}
	return b.String()
}

func renderProgress(progress float64) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(progressBarWidth))
	return markerDoneStyle.Render(strings.Repeat("━", filled)) +
		markerPendingStyle.Render(strings.Repeat("─", progressBarWidth-filled))
}

// wrapNarration folds narration to the width without breaking words, since
// lipgloss padding alone does not reflow text.
func wrapNarration(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}
	words := strings.Fields(text)
	var lines []string
	var line string
	for _, word := range words {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if runewidth.StringWidth(candidate) > width && line != "" {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
