package app

import (
	"strings"
)

type chatRole int

const (
	chatRoleUser chatRole = iota
	chatRoleReply
)

type chatEntry struct {
	role      chatRole
	content   string
	toolChips []string
	followUps []string
	source    string
}

// renderTranscript lays out the conversation oldest-first. Replies render
// as markdown with their tool chips and follow-up suggestions beneath.
func renderTranscript(entries []chatEntry, width int) string {
	if len(entries) == 0 {
		return helpStyle.Render("Ask the assistant about campaigns, segments, pipeline, or reports.")
	}
	bubbleWidth := maxInt(width-4, 20)
	var blocks []string
	for _, entry := range entries {
		switch entry.role {
		case chatRoleUser:
			blocks = append(blocks, userBubbleStyle.Render("you: "+entry.content))
		default:
			body := renderMarkdown(entry.content, bubbleWidth)
			var extra []string
			if len(entry.toolChips) > 0 {
				chips := make([]string, 0, len(entry.toolChips))
				for _, chip := range entry.toolChips {
					chips = append(chips, chipStyle.Render(chip))
				}
				extra = append(extra, strings.Join(chips, " "))
			}
			for _, followUp := range entry.followUps {
				extra = append(extra, followUpStyle.Render("↳ "+followUp))
			}
			if entry.source != "" {
				extra = append(extra, helpStyle.Render("source: "+entry.source))
			}
			if len(extra) > 0 {
				body += "\n" + strings.Join(extra, "\n")
			}
			blocks = append(blocks, replyBubbleStyle.Render(body))
		}
	}
	return strings.Join(blocks, "\n")
}
