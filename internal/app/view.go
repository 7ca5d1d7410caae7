package app

import (
	"strings"

	"stagehand/internal/banner"
	"stagehand/internal/types"
)

func (m Model) View() string {
	var sections []string
	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderTabs())
	for _, strip := range m.renderBanners() {
		sections = append(sections, strip)
	}

	if m.mode == uiModePickArc {
		sections = append(sections, "", m.picker.View())
	} else {
		sections = append(sections, "", renderScreen(m.cursor.screen, m.dataset))
	}

	sections = append(sections, m.renderChatPanel())

	if bar := renderTransportBar(m.tour.Frame(), m.width); bar != "" {
		sections = append(sections, bar)
	}
	if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	sections = append(sections, renderHotkeys(&m))
	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	header := headerStyle.Render("Stagehand") + "  " + companyStyle.Render(m.dataset.Company)
	if badge := m.dispatcher.Badge(); badge != "" {
		header += "  " + badge
	}
	return header
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(screenOrder))
	for _, screen := range screenOrder {
		label := screenLabel(screen)
		if screen == m.cursor.screen {
			tabs = append(tabs, tabActiveStyle.Render(" "+label+" "))
		} else {
			tabs = append(tabs, tabStyle.Render(" "+label+" "))
		}
	}
	return strings.Join(tabs, "")
}

func (m Model) renderBanners() []string {
	strips := make([]string, 0, len(m.activeBanners))
	for _, b := range m.activeBanners {
		style := bannerInfoStyle
		if b.Tone == banner.ToneWarning {
			style = bannerWarningStyle
		}
		strips = append(strips, style.Render(b.Title+" · "+b.Body))
	}
	return strips
}

func (m Model) renderChatPanel() string {
	var b strings.Builder
	if m.cursor.screen == types.ScreenAssistant {
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	} else if len(m.transcript) > 0 {
		// Off the assistant screen, keep a one-line echo of the last reply.
		last := m.transcript[len(m.transcript)-1]
		preview := strings.SplitN(last.content, "\n", 2)[0]
		b.WriteString(helpStyle.Render("assistant: " + preview))
		b.WriteString("\n")
	}
	if m.waiting {
		b.WriteString(m.loader.View() + " asking the assistant...\n")
	}
	b.WriteString(m.input.View())
	return b.String()
}
