package app

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"stagehand/internal/assistant"
	"stagehand/internal/live"
	"stagehand/internal/logging"
	"stagehand/internal/tour"
	"stagehand/internal/types"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = maxInt(msg.Width-2, minViewportWidth)
		m.viewport.Height = chatPanelHeight
		m.syncViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case liveReplyMsg:
		if msg.seq != m.sendSeq {
			return m, nil
		}
		m.waiting = false
		if msg.payload == nil {
			m.appendScripted(msg.query)
			m.status = "live endpoint unavailable, answered from script"
			return m, nil
		}
		m.appendLive(msg.payload)
		m.status = ""
		return m, nil

	case pacingDoneMsg:
		m.tour.PacingElapsed(msg.gen)
		return m, nil

	case progressTickMsg:
		if m.tour.Playing() && m.tour.Visible() {
			return m, progressTickCmd()
		}
		return m, nil

	case bannersMsg:
		if msg.err != nil {
			m.logger.Warn("load banners failed", logging.F("err", msg.err))
			return m, nil
		}
		m.activeBanners = msg.banners
		return m, nil

	case bannerDismissedMsg:
		if msg.err != nil {
			m.status = "dismiss failed: " + msg.err.Error()
			return m, nil
		}
		return m, m.loadBannersCmd()

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.loader, cmd = m.loader.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.mode == uiModePickArc {
		return m.handlePickerKey(key)
	}

	switch m.keymap.ActionFor(key) {
	case types.KeyActionQuit:
		return m, tea.Quit
	case types.KeyActionTourToggle:
		if m.tour.Playing() {
			m.tour.ToggleVisibility()
			if m.tour.Visible() {
				return m, progressTickCmd()
			}
			return m, nil
		}
		m.mode = uiModePickArc
		return m, nil
	case types.KeyActionToggleLive:
		mode := m.dispatcher.Toggle()
		m.status = "assistant mode: " + string(mode)
		return m, nil
	case types.KeyActionCopyReply:
		if m.lastReply == "" {
			m.status = "nothing to copy yet"
			return m, nil
		}
		if err := copyTextToClipboard(m.lastReply); err != nil {
			m.status = "copy failed: " + err.Error()
		} else {
			m.status = "reply copied"
		}
		return m, nil
	case types.KeyActionDismiss:
		if len(m.activeBanners) == 0 {
			return m, nil
		}
		return m, m.dismissBannerCmd(m.activeBanners[0].ID)
	}

	// Transport keys only steal input while the tour bar is on screen.
	if m.tour.Playing() && m.tour.Visible() {
		switch m.keymap.ActionFor(key) {
		case types.KeyActionTourPrev:
			if m.tour.Prev(context.Background()) {
				return m, m.armPacingCmd()
			}
			return m, nil
		case types.KeyActionTourNext:
			if m.tour.Next(context.Background()) {
				return m, m.armPacingCmd()
			}
			return m, nil
		case types.KeyActionTourClose:
			m.tour.Close(context.Background())
			m.status = "tour ended"
			return m, nil
		}
	}

	switch key {
	case "enter":
		return m, m.submitQuery(m.input.Value())
	case "tab":
		m.cursor.screen = adjacentScreen(m.cursor.screen, 1)
		return m, nil
	case "shift+tab":
		m.cursor.screen = adjacentScreen(m.cursor.screen, -1)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handlePickerKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc":
		m.mode = uiModeChat
		return m, nil
	case "up", "k":
		m.picker.MoveUp()
		return m, nil
	case "down", "j":
		m.picker.MoveDown()
		return m, nil
	case "tab":
		m.picker.CycleAudience()
		return m, nil
	case "enter":
		id := m.picker.Selected()
		if id == 0 {
			return m, nil
		}
		if err := m.tour.SelectArc(context.Background(), id); err != nil {
			if errors.Is(err, tour.ErrUnknownArc) {
				m.status = "that tour is unavailable"
			} else {
				m.status = "could not start tour: " + err.Error()
			}
			m.mode = uiModeChat
			return m, nil
		}
		m.mode = uiModeChat
		m.status = ""
		return m, tea.Batch(m.armPacingCmd(), progressTickCmd())
	}
	return m, nil
}

func (m *Model) submitQuery(query string) tea.Cmd {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	m.transcript = append(m.transcript, chatEntry{role: chatRoleUser, content: query})
	m.input.Reset()
	m.syncViewport()
	if m.dispatcher.Live() {
		m.waiting = true
		m.sendSeq++
		return tea.Batch(m.loader.Tick, m.dispatchLiveCmd(m.sendSeq, query))
	}
	m.appendScripted(query)
	return nil
}

func (m *Model) appendScripted(query string) {
	resp := assistant.Adapt(m.resolver.Resolve(query), m.dataset.PlaceholderContext())
	if resp == nil {
		return
	}
	m.transcript = append(m.transcript, chatEntry{
		role:      chatRoleReply,
		content:   resp.Content,
		toolChips: resp.ToolChips,
		followUps: resp.FollowUps,
		source:    string(resp.Kind),
	})
	m.lastReply = resp.Content
	m.syncViewport()
}

func (m *Model) appendLive(payload *live.Payload) {
	m.transcript = append(m.transcript, chatEntry{
		role:      chatRoleReply,
		content:   payload.Content,
		toolChips: payload.ToolChips,
		followUps: payload.FollowUps,
		source:    "live",
	})
	m.lastReply = payload.Content
	m.syncViewport()
}
