package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) loadBannersCmd() tea.Cmd {
	banners := m.banners
	return func() tea.Msg {
		active, err := banners.Active(context.Background())
		return bannersMsg{banners: active, err: err}
	}
}

func (m *Model) dismissBannerCmd(id string) tea.Cmd {
	banners := m.banners
	return func() tea.Msg {
		err := banners.Dismiss(context.Background(), id)
		return bannerDismissedMsg{id: id, err: err}
	}
}

// dispatchLiveCmd runs the live query off the UI goroutine. The dispatcher
// owns the timeout; a nil payload comes back for every failure mode.
func (m *Model) dispatchLiveCmd(seq int, query string) tea.Cmd {
	dispatcher := m.dispatcher
	queryCtx := m.dataset.PlaceholderContext()
	return func() tea.Msg {
		payload, _ := dispatcher.Dispatch(context.Background(), query, queryCtx)
		return liveReplyMsg{seq: seq, query: query, payload: payload}
	}
}

// armPacingCmd reads the current step's pacing token and schedules the
// advisory timer. Stale tokens are dropped by the controller.
func (m *Model) armPacingCmd() tea.Cmd {
	gen, duration := m.tour.ArmPacing()
	if duration <= 0 {
		return nil
	}
	return pacingCmd(gen, duration)
}

func pacingCmd(gen int, duration time.Duration) tea.Cmd {
	return tea.Tick(duration, func(time.Time) tea.Msg {
		return pacingDoneMsg{gen: gen}
	})
}

func progressTickCmd() tea.Cmd {
	return tea.Tick(progressTickInterval, func(time.Time) tea.Msg {
		return progressTickMsg{}
	})
}
