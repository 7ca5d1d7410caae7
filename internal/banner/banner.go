package banner

import (
	"context"
	"errors"
	"strings"

	"stagehand/internal/store"
	"stagehand/internal/types"
)

type Tone string

const (
	ToneInfo    Tone = "info"
	ToneWarning Tone = "warning"
)

// Banner is one dismissible alert strip shown above the workbook screens.
type Banner struct {
	ID    string `json:"id"`
	Tone  Tone   `json:"tone"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

func Builtin() []Banner {
	return []Banner{
		{
			ID:    "banner_live_endpoint",
			Tone:  ToneInfo,
			Title: "Live mode available",
			Body:  "Toggle live mode to route assistant queries to your connected endpoint.",
		},
		{
			ID:    "banner_cap_campaigns",
			Tone:  ToneWarning,
			Title: "Two campaigns near budget cap",
			Body:  "Spring launch and the retargeting flight will hit their caps before Friday.",
		},
		{
			ID:    "banner_new_quarter",
			Tone:  ToneInfo,
			Title: "New quarter loaded",
			Body:  "Board pack templates picked up the new quarter's numbers automatically.",
		},
	}
}

// Manager filters banners against the session's dismissed set and records
// new dismissals. Dismissals share the session store with tour playback,
// and the explicit clear wipes both.
type Manager struct {
	sessions store.SessionStore
	banners  []Banner
}

func NewManager(sessions store.SessionStore) *Manager {
	return &Manager{sessions: sessions, banners: Builtin()}
}

func (m *Manager) Active(ctx context.Context) ([]Banner, error) {
	state, err := m.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	active := []Banner{}
	for _, b := range m.banners {
		if !state.BannerDismissed(b.ID) {
			active = append(active, b)
		}
	}
	return active, nil
}

// Dismiss records the id. Dismissing an already-dismissed or unknown id is
// harmless; the set only grows with known ids.
func (m *Manager) Dismiss(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errors.New("banner id is required")
	}
	known := false
	for _, b := range m.banners {
		if b.ID == id {
			known = true
			break
		}
	}
	if !known {
		return nil
	}
	state, err := m.sessions.Load(ctx)
	if err != nil {
		return err
	}
	if state == nil {
		state = &types.SessionState{}
	}
	if state.BannerDismissed(id) {
		return nil
	}
	state.DismissedBanners = append(state.DismissedBanners, id)
	return m.sessions.Save(ctx, state)
}
