package types

// SessionState is everything that survives a restart within one demo
// session: the tour cursor and the ids of dismissed alert banners. Both are
// wiped by an explicit clear.
type SessionState struct {
	Playback         *PlaybackPosition `json:"playback,omitempty"`
	DismissedBanners []string          `json:"dismissed_banners,omitempty"`
}

func (s *SessionState) BannerDismissed(id string) bool {
	if s == nil {
		return false
	}
	for _, dismissed := range s.DismissedBanners {
		if dismissed == id {
			return true
		}
	}
	return false
}
