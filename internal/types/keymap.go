package types

const (
	KeyActionTourPrev   = "tour_prev"
	KeyActionTourNext   = "tour_next"
	KeyActionTourClose  = "tour_close"
	KeyActionTourToggle = "tour_toggle"
	KeyActionToggleLive = "toggle_live"
	KeyActionCopyReply  = "copy_reply"
	KeyActionDismiss    = "dismiss_banner"
	KeyActionQuit       = "quit"
)

type Keymap struct {
	Bindings map[string]string `json:"bindings"`
}

// ActionFor returns the action bound to the key, or "" when unbound.
func (k *Keymap) ActionFor(key string) string {
	if k == nil {
		return ""
	}
	for action, bound := range k.Bindings {
		if bound == key {
			return action
		}
	}
	return ""
}

// Merge overlays the other keymap's bindings onto the defaults, so a user
// override file only has to list the keys it changes.
func (k *Keymap) Merge(other *Keymap) {
	if k == nil || other == nil {
		return
	}
	if k.Bindings == nil {
		k.Bindings = map[string]string{}
	}
	for action, key := range other.Bindings {
		if key != "" {
			k.Bindings[action] = key
		}
	}
}

func DefaultKeymap() *Keymap {
	return &Keymap{
		Bindings: map[string]string{
			KeyActionTourPrev:   "left",
			KeyActionTourNext:   "right",
			KeyActionTourClose:  "esc",
			KeyActionTourToggle: "ctrl+t",
			KeyActionToggleLive: "ctrl+l",
			KeyActionCopyReply:  "ctrl+y",
			KeyActionDismiss:    "ctrl+d",
			KeyActionQuit:       "ctrl+c",
		},
	}
}
