package app

import (
	"sort"
	"strings"
)

type HotkeyContext int

const (
	HotkeyGlobal HotkeyContext = iota
	HotkeyChat
	HotkeyTransport
	HotkeyArcPicker
)

type Hotkey struct {
	Key      string
	Label    string
	Context  HotkeyContext
	Priority int
}

func DefaultHotkeys() []Hotkey {
	return []Hotkey{
		{Key: "ctrl+t", Label: "tour", Context: HotkeyGlobal, Priority: 10},
		{Key: "ctrl+l", Label: "live mode", Context: HotkeyGlobal, Priority: 20},
		{Key: "ctrl+y", Label: "copy reply", Context: HotkeyGlobal, Priority: 30},
		{Key: "ctrl+d", Label: "dismiss banner", Context: HotkeyGlobal, Priority: 40},
		{Key: "ctrl+c", Label: "quit", Context: HotkeyGlobal, Priority: 90},
		{Key: "enter", Label: "ask", Context: HotkeyChat, Priority: 10},
		{Key: "tab", Label: "next screen", Context: HotkeyChat, Priority: 20},
		{Key: "←/→", Label: "step", Context: HotkeyTransport, Priority: 10},
		{Key: "esc", Label: "end tour", Context: HotkeyTransport, Priority: 20},
		{Key: "j/k/↑/↓", Label: "move", Context: HotkeyArcPicker, Priority: 10},
		{Key: "tab", Label: "audience", Context: HotkeyArcPicker, Priority: 20},
		{Key: "enter", Label: "start", Context: HotkeyArcPicker, Priority: 30},
		{Key: "esc", Label: "cancel", Context: HotkeyArcPicker, Priority: 40},
	}
}

func activeContexts(m *Model) []HotkeyContext {
	contexts := []HotkeyContext{HotkeyGlobal}
	if m == nil {
		return contexts
	}
	if m.mode == uiModePickArc {
		return []HotkeyContext{HotkeyArcPicker}
	}
	if m.tour.Playing() && m.tour.Visible() {
		contexts = append(contexts, HotkeyTransport)
	}
	contexts = append(contexts, HotkeyChat)
	return contexts
}

// renderHotkeys builds the footer hint line for the model's active contexts,
// ordered by priority within each context.
func renderHotkeys(m *Model) string {
	byContext := map[HotkeyContext][]Hotkey{}
	for _, hk := range DefaultHotkeys() {
		byContext[hk.Context] = append(byContext[hk.Context], hk)
	}
	var parts []string
	for _, ctx := range activeContexts(m) {
		keys := byContext[ctx]
		sort.SliceStable(keys, func(i, j int) bool { return keys[i].Priority < keys[j].Priority })
		for _, hk := range keys {
			parts = append(parts, hk.Key+" "+hk.Label)
		}
	}
	return helpStyle.Render(strings.Join(parts, "  ·  "))
}
