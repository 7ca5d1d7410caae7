package app

import (
	"testing"

	"stagehand/internal/tour"
	"stagehand/internal/types"
)

func newTestPicker(t *testing.T) *ArcPicker {
	t.Helper()
	catalog, err := tour.BuiltinCatalog()
	if err != nil {
		t.Fatalf("BuiltinCatalog: %v", err)
	}
	return NewArcPicker(catalog, types.AudienceCustomers)
}

func TestPickerCursorStaysInBounds(t *testing.T) {
	p := newTestPicker(t)
	p.MoveUp()
	if p.Selected() == 0 {
		t.Fatalf("cursor fell off the top")
	}
	for i := 0; i < 50; i++ {
		p.MoveDown()
	}
	if p.Selected() == 0 {
		t.Fatalf("cursor fell off the bottom")
	}
}

func TestCycleAudienceVisitsAllAudiences(t *testing.T) {
	p := newTestPicker(t)
	seen := map[types.Audience]bool{p.Audience(): true}
	for i := 0; i < len(types.Audiences())-1; i++ {
		p.CycleAudience()
		seen[p.Audience()] = true
	}
	for _, audience := range types.Audiences() {
		if !seen[audience] {
			t.Fatalf("audience %q never reached", audience)
		}
	}
	if p.Selected() == 0 {
		t.Fatalf("cursor should land on a selectable arc after cycling")
	}
}

func TestSelectedMatchesAudience(t *testing.T) {
	p := newTestPicker(t)
	catalog, _ := tour.BuiltinCatalog()
	for range types.Audiences() {
		if id := p.Selected(); id != 0 {
			arc := catalog.Arc(id)
			if arc == nil || arc.Audience != p.Audience() {
				t.Fatalf("selected arc %d does not belong to %q", id, p.Audience())
			}
		}
		p.CycleAudience()
	}
}
