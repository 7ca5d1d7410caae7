package app

import (
	"fmt"
	"strings"

	"stagehand/internal/tour"
	"stagehand/internal/types"
)

// ArcPicker lists the catalog for one audience at a time and tracks a
// cursor. Tab cycles the audience; the arc ids stay stable across cycles.
type ArcPicker struct {
	catalog  *tour.Catalog
	audience types.Audience
	arcs     []types.Arc
	cursor   int
}

func NewArcPicker(catalog *tour.Catalog, audience types.Audience) *ArcPicker {
	if !audience.Valid() {
		audience = types.AudienceCustomers
	}
	p := &ArcPicker{catalog: catalog}
	p.SetAudience(audience)
	return p
}

func (p *ArcPicker) Audience() types.Audience {
	return p.audience
}

func (p *ArcPicker) SetAudience(audience types.Audience) {
	p.audience = audience
	p.arcs = p.catalog.ArcsForAudience(audience)
	p.cursor = 0
}

func (p *ArcPicker) CycleAudience() {
	audiences := types.Audiences()
	for i, audience := range audiences {
		if audience == p.audience {
			p.SetAudience(audiences[(i+1)%len(audiences)])
			return
		}
	}
	p.SetAudience(audiences[0])
}

func (p *ArcPicker) MoveUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *ArcPicker) MoveDown() {
	if p.cursor+1 < len(p.arcs) {
		p.cursor++
	}
}

// Selected returns the arc id under the cursor, or 0 when the audience has
// no arcs.
func (p *ArcPicker) Selected() int {
	if p.cursor < 0 || p.cursor >= len(p.arcs) {
		return 0
	}
	return p.arcs[p.cursor].ID
}

func (p *ArcPicker) View() string {
	var b strings.Builder
	b.WriteString(pickerTitleStyle.Render("Start a guided tour"))
	b.WriteString("\n")
	b.WriteString(pickerGroupStyle.Render("audience: " + string(p.audience)))
	b.WriteString("\n\n")
	if len(p.arcs) == 0 {
		b.WriteString(helpStyle.Render("no tours for this audience"))
		return b.String()
	}
	for i, arc := range p.arcs {
		line := fmt.Sprintf("%d. %s", arc.ID, arc.Title)
		if arc.Summary != "" {
			line += helpStyle.Render("  " + arc.Summary)
		}
		if i == p.cursor {
			b.WriteString(pickerCursorStyle.Render("> " + line))
		} else {
			b.WriteString(pickerItemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
