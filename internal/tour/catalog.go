package tour

import (
	"fmt"

	"stagehand/internal/types"
)

// Catalog is the ordered set of guided demo arcs. Content is fixed at
// startup; lookups never mutate it.
type Catalog struct {
	arcs []types.Arc
}

// NewCatalog validates every arc and requires contiguous 1-based ids so the
// arc selector and persisted positions can trust the numbering.
func NewCatalog(arcs []types.Arc) (*Catalog, error) {
	for i, arc := range arcs {
		if arc.ID != i+1 {
			return nil, fmt.Errorf("arc %q has id %d, want %d", arc.Title, arc.ID, i+1)
		}
		if !arc.Audience.Valid() {
			return nil, fmt.Errorf("arc %d has unknown audience %q", arc.ID, arc.Audience)
		}
		if !ValidateArc(&arc) {
			return nil, fmt.Errorf("arc %d (%q) failed validation", arc.ID, arc.Title)
		}
		for j, step := range arc.Steps {
			if !step.Screen.Valid() {
				return nil, fmt.Errorf("arc %d step %d targets unknown screen %q", arc.ID, j, step.Screen)
			}
		}
	}
	return &Catalog{arcs: append([]types.Arc(nil), arcs...)}, nil
}

// BuiltinCatalog loads the compiled-in demo arcs.
func BuiltinCatalog() (*Catalog, error) {
	return NewCatalog(builtinArcs())
}

// Arc returns the arc with the exact id, or nil. Ids outside the defined
// range (including 0) are not clamped.
func (c *Catalog) Arc(id int) *types.Arc {
	if id < 1 || id > len(c.arcs) {
		return nil
	}
	arc := c.arcs[id-1]
	return &arc
}

// ArcsForAudience returns the arcs targeted at the audience, in catalog
// order. Unmatched audiences (including values outside the enum) yield an
// empty slice, never nil.
func (c *Catalog) ArcsForAudience(audience types.Audience) []types.Arc {
	out := []types.Arc{}
	for _, arc := range c.arcs {
		if arc.Audience == audience {
			out = append(out, arc)
		}
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.arcs)
}

// ValidateArc is the structural gate every arc passes before playback:
// non-nil, at least one step, and a positive duration on every step.
func ValidateArc(arc *types.Arc) bool {
	if arc == nil {
		return false
	}
	if len(arc.Steps) == 0 {
		return false
	}
	for _, step := range arc.Steps {
		if step.DurationMS <= 0 {
			return false
		}
	}
	return true
}
