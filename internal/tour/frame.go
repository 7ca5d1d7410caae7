package tour

import "stagehand/internal/types"

type MarkerState int

const (
	MarkerDone MarkerState = iota
	MarkerCurrent
	MarkerPending
)

// Frame describes the transport controls for one render: which markers to
// draw, what the narration says, and which transport buttons are active.
// The UI layer turns this into styled output; the state machine never
// touches a display surface directly.
type Frame struct {
	Visible   bool
	Playing   bool
	ArcTitle  string
	StepIndex int
	StepCount int
	Screen    types.ScreenID
	Narration string
	Progress  float64
	Markers   []MarkerState
	AtStart   bool
	AtEnd     bool
}

func (c *Controller) Frame() Frame {
	frame := Frame{Visible: c.visible}
	if c.arc == nil {
		return frame
	}
	frame.Playing = true
	frame.ArcTitle = c.arc.Title
	frame.StepIndex = c.stepIndex
	frame.StepCount = len(c.arc.Steps)
	frame.AtStart = c.stepIndex == 0
	frame.AtEnd = c.stepIndex == len(c.arc.Steps)-1
	frame.Progress = c.StepProgress()
	if step, ok := c.Step(); ok {
		frame.Screen = step.Screen
		frame.Narration = step.Narration
	}
	frame.Markers = make([]MarkerState, len(c.arc.Steps))
	for i := range frame.Markers {
		switch {
		case i < c.stepIndex:
			frame.Markers[i] = MarkerDone
		case i == c.stepIndex:
			frame.Markers[i] = MarkerCurrent
		default:
			frame.Markers[i] = MarkerPending
		}
	}
	return frame
}
