package tour

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stagehand/internal/logging"
	"stagehand/internal/store"
	"stagehand/internal/types"
)

// Navigator is the injected navigation side effect: switch the app to a
// screen. The controller persists its position before calling it, so a
// process restart mid-navigation resumes on the step being navigated to.
type Navigator func(screen types.ScreenID)

var ErrUnknownArc = errors.New("unknown or invalid arc")

// Controller drives guided tour playback: Hidden and Visible/Idle states,
// arc selection, step transport, persistence, and resume. All methods are
// meant for the single UI goroutine; pacing timers hand back in via
// PacingElapsed with a generation token so a stale timer from a superseded
// step is ignored.
type Controller struct {
	catalog  *Catalog
	sessions store.SessionStore
	navigate Navigator
	logger   logging.Logger
	now      func() time.Time

	visible   bool
	arc       *types.Arc
	stepIndex int

	pacingGen   int
	stepStarted time.Time
	pacingDone  bool
}

type ControllerOption func(*Controller)

func WithNavigator(navigate Navigator) ControllerOption {
	return func(c *Controller) {
		if navigate != nil {
			c.navigate = navigate
		}
	}
}

func WithControllerLogger(logger logging.Logger) ControllerOption {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithClock(now func() time.Time) ControllerOption {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

func NewController(catalog *Catalog, sessions store.SessionStore, opts ...ControllerOption) *Controller {
	c := &Controller{
		catalog:  catalog,
		sessions: sessions,
		navigate: func(types.ScreenID) {},
		logger:   logging.Nop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Visible() bool {
	return c.visible
}

func (c *Controller) Playing() bool {
	return c.arc != nil
}

func (c *Controller) Arc() *types.Arc {
	return c.arc
}

func (c *Controller) StepIndex() int {
	return c.stepIndex
}

func (c *Controller) Step() (types.Step, bool) {
	if c.arc == nil || c.stepIndex < 0 || c.stepIndex >= len(c.arc.Steps) {
		return types.Step{}, false
	}
	return c.arc.Steps[c.stepIndex], true
}

// Show/Hide/ToggleVisibility move between Hidden and Visible without
// touching any in-progress arc position. Hiding cancels the pacing timer.
func (c *Controller) Show() {
	c.visible = true
}

func (c *Controller) Hide() {
	c.visible = false
	c.pacingGen++
}

func (c *Controller) ToggleVisibility() {
	if c.visible {
		c.Hide()
	} else {
		c.Show()
	}
}

// SelectArc validates the arc, then enters Playing at step 0: persist, then
// navigate, then arm pacing. On failure the controller keeps its prior state
// untouched.
func (c *Controller) SelectArc(ctx context.Context, id int) error {
	arc := c.catalog.Arc(id)
	if arc == nil || !ValidateArc(arc) {
		return fmt.Errorf("%w: %d", ErrUnknownArc, id)
	}
	previousArc, previousIndex, previousVisible := c.arc, c.stepIndex, c.visible
	c.arc = arc
	c.stepIndex = 0
	c.visible = true
	if err := c.persistPosition(ctx); err != nil {
		c.arc, c.stepIndex, c.visible = previousArc, previousIndex, previousVisible
		return err
	}
	c.enterStep()
	return nil
}

// Next advances one step, clamped at the final step. Reports whether the
// position changed.
func (c *Controller) Next(ctx context.Context) bool {
	if c.arc == nil || c.stepIndex+1 >= len(c.arc.Steps) {
		return false
	}
	c.stepIndex++
	if err := c.persistPosition(ctx); err != nil {
		c.logger.Warn("persist position failed", logging.F("err", err))
	}
	c.enterStep()
	return true
}

// Prev mirrors Next, clamped at step 0.
func (c *Controller) Prev(ctx context.Context) bool {
	if c.arc == nil || c.stepIndex == 0 {
		return false
	}
	c.stepIndex--
	if err := c.persistPosition(ctx); err != nil {
		c.logger.Warn("persist position failed", logging.F("err", err))
	}
	c.enterStep()
	return true
}

// Close ends playback: the stored position is removed so the next start is
// a fresh one, and the transport UI hides.
func (c *Controller) Close(ctx context.Context) {
	c.arc = nil
	c.stepIndex = 0
	c.visible = false
	c.pacingGen++
	if err := c.clearPosition(ctx); err != nil {
		c.logger.Warn("clear position failed", logging.F("err", err))
	}
}

// ResumeIfNeeded restores playback from the session store. A stored
// position that no longer maps to a valid arc/step leaves the controller in
// Visible/Idle and removes the stale entry.
func (c *Controller) ResumeIfNeeded(ctx context.Context) error {
	state, err := c.sessions.Load(ctx)
	if err != nil {
		return err
	}
	if state == nil || state.Playback == nil {
		return nil
	}
	pos := state.Playback
	arc := c.catalog.Arc(pos.ArcID)
	if arc == nil || !ValidateArc(arc) || pos.StepIndex < 0 || pos.StepIndex >= len(arc.Steps) {
		c.logger.Info("discarding stale playback position",
			logging.F("arc_id", pos.ArcID), logging.F("step_index", pos.StepIndex))
		c.visible = true
		return c.clearPosition(ctx)
	}
	c.arc = arc
	c.stepIndex = pos.StepIndex
	c.visible = true
	c.enterStep()
	return nil
}

// ArmPacing returns the token and duration for the current step's advisory
// timer. The caller schedules the timer and reports back via PacingElapsed.
func (c *Controller) ArmPacing() (gen int, duration time.Duration) {
	step, ok := c.Step()
	if !ok {
		return c.pacingGen, 0
	}
	return c.pacingGen, time.Duration(step.DurationMS) * time.Millisecond
}

// PacingElapsed marks the current step's narration pacing complete. Tokens
// from superseded steps or abandoned arcs are ignored; pacing never forces
// a step transition.
func (c *Controller) PacingElapsed(gen int) {
	if gen != c.pacingGen || c.arc == nil {
		return
	}
	c.pacingDone = true
}

// StepProgress reports the advisory pacing fill for the current step in
// [0, 1]. It drives the progress marker display only.
func (c *Controller) StepProgress() float64 {
	step, ok := c.Step()
	if !ok {
		return 0
	}
	if c.pacingDone {
		return 1
	}
	total := time.Duration(step.DurationMS) * time.Millisecond
	if total <= 0 {
		return 1
	}
	elapsed := c.now().Sub(c.stepStarted)
	if elapsed <= 0 {
		return 0
	}
	progress := float64(elapsed) / float64(total)
	if progress > 1 {
		return 1
	}
	return progress
}

// enterStep persists nothing itself; callers persist first. It restarts
// pacing and performs the navigation side effect for the current step.
func (c *Controller) enterStep() {
	c.pacingGen++
	c.pacingDone = false
	c.stepStarted = c.now()
	if step, ok := c.Step(); ok {
		c.navigate(step.Screen)
	}
}

func (c *Controller) persistPosition(ctx context.Context) error {
	state, err := c.sessions.Load(ctx)
	if err != nil {
		return err
	}
	if state == nil {
		state = &types.SessionState{}
	}
	state.Playback = &types.PlaybackPosition{ArcID: c.arc.ID, StepIndex: c.stepIndex}
	return c.sessions.Save(ctx, state)
}

func (c *Controller) clearPosition(ctx context.Context) error {
	state, err := c.sessions.Load(ctx)
	if err != nil {
		return err
	}
	if state == nil || state.Playback == nil {
		return nil
	}
	state.Playback = nil
	return c.sessions.Save(ctx, state)
}
