package tour

import (
	"context"
	"errors"
	"testing"
	"time"

	"stagehand/internal/store"
	"stagehand/internal/types"
)

type navRecorder struct {
	screens []types.ScreenID
}

func (r *navRecorder) navigate(screen types.ScreenID) {
	r.screens = append(r.screens, screen)
}

func newTestController(t *testing.T) (*Controller, *navRecorder, store.SessionStore) {
	t.Helper()
	catalog := newTestCatalog(t)
	sessions := store.NewMemorySessionStore()
	nav := &navRecorder{}
	ctrl := NewController(catalog, sessions, WithNavigator(nav.navigate))
	return ctrl, nav, sessions
}

func TestSelectArcEntersPlayingAtStepZero(t *testing.T) {
	ctx := context.Background()
	ctrl, nav, sessions := newTestController(t)

	if err := ctrl.SelectArc(ctx, 1); err != nil {
		t.Fatalf("SelectArc(1): %v", err)
	}
	if !ctrl.Playing() || ctrl.StepIndex() != 0 {
		t.Fatalf("expected playing at step 0, got playing=%v index=%d", ctrl.Playing(), ctrl.StepIndex())
	}
	if !ctrl.Visible() {
		t.Fatalf("selecting an arc should show the transport UI")
	}
	if len(nav.screens) != 1 {
		t.Fatalf("expected one navigation, got %v", nav.screens)
	}

	state, err := sessions.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if state.Playback == nil || state.Playback.ArcID != 1 || state.Playback.StepIndex != 0 {
		t.Fatalf("position not persisted: %+v", state.Playback)
	}
}

func TestSelectUnknownArcLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	ctrl, nav, _ := newTestController(t)

	if err := ctrl.SelectArc(ctx, 2); err != nil {
		t.Fatalf("SelectArc(2): %v", err)
	}
	ctrl.Next(ctx)
	before := ctrl.StepIndex()
	navCount := len(nav.screens)

	err := ctrl.SelectArc(ctx, 99)
	if err == nil {
		t.Fatalf("SelectArc(99) should fail")
	}
	if !errors.Is(err, ErrUnknownArc) {
		t.Fatalf("error = %v, want ErrUnknownArc", err)
	}
	if ctrl.Arc().ID != 2 || ctrl.StepIndex() != before {
		t.Fatalf("failed select mutated state: arc=%d index=%d", ctrl.Arc().ID, ctrl.StepIndex())
	}
	if len(nav.screens) != navCount {
		t.Fatalf("failed select triggered navigation")
	}
}

func TestNextAndPrevClampAtEnds(t *testing.T) {
	ctx := context.Background()
	ctrl, _, _ := newTestController(t)

	if err := ctrl.SelectArc(ctx, 1); err != nil {
		t.Fatalf("SelectArc: %v", err)
	}
	steps := len(ctrl.Arc().Steps)

	if ctrl.Prev(ctx) {
		t.Fatalf("Prev at step 0 should be a no-op")
	}
	for i := 1; i < steps; i++ {
		if !ctrl.Next(ctx) {
			t.Fatalf("Next failed at step %d", i)
		}
	}
	if ctrl.StepIndex() != steps-1 {
		t.Fatalf("expected terminal step %d, got %d", steps-1, ctrl.StepIndex())
	}
	if ctrl.Next(ctx) {
		t.Fatalf("Next at the terminal step should be a no-op")
	}
	if ctrl.StepIndex() != steps-1 {
		t.Fatalf("terminal Next moved the cursor to %d", ctrl.StepIndex())
	}
}

func TestPersistedPositionRoundTrip(t *testing.T) {
	ctx := context.Background()
	catalog := newTestCatalog(t)
	sessions := store.NewMemorySessionStore()

	first := NewController(catalog, sessions)
	if err := first.SelectArc(ctx, 1); err != nil {
		t.Fatalf("SelectArc: %v", err)
	}
	first.Next(ctx)
	first.Next(ctx)

	// Simulated reload: a brand-new controller over the same store.
	second := NewController(catalog, sessions)
	if err := second.ResumeIfNeeded(ctx); err != nil {
		t.Fatalf("ResumeIfNeeded: %v", err)
	}
	if !second.Playing() {
		t.Fatalf("expected resumed playback")
	}
	if second.Arc().ID != 1 || second.StepIndex() != 2 {
		t.Fatalf("resume restored arc=%d step=%d, want arc=1 step=2", second.Arc().ID, second.StepIndex())
	}
}

func TestResumeWithoutStoredPositionIsIdle(t *testing.T) {
	ctx := context.Background()
	ctrl, _, _ := newTestController(t)
	if err := ctrl.ResumeIfNeeded(ctx); err != nil {
		t.Fatalf("ResumeIfNeeded: %v", err)
	}
	if ctrl.Playing() || ctrl.Visible() {
		t.Fatalf("no stored position should leave the controller hidden and idle")
	}
}

func TestResumeDiscardsStalePosition(t *testing.T) {
	ctx := context.Background()
	ctrl, _, sessions := newTestController(t)

	stale := &types.SessionState{Playback: &types.PlaybackPosition{ArcID: 42, StepIndex: 1}}
	if err := sessions.Save(ctx, stale); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := ctrl.ResumeIfNeeded(ctx); err != nil {
		t.Fatalf("ResumeIfNeeded: %v", err)
	}
	if ctrl.Playing() {
		t.Fatalf("stale position must not start playback")
	}
	if !ctrl.Visible() {
		t.Fatalf("stale position should leave the controller visible/idle")
	}
	state, err := sessions.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if state.Playback != nil {
		t.Fatalf("stale position should be cleared, got %+v", state.Playback)
	}
}

func TestResumeDiscardsOutOfRangeStepIndex(t *testing.T) {
	ctx := context.Background()
	ctrl, _, sessions := newTestController(t)

	stale := &types.SessionState{Playback: &types.PlaybackPosition{ArcID: 1, StepIndex: 40}}
	if err := sessions.Save(ctx, stale); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := ctrl.ResumeIfNeeded(ctx); err != nil {
		t.Fatalf("ResumeIfNeeded: %v", err)
	}
	if ctrl.Playing() {
		t.Fatalf("out-of-range step index must not start playback")
	}
}

func TestToggleVisibilityInvolution(t *testing.T) {
	ctx := context.Background()
	ctrl, _, _ := newTestController(t)

	original := ctrl.Visible()
	ctrl.ToggleVisibility()
	ctrl.ToggleVisibility()
	if ctrl.Visible() != original {
		t.Fatalf("double toggle changed visibility")
	}

	if err := ctrl.SelectArc(ctx, 3); err != nil {
		t.Fatalf("SelectArc: %v", err)
	}
	ctrl.Next(ctx)
	index := ctrl.StepIndex()
	ctrl.ToggleVisibility()
	ctrl.ToggleVisibility()
	if ctrl.StepIndex() != index || ctrl.Arc().ID != 3 {
		t.Fatalf("visibility toggles disturbed playback position")
	}
}

func TestPersistHappensBeforeNavigation(t *testing.T) {
	ctx := context.Background()
	catalog := newTestCatalog(t)
	sessions := store.NewMemorySessionStore()

	var persistedAtNav *types.PlaybackPosition
	ctrl := NewController(catalog, sessions, WithNavigator(func(types.ScreenID) {
		state, err := sessions.Load(ctx)
		if err != nil {
			t.Errorf("Load inside navigate: %v", err)
			return
		}
		persistedAtNav = state.Playback
	}))

	if err := ctrl.SelectArc(ctx, 1); err != nil {
		t.Fatalf("SelectArc: %v", err)
	}
	if persistedAtNav == nil || persistedAtNav.StepIndex != 0 {
		t.Fatalf("position was not persisted before navigation: %+v", persistedAtNav)
	}

	ctrl.Next(ctx)
	if persistedAtNav == nil || persistedAtNav.StepIndex != 1 {
		t.Fatalf("advance was not persisted before navigation: %+v", persistedAtNav)
	}
}

func TestStalePacingTokenIsIgnored(t *testing.T) {
	ctx := context.Background()
	ctrl, _, _ := newTestController(t)

	if err := ctrl.SelectArc(ctx, 1); err != nil {
		t.Fatalf("SelectArc: %v", err)
	}
	staleGen, _ := ctrl.ArmPacing()

	// Switching arcs supersedes the armed timer.
	if err := ctrl.SelectArc(ctx, 2); err != nil {
		t.Fatalf("SelectArc: %v", err)
	}
	ctrl.PacingElapsed(staleGen)
	if ctrl.StepProgress() >= 1 {
		t.Fatalf("stale pacing token affected the new step")
	}

	currentGen, duration := ctrl.ArmPacing()
	if duration <= 0 {
		t.Fatalf("expected a positive pacing duration")
	}
	ctrl.PacingElapsed(currentGen)
	if ctrl.StepProgress() != 1 {
		t.Fatalf("current pacing token should complete the fill")
	}
	if ctrl.StepIndex() != 0 {
		t.Fatalf("pacing completion must not advance the step")
	}
}

func TestHideCancelsPacing(t *testing.T) {
	ctx := context.Background()
	ctrl, _, _ := newTestController(t)

	if err := ctrl.SelectArc(ctx, 1); err != nil {
		t.Fatalf("SelectArc: %v", err)
	}
	gen, _ := ctrl.ArmPacing()
	ctrl.Hide()
	ctrl.PacingElapsed(gen)
	if ctrl.StepProgress() >= 1 {
		t.Fatalf("pacing token survived Hide")
	}
	if ctrl.StepIndex() != 0 || !ctrl.Playing() {
		t.Fatalf("Hide disturbed playback position")
	}
}

func TestCloseClearsStoredPosition(t *testing.T) {
	ctx := context.Background()
	ctrl, _, sessions := newTestController(t)

	if err := ctrl.SelectArc(ctx, 1); err != nil {
		t.Fatalf("SelectArc: %v", err)
	}
	ctrl.Next(ctx)
	ctrl.Close(ctx)

	if ctrl.Playing() || ctrl.Visible() {
		t.Fatalf("Close should stop playback and hide the transport")
	}
	state, err := sessions.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if state.Playback != nil {
		t.Fatalf("Close left a stored position: %+v", state.Playback)
	}
}

func TestStepProgressTracksClock(t *testing.T) {
	ctx := context.Background()
	catalog := newTestCatalog(t)
	sessions := store.NewMemorySessionStore()

	now := time.Unix(1000, 0)
	ctrl := NewController(catalog, sessions, WithClock(func() time.Time { return now }))
	if err := ctrl.SelectArc(ctx, 1); err != nil {
		t.Fatalf("SelectArc: %v", err)
	}
	step, _ := ctrl.Step()

	if got := ctrl.StepProgress(); got != 0 {
		t.Fatalf("progress at step start = %v, want 0", got)
	}
	now = now.Add(time.Duration(step.DurationMS) * time.Millisecond / 2)
	if got := ctrl.StepProgress(); got <= 0.4 || got >= 0.6 {
		t.Fatalf("progress at half duration = %v, want ~0.5", got)
	}
	now = now.Add(time.Duration(step.DurationMS) * time.Millisecond)
	if got := ctrl.StepProgress(); got != 1 {
		t.Fatalf("progress past duration = %v, want clamped 1", got)
	}
}

func TestFrameDescribesTransport(t *testing.T) {
	ctx := context.Background()
	ctrl, _, _ := newTestController(t)

	frame := ctrl.Frame()
	if frame.Visible || frame.Playing {
		t.Fatalf("initial frame should be hidden and idle: %+v", frame)
	}

	if err := ctrl.SelectArc(ctx, 1); err != nil {
		t.Fatalf("SelectArc: %v", err)
	}
	ctrl.Next(ctx)
	frame = ctrl.Frame()
	if !frame.Visible || !frame.Playing {
		t.Fatalf("expected visible playing frame: %+v", frame)
	}
	if frame.StepIndex != 1 || frame.StepCount != len(ctrl.Arc().Steps) {
		t.Fatalf("frame position wrong: %+v", frame)
	}
	if len(frame.Markers) != frame.StepCount {
		t.Fatalf("expected one marker per step, got %d", len(frame.Markers))
	}
	if frame.Markers[0] != MarkerDone || frame.Markers[1] != MarkerCurrent || frame.Markers[2] != MarkerPending {
		t.Fatalf("marker states wrong: %v", frame.Markers)
	}
	if frame.AtStart || frame.AtEnd {
		t.Fatalf("middle step should be neither start nor end: %+v", frame)
	}
	if frame.Narration == "" || frame.Screen == "" {
		t.Fatalf("frame missing narration or screen: %+v", frame)
	}
}
