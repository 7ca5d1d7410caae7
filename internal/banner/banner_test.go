package banner

import (
	"context"
	"testing"

	"stagehand/internal/store"
)

func TestDismissRemovesFromActive(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemorySessionStore())

	active, err := m.Active(ctx)
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if len(active) != len(Builtin()) {
		t.Fatalf("expected all banners active, got %d", len(active))
	}

	if err := m.Dismiss(ctx, active[0].ID); err != nil {
		t.Fatalf("Dismiss: %v", err)
	}
	remaining, err := m.Active(ctx)
	if err != nil {
		t.Fatalf("Active after dismiss: %v", err)
	}
	if len(remaining) != len(active)-1 {
		t.Fatalf("expected %d active, got %d", len(active)-1, len(remaining))
	}
	for _, b := range remaining {
		if b.ID == active[0].ID {
			t.Fatalf("dismissed banner still active")
		}
	}
}

func TestDismissIsIdempotentAndIgnoresUnknownIDs(t *testing.T) {
	ctx := context.Background()
	sessions := store.NewMemorySessionStore()
	m := NewManager(sessions)

	id := Builtin()[1].ID
	if err := m.Dismiss(ctx, id); err != nil {
		t.Fatalf("Dismiss: %v", err)
	}
	if err := m.Dismiss(ctx, id); err != nil {
		t.Fatalf("second Dismiss: %v", err)
	}
	if err := m.Dismiss(ctx, "banner_that_never_existed"); err != nil {
		t.Fatalf("unknown id Dismiss: %v", err)
	}

	state, err := sessions.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(state.DismissedBanners) != 1 {
		t.Fatalf("dismissed set = %v, want exactly one entry", state.DismissedBanners)
	}

	if err := m.Dismiss(ctx, ""); err == nil {
		t.Fatalf("empty id should be rejected")
	}
}

func TestClearRestoresAllBanners(t *testing.T) {
	ctx := context.Background()
	sessions := store.NewMemorySessionStore()
	m := NewManager(sessions)

	for _, b := range Builtin() {
		if err := m.Dismiss(ctx, b.ID); err != nil {
			t.Fatalf("Dismiss(%s): %v", b.ID, err)
		}
	}
	active, err := m.Active(ctx)
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("expected no active banners, got %d", len(active))
	}

	if err := sessions.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	active, err = m.Active(ctx)
	if err != nil {
		t.Fatalf("Active after clear: %v", err)
	}
	if len(active) != len(Builtin()) {
		t.Fatalf("clear should restore all banners, got %d", len(active))
	}
}
