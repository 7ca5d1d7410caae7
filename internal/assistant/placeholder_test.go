package assistant

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestAdaptSubstitutesWithoutMutatingSource(t *testing.T) {
	source := &Response{
		Kind:      KindCategory,
		Category:  "roi",
		Content:   "Return for {{company}} is 4.2x this {{quarter}}.",
		ToolChips: []string{"ROI matrix"},
		FollowUps: []string{"Show the math"},
	}
	before := source.Content

	adapted := Adapt(source, map[string]string{"company": "Acme"})

	if adapted == source {
		t.Fatalf("Adapt must return a distinct record")
	}
	if source.Content != before {
		t.Fatalf("source content mutated: %q", source.Content)
	}
	if !strings.Contains(adapted.Content, "Acme") {
		t.Fatalf("adapted content missing substitution: %q", adapted.Content)
	}
	if strings.Contains(adapted.Content, "{{company}}") {
		t.Fatalf("adapted content still has the token: %q", adapted.Content)
	}
	if !strings.Contains(adapted.Content, "{{quarter}}") {
		t.Fatalf("absent keys must stay literal: %q", adapted.Content)
	}
}

func TestAdaptEmptyContextReturnsEquivalentCopy(t *testing.T) {
	source := &Response{Kind: KindGeneric, ID: "generic_help", Content: "Ask {{company}} anything."}
	adapted := Adapt(source, nil)
	if adapted == source {
		t.Fatalf("expected a distinct record")
	}
	if adapted.Content != source.Content {
		t.Fatalf("empty context changed content: %q vs %q", adapted.Content, source.Content)
	}
}

func TestAdaptNilRecord(t *testing.T) {
	if Adapt(nil, map[string]string{"company": "Acme"}) != nil {
		t.Fatalf("Adapt(nil) should be nil")
	}
}

func TestAdaptKeyOrderDoesNotMatter(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		company := rapid.StringMatching(`[A-Za-z ]{1,20}`).Draw(t, "company")
		industry := rapid.StringMatching(`[A-Za-z ]{1,20}`).Draw(t, "industry")
		source := &Response{
			Kind:    KindShowcase,
			ID:      "showcase_forecast",
			Content: "Forecast for {{company}} in {{industry}}: on track.",
		}

		both := Adapt(source, map[string]string{"company": company, "industry": industry})
		oneThenOther := Adapt(Adapt(source, map[string]string{"company": company}), map[string]string{"industry": industry})
		otherThenOne := Adapt(Adapt(source, map[string]string{"industry": industry}), map[string]string{"company": company})

		if both.Content != oneThenOther.Content || both.Content != otherThenOne.Content {
			t.Fatalf("substitution order changed the result:\n%q\n%q\n%q",
				both.Content, oneThenOther.Content, otherThenOne.Content)
		}
	})
}

func TestAdaptAllBuiltinContentStaysImmutable(t *testing.T) {
	store, err := BuiltinStore()
	if err != nil {
		t.Fatalf("BuiltinStore: %v", err)
	}
	resolver := NewResolver(store)
	ctx := map[string]string{"company": "Acme Outfitters", "industry": "retail"}

	for _, id := range store.ShowcaseIDs() {
		original := resolver.ShowcaseResponse(id)
		snapshot := original.Content
		adapted := Adapt(original, ctx)
		if original.Content != snapshot {
			t.Fatalf("showcase %q content mutated by Adapt", id)
		}
		if strings.Contains(adapted.Content, "{{company}}") {
			t.Fatalf("showcase %q still has company token after Adapt", id)
		}
	}
}
