package datasets

import (
	"strings"
	"testing"
)

func TestForIndustryCoversEveryIndustry(t *testing.T) {
	for _, industry := range Industries() {
		d := ForIndustry(industry)
		if d.Industry != industry {
			t.Fatalf("ForIndustry(%q) returned industry %q", industry, d.Industry)
		}
		if d.Company == "" {
			t.Fatalf("%s dataset has no company name", industry)
		}
		if len(d.KPIs) == 0 || len(d.Campaigns) == 0 || len(d.Segments) == 0 ||
			len(d.Pipeline) == 0 || len(d.Reports) == 0 {
			t.Fatalf("%s dataset has an empty section", industry)
		}
	}
}

func TestForIndustryFallsBackToDefault(t *testing.T) {
	d := ForIndustry("spacefaring")
	if d.Industry != DefaultIndustry {
		t.Fatalf("unknown industry resolved to %q, want %q", d.Industry, DefaultIndustry)
	}
	if got := ForIndustry("  Retail "); got.Industry != "retail" {
		t.Fatalf("matching should ignore case and whitespace, got %q", got.Industry)
	}
}

func TestPlaceholderContextHasCompanyAndIndustry(t *testing.T) {
	for _, industry := range Industries() {
		d := ForIndustry(industry)
		ctx := d.PlaceholderContext()
		if ctx["company"] != d.Company {
			t.Fatalf("%s context company = %q", industry, ctx["company"])
		}
		if ctx["industry"] != d.Industry {
			t.Fatalf("%s context industry = %q", industry, ctx["industry"])
		}
		for key, value := range ctx {
			if strings.TrimSpace(value) == "" {
				t.Fatalf("%s context %q is blank", industry, key)
			}
		}
	}
}
