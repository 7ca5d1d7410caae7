// Package datasets holds the fixture data behind every workbook screen.
// Each industry gets its own believable numbers so the same walkthrough
// reads differently for a retailer than for a SaaS vendor.
package datasets

import "strings"

type KPI struct {
	Label string
	Value string
	Delta string
}

type Campaign struct {
	Name    string
	Channel string
	Spend   string
	ROAS    string
	Status  string
}

type Segment struct {
	Name      string
	Size      int
	Growth    string
	TopSource string
}

type PipelineStage struct {
	Name       string
	Count      int
	Value      string
	Conversion string
}

type Report struct {
	Name    string
	Cadence string
	Owner   string
}

// Dataset is everything one demo persona sees across the screens.
type Dataset struct {
	Industry  string
	Company   string
	KPIs      []KPI
	Campaigns []Campaign
	Segments  []Segment
	Pipeline  []PipelineStage
	Reports   []Report
}

// PlaceholderContext feeds assistant response adaptation.
func (d *Dataset) PlaceholderContext() map[string]string {
	return map[string]string{
		"company":  d.Company,
		"industry": d.Industry,
	}
}

const DefaultIndustry = "saas"

func Industries() []string {
	return []string{"saas", "retail", "manufacturing"}
}

// ForIndustry returns the dataset for the named industry, falling back to
// the default when the name is unknown. Matching is case-insensitive.
func ForIndustry(industry string) *Dataset {
	switch strings.ToLower(strings.TrimSpace(industry)) {
	case "retail":
		return retailDataset()
	case "manufacturing":
		return manufacturingDataset()
	default:
		return saasDataset()
	}
}

func saasDataset() *Dataset {
	return &Dataset{
		Industry: "saas",
		Company:  "Northwind Labs",
		KPIs: []KPI{
			{Label: "MRR", Value: "$482k", Delta: "+6.1%"},
			{Label: "Qualified leads", Value: "1,284", Delta: "+12.4%"},
			{Label: "CAC payback", Value: "9.2 mo", Delta: "-0.8 mo"},
			{Label: "Net retention", Value: "117%", Delta: "+2 pts"},
		},
		Campaigns: []Campaign{
			{Name: "Spring launch", Channel: "Paid search", Spend: "$38,400", ROAS: "4.1x", Status: "active"},
			{Name: "Churn winback", Channel: "Email", Spend: "$2,100", ROAS: "11.6x", Status: "active"},
			{Name: "Retargeting flight", Channel: "Display", Spend: "$12,750", ROAS: "2.3x", Status: "near cap"},
			{Name: "Webinar series", Channel: "Events", Spend: "$9,000", ROAS: "3.4x", Status: "paused"},
		},
		Segments: []Segment{
			{Name: "Trial power users", Size: 3120, Growth: "+9%", TopSource: "Product signup"},
			{Name: "Expansion ready", Size: 940, Growth: "+14%", TopSource: "Usage telemetry"},
			{Name: "At-risk accounts", Size: 212, Growth: "-3%", TopSource: "Health score"},
		},
		Pipeline: []PipelineStage{
			{Name: "Discovery", Count: 164, Value: "$1.9M", Conversion: "62%"},
			{Name: "Evaluation", Count: 88, Value: "$1.2M", Conversion: "47%"},
			{Name: "Proposal", Count: 41, Value: "$760k", Conversion: "58%"},
			{Name: "Closing", Count: 19, Value: "$410k", Conversion: "71%"},
		},
		Reports: []Report{
			{Name: "Weekly funnel review", Cadence: "weekly", Owner: "RevOps"},
			{Name: "Board pack", Cadence: "quarterly", Owner: "CEO office"},
			{Name: "Channel attribution", Cadence: "monthly", Owner: "Growth"},
		},
	}
}

func retailDataset() *Dataset {
	return &Dataset{
		Industry: "retail",
		Company:  "Harbor & Pine",
		KPIs: []KPI{
			{Label: "Revenue", Value: "$2.4M", Delta: "+4.8%"},
			{Label: "Store visits", Value: "48,200", Delta: "+7.2%"},
			{Label: "Avg basket", Value: "$86.40", Delta: "+$3.10"},
			{Label: "Repeat rate", Value: "34%", Delta: "+1.5 pts"},
		},
		Campaigns: []Campaign{
			{Name: "Summer clearance", Channel: "Email", Spend: "$4,800", ROAS: "8.9x", Status: "active"},
			{Name: "Loyalty relaunch", Channel: "SMS", Spend: "$3,200", ROAS: "6.2x", Status: "active"},
			{Name: "Local awareness", Channel: "Social", Spend: "$11,500", ROAS: "2.8x", Status: "active"},
			{Name: "Holiday preview", Channel: "Display", Spend: "$6,000", ROAS: "1.9x", Status: "draft"},
		},
		Segments: []Segment{
			{Name: "Lapsed loyalists", Size: 5260, Growth: "-6%", TopSource: "POS history"},
			{Name: "Weekend browsers", Size: 12400, Growth: "+11%", TopSource: "Web analytics"},
			{Name: "High-basket regulars", Size: 1870, Growth: "+4%", TopSource: "Loyalty program"},
		},
		Pipeline: []PipelineStage{
			{Name: "Wholesale inquiry", Count: 52, Value: "$640k", Conversion: "55%"},
			{Name: "Sampling", Count: 29, Value: "$380k", Conversion: "48%"},
			{Name: "Terms", Count: 14, Value: "$220k", Conversion: "64%"},
			{Name: "First order", Count: 9, Value: "$150k", Conversion: "78%"},
		},
		Reports: []Report{
			{Name: "Daily store digest", Cadence: "daily", Owner: "Regional leads"},
			{Name: "Promo performance", Cadence: "weekly", Owner: "Merchandising"},
			{Name: "Loyalty cohort review", Cadence: "monthly", Owner: "CRM team"},
		},
	}
}

func manufacturingDataset() *Dataset {
	return &Dataset{
		Industry: "manufacturing",
		Company:  "Meridian Fabrication",
		KPIs: []KPI{
			{Label: "Quoted volume", Value: "$8.7M", Delta: "+3.2%"},
			{Label: "RFQ response", Value: "11.4 hrs", Delta: "-2.1 hrs"},
			{Label: "Win rate", Value: "28%", Delta: "+2 pts"},
			{Label: "Distributor leads", Value: "342", Delta: "+9.7%"},
		},
		Campaigns: []Campaign{
			{Name: "Trade show follow-up", Channel: "Email", Spend: "$5,400", ROAS: "7.3x", Status: "active"},
			{Name: "Spec sheet syndication", Channel: "Industry portals", Spend: "$14,200", ROAS: "3.1x", Status: "active"},
			{Name: "Distributor co-op", Channel: "Partner", Spend: "$22,000", ROAS: "4.6x", Status: "active"},
			{Name: "Capacity announcement", Channel: "PR", Spend: "$8,500", ROAS: "n/a", Status: "complete"},
		},
		Segments: []Segment{
			{Name: "OEM buyers", Size: 680, Growth: "+5%", TopSource: "RFQ portal"},
			{Name: "Repeat job shops", Size: 1140, Growth: "+2%", TopSource: "Order history"},
			{Name: "Dormant distributors", Size: 96, Growth: "-8%", TopSource: "Partner CRM"},
		},
		Pipeline: []PipelineStage{
			{Name: "RFQ received", Count: 118, Value: "$3.4M", Conversion: "71%"},
			{Name: "Engineering review", Count: 74, Value: "$2.6M", Conversion: "52%"},
			{Name: "Quote sent", Count: 39, Value: "$1.5M", Conversion: "44%"},
			{Name: "PO pending", Count: 17, Value: "$690k", Conversion: "82%"},
		},
		Reports: []Report{
			{Name: "Plant demand forecast", Cadence: "weekly", Owner: "Sales ops"},
			{Name: "Distributor scorecard", Cadence: "monthly", Owner: "Channel mgmt"},
			{Name: "Quote aging", Cadence: "weekly", Owner: "Inside sales"},
		},
	}
}
