package types

// Audience identifies who a demo arc is pitched at.
type Audience string

const (
	AudienceCustomers Audience = "customers"
	AudienceTeam      Audience = "team"
	AudienceInvestors Audience = "investors"
)

// Audiences lists the known audiences in presentation order.
func Audiences() []Audience {
	return []Audience{AudienceCustomers, AudienceTeam, AudienceInvestors}
}

func (a Audience) Valid() bool {
	switch a {
	case AudienceCustomers, AudienceTeam, AudienceInvestors:
		return true
	}
	return false
}

// Arc is a named, ordered sequence of demo steps for one audience.
// Arc ids are 1-based and contiguous within the catalog.
type Arc struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Audience Audience `json:"audience"`
	Summary  string   `json:"summary"`
	Steps    []Step   `json:"steps"`
}

// Step is one screen plus narration plus a pacing duration. DurationMS is
// advisory narration pacing, never an auto-advance trigger.
type Step struct {
	Screen     ScreenID `json:"screen"`
	Narration  string   `json:"narration"`
	DurationMS int      `json:"duration_ms"`
}

// PlaybackPosition is the persisted tour cursor. StepIndex is 0-based.
type PlaybackPosition struct {
	ArcID     int `json:"arc_id"`
	StepIndex int `json:"step_index"`
}

// ScreenID names one of the workbook's screens.
type ScreenID string

const (
	ScreenOverview  ScreenID = "overview"
	ScreenCampaigns ScreenID = "campaigns"
	ScreenSegments  ScreenID = "segments"
	ScreenPipeline  ScreenID = "pipeline"
	ScreenReports   ScreenID = "reports"
	ScreenAssistant ScreenID = "assistant"
	ScreenSettings  ScreenID = "settings"
)

func (s ScreenID) Valid() bool {
	switch s {
	case ScreenOverview, ScreenCampaigns, ScreenSegments, ScreenPipeline,
		ScreenReports, ScreenAssistant, ScreenSettings:
		return true
	}
	return false
}
