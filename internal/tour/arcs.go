package tour

import "stagehand/internal/types"

// Built-in demo arcs. Ids are 1-based and contiguous; the catalog
// constructor enforces that.

func builtinArcs() []types.Arc {
	return []types.Arc{
		{
			ID:       1,
			Title:    "First look",
			Audience: types.AudienceCustomers,
			Summary:  "The five-minute product walkthrough for a first demo call.",
			Steps: []types.Step{
				{
					Screen: types.ScreenOverview,
					Narration: "This is the overview: every channel, campaign, and dollar in one " +
						"place, refreshed from your live data. No spreadsheets were harmed.",
					DurationMS: 9000,
				},
				{
					Screen: types.ScreenCampaigns,
					Narration: "The campaign board shows pacing against target in real time. " +
						"Anything drifting off plan gets flagged before it burns budget.",
					DurationMS: 10000,
				},
				{
					Screen: types.ScreenAssistant,
					Narration: "And when you have a question, just ask. The assistant answers in " +
						"plain language with the relevant view attached.",
					DurationMS: 8000,
				},
				{
					Screen: types.ScreenReports,
					Narration: "Everything you saw becomes a shareable report in one click, " +
						"scheduled and delivered wherever your team reads.",
					DurationMS: 8000,
				},
			},
		},
		{
			ID:       2,
			Title:    "From question to decision",
			Audience: types.AudienceCustomers,
			Summary:  "How a marketer goes from a vague question to a budget decision.",
			Steps: []types.Step{
				{
					Screen: types.ScreenAssistant,
					Narration: "Start with the question you'd ask a colleague: where should next " +
						"month's budget go?",
					DurationMS: 7000,
				},
				{
					Screen: types.ScreenSegments,
					Narration: "The answer links straight into the segments behind it, so you can " +
						"check the audience assumptions yourself.",
					DurationMS: 9000,
				},
				{
					Screen: types.ScreenPipeline,
					Narration: "Then follow the thread into pipeline: which of those audiences " +
						"actually turns into revenue.",
					DurationMS: 9000,
				},
				{
					Screen: types.ScreenReports,
					Narration: "When you're convinced, the recommendation becomes a one-page " +
						"decision memo your CFO will actually read.",
					DurationMS: 8000,
				},
			},
		},
		{
			ID:       3,
			Title:    "Monday morning",
			Audience: types.AudienceTeam,
			Summary:  "The operating rhythm: what the team checks at the start of the week.",
			Steps: []types.Step{
				{
					Screen: types.ScreenOverview,
					Narration: "Monday starts here: the weekend cohorts landed overnight and the " +
						"pulse line shows exactly what moved.",
					DurationMS: 8000,
				},
				{
					Screen: types.ScreenCampaigns,
					Narration: "Two campaigns are near their caps; the board already queued the " +
						"decision for whoever owns them.",
					DurationMS: 9000,
				},
				{
					Screen: types.ScreenSettings,
					Narration: "Alert thresholds live here, so the workbook pings you instead of " +
						"the other way around.",
					DurationMS: 7000,
				},
			},
		},
		{
			ID:       4,
			Title:    "Handoffs without meetings",
			Audience: types.AudienceTeam,
			Summary:  "How marketing hands sales a pipeline story without a single sync call.",
			Steps: []types.Step{
				{
					Screen: types.ScreenPipeline,
					Narration: "Sales sees the same pipeline marketing sees, stage by stage, with " +
						"the source of every opportunity attached.",
					DurationMS: 9000,
				},
				{
					Screen: types.ScreenSegments,
					Narration: "When a segment starts converting, it's visible to both teams at " +
						"once. Nobody waits for the weekly deck.",
					DurationMS: 9000,
				},
				{
					Screen: types.ScreenReports,
					Narration: "The handoff itself is a living report: always current, never " +
						"attached to an email thread from three weeks ago.",
					DurationMS: 8000,
				},
			},
		},
		{
			ID:       5,
			Title:    "The growth story",
			Audience: types.AudienceInvestors,
			Summary:  "The numbers an investor asks about, in the order they ask.",
			Steps: []types.Step{
				{
					Screen: types.ScreenOverview,
					Narration: "Top line first: pipeline up 18% quarter over quarter on flat " +
						"spend. Efficiency, not just volume.",
					DurationMS: 9000,
				},
				{
					Screen: types.ScreenPipeline,
					Narration: "The forecast model has landed within 4% of actuals for five " +
						"straight quarters. This is the same model, live.",
					DurationMS: 10000,
				},
				{
					Screen: types.ScreenReports,
					Narration: "And the board pack assembles itself from these views, so the " +
						"numbers in the room always match the numbers in the system.",
					DurationMS: 9000,
				},
			},
		},
		{
			ID:       6,
			Title:    "Why we win",
			Audience: types.AudienceInvestors,
			Summary:  "The product moat: assistant, attribution, and activation speed.",
			Steps: []types.Step{
				{
					Screen: types.ScreenAssistant,
					Narration: "The assistant is the front door: customers ask questions in plain " +
						"language and stay for the analysis.",
					DurationMS: 8000,
				},
				{
					Screen: types.ScreenCampaigns,
					Narration: "Attribution across every channel is the part competitors quote us " +
						"on. It ships configured, not as a consulting project.",
					DurationMS: 10000,
				},
				{
					Screen: types.ScreenOverview,
					Narration: "And activation is the proof: customers reach first value in four " +
						"days. Fast time-to-value compounds into retention.",
					DurationMS: 9000,
				},
			},
		},
	}
}
