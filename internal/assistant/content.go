package assistant

// Canned demo content for the workbook assistant. Category ids double as the
// chip ids the chat UI dispatches, so they stay short and lowercase.

func builtinCategories() []CategoryTemplate {
	return []CategoryTemplate{
		{
			CategoryID: "campaigns",
			Keywords:   []string{"campaign", "launch", "promotion", "email blast"},
			Content: "Here's how {{company}} is tracking across active campaigns: your spring launch " +
				"sequence is outperforming the benchmark open rate by 12 points, and the retargeting " +
				"flight that went live last week is already pacing to beat its click target. I'd keep " +
				"budget where it is and revisit after the weekend cohort lands.",
			ToolChips: []string{"Campaign board", "Spend pacing", "A/B results"},
			FollowUps: []string{
				"Which campaign has the best cost per lead?",
				"Show me the spring launch funnel",
				"Pause the underperforming flights",
			},
		},
		{
			CategoryID: "segments",
			Keywords:   []string{"segment", "audience", "persona", "cohort"},
			Content: "I pulled the segment view for {{company}}. Your high-intent cohort grew 8% this " +
				"month, driven mostly by the webinar signups, while the dormant segment keeps shrinking " +
				"as the win-back series does its job. Two segments overlap enough that merging them " +
				"would simplify your sends without losing targeting precision.",
			ToolChips: []string{"Segment explorer", "Overlap report", "Growth trend"},
			FollowUps: []string{
				"Which segment converts best?",
				"Merge the overlapping segments",
				"Export the high-intent list",
			},
		},
		{
			CategoryID: "pipeline",
			Keywords:   []string{"pipeline", "deal", "funnel", "opportunity", "close rate"},
			Content: "Pipeline check for {{company}}: weighted value is up 15% quarter over quarter, " +
				"with the mid-market stage carrying most of the gain. Velocity from demo to proposal " +
				"slowed by two days, which usually signals a pricing-page friction point worth a look. " +
				"Your close rate is holding steady right at the team target.",
			ToolChips: []string{"Pipeline view", "Stage velocity", "Forecast"},
			FollowUps: []string{
				"What's stalling the proposal stage?",
				"Show the quarter forecast",
				"Break pipeline down by rep",
			},
		},
		{
			CategoryID: "reports",
			Keywords:   []string{"report", "export", "dashboard", "summary", "share"},
			Content: "The reporting workspace for {{company}} has everything scheduled and current: the " +
				"Monday exec summary went out to eleven recipients, the channel dashboard refreshed " +
				"twenty minutes ago, and your board pack template picked up the new quarter's numbers " +
				"automatically. You can clone any of these and reshape them per audience.",
			ToolChips: []string{"Report builder", "Scheduled sends", "Board pack"},
			FollowUps: []string{
				"Clone the exec summary for the sales team",
				"Add churn to the channel dashboard",
				"Schedule a Friday digest",
			},
		},
		{
			CategoryID: "roi",
			Keywords:   []string{"roi", "return", "spend", "budget", "payback"},
			Content: "Return on spend for {{company}} sits at 4.2x blended this quarter, with paid " +
				"search leading at 6.1x and events trailing at 1.8x once travel costs are allocated. " +
				"If the goal is efficient growth, shifting a tenth of the events budget into search " +
				"protects pipeline while the events program gets rebuilt around fewer, larger shows.",
			ToolChips: []string{"ROI matrix", "Budget planner", "Channel costs"},
			FollowUps: []string{
				"Model a 10% budget shift to search",
				"What's the payback period by channel?",
				"Show last quarter's ROI for comparison",
			},
		},
		{
			CategoryID: "attribution",
			Keywords:   []string{"attribution", "channel", "touchpoint", "first touch", "last touch"},
			Content: "Attribution for {{company}} tells a consistent story across models: organic search " +
				"opens the relationship, the newsletter keeps it warm, and the product webinar closes. " +
				"Last-touch undercounts the newsletter by roughly a third, so if that model is driving " +
				"budget decisions you're starving the channel doing the quiet middle work.",
			ToolChips: []string{"Model compare", "Journey map", "Touch report"},
			FollowUps: []string{
				"Compare first-touch and linear models",
				"Which journeys include the webinar?",
				"How much credit does the newsletter lose?",
			},
		},
	}
}

func builtinGenerics() []GenericTemplate {
	return []GenericTemplate{
		{
			ID: "generic_explore",
			Content: "Happy to dig in. The {{company}} workbook covers campaigns, segments, pipeline, " +
				"reporting, ROI, and attribution, and every view here is built from your live data. Pick " +
				"an area and I'll walk you through what stands out this week.",
			ToolChips: []string{"Workbook map", "What's new"},
			FollowUps: []string{
				"What changed since last week?",
				"Show me the campaign board",
				"Where should I focus today?",
			},
		},
		{
			ID: "generic_metrics",
			Content: "A quick pulse for {{company}}: lead volume is tracking 6% above plan, conversion " +
				"through the funnel is flat, and spend is pacing right on budget. Nothing is on fire, " +
				"but two campaigns are close to their caps and worth a look before Friday.",
			ToolChips: []string{"KPI pulse", "Alerts"},
			FollowUps: []string{
				"Which campaigns are near their caps?",
				"Why is conversion flat?",
				"Show the weekly trend",
			},
		},
		{
			ID: "generic_next_steps",
			Content: "Based on what's moving in the {{company}} workbook right now, the highest-leverage " +
				"next steps are reviewing the retargeting creative that's fatiguing, approving the " +
				"queued exec report, and merging the two overlapping segments flagged on Tuesday.",
			ToolChips: []string{"Task queue", "Flagged items"},
			FollowUps: []string{
				"Open the fatigued creative",
				"Approve the exec report",
				"Review the segment overlap",
			},
		},
		{
			ID: "generic_benchmarks",
			Content: "Against industry benchmarks, {{company}} lands in the top quartile for email " +
				"engagement and mid-pack for paid conversion. The gap to the leaders is mostly landing " +
				"page speed and offer specificity, both of which the workbook tracks under experiments.",
			ToolChips: []string{"Benchmark view", "Experiments"},
			FollowUps: []string{
				"What do top performers do differently?",
				"Show our landing page metrics",
				"Start a new experiment",
			},
		},
		{
			ID: "generic_help",
			Content: "You can ask me about anything in the {{company}} workbook in plain language: " +
				"campaign performance, audience segments, pipeline health, reports, budget returns, or " +
				"attribution. I'll answer with the relevant view attached so you can go deeper yourself.",
			ToolChips: []string{"Getting started", "Sample questions"},
			FollowUps: []string{
				"How is the spring campaign doing?",
				"Which audience should we grow?",
				"Build me a Monday report",
			},
		},
	}
}

func builtinShowcases() []ShowcaseTemplate {
	return []ShowcaseTemplate{
		{
			ID:      "showcase_quarter_review",
			Trigger: "Give me the quarter in review",
			Content: "Here's the quarter in one view for {{company}}: revenue-sourced pipeline grew 18% " +
				"while spend held flat, which pushed blended ROI from 3.4x to 4.2x. The {{industry}} " +
				"vertical did the heavy lifting, and the one soft spot is event-sourced leads, down 22%. " +
				"I've assembled the full narrative with charts in the board pack, ready to present.",
			ToolChips: []string{"Board pack", "Quarter trend", "Vertical split"},
			FollowUps: []string{
				"Open the board pack",
				"Why are event leads down?",
				"Compare against last quarter",
			},
		},
		{
			ID:      "showcase_churn_risk",
			Trigger: "Which accounts are at churn risk?",
			Content: "I scanned engagement signals across every active account for {{company}} and " +
				"flagged nine with declining product logins plus unopened renewal emails, representing " +
				"$340k in annual value. Three of them are in {{industry}} where a competitor just cut " +
				"prices. I've drafted a save-play sequence for each tier so the CS team can start today.",
			ToolChips: []string{"Risk list", "Save plays", "Renewal calendar"},
			FollowUps: []string{
				"Show the nine flagged accounts",
				"Launch the save-play sequence",
				"Alert the CS owners",
			},
		},
		{
			ID:      "showcase_creative_fatigue",
			Trigger: "Is our ad creative getting stale?",
			Content: "Short answer for {{company}}: yes, in two places. The carousel that carried June " +
				"has seen click-through decay 41% over three weeks, and frequency is creeping past 6 on " +
				"the retargeting pool. I've queued four refreshed variants built from your top-performing " +
				"hooks, and the projection says swapping them in recovers the lost clicks within ten days.",
			ToolChips: []string{"Creative report", "Variant queue"},
			FollowUps: []string{
				"Preview the refreshed variants",
				"Swap them into the live flights",
				"Show decay by placement",
			},
		},
		{
			ID:      "showcase_lead_quality",
			Trigger: "Are we getting better leads?",
			Content: "Lead quality for {{company}} is measurably up: MQL-to-SQL conversion rose from 31% " +
				"to 38% since the new scoring model shipped, and sales acceptance time dropped by a day. " +
				"The gains concentrate in {{industry}} inbound, while paid social still sends a thin tail " +
				"of low-fit titles. Tightening that audience would lift quality again without losing volume.",
			ToolChips: []string{"Scoring model", "Quality trend", "Source mix"},
			FollowUps: []string{
				"Show conversion by source",
				"Tighten the paid social audience",
				"What changed in the scoring model?",
			},
		},
		{
			ID:      "showcase_competitor_move",
			Trigger: "What did our competitor just do?",
			Content: "Overnight, the main competitor to {{company}} repositioned their pricing page " +
				"around usage-based tiers and started bidding on your brand terms, which already nudged " +
				"your brand CPC up 9%. I've assembled the intel digest: their new tier structure, the ad " +
				"copy they're running, and a counter-play that protects the keywords that matter most.",
			ToolChips: []string{"Intel digest", "Brand defense"},
			FollowUps: []string{
				"Open the counter-play",
				"How much will brand defense cost?",
				"Track their pricing page for changes",
			},
		},
		{
			ID:      "showcase_forecast",
			Trigger: "Will we hit the number this quarter?",
			Content: "Current forecast for {{company}}: 94% of target with six weeks left, trending to " +
				"101% if stage-conversion holds. The swing factor is four late-stage {{industry}} deals " +
				"worth $210k combined; two have verbal commitments. I've laid out the paths to plan, the " +
				"risks on each, and the one lever (a limited Q-end incentive) that history says works here.",
			ToolChips: []string{"Forecast model", "Deal room", "Scenario planner"},
			FollowUps: []string{
				"Show the four swing deals",
				"Model the Q-end incentive",
				"What did this forecast say last month?",
			},
		},
		{
			ID:      "showcase_onboarding",
			Trigger: "How fast do new customers activate?",
			Content: "Activation for {{company}} cohorts: median time-to-first-value is now 4.2 days, " +
				"down from 7 last quarter, after the guided setup shipped. The stragglers share one " +
				"trait: they skip the data import step. Adding a concierge import nudge for accounts " +
				"over 50 seats is projected to pull another full day out of the median.",
			ToolChips: []string{"Activation funnel", "Cohort view"},
			FollowUps: []string{
				"Show cohorts by plan size",
				"Add the concierge nudge",
				"Which step loses the most users?",
			},
		},
		{
			ID:      "showcase_budget_shift",
			Trigger: "Where should next month's budget go?",
			Content: "Recommendation for {{company}}: shift 12% of total spend from display into search " +
				"and the newsletter sponsorships. The model projects 210 additional qualified leads per " +
				"month at current conversion, with payback inside 60 days. Display keeps a floor for " +
				"awareness in {{industry}}, but everything above that floor is working harder elsewhere.",
			ToolChips: []string{"Budget planner", "Projection"},
			FollowUps: []string{
				"Apply the recommended split",
				"Show the projection math",
				"What happens if we cut display entirely?",
			},
		},
		{
			ID:      "showcase_winback",
			Trigger: "Can we win back lost customers?",
			Content: "The win-back analysis for {{company}} found 130 churned accounts whose original " +
				"loss reason (a missing integration) has since been fixed. Historically this profile " +
				"returns at 18% when contacted with a what's-new message inside 90 days of the fix. " +
				"I've segmented them by value tier and drafted the three-touch sequence for review.",
			ToolChips: []string{"Win-back list", "Sequence draft", "Loss reasons"},
			FollowUps: []string{
				"Review the three-touch sequence",
				"Show the value tiers",
				"Which integrations were missing?",
			},
		},
		{
			ID:      "showcase_exec_summary",
			Trigger: "Brief me like I'm the CEO",
			Content: "Sixty-second brief for {{company}}: growth is compounding where you invested, with " +
				"pipeline up 18% on flat spend and activation nearly twice as fast as last quarter. Watch " +
				"items are event ROI and a competitor pricing move. Decisions on the table: the budget " +
				"shift to search, and whether to greenlight the win-back program. Both have my analysis attached.",
			ToolChips: []string{},
			FollowUps: []string{
				"Expand the watch items",
				"Show both analyses",
				"Send this brief to the leadership channel",
			},
		},
	}
}
