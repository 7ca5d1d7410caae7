package app

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"stagehand/internal/datasets"
	"stagehand/internal/types"
)

var screenOrder = []types.ScreenID{
	types.ScreenOverview,
	types.ScreenCampaigns,
	types.ScreenSegments,
	types.ScreenPipeline,
	types.ScreenReports,
	types.ScreenAssistant,
	types.ScreenSettings,
}

// adjacentScreen steps through the tab strip, wrapping at both ends.
func adjacentScreen(screen types.ScreenID, delta int) types.ScreenID {
	for i, candidate := range screenOrder {
		if candidate == screen {
			next := (i + delta + len(screenOrder)) % len(screenOrder)
			return screenOrder[next]
		}
	}
	return screenOrder[0]
}

func screenLabel(screen types.ScreenID) string {
	name := string(screen)
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// renderScreen draws the workbook body for the active screen from the demo
// dataset. The assistant screen body is rendered by the chat panel instead.
func renderScreen(screen types.ScreenID, d *datasets.Dataset) string {
	switch screen {
	case types.ScreenCampaigns:
		return renderCampaigns(d)
	case types.ScreenSegments:
		return renderSegments(d)
	case types.ScreenPipeline:
		return renderPipeline(d)
	case types.ScreenReports:
		return renderReports(d)
	case types.ScreenSettings:
		return renderSettingsScreen(d)
	default:
		return renderOverview(d)
	}
}

func renderOverview(d *datasets.Dataset) string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render(d.Company + " · overview"))
	b.WriteString("\n\n")
	for _, kpi := range d.KPIs {
		delta := kpiDeltaUpStyle.Render(kpi.Delta)
		if strings.HasPrefix(kpi.Delta, "-") {
			delta = kpiDeltaDownStyle.Render(kpi.Delta)
		}
		b.WriteString(fmt.Sprintf("  %-18s %s  %s\n",
			kpi.Label, kpiValueStyle.Render(kpi.Value), delta))
	}
	return b.String()
}

func renderCampaigns(d *datasets.Dataset) string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render("Campaigns"))
	b.WriteString("\n\n")
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  NAME\tCHANNEL\tSPEND\tROAS\tSTATUS")
	for _, c := range d.Campaigns {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\n", c.Name, c.Channel, c.Spend, c.ROAS, c.Status)
	}
	tw.Flush()
	return b.String()
}

func renderSegments(d *datasets.Dataset) string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render("Segments"))
	b.WriteString("\n\n")
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  NAME\tSIZE\tGROWTH\tTOP SOURCE")
	for _, s := range d.Segments {
		fmt.Fprintf(tw, "  %s\t%d\t%s\t%s\n", s.Name, s.Size, s.Growth, s.TopSource)
	}
	tw.Flush()
	return b.String()
}

func renderPipeline(d *datasets.Dataset) string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render("Pipeline"))
	b.WriteString("\n\n")
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  STAGE\tCOUNT\tVALUE\tCONVERSION")
	for _, stage := range d.Pipeline {
		fmt.Fprintf(tw, "  %s\t%d\t%s\t%s\n", stage.Name, stage.Count, stage.Value, stage.Conversion)
	}
	tw.Flush()
	return b.String()
}

func renderReports(d *datasets.Dataset) string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render("Reports"))
	b.WriteString("\n\n")
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  NAME\tCADENCE\tOWNER")
	for _, r := range d.Reports {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", r.Name, r.Cadence, r.Owner)
	}
	tw.Flush()
	return b.String()
}

func renderSettingsScreen(d *datasets.Dataset) string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render("Settings"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  Workspace      %s\n", d.Company))
	b.WriteString(fmt.Sprintf("  Industry       %s\n", d.Industry))
	b.WriteString("  Data refresh   nightly\n")
	b.WriteString("  Seats          12 of 25 in use\n")
	return b.String()
}
