package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"stagehand/internal/app"
	"stagehand/internal/assistant"
	"stagehand/internal/config"
	"stagehand/internal/datasets"
	"stagehand/internal/live"
	"stagehand/internal/logging"
	"stagehand/internal/store"
	"stagehand/internal/tour"
	"stagehand/internal/types"
)

const usageText = `stagehand runs scripted product walkthroughs in the terminal.

Usage:
  stagehand <command> [flags]

Commands:
  ui         run the demo workbook UI
  ask        resolve one assistant query and print the reply
  arcs       list guided tour arcs
  showcases  list scripted showcase responses
  clear      reset persisted demo state
  help       show help

Flags:
  -h, --help   show help

Examples:
  stagehand ui
  stagehand ask how is my pipeline looking
  stagehand ask -showcase showcase_quarter_review
  stagehand arcs -audience investors
`

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		exitOnErr("ui", runUI(nil))
		return
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return
	case "ui":
		exitOnErr("ui", runUI(args[1:]))
	case "ask":
		exitOnErr("ask", runAsk(args[1:]))
	case "arcs":
		exitOnErr("arcs", runArcs(args[1:]))
	case "showcases":
		exitOnErr("showcases", runShowcases(args[1:]))
	case "clear":
		exitOnErr("clear", runClear(args[1:]))
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(2)
	}
}

func exitOnErr(command string, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", command, err)
	os.Exit(1)
}

func newLogger(cfg config.Config) logging.Logger {
	return logging.New(os.Stderr, logging.ParseLevel(cfg.LogLevel()))
}

func runUI(args []string) error {
	fs := flag.NewFlagSet("ui", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	industry := fs.String("industry", "", "dataset industry override")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if *industry != "" {
		cfg.Demo.Industry = *industry
	}
	dataDir, err := config.DataDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return err
	}
	return app.Run(cfg, newLogger(cfg))
}

func runAsk(args []string) error {
	fs := flag.NewFlagSet("ask", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	showcase := fs.String("showcase", "", "resolve a showcase response by id")
	industry := fs.String("industry", "", "dataset industry override")
	liveMode := fs.Bool("live", false, "try the live endpoint before the script")
	if err := fs.Parse(args); err != nil {
		return err
	}
	query := strings.Join(fs.Args(), " ")
	if *showcase == "" && strings.TrimSpace(query) == "" {
		return errors.New("a query or -showcase id is required")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if *industry != "" {
		cfg.Demo.Industry = *industry
	}
	dataset := datasets.ForIndustry(cfg.Industry())

	if *liveMode && *showcase == "" {
		dispatcher := live.NewDispatcher(cfg.LiveEndpoint(),
			live.WithTimeout(cfg.DispatchTimeout()), live.WithLogger(newLogger(cfg)))
		payload, err := dispatcher.Dispatch(context.Background(), query, dataset.PlaceholderContext())
		if err == nil && payload != nil {
			printReply(payload.Content, payload.ToolChips, payload.FollowUps, "live")
			return nil
		}
		fmt.Fprintln(os.Stderr, "live endpoint unavailable, answering from script")
	}

	templates, err := assistant.BuiltinStore()
	if err != nil {
		return err
	}
	resolver := assistant.NewResolver(templates)
	var resp *assistant.Response
	if *showcase != "" {
		resp = resolver.ShowcaseResponse(*showcase)
		if resp == nil {
			return fmt.Errorf("unknown showcase id: %s", *showcase)
		}
	} else {
		resp = resolver.Resolve(query)
	}
	resp = assistant.Adapt(resp, dataset.PlaceholderContext())
	printReply(resp.Content, resp.ToolChips, resp.FollowUps, string(resp.Kind))
	return nil
}

func printReply(content string, toolChips, followUps []string, source string) {
	fmt.Println(content)
	if len(toolChips) > 0 {
		fmt.Printf("\ntools: %s\n", strings.Join(toolChips, ", "))
	}
	for _, followUp := range followUps {
		fmt.Printf("  ? %s\n", followUp)
	}
	fmt.Printf("\n(%s)\n", source)
}

func runArcs(args []string) error {
	fs := flag.NewFlagSet("arcs", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	audience := fs.String("audience", "", "filter by audience (customers, team, investors)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	catalog, err := tour.BuiltinCatalog()
	if err != nil {
		return err
	}
	var arcs []types.Arc
	if *audience != "" {
		target := types.Audience(strings.ToLower(strings.TrimSpace(*audience)))
		if !target.Valid() {
			return fmt.Errorf("unknown audience: %s", *audience)
		}
		arcs = catalog.ArcsForAudience(target)
	} else {
		for id := 1; id <= catalog.Len(); id++ {
			arcs = append(arcs, *catalog.Arc(id))
		}
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tTITLE\tAUDIENCE\tSTEPS\tSUMMARY")
	for _, arc := range arcs {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%d\t%s\n",
			arc.ID, arc.Title, arc.Audience, len(arc.Steps), arc.Summary)
	}
	return writer.Flush()
}

func runShowcases(args []string) error {
	fs := flag.NewFlagSet("showcases", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	templates, err := assistant.BuiltinStore()
	if err != nil {
		return err
	}
	writer := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tTRIGGER")
	for _, id := range templates.ShowcaseIDs() {
		tpl, ok := templates.Showcase(id)
		if !ok {
			continue
		}
		fmt.Fprintf(writer, "%s\t%s\n", tpl.ID, tpl.Trigger)
	}
	return writer.Flush()
}

func runClear(args []string) error {
	fs := flag.NewFlagSet("clear", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	path, err := cfg.StorePath()
	if err != nil {
		return err
	}
	sessions, err := store.Open(cfg.StoreBackend(), path)
	if err != nil {
		return err
	}
	defer sessions.Close()
	if err := sessions.Clear(context.Background()); err != nil {
		return err
	}
	fmt.Println("demo state cleared")
	return nil
}
