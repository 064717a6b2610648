package commands

import (
	"context"
	"fmt"
	"os/user"
	"strings"
	"time"

	"github.com/growth-tools/goal-report/pkg/runtime/terminal/export"
	"github.com/growth-tools/goal-report/pkg/services/config"
	"github.com/growth-tools/goal-report/pkg/services/report"
	"github.com/growth-tools/goal-report/pkg/services/stats"

	"github.com/spf13/cobra"
)

type ReportCmd struct {
	configPath string
	timeout    time.Duration
	reporter   *export.Reporter
}

func NewReportCmd(reporter *export.Reporter) *cobra.Command {
	rc := &ReportCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "report <day|week|month> <start_date> <end_date> <page_path> <goal>...",
		Short: "Generate a goal conversion report for a date range",
		Args:  cobra.MinimumNArgs(5),
		RunE:  rc.run,
	}

	defaultPath := "config.yaml"
	if usr, err := user.Current(); err == nil {
		defaultPath = fmt.Sprintf("%s/.goal-report.yaml", usr.HomeDir)
	}

	cmd.Flags().StringVarP(&rc.configPath, "config", "c", defaultPath, "Path to the YAML configuration file")
	cmd.Flags().DurationVar(&rc.timeout, "timeout", 60*time.Second, "Per-run query timeout")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, args []string) error {
	// "+" in goal arguments stands for a space.
	goals := make([]string, 0, len(args)-4)
	for _, g := range args[4:] {
		goals = append(goals, strings.ReplaceAll(g, "+", " "))
	}

	req, err := report.ParseRequest(args[0], args[1], args[2], args[3], goals)
	if err != nil {
		return err
	}

	cfg, err := config.Load(rc.configPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), rc.timeout)
	defer cancel()

	engine := report.NewEngine(stats.NewClient(cfg, rc.timeout))
	rep, err := engine.Generate(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}
	rep.Site = cfg.SiteID

	return rc.reporter.Handle(rep)
}
