package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	m "github.com/rehagoal/e2ecov/internal/model"
	"github.com/spf13/cobra"
)

var (
	passStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Coverage percentages at or above highWatermark render as passing, below
// lowWatermark as failing, matching istanbul's default watermarks.
const (
	lowWatermark  = 50.0
	highWatermark = 80.0
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd   *cobra.Command
	color bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, color bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, color: color}
}

// DisplayStagingPlan prints one row per source file with its staging class.
func (s *SimpleUI) DisplayStagingPlan(ctx context.Context, plan m.StagingPlan) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Action", "Pattern"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, file := range plan.Files {
		table.Append([]string{string(file.Path), file.Class.String(), file.Pattern})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(plan.Files)),
		fmt.Sprintf("%d instrument", plan.Count(m.Instrumentable)),
		fmt.Sprintf("%d excluded", plan.Count(m.Excluded)),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayCoverageSummary prints a per-file coverage table under title.
func (s *SimpleUI) DisplayCoverageSummary(ctx context.Context, title string, summary m.CoverageSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s\n", title)
	s.printf("%s", s.renderCoverageTable(summary))

	return nil
}

// DisplayRunResult prints the staging counts, the coverage summary and the
// end-to-end status.
func (s *SimpleUI) DisplayRunResult(ctx context.Context, result m.RunResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	staging := result.Staging
	s.printf("Staged %d instrumented, %d excluded, %d copied file(s)\n",
		staging.Instrumented, staging.Excluded, staging.Copied)

	for _, path := range staging.Untransformed {
		s.printf("%s\n", s.style(warnStyle, "not instrumented: "+string(path)))
	}

	for _, path := range staging.Modified {
		s.printf("%s\n", s.style(warnStyle, "modified: "+string(path)))
	}

	if err := s.DisplayCoverageSummary(ctx, "End-to-end coverage", result.Coverage); err != nil {
		return err
	}

	if result.ExitCode == 0 {
		s.printf("%s\n", s.style(passStyle, "End-to-end tests passed"))
	} else {
		s.printf("%s\n", s.style(failStyle, fmt.Sprintf("End-to-end tests failed (exit code %d)", result.ExitCode)))
	}

	return nil
}

// DisplayCombineResult prints the inputs, any files the merge dropped and
// the combined coverage summary.
func (s *SimpleUI) DisplayCombineResult(ctx context.Context, result m.CombineResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Unit-test coverage:  %s\n", result.KarmaFile)
	s.printf("End-to-end coverage: %s\n", result.ProtractorFile)

	for _, file := range result.MissingFiles {
		s.printf("%s\n", s.style(warnStyle, "missing from combined coverage: "+file))
	}

	return s.DisplayCoverageSummary(ctx, string(result.CombinedFile), result.Coverage)
}

func (s *SimpleUI) renderCoverageTable(summary m.CoverageSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"File", "% Stmts", "% Branch", "% Funcs", "% Lines"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, file := range summary.Files {
		table.Append(s.coverageRow(file))
	}

	table.SetFooter(s.coverageRow(summary.Total))
	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) coverageRow(file m.FileSummary) []string {
	return []string{
		file.Path,
		s.pct(file.Statements),
		s.pct(file.Branches),
		s.pct(file.Functions),
		s.pct(file.Lines),
	}
}

func (s *SimpleUI) pct(c m.Counter) string {
	text := fmt.Sprintf("%.2f", c.Pct())

	switch {
	case c.Pct() >= highWatermark:
		return s.style(passStyle, text)
	case c.Pct() < lowWatermark:
		return s.style(failStyle, text)
	default:
		return s.style(warnStyle, text)
	}
}

func (s *SimpleUI) style(style lipgloss.Style, text string) string {
	if !s.color {
		return text
	}

	return style.Render(text)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
