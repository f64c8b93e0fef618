// Package controller provides output adapters for displaying staging plans,
// run results and coverage summaries.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "github.com/rehagoal/e2ecov/internal/model"
)

// UI defines the interface for displaying workflow results.
type UI interface {
	DisplayStagingPlan(ctx context.Context, plan m.StagingPlan) error
	DisplayCoverageSummary(ctx context.Context, title string, summary m.CoverageSummary) error
	DisplayRunResult(ctx context.Context, result m.RunResult) error
	DisplayCombineResult(ctx context.Context, result m.CombineResult) error
}

// NewUI returns the UI for the command's output stream. Colour is used only
// when that stream is a terminal.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	return NewSimpleUI(cmd, isTTY)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
