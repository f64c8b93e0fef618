package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rehagoal/e2ecov/internal/adapter"
	adaptermocks "github.com/rehagoal/e2ecov/internal/adapter/mocks"
	controllermocks "github.com/rehagoal/e2ecov/internal/controller/mocks"
	"github.com/rehagoal/e2ecov/internal/domain"
	domainmocks "github.com/rehagoal/e2ecov/internal/domain/mocks"
	m "github.com/rehagoal/e2ecov/internal/model"
)

type workflowFixture struct {
	store    *adaptermocks.MockCoverageStore
	ui       *controllermocks.MockUI
	runner   *domainmocks.MockRunner
	combiner *domainmocks.MockCombiner
	wf       domain.Workflow
}

func newWorkflowFixture(t *testing.T) *workflowFixture {
	t.Helper()

	f := &workflowFixture{
		store:    adaptermocks.NewMockCoverageStore(t),
		ui:       controllermocks.NewMockUI(t),
		runner:   domainmocks.NewMockRunner(t),
		combiner: domainmocks.NewMockCombiner(t),
	}

	f.wf = domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), f.store, f.ui, f.runner, f.combiner)

	return f
}

func TestWorkflow_Protractor_DisplaysResult(t *testing.T) {
	f := newWorkflowFixture(t)
	cfg := m.DefaultConfig()
	result := m.RunResult{ExitCode: 7, Staging: m.StagingSummary{Instrumented: 3}}

	f.runner.EXPECT().Run(mock.Anything, cfg).Return(result, nil).Once()
	f.ui.EXPECT().DisplayRunResult(mock.Anything, result).Return(nil).Once()

	got, err := f.wf.Protractor(context.Background(), domain.ProtractorArgs{Config: cfg})
	require.NoError(t, err)
	assert.Equal(t, result, got)
}

func TestWorkflow_Protractor_RunError(t *testing.T) {
	f := newWorkflowFixture(t)
	cfg := m.DefaultConfig()

	f.runner.EXPECT().Run(mock.Anything, cfg).Return(m.RunResult{}, domain.ErrServerUnreachable).Once()

	_, err := f.wf.Protractor(context.Background(), domain.ProtractorArgs{Config: cfg})
	require.ErrorIs(t, err, domain.ErrServerUnreachable)
}

func TestWorkflow_Protractor_DisplayError(t *testing.T) {
	f := newWorkflowFixture(t)
	cfg := m.DefaultConfig()
	displayErr := errors.New("broken pipe")

	f.runner.EXPECT().Run(mock.Anything, cfg).Return(m.RunResult{ExitCode: 1}, nil).Once()
	f.ui.EXPECT().DisplayRunResult(mock.Anything, mock.Anything).Return(displayErr).Once()

	got, err := f.wf.Protractor(context.Background(), domain.ProtractorArgs{Config: cfg})
	require.ErrorIs(t, err, displayErr)
	assert.Equal(t, 1, got.ExitCode, "exit code survives a display failure")
}

func TestWorkflow_Combine(t *testing.T) {
	f := newWorkflowFixture(t)
	cfg := m.DefaultConfig()
	result := m.CombineResult{CombinedFile: cfg.Layout().CombinedCoverageFile(), MissingFiles: []string{"www/js/c.js"}}

	f.combiner.EXPECT().Combine(mock.Anything, cfg).Return(result, nil).Once()
	f.ui.EXPECT().DisplayCombineResult(mock.Anything, result).Return(nil).Once()

	got, err := f.wf.Combine(context.Background(), domain.CombineArgs{Config: cfg})
	require.NoError(t, err)
	assert.Equal(t, result, got)
}

func TestWorkflow_Combine_Error(t *testing.T) {
	f := newWorkflowFixture(t)
	cfg := m.DefaultConfig()

	f.combiner.EXPECT().Combine(mock.Anything, cfg).Return(m.CombineResult{}, domain.ErrAmbiguousCoverage).Once()

	_, err := f.wf.Combine(context.Background(), domain.CombineArgs{Config: cfg})
	require.ErrorIs(t, err, domain.ErrAmbiguousCoverage)
}

func TestWorkflow_List(t *testing.T) {
	cfg := chdirApp(t)
	f := newWorkflowFixture(t)

	f.ui.EXPECT().DisplayStagingPlan(mock.Anything, mock.MatchedBy(func(plan m.StagingPlan) bool {
		return plan.Root == cfg.Paths.WWW && len(plan.Files) == len(appTree)
	})).Return(nil).Once()

	require.NoError(t, f.wf.List(context.Background(), domain.ListArgs{Config: cfg}))
	assert.NoDirExists(t, string(cfg.Paths.Instrumented), "list has no side effects")
}

func TestWorkflow_View(t *testing.T) {
	f := newWorkflowFixture(t)
	artifact := m.Path("reports/coverage/combined/coverage-combined.json")
	coverage := m.CoverageMap{"www/js/a.js": {S: map[string]int{"0": 1}}}

	f.store.EXPECT().LoadCoverage(mock.Anything, artifact).Return(coverage, nil).Once()
	f.ui.EXPECT().DisplayCoverageSummary(mock.Anything, string(artifact), coverage.Summary()).Return(nil).Once()

	require.NoError(t, f.wf.View(context.Background(), domain.ViewArgs{Artifact: artifact}))
}

func TestWorkflow_View_LoadError(t *testing.T) {
	f := newWorkflowFixture(t)
	artifact := m.Path("missing.json")
	loadErr := errors.New("no such file")

	f.store.EXPECT().LoadCoverage(mock.Anything, artifact).Return(nil, loadErr).Once()

	require.ErrorIs(t, f.wf.View(context.Background(), domain.ViewArgs{Artifact: artifact}), loadErr)
}
