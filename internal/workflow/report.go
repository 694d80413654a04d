package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/ahrav/go-feedback/internal/domain"
	"github.com/ahrav/go-feedback/internal/report"
)

// ReportWorkflow assembles the results bundle for one session snapshot and
// returns its summary. The workflow itself only validates, configures retry
// policy, and dispatches to the AssembleResults activity.
func ReportWorkflow(
	ctx workflow.Context,
	input report.AssembleResultsInput,
) (*report.AssembleResultsOutput, error) {
	// Version gate enables safe evolution and backward compatibility.
	const currentVersion = 1
	_ = workflow.GetVersion(ctx, "report.v", workflow.DefaultVersion, currentVersion)

	// Validate early to fail fast on invalid input.
	if err := domain.Validate.Struct(input); err != nil {
		return nil, temporal.NewNonRetryableApplicationError(
			"invalid report request",
			"Validation",
			err,
		)
	}

	ao := workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		HeartbeatTimeout:    30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, ao)

	var output report.AssembleResultsOutput
	if err := workflow.ExecuteActivity(ctx, "AssembleResults", input).Get(ctx, &output); err != nil {
		return nil, err
	}
	return &output, nil
}
