package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ahrav/go-feedback/pkg/activity"
	"github.com/ahrav/go-feedback/pkg/events"
)

// EventTypeResultsAssembled is emitted once per successful AssembleResults
// execution.
const EventTypeResultsAssembled = "report.results_assembled"

// EventEmitter handles event emission for the report domain. Emission is
// best-effort; failures are logged without affecting the activity result.
type EventEmitter struct {
	base activity.BaseActivities
}

// NewEventEmitter creates an EventEmitter backed by the base activities'
// sink.
func NewEventEmitter(base activity.BaseActivities) *EventEmitter {
	return &EventEmitter{base: base}
}

// EmitResultsAssembled publishes the bundle summary for downstream
// projections. The idempotency key is deterministic in the workflow run and
// session, so activity retries do not double-publish.
func (e *EventEmitter) EmitResultsAssembled(
	ctx context.Context,
	output *AssembleResultsOutput,
	wfCtx activity.WorkflowContext,
) {
	payload, err := json.Marshal(output)
	if err != nil {
		activity.SafeLogError(ctx, "Failed to encode ResultsAssembled payload",
			"course_id", output.CourseID,
			"error", err)
		return
	}

	envelope := events.Envelope{
		ID:        uuid.New().String(),
		Type:      EventTypeResultsAssembled,
		Source:    "report-activity",
		Version:   "1.0.0",
		Timestamp: time.Now().UTC(),
		IdempotencyKey: fmt.Sprintf("%s:%s:%s/%s",
			wfCtx.WorkflowID, wfCtx.RunID, output.CourseID, output.SessionName),
		CourseID:   output.CourseID,
		WorkflowID: wfCtx.WorkflowID,
		RunID:      wfCtx.RunID,
		Payload:    payload,
	}

	e.base.EmitEventSafe(ctx, envelope,
		fmt.Sprintf("ResultsAssembled[%s/%s]", output.CourseID, output.SessionName))
}
