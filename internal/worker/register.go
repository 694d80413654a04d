// Package worker exposes helpers to register workflows/activities with a
// Temporal worker.
package worker

import (
	sdkworker "go.temporal.io/sdk/worker"

	"github.com/ahrav/go-feedback/internal/report"
	"github.com/ahrav/go-feedback/internal/workflow"
	"github.com/ahrav/go-feedback/pkg/activity"
	"github.com/ahrav/go-feedback/pkg/events"
)

// RegisterAll registers all workflows and activities with the Temporal
// worker. Must be called once during worker initialization before starting
// the worker; registration is not thread-safe.
func RegisterAll(w sdkworker.Worker, sink events.EventSink) {
	if sink == nil {
		sink = events.NewNoOpEventSink()
	}

	base := activity.NewBaseActivities(sink)

	reportActivities := report.NewActivities(base)

	w.RegisterWorkflow(workflow.ReportWorkflow)

	w.RegisterActivity(reportActivities.AssembleResults)
}
