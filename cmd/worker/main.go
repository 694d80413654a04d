// Command worker runs the Temporal worker hosting the report workflow and
// its activities.
package main

import (
	"log/slog"
	"os"

	"go.temporal.io/sdk/client"
	sdkworker "go.temporal.io/sdk/worker"

	"github.com/ahrav/go-feedback/internal/worker"
)

const defaultTaskQueue = "feedback-report"

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	c, err := client.Dial(client.Options{
		HostPort:  os.Getenv("TEMPORAL_ADDRESS"),
		Namespace: os.Getenv("TEMPORAL_NAMESPACE"),
	})
	if err != nil {
		logger.Error("failed to connect to Temporal", "error", err)
		os.Exit(1)
	}
	defer c.Close()

	taskQueue := os.Getenv("TASK_QUEUE")
	if taskQueue == "" {
		taskQueue = defaultTaskQueue
	}

	w := sdkworker.New(c, taskQueue, sdkworker.Options{})
	worker.RegisterAll(w, worker.InitializeEventSink())

	logger.Info("worker starting", "task_queue", taskQueue)
	if err := w.Run(sdkworker.InterruptCh()); err != nil {
		logger.Error("worker stopped", "error", err)
		os.Exit(1)
	}
}
