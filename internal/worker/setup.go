// Package worker provides initialization and setup utilities for Temporal
// workers. Initialization logic lives here so activity packages stay focused
// on pure activity logic.
package worker

import (
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/ahrav/go-feedback/pkg/events"
)

// InitializeEventSink creates the event sink for the worker. With a Redis
// address configured (REDIS_ADDR), events go to a Redis stream; without one,
// emission is disabled.
func InitializeEventSink() events.EventSink {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return events.NewNoOpEventSink()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	return events.NewRedisSink(client, os.Getenv("EVENT_STREAM"))
}
