package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultStream is the Redis stream events are appended to when no stream is
// configured.
const DefaultStream = "feedback:events"

// dedupeTTL bounds how long idempotency keys are remembered. Workflow
// retries land well inside this window.
const dedupeTTL = 24 * time.Hour

// RedisSink appends envelopes to a Redis stream. Duplicate envelopes,
// identified by idempotency key, are dropped via a SETNX guard so replayed
// activities do not double-publish.
type RedisSink struct {
	client redis.UniversalClient
	stream string
}

// NewRedisSink creates a sink writing to the given stream; an empty stream
// name selects DefaultStream.
func NewRedisSink(client redis.UniversalClient, stream string) *RedisSink {
	if stream == "" {
		stream = DefaultStream
	}
	return &RedisSink{client: client, stream: stream}
}

// Append implements EventSink. The envelope is serialized once and stored as
// a single stream field so consumers get the full envelope atomically.
func (s *RedisSink) Append(ctx context.Context, envelope Envelope) error {
	if envelope.IdempotencyKey != "" {
		key := fmt.Sprintf("%s:dedupe:%s", s.stream, envelope.IdempotencyKey)
		ok, err := s.client.SetNX(ctx, key, 1, dedupeTTL).Result()
		if err != nil {
			return fmt.Errorf("event dedupe check: %w", err)
		}
		if !ok {
			return nil
		}
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal event envelope: %w", err)
	}

	if err := s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]any{
			"type":     envelope.Type,
			"course":   envelope.CourseID,
			"envelope": body,
		},
	}).Err(); err != nil {
		return fmt.Errorf("append event to stream %s: %w", s.stream, err)
	}
	return nil
}
