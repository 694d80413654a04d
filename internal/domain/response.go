package domain

import (
	"encoding/json"
	"time"
)

// Response is a single submitted feedback response. Giver and Recipient hold
// participant identifiers (an email, a team name, or the general sentinel);
// after the hide pass the displayable copy may instead hold a pseudonym
// identifier. The answer payload is opaque to the engine and is only ever
// stringified through the formatter collaborator.
type Response struct {
	// ID is unique within a session and serves as the final tie-break in
	// every response ordering.
	ID string `json:"id" validate:"required"`

	// QuestionID references the owning question. A response whose question
	// is absent from the question map is a caller error; comparators and
	// visibility checks degrade gracefully instead of failing.
	QuestionID string `json:"question_id" validate:"required"`

	// Giver identifies the author of the response.
	Giver string `json:"giver" validate:"required"`

	// Recipient identifies the target of the response.
	Recipient string `json:"recipient" validate:"required"`

	// GiverSection and RecipientSection are per-response section labels,
	// recorded at submission time. Used as leading sort keys.
	GiverSection     string `json:"giver_section,omitempty"`
	RecipientSection string `json:"recipient_section,omitempty"`

	// Answer is the raw answer payload. The engine never parses it.
	Answer json.RawMessage `json:"answer,omitempty"`
}

// Clone returns a deep copy of the response. The actual-response snapshot
// relies on clones so that the hide pass cannot leak pseudonyms into it.
func (r Response) Clone() Response {
	c := r
	if r.Answer != nil {
		c.Answer = make(json.RawMessage, len(r.Answer))
		copy(c.Answer, r.Answer)
	}
	return c
}

// Comment is a remark attached to a response, keyed by response ID in the
// bundle's comment map.
type Comment struct {
	ID         string    `json:"id" validate:"required"`
	ResponseID string    `json:"response_id" validate:"required"`
	Author     string    `json:"author" validate:"required"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}
