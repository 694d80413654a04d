package report

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"

	"github.com/ahrav/go-feedback/internal/domain"
	"github.com/ahrav/go-feedback/pkg/activity"
	"github.com/ahrav/go-feedback/pkg/events"
)

func testAssembleInput() AssembleResultsInput {
	return AssembleResultsInput{
		Session: domain.Session{CourseID: "CS2103", Name: "Midterm Feedback"},
		Questions: []domain.Question{
			{ID: "q1", Number: 1, GiverType: domain.ParticipantStudents,
				RecipientType: domain.ParticipantStudents},
		},
		Responses: []domain.Response{
			{ID: "r1", QuestionID: "q1", Giver: "alice@example.com", Recipient: "bob@example.com",
				Answer: json.RawMessage(`"solid work"`)},
			{ID: "r2", QuestionID: "q1", Giver: "bob@example.com", Recipient: "alice@example.com",
				Answer: json.RawMessage(`"could improve"`)},
		},
		Students: []domain.Student{
			{Email: "alice@example.com", Name: "Alice Zimmer", Team: "Team A", Section: "S1"},
			{Email: "bob@example.com", Name: "Bob Young", Team: "Team A", Section: "S1"},
		},
		Instructors: []domain.Instructor{
			{Email: "ina@example.com", Name: "Ina Vega"},
		},
		Tables: domain.NameTables{
			Names: map[string]string{
				"alice@example.com": "Alice Zimmer",
				"bob@example.com":   "Bob Young",
			},
			LastNames: map[string]string{
				"alice@example.com": "Zimmer",
				"bob@example.com":   "Young",
			},
			TeamNames: map[string]string{
				"alice@example.com": "Team A",
				"bob@example.com":   "Team A",
			},
		},
		Visibility: domain.VisibilityTable{
			"r1": {Giver: true, Recipient: true},
			"r2": {Giver: false, Recipient: true},
		},
		Complete: true,
	}
}

func TestAssembleResults(t *testing.T) {
	ts := &testsuite.WorkflowTestSuite{}
	env := ts.NewTestActivityEnvironment()

	acts := NewActivities(activity.NewBaseActivities(events.NewNoOpEventSink()))
	env.RegisterActivity(acts.AssembleResults)

	val, err := env.ExecuteActivity(acts.AssembleResults, testAssembleInput())
	require.NoError(t, err)

	var out AssembleResultsOutput
	require.NoError(t, val.Get(&out))

	assert.Equal(t, "CS2103", out.CourseID)
	assert.Equal(t, "Midterm Feedback", out.SessionName)
	assert.Equal(t, 2, out.ResponseCount)
	assert.Equal(t, 1, out.QuestionCount)
	assert.Equal(t, 1, out.HiddenGivers)
	assert.Equal(t, 0, out.HiddenRecipients)
	assert.Equal(t, 1, out.TeamCount)
	assert.Equal(t, 1, out.SectionCount)
	assert.True(t, out.Complete)
}

func TestAssembleResults_InvalidInput(t *testing.T) {
	ts := &testsuite.WorkflowTestSuite{}
	env := ts.NewTestActivityEnvironment()

	acts := NewActivities(activity.NewBaseActivities(events.NewNoOpEventSink()))
	env.RegisterActivity(acts.AssembleResults)

	input := testAssembleInput()
	input.Questions = nil

	_, err := env.ExecuteActivity(acts.AssembleResults, input)
	require.Error(t, err)

	var appErr *temporal.ApplicationError
	require.ErrorAs(t, err, &appErr)
	assert.True(t, appErr.NonRetryable(), "validation failures must not be retried")
}

type capturingSink struct {
	envelopes []events.Envelope
}

func (c *capturingSink) Append(_ context.Context, envelope events.Envelope) error {
	c.envelopes = append(c.envelopes, envelope)
	return nil
}

func TestAssembleResults_EmitsSummaryEvent(t *testing.T) {
	ts := &testsuite.WorkflowTestSuite{}
	env := ts.NewTestActivityEnvironment()

	sink := &capturingSink{}
	acts := NewActivities(activity.NewBaseActivities(sink))
	env.RegisterActivity(acts.AssembleResults)

	_, err := env.ExecuteActivity(acts.AssembleResults, testAssembleInput())
	require.NoError(t, err)

	require.Len(t, sink.envelopes, 1)
	evt := sink.envelopes[0]
	assert.Equal(t, EventTypeResultsAssembled, evt.Type)
	assert.Equal(t, "CS2103", evt.CourseID)
	assert.NotEmpty(t, evt.IdempotencyKey)

	var payload AssembleResultsOutput
	require.NoError(t, json.Unmarshal(evt.Payload, &payload))
	assert.Equal(t, 2, payload.ResponseCount)
}
