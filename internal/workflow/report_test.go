package workflow

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/testsuite"

	"github.com/ahrav/go-feedback/internal/domain"
	"github.com/ahrav/go-feedback/internal/report"
	"github.com/ahrav/go-feedback/pkg/activity"
	"github.com/ahrav/go-feedback/pkg/events"
)

func testReportInput() report.AssembleResultsInput {
	return report.AssembleResultsInput{
		Session: domain.Session{CourseID: "CS2103", Name: "Midterm Feedback"},
		Questions: []domain.Question{
			{ID: "q1", Number: 1, GiverType: domain.ParticipantStudents,
				RecipientType: domain.ParticipantStudents},
		},
		Responses: []domain.Response{
			{ID: "r1", QuestionID: "q1", Giver: "alice@example.com", Recipient: "bob@example.com",
				Answer: json.RawMessage(`"solid work"`)},
		},
		Students: []domain.Student{
			{Email: "alice@example.com", Name: "Alice Zimmer", Team: "Team A", Section: "S1"},
			{Email: "bob@example.com", Name: "Bob Young", Team: "Team A", Section: "S1"},
		},
		Tables: domain.NameTables{
			Names: map[string]string{
				"alice@example.com": "Alice Zimmer",
				"bob@example.com":   "Bob Young",
			},
			TeamNames: map[string]string{
				"alice@example.com": "Team A",
				"bob@example.com":   "Team A",
			},
		},
		Visibility: domain.VisibilityTable{
			"r1": {Giver: true, Recipient: true},
		},
		Complete: true,
	}
}

func TestReportWorkflow(t *testing.T) {
	ts := &testsuite.WorkflowTestSuite{}
	env := ts.NewTestWorkflowEnvironment()

	acts := report.NewActivities(activity.NewBaseActivities(events.NewNoOpEventSink()))
	env.RegisterWorkflow(ReportWorkflow)
	env.RegisterActivity(acts.AssembleResults)

	env.ExecuteWorkflow(ReportWorkflow, testReportInput())

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var out report.AssembleResultsOutput
	require.NoError(t, env.GetWorkflowResult(&out))
	assert.Equal(t, 1, out.ResponseCount)
	assert.Equal(t, "CS2103", out.CourseID)
	assert.True(t, out.Complete)
}

func TestReportWorkflow_InvalidInput(t *testing.T) {
	ts := &testsuite.WorkflowTestSuite{}
	env := ts.NewTestWorkflowEnvironment()

	acts := report.NewActivities(activity.NewBaseActivities(events.NewNoOpEventSink()))
	env.RegisterWorkflow(ReportWorkflow)
	env.RegisterActivity(acts.AssembleResults)

	input := testReportInput()
	input.Questions = nil
	env.ExecuteWorkflow(ReportWorkflow, input)

	require.True(t, env.IsWorkflowCompleted())
	err := env.GetWorkflowError()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid report request")
}
