// Package report implements the Temporal activities that assemble session
// results into a viewable bundle and summarize them for downstream
// consumers.
package report

import (
	"context"
	"time"

	"go.temporal.io/sdk/temporal"

	"github.com/ahrav/go-feedback/internal/domain"
	"github.com/ahrav/go-feedback/internal/results"
	"github.com/ahrav/go-feedback/pkg/activity"
)

// AssembleResultsInput is the serializable payload of the AssembleResults
// activity: the session snapshot a results bundle is built from.
type AssembleResultsInput struct {
	Session   domain.Session    `json:"session" validate:"required"`
	Questions []domain.Question `json:"questions" validate:"required,min=1,dive"`
	Responses []domain.Response `json:"responses" validate:"omitempty,dive"`

	Students    []domain.Student    `json:"students" validate:"omitempty,dive"`
	Instructors []domain.Instructor `json:"instructors" validate:"omitempty,dive"`

	Tables     domain.NameTables           `json:"tables"`
	Visibility domain.VisibilityTable      `json:"visibility"`
	Comments   map[string][]domain.Comment `json:"comments,omitempty"`

	Complete bool `json:"complete"`
}

// AssembleResultsOutput summarizes the assembled bundle. The bundle itself
// stays in-process; workflows only carry the summary.
type AssembleResultsOutput struct {
	CourseID    string `json:"course_id"`
	SessionName string `json:"session_name"`

	ResponseCount    int  `json:"response_count"`
	QuestionCount    int  `json:"question_count"`
	HiddenGivers     int  `json:"hidden_givers"`
	HiddenRecipients int  `json:"hidden_recipients"`
	TeamCount        int  `json:"team_count"`
	SectionCount     int  `json:"section_count"`
	Complete         bool `json:"complete"`
}

// Activities handles report-specific Temporal activities.
type Activities struct {
	activity.BaseActivities
	events *EventEmitter
}

// NewActivities creates report activities with the provided dependencies.
func NewActivities(base activity.BaseActivities) *Activities {
	return &Activities{
		BaseActivities: base,
		events:         NewEventEmitter(base),
	}
}

// AssembleResults builds the results bundle for one session snapshot and
// returns its summary. The heavy lifting (hide pass, roster indexing) runs
// here so workflow histories stay small.
func (a *Activities) AssembleResults(
	ctx context.Context,
	input AssembleResultsInput,
) (*AssembleResultsOutput, error) {
	if err := domain.Validate.Struct(input); err != nil {
		return nil, nonRetryable("AssembleResults", err, "invalid input")
	}

	wfCtx := a.GetWorkflowContext(ctx)
	activity.SafeLog(ctx, "Starting AssembleResults activity",
		"workflow_id", wfCtx.WorkflowID,
		"activity_id", wfCtx.ActivityID,
		"course_id", input.Session.CourseID,
		"session", input.Session.Name,
		"responses", len(input.Responses))

	startTime := time.Now()

	questions := make(map[string]domain.Question, len(input.Questions))
	for _, q := range input.Questions {
		questions[q.ID] = q
	}

	bundle, err := results.New(results.Input{
		Session:    input.Session,
		Questions:  questions,
		Responses:  input.Responses,
		Roster:     domain.NewRoster(input.Students, input.Instructors),
		Tables:     input.Tables,
		Visibility: input.Visibility,
		Comments:   input.Comments,
		Complete:   input.Complete,
	})
	if err != nil {
		return nil, nonRetryable("AssembleResults", err, "bundle assembly failed")
	}

	output := summarize(bundle)

	a.events.EmitResultsAssembled(ctx, output, wfCtx)

	activity.SafeLog(ctx, "AssembleResults completed",
		"responses", output.ResponseCount,
		"hidden_givers", output.HiddenGivers,
		"hidden_recipients", output.HiddenRecipients,
		"processing_time_ms", time.Since(startTime).Milliseconds())

	return output, nil
}

func summarize(b *results.Bundle) *AssembleResultsOutput {
	out := &AssembleResultsOutput{
		CourseID:      b.Session().CourseID,
		SessionName:   b.Session().Name,
		QuestionCount: len(b.Questions()),
		TeamCount:     len(b.RosterIndex().Teams()),
		SectionCount:  len(b.SectionsInCourse()),
		Complete:      b.Complete(),
	}
	for _, r := range b.Responses() {
		out.ResponseCount++
		if !b.GiverVisible(r) {
			out.HiddenGivers++
		}
		if !b.RecipientVisible(r) {
			out.HiddenRecipients++
		}
	}
	return out
}

func nonRetryable(tag string, cause error, msg string) error {
	return temporal.NewNonRetryableApplicationError(msg, tag, cause)
}
