package results

import (
	"slices"

	"github.com/ahrav/go-feedback/internal/domain"
	"github.com/ahrav/go-feedback/internal/ordering"
)

// QuestionResponseMap groups every response under its question, with
// questions in ordinal order and responses in giver-recipient order. Every
// question of the session appears, including those with no responses, so
// renderers can show empty question panels.
func (b *Bundle) QuestionResponseMap() *QuestionGroup {
	return b.questionResponseMap(ordering.ByGiverRecipient(b))
}

// QuestionResponseMapSortedByRecipient is QuestionResponseMap with responses
// inside each question in recipient-major export order.
func (b *Bundle) QuestionResponseMapSortedByRecipient() *QuestionGroup {
	return b.questionResponseMap(ordering.ByRecipientNameEmailGiverNameEmail(b))
}

func (b *Bundle) questionResponseMap(cmp ordering.Cmp) *QuestionGroup {
	groups := ordering.NewOrderedMap[domain.Question, []domain.Response]()
	for _, q := range b.sortedQuestions() {
		groups.Set(q, nil)
	}
	for _, r := range b.SortedResponses(cmp) {
		appendTo(groups, b.questionKey(r), r)
	}
	return groups
}

// GroupedByRecipientTeamQuestion groups responses recipient-team → question.
// Participants without a team entry group under their display name, so
// general and anonymous recipients each keep a distinct row.
func (b *Bundle) GroupedByRecipientTeamQuestion() *TeamQuestionGroups {
	groups := ordering.NewOrderedMap[string, *QuestionGroup]()
	for _, r := range b.SortedResponses(ordering.ByTeamQuestionRecipientTeamGiver(b)) {
		inner := groups.GetOrCreate(b.teamOrDisplayName(r.Recipient), newQuestionGroup)
		appendTo(inner, b.questionKey(r), r)
	}
	return groups
}

// GroupedByGiverTeamQuestion groups responses giver-team → question.
func (b *Bundle) GroupedByGiverTeamQuestion() *TeamQuestionGroups {
	groups := ordering.NewOrderedMap[string, *QuestionGroup]()
	for _, r := range b.SortedResponses(ordering.ByTeamQuestionGiverTeamRecipient(b)) {
		inner := groups.GetOrCreate(b.teamOrDisplayName(r.Giver), newQuestionGroup)
		appendTo(inner, b.questionKey(r), r)
	}
	return groups
}

// Questions returns the session's questions in ordinal order.
func (b *Bundle) Questions() []domain.Question { return b.sortedQuestions() }

func (b *Bundle) sortedQuestions() []domain.Question {
	qs := make([]domain.Question, 0, len(b.questions))
	for _, q := range b.questions {
		qs = append(qs, q)
	}
	slices.SortFunc(qs, domain.Question.Compare)
	return qs
}

// teamOrDisplayName is the team-major grouping key: the identifier's team,
// falling back to its display name when no team entry exists.
func (b *Bundle) teamOrDisplayName(id string) string {
	if t := b.TeamName(id); t != "" {
		return t
	}
	return b.DisplayName(id)
}
