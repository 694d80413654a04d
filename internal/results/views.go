package results

import (
	"slices"

	"github.com/ahrav/go-feedback/internal/domain"
	"github.com/ahrav/go-feedback/internal/ordering"
)

// Grouping containers. All are insertion-ordered: groups appear in exactly
// the order the driving comparator produced, so iterating a grouping renders
// the same as iterating the flat sorted list.
type (
	// NameGroup maps a participant key to their responses.
	NameGroup = ordering.OrderedMap[ordering.NameTeamKey, []domain.Response]

	// NameGroups maps an outer participant key to an inner NameGroup.
	NameGroups = ordering.OrderedMap[ordering.NameTeamKey, *NameGroup]

	// IDGroup maps a raw identifier to responses.
	IDGroup = ordering.OrderedMap[string, []domain.Response]

	// IDGroups maps an outer raw identifier to an inner IDGroup.
	IDGroups = ordering.OrderedMap[string, *IDGroup]

	// QuestionGroup maps a question to its responses.
	QuestionGroup = ordering.OrderedMap[domain.Question, []domain.Response]

	// QuestionGroups maps a participant key to a per-question grouping.
	QuestionGroups = ordering.OrderedMap[ordering.NameTeamKey, *QuestionGroup]

	// TeamQuestionGroups maps a team name to a per-question grouping.
	TeamQuestionGroups = ordering.OrderedMap[string, *QuestionGroup]
)

// SortedResponses returns a copy of the displayable responses ordered by the
// given comparator.
func (b *Bundle) SortedResponses(cmp ordering.Cmp) []domain.Response {
	out := b.Responses()
	slices.SortFunc(out, cmp)
	return out
}

// ResponsesSortedByGiver returns the responses in the primary
// grouped-by-giver order. With groupByTeam the giver team key precedes the
// giver name.
func (b *Bundle) ResponsesSortedByGiver(groupByTeam bool) []domain.Response {
	if groupByTeam {
		return b.SortedResponses(ordering.ByTeamGiverRecipientQuestion(b))
	}
	return b.SortedResponses(ordering.ByGiverRecipientQuestion(b))
}

// ResponsesSortedByRecipient returns the responses in the primary
// grouped-by-recipient order. With groupByTeam the recipient team key
// precedes the recipient name.
func (b *Bundle) ResponsesSortedByRecipient(groupByTeam bool) []domain.Response {
	if groupByTeam {
		return b.SortedResponses(ordering.ByTeamRecipientGiverQuestion(b))
	}
	return b.SortedResponses(ordering.ByRecipientGiverQuestion(b))
}

// GroupedByRecipient groups responses recipient → giver, both keyed by
// display name and team. Anonymized participants group under their pseudonym
// keys; two distinct hidden participants never merge.
func (b *Bundle) GroupedByRecipient(groupByTeam bool) *NameGroups {
	groups := ordering.NewOrderedMap[ordering.NameTeamKey, *NameGroup]()
	for _, r := range b.ResponsesSortedByRecipient(groupByTeam) {
		inner := groups.GetOrCreate(b.recipientKey(r), newNameGroup)
		appendTo(inner, b.giverKey(r), r)
	}
	return groups
}

// GroupedByGiver groups responses giver → recipient, both keyed by display
// name and team.
func (b *Bundle) GroupedByGiver(groupByTeam bool) *NameGroups {
	groups := ordering.NewOrderedMap[ordering.NameTeamKey, *NameGroup]()
	for _, r := range b.ResponsesSortedByGiver(groupByTeam) {
		inner := groups.GetOrCreate(b.giverKey(r), newNameGroup)
		appendTo(inner, b.recipientKey(r), r)
	}
	return groups
}

// GroupedByRecipientID groups responses recipient → giver by raw identifier.
// Raw keys let callers resolve emails, pseudonym identifiers, and team names
// themselves; ordering still follows the display comparators.
func (b *Bundle) GroupedByRecipientID(groupByTeam bool) *IDGroups {
	groups := ordering.NewOrderedMap[string, *IDGroup]()
	for _, r := range b.ResponsesSortedByRecipient(groupByTeam) {
		inner := groups.GetOrCreate(r.Recipient, newIDGroup)
		appendTo(inner, r.Giver, r)
	}
	return groups
}

// GroupedByGiverID groups responses giver → recipient by raw identifier.
func (b *Bundle) GroupedByGiverID(groupByTeam bool) *IDGroups {
	groups := ordering.NewOrderedMap[string, *IDGroup]()
	for _, r := range b.ResponsesSortedByGiver(groupByTeam) {
		inner := groups.GetOrCreate(r.Giver, newIDGroup)
		appendTo(inner, r.Recipient, r)
	}
	return groups
}

// GroupedByGiverQuestion groups responses giver → question, the order behind
// per-giver result panels.
func (b *Bundle) GroupedByGiverQuestion(groupByTeam bool) *QuestionGroups {
	cmp := ordering.ByGiverQuestionTeamRecipient(b)
	if groupByTeam {
		cmp = ordering.ByTeamGiverQuestionTeamRecipient(b)
	}
	groups := ordering.NewOrderedMap[ordering.NameTeamKey, *QuestionGroup]()
	for _, r := range b.SortedResponses(cmp) {
		inner := groups.GetOrCreate(b.giverKey(r), newQuestionGroup)
		appendTo(inner, b.questionKey(r), r)
	}
	return groups
}

// GroupedByRecipientQuestion groups responses recipient → question, the
// order behind per-recipient result panels.
func (b *Bundle) GroupedByRecipientQuestion(groupByTeam bool) *QuestionGroups {
	cmp := ordering.ByRecipientQuestionTeamGiver(b)
	if groupByTeam {
		cmp = ordering.ByTeamRecipientQuestionTeamGiver(b)
	}
	groups := ordering.NewOrderedMap[ordering.NameTeamKey, *QuestionGroup]()
	for _, r := range b.SortedResponses(cmp) {
		inner := groups.GetOrCreate(b.recipientKey(r), newQuestionGroup)
		appendTo(inner, b.questionKey(r), r)
	}
	return groups
}

// giverKey builds the grouping key for a response's giver.
func (b *Bundle) giverKey(r domain.Response) ordering.NameTeamKey {
	return ordering.NameTeamKey{Name: b.GiverName(r), Team: b.TeamName(r.Giver)}
}

// recipientKey builds the grouping key for a response's recipient.
func (b *Bundle) recipientKey(r domain.Response) ordering.NameTeamKey {
	return ordering.NameTeamKey{Name: b.RecipientName(r), Team: b.TeamName(r.Recipient)}
}

// questionKey resolves a response's question for use as a grouping key. An
// unresolvable question yields a placeholder keyed by ID so the response
// still appears instead of vanishing from the view.
func (b *Bundle) questionKey(r domain.Response) domain.Question {
	if q, ok := b.questions[r.QuestionID]; ok {
		return q
	}
	return domain.Question{ID: r.QuestionID}
}

func newNameGroup() *NameGroup {
	return ordering.NewOrderedMap[ordering.NameTeamKey, []domain.Response]()
}

func newIDGroup() *IDGroup {
	return ordering.NewOrderedMap[string, []domain.Response]()
}

func newQuestionGroup() *QuestionGroup {
	return ordering.NewOrderedMap[domain.Question, []domain.Response]()
}

func appendTo[K comparable](m *ordering.OrderedMap[K, []domain.Response], k K, r domain.Response) {
	rs, _ := m.Get(k)
	m.Set(k, append(rs, r))
}
