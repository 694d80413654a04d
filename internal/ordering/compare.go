package ordering

import (
	"strings"

	"github.com/ahrav/go-feedback/internal/domain"
)

// CompareNames compares two participant names under the visibility policy.
// Two hidden names compare equal; a visible name sorts before a hidden one.
// Among visible names, the nobody marker sorts first and the team marker
// last, with ordinary names lexicographic in between.
func CompareNames(n1, n2 string, visible1, visible2 bool) int {
	if !visible1 && !visible2 {
		return 0
	}
	if !visible1 {
		return 1
	}
	if !visible2 {
		return -1
	}

	p1 := namePriority(n1)
	p2 := namePriority(n2)
	if p1 != p2 {
		return p1 - p2
	}
	return strings.Compare(n1, n2)
}

// namePriority places class-wide feedback on top and team rows at the bottom.
func namePriority(name string) int {
	switch name {
	case domain.NobodyMarker:
		return -1
	case domain.TeamMarker:
		return 1
	default:
		return 0
	}
}

// CompareQuestionNumbers orders two responses by their questions' ordinals.
// If either question cannot be resolved the responses compare equal on this
// key and the chain moves to the next tie-break.
func CompareQuestionNumbers(v View, a, b domain.Response) int {
	qa, okA := v.Question(a.QuestionID)
	qb, okB := v.Question(b.QuestionID)
	if !okA || !okB {
		return 0
	}
	return qa.Compare(qb)
}

// CompareAnswers orders two responses lexicographically by the canonical
// string form of their answers.
func CompareAnswers(v View, a, b domain.Response) int {
	return strings.Compare(v.AnswerText(a), v.AnswerText(b))
}

// compareIDs is the final tie-break guaranteeing a strict total order.
func compareIDs(a, b domain.Response) int {
	return strings.Compare(a.ID, b.ID)
}

// giverNames compares by raw giver name under giver visibility.
func giverNames(v View, a, b domain.Response) int {
	return CompareNames(v.RawName(a.Giver), v.RawName(b.Giver),
		v.GiverVisible(a), v.GiverVisible(b))
}

// recipientNames compares by raw recipient name under recipient visibility.
func recipientNames(v View, a, b domain.Response) int {
	return CompareNames(v.RawName(a.Recipient), v.RawName(b.Recipient),
		v.RecipientVisible(a), v.RecipientVisible(b))
}

// giverTeams compares by giver team-or-name under giver visibility.
func giverTeams(v View, a, b domain.Response) int {
	return CompareNames(teamOrName(v, a.Giver), teamOrName(v, b.Giver),
		v.GiverVisible(a), v.GiverVisible(b))
}

// recipientTeams compares by recipient team-or-name under recipient
// visibility.
func recipientTeams(v View, a, b domain.Response) int {
	return CompareNames(teamOrName(v, a.Recipient), teamOrName(v, b.Recipient),
		v.RecipientVisible(a), v.RecipientVisible(b))
}

// chain applies comparisons in priority order, returning the first non-zero
// result.
func chain(a, b domain.Response, cmps ...Cmp) int {
	for _, c := range cmps {
		if order := c(a, b); order != 0 {
			return order
		}
	}
	return 0
}
