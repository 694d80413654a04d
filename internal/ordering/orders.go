package ordering

import (
	"strings"

	"github.com/ahrav/go-feedback/internal/domain"
)

// The composite orderings below are consistent extensions of one tie-break
// chain: every name key is visibility-aware, every chain ends in the response
// ID, and team variants substitute the team-or-name key ahead of the personal
// name at the giver and/or recipient position.

// ByGiverRecipient sorts by giver name, recipient name, answer, ID. Used to
// order responses inside one question group.
func ByGiverRecipient(v View) Cmp {
	return func(a, b domain.Response) int {
		return chain(a, b,
			func(a, b domain.Response) int { return giverNames(v, a, b) },
			func(a, b domain.Response) int { return recipientNames(v, a, b) },
			func(a, b domain.Response) int { return CompareAnswers(v, a, b) },
			compareIDs,
		)
	}
}

// ByGiverRecipientQuestion sorts by giver section, giver name, recipient
// name, answer, ID. The primary "grouped by giver" order.
func ByGiverRecipientQuestion(v View) Cmp {
	return func(a, b domain.Response) int {
		return chain(a, b,
			giverSections,
			func(a, b domain.Response) int { return giverNames(v, a, b) },
			func(a, b domain.Response) int { return recipientNames(v, a, b) },
			func(a, b domain.Response) int { return CompareAnswers(v, a, b) },
			compareIDs,
		)
	}
}

// ByTeamGiverRecipientQuestion is ByGiverRecipientQuestion with the giver
// team key ahead of the giver name, for "group by team" views.
func ByTeamGiverRecipientQuestion(v View) Cmp {
	return func(a, b domain.Response) int {
		return chain(a, b,
			giverSections,
			func(a, b domain.Response) int { return giverTeams(v, a, b) },
			func(a, b domain.Response) int { return giverNames(v, a, b) },
			func(a, b domain.Response) int { return recipientNames(v, a, b) },
			func(a, b domain.Response) int { return CompareAnswers(v, a, b) },
			compareIDs,
		)
	}
}

// ByRecipientGiverQuestion sorts by recipient section, recipient name, giver
// name, question number, answer, ID. The primary "grouped by recipient"
// order.
func ByRecipientGiverQuestion(v View) Cmp {
	return func(a, b domain.Response) int {
		return chain(a, b,
			recipientSections,
			func(a, b domain.Response) int { return recipientNames(v, a, b) },
			func(a, b domain.Response) int { return giverNames(v, a, b) },
			func(a, b domain.Response) int { return CompareQuestionNumbers(v, a, b) },
			func(a, b domain.Response) int { return CompareAnswers(v, a, b) },
			compareIDs,
		)
	}
}

// ByTeamRecipientGiverQuestion is ByRecipientGiverQuestion with the recipient
// team key ahead of the recipient name.
func ByTeamRecipientGiverQuestion(v View) Cmp {
	return func(a, b domain.Response) int {
		return chain(a, b,
			recipientSections,
			func(a, b domain.Response) int { return recipientTeams(v, a, b) },
			func(a, b domain.Response) int { return recipientNames(v, a, b) },
			func(a, b domain.Response) int { return giverNames(v, a, b) },
			func(a, b domain.Response) int { return CompareQuestionNumbers(v, a, b) },
			func(a, b domain.Response) int { return CompareAnswers(v, a, b) },
			compareIDs,
		)
	}
}

// ByGiverQuestionTeamRecipient sorts by giver section, giver name, question
// number, recipient team, recipient name, answer, ID. Drives the
// giver → question → recipient view.
func ByGiverQuestionTeamRecipient(v View) Cmp {
	return func(a, b domain.Response) int {
		return chain(a, b,
			giverSections,
			func(a, b domain.Response) int { return giverNames(v, a, b) },
			func(a, b domain.Response) int { return CompareQuestionNumbers(v, a, b) },
			func(a, b domain.Response) int { return recipientTeams(v, a, b) },
			func(a, b domain.Response) int { return recipientNames(v, a, b) },
			func(a, b domain.Response) int { return CompareAnswers(v, a, b) },
			compareIDs,
		)
	}
}

// ByTeamGiverQuestionTeamRecipient is ByGiverQuestionTeamRecipient with the
// giver team key ahead of the giver name.
func ByTeamGiverQuestionTeamRecipient(v View) Cmp {
	return func(a, b domain.Response) int {
		return chain(a, b,
			giverSections,
			func(a, b domain.Response) int { return giverTeams(v, a, b) },
			func(a, b domain.Response) int { return giverNames(v, a, b) },
			func(a, b domain.Response) int { return CompareQuestionNumbers(v, a, b) },
			func(a, b domain.Response) int { return recipientTeams(v, a, b) },
			func(a, b domain.Response) int { return recipientNames(v, a, b) },
			func(a, b domain.Response) int { return CompareAnswers(v, a, b) },
			compareIDs,
		)
	}
}

// ByRecipientQuestionTeamGiver sorts by recipient name, question number,
// giver team, giver name, answer, ID. Drives the recipient → question →
// giver view.
func ByRecipientQuestionTeamGiver(v View) Cmp {
	return func(a, b domain.Response) int {
		return chain(a, b,
			func(a, b domain.Response) int { return recipientNames(v, a, b) },
			func(a, b domain.Response) int { return CompareQuestionNumbers(v, a, b) },
			func(a, b domain.Response) int { return giverTeams(v, a, b) },
			func(a, b domain.Response) int { return giverNames(v, a, b) },
			func(a, b domain.Response) int { return CompareAnswers(v, a, b) },
			compareIDs,
		)
	}
}

// ByTeamRecipientQuestionTeamGiver is ByRecipientQuestionTeamGiver with the
// recipient team key first.
func ByTeamRecipientQuestionTeamGiver(v View) Cmp {
	return func(a, b domain.Response) int {
		return chain(a, b,
			func(a, b domain.Response) int { return recipientTeams(v, a, b) },
			func(a, b domain.Response) int { return recipientNames(v, a, b) },
			func(a, b domain.Response) int { return CompareQuestionNumbers(v, a, b) },
			func(a, b domain.Response) int { return giverTeams(v, a, b) },
			func(a, b domain.Response) int { return giverNames(v, a, b) },
			func(a, b domain.Response) int { return CompareAnswers(v, a, b) },
			compareIDs,
		)
	}
}

// ByTeamQuestionRecipientTeamGiver sorts by recipient team, question number,
// recipient name, giver team, giver name, answer, ID. Drives the
// recipient-team → question view.
func ByTeamQuestionRecipientTeamGiver(v View) Cmp {
	return func(a, b domain.Response) int {
		return chain(a, b,
			func(a, b domain.Response) int { return recipientTeams(v, a, b) },
			func(a, b domain.Response) int { return CompareQuestionNumbers(v, a, b) },
			func(a, b domain.Response) int { return recipientNames(v, a, b) },
			func(a, b domain.Response) int { return giverTeams(v, a, b) },
			func(a, b domain.Response) int { return giverNames(v, a, b) },
			func(a, b domain.Response) int { return CompareAnswers(v, a, b) },
			compareIDs,
		)
	}
}

// ByTeamQuestionGiverTeamRecipient sorts by giver team, question number,
// giver name, recipient team, recipient name, answer, ID. Drives the
// giver-team → question view.
func ByTeamQuestionGiverTeamRecipient(v View) Cmp {
	return func(a, b domain.Response) int {
		return chain(a, b,
			func(a, b domain.Response) int { return giverTeams(v, a, b) },
			func(a, b domain.Response) int { return CompareQuestionNumbers(v, a, b) },
			func(a, b domain.Response) int { return giverNames(v, a, b) },
			func(a, b domain.Response) int { return recipientTeams(v, a, b) },
			func(a, b domain.Response) int { return recipientNames(v, a, b) },
			func(a, b domain.Response) int { return CompareAnswers(v, a, b) },
			compareIDs,
		)
	}
}

// ByRecipientNameEmailGiverNameEmail sorts by recipient display name,
// recipient identifier, giver display name, giver identifier, answer, ID.
// Used for CSV-style export ordering where identifiers break name ties.
func ByRecipientNameEmailGiverNameEmail(v View) Cmp {
	return func(a, b domain.Response) int {
		return chain(a, b,
			func(a, b domain.Response) int {
				return CompareNames(v.DisplayName(a.Recipient), v.DisplayName(b.Recipient),
					v.RecipientVisible(a), v.RecipientVisible(b))
			},
			func(a, b domain.Response) int {
				return CompareNames(a.Recipient, b.Recipient,
					v.RecipientVisible(a), v.RecipientVisible(b))
			},
			func(a, b domain.Response) int {
				return CompareNames(v.DisplayName(a.Giver), v.DisplayName(b.Giver),
					v.GiverVisible(a), v.GiverVisible(b))
			},
			func(a, b domain.Response) int {
				return CompareNames(a.Giver, b.Giver,
					v.GiverVisible(a), v.GiverVisible(b))
			},
			func(a, b domain.Response) int { return CompareAnswers(v, a, b) },
			compareIDs,
		)
	}
}

func giverSections(a, b domain.Response) int {
	return strings.Compare(a.GiverSection, b.GiverSection)
}

func recipientSections(a, b domain.Response) int {
	return strings.Compare(a.RecipientSection, b.RecipientSection)
}
