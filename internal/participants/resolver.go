// Package participants computes, for a question, the full set of identifiers
// eligible to give or receive a response. Renderers diff these sets against
// the submitted responses to surface missing-response placeholder rows.
//
// Resolution dispatches on what the known concrete identity is (student,
// instructor, team name, or the general sentinel) and then applies the
// counterpart role's participant type. It looks only at participant-type
// structure, never at visibility state. Unrecognized participant types are
// logged and degrade to an empty set; pseudonym identifiers are rejected
// outright.
package participants

import (
	"log/slog"

	"github.com/ahrav/go-feedback/internal/anonymize"
	"github.com/ahrav/go-feedback/internal/domain"
	"github.com/ahrav/go-feedback/internal/roster"
)

// Resolver answers possible-giver and possible-recipient queries against one
// roster index.
type Resolver struct {
	logger *slog.Logger
	index  *roster.Index
}

// NewResolver creates a resolver over the given index. A nil logger falls
// back to slog.Default.
func NewResolver(logger *slog.Logger, index *roster.Index) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{logger: logger, index: index}
}

// PossibleGivers returns the identifiers eligible to have answered the
// question about the given recipient.
func (r *Resolver) PossibleGivers(q domain.Question, recipientID string) []string {
	if anonymize.IsPseudonym(recipientID) {
		return []string{}
	}
	switch {
	case r.index.Roster().IsStudent(recipientID):
		s, _ := r.index.Roster().StudentByEmail(recipientID)
		return r.possibleGiversForStudent(q, s)
	case r.index.Roster().IsInstructor(recipientID):
		return r.giversByType(q)
	case recipientID == domain.GeneralRecipient:
		return r.giversByType(q)
	default:
		return r.possibleGiversForTeam(q, recipientID)
	}
}

// PossibleGiversGeneral returns the eligible givers for the question without
// a concrete recipient.
func (r *Resolver) PossibleGiversGeneral(q domain.Question) []string {
	return r.giversByType(q)
}

// giversByType is the base giver set determined by the giver type alone.
func (r *Resolver) giversByType(q domain.Question) []string {
	switch q.GiverType {
	case domain.ParticipantStudents:
		return r.index.SortedStudentEmails()
	case domain.ParticipantInstructors:
		return r.index.SortedInstructorEmails()
	case domain.ParticipantTeams:
		return r.index.Teams()
	case domain.ParticipantSelf:
		return []string{q.Creator}
	default:
		r.logger.Error("invalid giver type", "question", q.ID, "giver_type", string(q.GiverType))
		return []string{}
	}
}

// possibleGiversForStudent narrows the base giver set by the recipient type's
// relationship to the concrete student recipient.
func (r *Resolver) possibleGiversForStudent(q domain.Question, recipient domain.Student) []string {
	givers := r.giversByType(q)

	switch q.RecipientType {
	case domain.ParticipantSelf:
		return []string{recipient.Email}
	case domain.ParticipantOwnTeamMembers:
		return intersect(givers, r.index.TeammatesOf(recipient, false))
	case domain.ParticipantOwnTeamMembersIncludingSelf:
		return intersect(givers, r.index.TeammatesOf(recipient, true))
	default:
		return givers
	}
}

// possibleGiversForTeam resolves givers when the recipient is a team name.
func (r *Resolver) possibleGiversForTeam(q domain.Question, recipientTeam string) []string {
	switch q.RecipientType {
	case domain.ParticipantTeams:
		return r.giversByType(q)
	case domain.ParticipantOwnTeam:
		if q.GiverType == domain.ParticipantTeams {
			return []string{recipientTeam}
		}
		return r.index.TeamMembers(recipientTeam)
	default:
		return []string{}
	}
}

// PossibleRecipients returns the identifiers eligible to receive a response
// to the question from the given giver.
func (r *Resolver) PossibleRecipients(q domain.Question, giverID string) []string {
	if anonymize.IsPseudonym(giverID) {
		return []string{}
	}
	switch {
	case r.index.Roster().IsStudent(giverID):
		s, _ := r.index.Roster().StudentByEmail(giverID)
		return r.possibleRecipientsForStudent(q, s)
	case r.index.Roster().IsInstructor(giverID):
		return r.possibleRecipientsForInstructor(q, giverID)
	default:
		return r.possibleRecipientsForTeam(q, giverID)
	}
}

func (r *Resolver) possibleRecipientsForStudent(q domain.Question, giver domain.Student) []string {
	switch q.RecipientType {
	case domain.ParticipantStudents:
		return remove(r.index.SortedStudentEmails(), giver.Email)
	case domain.ParticipantOwnTeamMembers:
		return r.index.TeammatesOf(giver, false)
	case domain.ParticipantOwnTeamMembersIncludingSelf:
		return r.index.TeammatesOf(giver, true)
	case domain.ParticipantInstructors:
		return r.index.SortedInstructorEmails()
	case domain.ParticipantTeams:
		return r.index.TeamsExcluding(giver.Team)
	case domain.ParticipantOwnTeam:
		return []string{giver.Team}
	case domain.ParticipantSelf:
		return []string{giver.Email}
	case domain.ParticipantNone:
		return []string{domain.GeneralRecipient}
	default:
		r.logger.Error("invalid recipient type", "question", q.ID, "recipient_type", string(q.RecipientType))
		return []string{}
	}
}

func (r *Resolver) possibleRecipientsForInstructor(q domain.Question, giverEmail string) []string {
	switch q.RecipientType {
	case domain.ParticipantStudents:
		return r.index.SortedStudentEmails()
	case domain.ParticipantInstructors:
		return remove(r.index.SortedInstructorEmails(), giverEmail)
	case domain.ParticipantTeams:
		return r.index.Teams()
	case domain.ParticipantSelf:
		return []string{giverEmail}
	case domain.ParticipantOwnTeam:
		return []string{domain.InstructorsTeam}
	case domain.ParticipantNone:
		return []string{domain.GeneralRecipient}
	default:
		r.logger.Error("invalid recipient type", "question", q.ID, "recipient_type", string(q.RecipientType))
		return []string{}
	}
}

func (r *Resolver) possibleRecipientsForTeam(q domain.Question, givingTeam string) []string {
	switch q.RecipientType {
	case domain.ParticipantTeams:
		return r.index.TeamsExcluding(givingTeam)
	case domain.ParticipantSelf, domain.ParticipantOwnTeam:
		return []string{givingTeam}
	case domain.ParticipantInstructors:
		return r.index.SortedInstructorEmails()
	case domain.ParticipantStudents:
		return r.index.SortedStudentEmails()
	case domain.ParticipantOwnTeamMembersIncludingSelf:
		return r.index.TeamMembers(givingTeam)
	case domain.ParticipantNone:
		return []string{domain.GeneralRecipient}
	default:
		r.logger.Error("invalid recipient type", "question", q.ID, "recipient_type", string(q.RecipientType))
		return []string{}
	}
}

// PossibleRecipientsGeneral returns the eligible recipients for the question
// without a concrete giver. When the recipient type is SELF the giver type
// determines who the "self" actually is.
func (r *Resolver) PossibleRecipientsGeneral(q domain.Question) []string {
	recipientType := q.RecipientType
	if recipientType == domain.ParticipantSelf {
		recipientType = q.GiverType
	}

	switch recipientType {
	case domain.ParticipantStudents, domain.ParticipantOwnTeamMembers,
		domain.ParticipantOwnTeamMembersIncludingSelf:
		return r.index.SortedStudentEmails()
	case domain.ParticipantInstructors:
		return r.index.SortedInstructorEmails()
	case domain.ParticipantTeams, domain.ParticipantOwnTeam:
		return r.index.Teams()
	case domain.ParticipantNone:
		return []string{domain.NobodyText}
	default:
		r.logger.Error("invalid recipient type", "question", q.ID, "recipient_type", string(recipientType))
		return []string{}
	}
}

// intersect keeps the elements of list that are also in keep, preserving
// list order.
func intersect(list, keep []string) []string {
	set := make(map[string]struct{}, len(keep))
	for _, k := range keep {
		set[k] = struct{}{}
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		if _, ok := set[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

// remove drops every occurrence of v from list, preserving order.
func remove(list []string, v string) []string {
	out := make([]string, 0, len(list))
	for _, e := range list {
		if e != v {
			out = append(out, e)
		}
	}
	return out
}
