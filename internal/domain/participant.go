// Package domain defines the core value types of the feedback results engine:
// participant types, responses, questions, roster entries, visibility records,
// and the sentinel identifiers shared by every layer above it.
//
// The package is deliberately free of I/O. All types are plain values; the
// aggregation pipeline in internal/results composes them into a read-only
// bundle after a single synchronous construction pass.
package domain

// ParticipantType restricts who may give or receive a response for a question.
// Values arriving from untrusted input may fall outside this set; resolution
// code must degrade to an empty eligible set for unrecognized values rather
// than failing the surrounding report.
type ParticipantType string

// ParticipantType enum values.
const (
	// ParticipantStudents targets every student in the course.
	ParticipantStudents ParticipantType = "STUDENTS"

	// ParticipantInstructors targets every instructor in the course.
	ParticipantInstructors ParticipantType = "INSTRUCTORS"

	// ParticipantTeams targets teams as a whole rather than their members.
	ParticipantTeams ParticipantType = "TEAMS"

	// ParticipantSelf targets the question creator (giver side) or the
	// responding participant itself (recipient side).
	ParticipantSelf ParticipantType = "SELF"

	// ParticipantOwnTeam targets the participant's own team.
	ParticipantOwnTeam ParticipantType = "OWN_TEAM"

	// ParticipantOwnTeamMembers targets the participant's teammates,
	// excluding the participant.
	ParticipantOwnTeamMembers ParticipantType = "OWN_TEAM_MEMBERS"

	// ParticipantOwnTeamMembersIncludingSelf targets the participant's
	// teammates, including the participant.
	ParticipantOwnTeamMembersIncludingSelf ParticipantType = "OWN_TEAM_MEMBERS_INCLUDING_SELF"

	// ParticipantNone means the question has no specific recipient; the
	// general sentinel identifier stands in for the missing party.
	ParticipantNone ParticipantType = "NONE"
)

// IsValidParticipantType reports whether the value is a recognized
// participant type.
func IsValidParticipantType(t ParticipantType) bool {
	switch t {
	case ParticipantStudents, ParticipantInstructors, ParticipantTeams,
		ParticipantSelf, ParticipantOwnTeam, ParticipantOwnTeamMembers,
		ParticipantOwnTeamMembersIncludingSelf, ParticipantNone:
		return true
	default:
		return false
	}
}

// SingularForm returns the display noun used when a single participant of
// this type is named, e.g. in generated pseudonyms ("Anonymous Student 42").
func (t ParticipantType) SingularForm() string {
	switch t {
	case ParticipantStudents, ParticipantOwnTeamMembers, ParticipantOwnTeamMembersIncludingSelf:
		return "Student"
	case ParticipantInstructors:
		return "Instructor"
	case ParticipantTeams, ParticipantOwnTeam:
		return "Team"
	case ParticipantSelf:
		return "Self"
	case ParticipantNone:
		return "Nobody"
	default:
		return "Participant"
	}
}

// AlwaysVisible reports whether identities of this participant type are shown
// regardless of the per-response visibility flags. SELF and NONE participants
// carry no information worth hiding: the viewer either is the participant or
// there is no participant at all.
func (t ParticipantType) AlwaysVisible() bool {
	return t == ParticipantSelf || t == ParticipantNone
}

// ParticipantVisible combines a per-response visibility flag with the
// always-visible rule for the participant type.
func ParticipantVisible(t ParticipantType, visible bool) bool {
	return visible || t.AlwaysVisible()
}
