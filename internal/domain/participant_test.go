package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidParticipantType(t *testing.T) {
	valid := []ParticipantType{
		ParticipantStudents,
		ParticipantInstructors,
		ParticipantTeams,
		ParticipantSelf,
		ParticipantOwnTeam,
		ParticipantOwnTeamMembers,
		ParticipantOwnTeamMembersIncludingSelf,
		ParticipantNone,
	}
	for _, pt := range valid {
		assert.True(t, IsValidParticipantType(pt), "type %s should be valid", pt)
	}

	assert.False(t, IsValidParticipantType("TEAM_MEMBERS"))
	assert.False(t, IsValidParticipantType(""))
	assert.False(t, IsValidParticipantType("students"))
}

func TestSingularForm(t *testing.T) {
	tests := []struct {
		participantType ParticipantType
		want            string
	}{
		{ParticipantStudents, "Student"},
		{ParticipantOwnTeamMembers, "Student"},
		{ParticipantOwnTeamMembersIncludingSelf, "Student"},
		{ParticipantInstructors, "Instructor"},
		{ParticipantTeams, "Team"},
		{ParticipantOwnTeam, "Team"},
		{ParticipantSelf, "Self"},
		{ParticipantNone, "Nobody"},
		{ParticipantType("BOGUS"), "Participant"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.participantType.SingularForm(), "type %s", tt.participantType)
	}
}

func TestParticipantVisible(t *testing.T) {
	// SELF and NONE are visible even when the response flag says hidden.
	assert.True(t, ParticipantVisible(ParticipantSelf, false))
	assert.True(t, ParticipantVisible(ParticipantNone, false))

	assert.False(t, ParticipantVisible(ParticipantStudents, false))
	assert.True(t, ParticipantVisible(ParticipantStudents, true))
	assert.False(t, ParticipantVisible(ParticipantTeams, false))
}
