package participants

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ahrav/go-feedback/internal/anonymize"
	"github.com/ahrav/go-feedback/internal/domain"
	"github.com/ahrav/go-feedback/internal/roster"
)

func testResolver(t *testing.T) *Resolver {
	t.Helper()
	r := domain.NewRoster(
		[]domain.Student{
			{Email: "alice@example.com", Name: "Alice Zimmer", Team: "Team A", Section: "S1"},
			{Email: "bob@example.com", Name: "Bob Young", Team: "Team A", Section: "S1"},
			{Email: "carol@example.com", Name: "Carol Xu", Team: "Team B", Section: "S2"},
		},
		[]domain.Instructor{
			{Email: "ina@example.com", Name: "Ina Vega"},
		},
	)
	return NewResolver(nil, roster.NewIndex(r))
}

func question(giver, recipient domain.ParticipantType) domain.Question {
	return domain.Question{ID: "q", Number: 1, GiverType: giver, RecipientType: recipient, Creator: "ina@example.com"}
}

func TestPossibleRecipients_Student(t *testing.T) {
	res := testResolver(t)

	tests := []struct {
		name          string
		recipientType domain.ParticipantType
		want          []string
	}{
		{"students excludes self", domain.ParticipantStudents,
			[]string{"bob@example.com", "carol@example.com"}},
		{"teammates excludes self", domain.ParticipantOwnTeamMembers,
			[]string{"bob@example.com"}},
		{"teammates including self", domain.ParticipantOwnTeamMembersIncludingSelf,
			[]string{"alice@example.com", "bob@example.com"}},
		{"instructors", domain.ParticipantInstructors,
			[]string{"ina@example.com"}},
		{"teams excludes own", domain.ParticipantTeams,
			[]string{"Team B"}},
		{"own team", domain.ParticipantOwnTeam,
			[]string{"Team A"}},
		{"self", domain.ParticipantSelf,
			[]string{"alice@example.com"}},
		{"none is the general recipient", domain.ParticipantNone,
			[]string{domain.GeneralRecipient}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := question(domain.ParticipantStudents, tt.recipientType)
			assert.Equal(t, tt.want, res.PossibleRecipients(q, "alice@example.com"))
		})
	}
}

func TestPossibleRecipients_Instructor(t *testing.T) {
	res := testResolver(t)

	q := question(domain.ParticipantInstructors, domain.ParticipantOwnTeam)
	assert.Equal(t, []string{domain.InstructorsTeam}, res.PossibleRecipients(q, "ina@example.com"))

	q = question(domain.ParticipantInstructors, domain.ParticipantInstructors)
	assert.Empty(t, res.PossibleRecipients(q, "ina@example.com"), "sole instructor has no peers")

	q = question(domain.ParticipantInstructors, domain.ParticipantStudents)
	assert.Len(t, res.PossibleRecipients(q, "ina@example.com"), 3)
}

func TestPossibleRecipients_Team(t *testing.T) {
	res := testResolver(t)

	q := question(domain.ParticipantTeams, domain.ParticipantTeams)
	assert.Equal(t, []string{"Team B"}, res.PossibleRecipients(q, "Team A"))

	q = question(domain.ParticipantTeams, domain.ParticipantOwnTeam)
	assert.Equal(t, []string{"Team A"}, res.PossibleRecipients(q, "Team A"))

	q = question(domain.ParticipantTeams, domain.ParticipantOwnTeamMembersIncludingSelf)
	assert.Equal(t, []string{"alice@example.com", "bob@example.com"}, res.PossibleRecipients(q, "Team A"))
}

func TestPossibleGivers(t *testing.T) {
	res := testResolver(t)

	// Base sets by giver type, recipient known to be an instructor.
	q := question(domain.ParticipantStudents, domain.ParticipantInstructors)
	assert.Equal(t,
		[]string{"alice@example.com", "bob@example.com", "carol@example.com"},
		res.PossibleGivers(q, "ina@example.com"))

	// A student recipient narrows teammate questions to their own team.
	q = question(domain.ParticipantStudents, domain.ParticipantOwnTeamMembersIncludingSelf)
	assert.Equal(t,
		[]string{"alice@example.com", "bob@example.com"},
		res.PossibleGivers(q, "alice@example.com"))

	q = question(domain.ParticipantStudents, domain.ParticipantSelf)
	assert.Equal(t, []string{"alice@example.com"}, res.PossibleGivers(q, "alice@example.com"))

	// SELF giver resolves to the question creator.
	q = question(domain.ParticipantSelf, domain.ParticipantNone)
	assert.Equal(t, []string{"ina@example.com"}, res.PossibleGivers(q, domain.GeneralRecipient))

	// Team recipient of an own-team question maps back to its members.
	q = question(domain.ParticipantStudents, domain.ParticipantOwnTeam)
	assert.Equal(t,
		[]string{"alice@example.com", "bob@example.com"},
		res.PossibleGivers(q, "Team A"))
}

func TestPossibleRecipientsGeneral(t *testing.T) {
	res := testResolver(t)

	q := question(domain.ParticipantStudents, domain.ParticipantOwnTeamMembers)
	assert.Equal(t,
		[]string{"alice@example.com", "bob@example.com", "carol@example.com"},
		res.PossibleRecipientsGeneral(q))

	// SELF recipients take their shape from the giver type.
	q = question(domain.ParticipantTeams, domain.ParticipantSelf)
	assert.Equal(t, []string{"Team A", "Team B"}, res.PossibleRecipientsGeneral(q))

	q = question(domain.ParticipantStudents, domain.ParticipantNone)
	assert.Equal(t, []string{domain.NobodyText}, res.PossibleRecipientsGeneral(q))
}

func TestResolver_Degradation(t *testing.T) {
	res := testResolver(t)

	// Unrecognized participant types degrade to empty, never panic.
	q := question(domain.ParticipantType("BOGUS"), domain.ParticipantType("BOGUS"))
	assert.Empty(t, res.PossibleGivers(q, "alice@example.com"))
	assert.Empty(t, res.PossibleRecipients(q, "alice@example.com"))
	assert.Empty(t, res.PossibleRecipientsGeneral(q))

	// Pseudonym identifiers are rejected outright.
	anon := anonymize.Identifier(domain.ParticipantStudents, "Alice Zimmer")
	q = question(domain.ParticipantStudents, domain.ParticipantStudents)
	assert.Empty(t, res.PossibleGivers(q, anon))
	assert.Empty(t, res.PossibleRecipients(q, anon))
}
