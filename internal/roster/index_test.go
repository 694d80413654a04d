package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-feedback/internal/anonymize"
	"github.com/ahrav/go-feedback/internal/domain"
)

func testIndex(t *testing.T) *Index {
	t.Helper()
	r := domain.NewRoster(
		[]domain.Student{
			{Email: "alice@example.com", Name: "Alice Zimmer", LastName: "Zimmer", Team: "Team A", Section: "S1"},
			{Email: "bob@example.com", Name: "Bob Young", LastName: "Young", Team: "Team A", Section: "S1"},
			{Email: "carol@example.com", Name: "Carol Xu", LastName: "Xu", Team: "Team B", Section: "S2"},
		},
		[]domain.Instructor{
			{Email: "ina@example.com", Name: "Ina Vega"},
		},
	)
	return NewIndex(r)
}

func TestIndexMembership(t *testing.T) {
	x := testIndex(t)

	assert.Equal(t, []string{"alice@example.com", "bob@example.com"}, x.TeamMembers("Team A"))
	assert.Equal(t, []string{"ina@example.com"}, x.TeamMembers(domain.InstructorsTeam))
	assert.Empty(t, x.TeamMembers("Team Z"))

	assert.Equal(t, []string{"Team A"}, x.TeamsInSection("S1"))
	assert.Empty(t, x.TeamsInSection("S9"))

	assert.Equal(t, []string{"S1", "S2"}, x.Sections())
	assert.Equal(t, []string{"Team A", "Team B"}, x.Teams(), "instructors team is excluded")
	assert.Equal(t, []string{"Team B"}, x.TeamsExcluding("Team A"))
}

func TestTeammatesOf(t *testing.T) {
	x := testIndex(t)
	alice, ok := x.Roster().StudentByEmail("alice@example.com")
	require.True(t, ok)

	assert.Equal(t, []string{"bob@example.com"}, x.TeammatesOf(alice, false))
	assert.Equal(t, []string{"alice@example.com", "bob@example.com"}, x.TeammatesOf(alice, true))
}

func TestSortedEmails(t *testing.T) {
	x := testIndex(t)

	assert.Equal(t,
		[]string{"alice@example.com", "bob@example.com", "carol@example.com"},
		x.SortedStudentEmails(), "section, then name, then email")
	assert.Equal(t, []string{"ina@example.com"}, x.SortedInstructorEmails())
}

func TestNameResolution(t *testing.T) {
	x := testIndex(t)

	tests := []struct {
		name string
		id   string
		want string
	}{
		{"student", "alice@example.com", "Alice Zimmer"},
		{"instructor", "ina@example.com", "Ina Vega"},
		{"team identifier", "Team A", "Team A"},
		{"member team form", "bob@example.com" + domain.TeamSuffix, "Team A"},
		{"general sentinel", domain.GeneralRecipient, domain.NobodyText},
		{"unknown", "ghost@example.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, x.FullName(tt.id))
		})
	}

	assert.Equal(t, "Zimmer", x.LastName("alice@example.com"))
	assert.Equal(t, "Ina Vega", x.LastName("ina@example.com"), "instructors have no distinct last name")
}

func TestTeamAndSectionResolution(t *testing.T) {
	x := testIndex(t)

	assert.Equal(t, "Team A", x.TeamName("alice@example.com"))
	assert.Equal(t, domain.InstructorsTeam, x.TeamName("ina@example.com"))
	assert.Equal(t, domain.NobodyText, x.TeamName(domain.GeneralRecipient))
	assert.Equal(t, "", x.TeamName("ghost@example.com"))

	assert.Equal(t, "S2", x.Section("carol@example.com"))
	assert.Equal(t, domain.NoSpecificRecipient, x.Section("ina@example.com"))
	assert.Equal(t, domain.NoSpecificRecipient, x.Section(domain.GeneralRecipient))
	assert.Equal(t, "", x.Section("ghost@example.com"))
}

func TestIsPersonEmail(t *testing.T) {
	x := testIndex(t)

	assert.True(t, x.IsPersonEmail("alice@example.com"))
	assert.True(t, x.IsPersonEmail("ina@example.com"))
	assert.False(t, x.IsPersonEmail("Team A"))
	assert.False(t, x.IsPersonEmail(anonymize.Identifier(domain.ParticipantStudents, "Alice Zimmer")))

	assert.Equal(t, "alice@example.com", x.DisplayableEmail("alice@example.com"))
	assert.Equal(t, domain.NobodyText, x.DisplayableEmail("Team A"))
}
