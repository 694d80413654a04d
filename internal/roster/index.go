// Package roster derives the membership indices of a course roster and
// answers roster-backed lookups: which students form a team, which teams sit
// in a section, and what name, team, or section an identifier resolves to
// from the roster itself (as opposed to the response name tables).
package roster

import (
	"cmp"
	"slices"
	"strings"

	"github.com/ahrav/go-feedback/internal/anonymize"
	"github.com/ahrav/go-feedback/internal/domain"
)

// Index holds the two derived membership tables. Both are rebuilt fully at
// construction; there is no incremental update path.
type Index struct {
	roster *domain.Roster

	// teamMembers maps team name to member identifiers. Instructors are
	// collapsed under the synthetic domain.InstructorsTeam key.
	teamMembers map[string]map[string]struct{}

	// sectionTeams maps section name to the team names present in it.
	// Instructors have no section membership.
	sectionTeams map[string]map[string]struct{}
}

// NewIndex builds the membership indices from the roster.
func NewIndex(r *domain.Roster) *Index {
	x := &Index{
		roster:       r,
		teamMembers:  make(map[string]map[string]struct{}),
		sectionTeams: make(map[string]map[string]struct{}),
	}
	for _, s := range r.Students() {
		addMember(x.teamMembers, s.Team, s.Email)
		addMember(x.sectionTeams, s.Section, s.Team)
	}
	for _, ins := range r.Instructors() {
		addMember(x.teamMembers, domain.InstructorsTeam, ins.Email)
	}
	return x
}

func addMember(table map[string]map[string]struct{}, key, member string) {
	set, ok := table[key]
	if !ok {
		set = make(map[string]struct{})
		table[key] = set
	}
	set[member] = struct{}{}
}

// Roster returns the underlying roster.
func (x *Index) Roster() *domain.Roster { return x.roster }

// TeamMembers returns the sorted member identifiers of a team, or an empty
// slice for an unknown team. The synthetic instructors team resolves here
// even though Teams omits it.
func (x *Index) TeamMembers(team string) []string {
	return sortedKeys(x.teamMembers[team])
}

// TeamsInSection returns the sorted team names present in a section, or an
// empty slice for an unknown section.
func (x *Index) TeamsInSection(section string) []string {
	return sortedKeys(x.sectionTeams[section])
}

// Sections returns the sorted section names in the course.
func (x *Index) Sections() []string {
	return sortedKeys(x.sectionTeams)
}

// Teams returns the sorted team names, excluding the synthetic instructors
// team.
func (x *Index) Teams() []string {
	teams := make([]string, 0, len(x.teamMembers))
	for team := range x.teamMembers {
		if team != domain.InstructorsTeam {
			teams = append(teams, team)
		}
	}
	slices.Sort(teams)
	return teams
}

// TeamsExcluding returns Teams with one team removed. Used for questions
// whose recipients are every team but the giver's own.
func (x *Index) TeamsExcluding(team string) []string {
	teams := x.Teams()
	return slices.DeleteFunc(teams, func(t string) bool { return t == team })
}

// TeammatesOf returns the sorted teammates of a student, including the
// student itself when includeSelf is set.
func (x *Index) TeammatesOf(s domain.Student, includeSelf bool) []string {
	members := x.TeamMembers(s.Team)
	if includeSelf {
		return members
	}
	return slices.DeleteFunc(members, func(m string) bool { return m == s.Email })
}

// SortedStudentEmails returns all student identifiers ordered by section,
// then name, then email.
func (x *Index) SortedStudentEmails() []string {
	students := x.roster.Students()
	slices.SortFunc(students, func(a, b domain.Student) int {
		if c := strings.Compare(a.Section, b.Section); c != 0 {
			return c
		}
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.Email, b.Email)
	})
	emails := make([]string, len(students))
	for i, s := range students {
		emails[i] = s.Email
	}
	return emails
}

// SortedInstructorEmails returns all instructor identifiers ordered by name,
// then email.
func (x *Index) SortedInstructorEmails() []string {
	instructors := x.roster.Instructors()
	slices.SortFunc(instructors, func(a, b domain.Instructor) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.Email, b.Email)
	})
	emails := make([]string, len(instructors))
	for i, ins := range instructors {
		emails[i] = ins.Email
	}
	return emails
}

// FullName resolves a displayable full name from the roster: a student's or
// instructor's name, a team name for team identifiers (including the
// "<member>'s Team" form), the nobody text for the general sentinel, and an
// empty string otherwise.
func (x *Index) FullName(id string) string { return x.name(id, true) }

// LastName resolves a displayable last name from the roster, with the same
// fallbacks as FullName. Instructors and teams have no distinct last name.
func (x *Index) LastName(id string) string { return x.name(id, false) }

func (x *Index) name(id string, full bool) string {
	if id == domain.GeneralRecipient {
		return domain.NobodyText
	}
	if s, ok := x.roster.StudentByEmail(id); ok {
		if full {
			return s.Name
		}
		return s.LastName
	}
	if ins, ok := x.roster.InstructorByEmail(id); ok {
		return ins.Name
	}
	if _, ok := x.teamMembers[id]; ok {
		return id
	}
	if i := strings.Index(id, domain.TeamSuffix); i >= 0 {
		return x.TeamName(id[:i])
	}
	return ""
}

// TeamName resolves the team of an identifier from the roster: a student's
// team, the synthetic instructors team for instructors, the nobody text for
// the general sentinel, and an empty string otherwise.
func (x *Index) TeamName(id string) string {
	if id == domain.GeneralRecipient {
		return domain.NobodyText
	}
	if s, ok := x.roster.StudentByEmail(id); ok {
		return s.Team
	}
	if x.roster.IsInstructor(id) {
		return domain.InstructorsTeam
	}
	return ""
}

// Section resolves the section of an identifier from the roster. Instructors
// and the general sentinel have no section and report NoSpecificRecipient;
// unknown identifiers report an empty string.
func (x *Index) Section(id string) string {
	if s, ok := x.roster.StudentByEmail(id); ok {
		return s.Section
	}
	if x.roster.IsInstructor(id) || id == domain.GeneralRecipient {
		return domain.NoSpecificRecipient
	}
	return ""
}

// IsPersonEmail reports whether the identifier belongs to a student or
// instructor on the roster. Pseudonyms never qualify.
func (x *Index) IsPersonEmail(id string) bool {
	if anonymize.IsPseudonym(id) {
		return false
	}
	return x.roster.IsStudent(id) || x.roster.IsInstructor(id)
}

// DisplayableEmail returns the identifier when it belongs to a person on the
// roster, and the nobody text otherwise.
func (x *Index) DisplayableEmail(id string) string {
	if x.IsPersonEmail(id) {
		return id
	}
	return domain.NobodyText
}

func sortedKeys[V any](set map[string]V) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int { return cmp.Compare(a, b) })
	return keys
}
