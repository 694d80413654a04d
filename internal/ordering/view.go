// Package ordering provides the family of total orders over responses and
// the insertion-ordered grouping containers used by result views.
//
// Every ordering is a priority-ordered chain of keys ending in the response
// ID, so all of them are strict total orders and any key prefix groups
// records deterministically. Orderings are pure functions of an explicit
// read-only View; nothing is captured at construction time.
package ordering

import "github.com/ahrav/go-feedback/internal/domain"

// View is the minimal read-only surface an ordering needs from the results
// bundle: visibility predicates, name-table lookups, question resolution, and
// canonical answer text. The bundle implements it; tests may supply fakes.
type View interface {
	// GiverVisible reports whether the response's giver identity may be
	// shown to the current viewer.
	GiverVisible(r domain.Response) bool

	// RecipientVisible reports whether the response's recipient identity
	// may be shown to the current viewer.
	RecipientVisible(r domain.Response) bool

	// RawName returns the name-table value for an identifier, which may be
	// a marker sentinel, or an empty string when absent. Orderings compare
	// raw values so the marker priorities apply.
	RawName(id string) string

	// DisplayName returns the graceful display name for an identifier
	// (unknown/nobody fallbacks applied).
	DisplayName(id string) string

	// TeamName returns the team-table value for an identifier, or an empty
	// string when the identifier has no team entry.
	TeamName(id string) string

	// Question resolves the owning question of a response. Orderings treat
	// an unresolvable question as equal on the question key.
	Question(id string) (domain.Question, bool)

	// AnswerText returns the canonical string form of a response's answer.
	AnswerText(r domain.Response) string
}

// Cmp is a three-way comparison over responses, as consumed by
// slices.SortFunc.
type Cmp func(a, b domain.Response) int

// teamOrName is the grouping key for "by team" orderings: the participant's
// team, or the display name when no team entry exists (general recipients,
// instructors without teams in older tables).
func teamOrName(v View, id string) string {
	if t := v.TeamName(id); t != "" {
		return t
	}
	return v.DisplayName(id)
}
