// Package results assembles the viewable results of one feedback session: a
// read-only aggregate over responses, questions, roster, and visibility that
// exposes anonymization-consistent lookups, sorted and grouped views, and
// possible-participant resolution to renderers.
//
// Construction order is fixed: copy inputs, normalize legacy TEAMS givers,
// snapshot the actual responses, run the hide pass, build the roster
// indices. After New returns the bundle is immutable (apart from the
// explicit MarkComplete transition) and safe for concurrent readers.
package results

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/ahrav/go-feedback/internal/anonymize"
	"github.com/ahrav/go-feedback/internal/domain"
	"github.com/ahrav/go-feedback/internal/participants"
	"github.com/ahrav/go-feedback/internal/roster"
)

// Input carries everything needed to assemble a bundle. All collections are
// snapshotted; the caller keeps ownership of its arguments.
type Input struct {
	Session   domain.Session             `validate:"required"`
	Questions map[string]domain.Question `validate:"required"`
	Responses []domain.Response          `validate:"omitempty,dive"`
	Roster    *domain.Roster             `validate:"required"`

	// Tables are the identifier display tables built by the caller for
	// exactly the participants appearing in Responses.
	Tables domain.NameTables

	// Visibility is the precomputed per-response visibility policy.
	Visibility domain.VisibilityTable

	// Comments maps response ID to the comments attached to it.
	Comments map[string][]domain.Comment

	// Complete marks the bundle as fully populated. Partial builds leave it
	// false and call MarkComplete once the remaining pages are merged.
	Complete bool

	// Formatter stringifies answer payloads; nil defaults to PlainFormatter.
	Formatter Formatter

	// Logger receives degrade-path diagnostics; nil defaults to
	// slog.Default.
	Logger *slog.Logger
}

// Bundle is the aggregate root. All reads go through its methods so every
// consumer observes the same visibility and naming policy.
type Bundle struct {
	session   domain.Session
	questions map[string]domain.Question

	// responses is the displayable set; hidden identities are pseudonyms.
	responses []domain.Response

	// actual retains the real identities, correlated with responses by ID.
	// Used for anonymization-consistent computation only, never display.
	actual []domain.Response

	tables     domain.NameTables
	visibility domain.VisibilityTable
	comments   map[string][]domain.Comment

	index    *roster.Index
	resolver *participants.Resolver

	formatter Formatter
	complete  bool
}

// New assembles a bundle from a snapshot of inputs.
func New(in Input) (*Bundle, error) {
	if err := domain.Validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid results input: %w", err)
	}
	if in.Formatter == nil {
		in.Formatter = PlainFormatter{}
	}
	if in.Logger == nil {
		in.Logger = slog.Default()
	}

	tables := in.Tables.Clone()

	normalized := make([]domain.Response, len(in.Responses))
	for i, r := range in.Responses {
		normalized[i] = r.Clone()
		// Older TEAMS-giver responses stored the submitting member instead
		// of the team; rewrite to the team name before anything else sees
		// the giver field.
		if q, ok := in.Questions[r.QuestionID]; ok &&
			q.GiverType == domain.ParticipantTeams && in.Roster.IsStudent(r.Giver) {
			normalized[i].Giver = tables.Names[r.Giver+domain.TeamSuffix]
		}
	}

	actual := make([]domain.Response, len(normalized))
	for i, r := range normalized {
		actual[i] = r.Clone()
	}

	hidden := anonymize.HideIdentities(normalized, in.Questions, in.Visibility, tables)

	questions := make(map[string]domain.Question, len(in.Questions))
	for id, q := range in.Questions {
		questions[id] = q
	}

	visibility := make(domain.VisibilityTable, len(in.Visibility))
	maps.Copy(visibility, in.Visibility)

	comments := make(map[string][]domain.Comment, len(in.Comments))
	for id, cs := range in.Comments {
		comments[id] = slices.Clone(cs)
	}

	index := roster.NewIndex(in.Roster)

	b := &Bundle{
		session:    in.Session,
		questions:  questions,
		responses:  hidden.Responses,
		actual:     actual,
		tables:     hidden.Tables,
		visibility: visibility,
		comments:   comments,
		index:      index,
		resolver:   participants.NewResolver(in.Logger, index),
		formatter:  in.Formatter,
		complete:   in.Complete,
	}
	return b, nil
}

// Session returns the session metadata.
func (b *Bundle) Session() domain.Session { return b.session }

// Responses returns a copy of the displayable response list.
func (b *Bundle) Responses() []domain.Response {
	out := make([]domain.Response, len(b.responses))
	copy(out, b.responses)
	return out
}

// ActualResponses returns a copy of the real-identity response list. Callers
// must never render these.
func (b *Bundle) ActualResponses() []domain.Response {
	out := make([]domain.Response, len(b.actual))
	copy(out, b.actual)
	return out
}

// ActualResponse returns the real-identity counterpart of a displayable
// response by ID.
func (b *Bundle) ActualResponse(id string) (domain.Response, bool) {
	for _, r := range b.actual {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Response{}, false
}

// Question resolves a question by ID.
func (b *Bundle) Question(id string) (domain.Question, bool) {
	q, ok := b.questions[id]
	return q, ok
}

// Comments returns the comments attached to a response.
func (b *Bundle) Comments(responseID string) []domain.Comment {
	return b.comments[responseID]
}

// RosterIndex exposes the roster-derived membership indices.
func (b *Bundle) RosterIndex() *roster.Index { return b.index }

// SectionsInCourse returns the sorted section names of the course.
func (b *Bundle) SectionsInCourse() []string { return b.index.Sections() }

// Complete reports whether the bundle holds the full result set.
func (b *Bundle) Complete() bool { return b.complete }

// MarkComplete transitions a partially built bundle to complete. It is the
// only post-construction mutation.
func (b *Bundle) MarkComplete() { b.complete = true }

// GiverVisible reports whether the giver identity of a response may be shown.
// SELF and NONE giver types are always visible.
func (b *Bundle) GiverVisible(r domain.Response) bool {
	vis := b.visibility[r.ID]
	q, ok := b.questions[r.QuestionID]
	if !ok {
		return vis.Giver
	}
	return domain.ParticipantVisible(q.GiverType, vis.Giver)
}

// RecipientVisible reports whether the recipient identity of a response may
// be shown. SELF and NONE recipient types are always visible.
func (b *Bundle) RecipientVisible(r domain.Response) bool {
	vis := b.visibility[r.ID]
	q, ok := b.questions[r.QuestionID]
	if !ok {
		return vis.Recipient
	}
	return domain.ParticipantVisible(q.RecipientType, vis.Recipient)
}

// ResponseVisibility returns the raw visibility flags recorded for a
// response ID. A missing entry reads as both identities hidden. Most callers
// want GiverVisible/RecipientVisible, which also apply the always-visible
// participant types.
func (b *Bundle) ResponseVisibility(id string) domain.Visibility {
	return b.visibility[id]
}

// HasSomethingNewFor reports whether the bundle contains anything a student
// has not authored themselves: a response from someone else, or a comment on
// any visible response.
func (b *Bundle) HasSomethingNewFor(studentEmail string) bool {
	for _, r := range b.responses {
		if r.Giver != studentEmail {
			return true
		}
		if len(b.comments[r.ID]) > 0 {
			return true
		}
	}
	return false
}

// AnonymousIdentifier mints the pseudonym identifier for an arbitrary
// participant type and real name.
func (b *Bundle) AnonymousIdentifier(t domain.ParticipantType, realName string) string {
	return anonymize.Identifier(t, realName)
}

// AnonymousIdentifierForStudent mints the pseudonym identifier a hidden
// student would appear under, resolved by roster email.
func (b *Bundle) AnonymousIdentifierForStudent(email string) (string, bool) {
	s, ok := b.index.Roster().StudentByEmail(email)
	if !ok {
		return "", false
	}
	return anonymize.Identifier(domain.ParticipantStudents, s.Name), true
}

// AnonymousName returns the pseudonym display name for a type and real name.
func (b *Bundle) AnonymousName(t domain.ParticipantType, realName string) string {
	return anonymize.Name(t, realName)
}

// AnonymousNameWithoutID returns the generic pseudonym header for a type.
func (b *Bundle) AnonymousNameWithoutID(t domain.ParticipantType) string {
	return anonymize.NameWithoutID(t)
}

// PossibleGivers returns the identifiers eligible to have answered the
// question about the given recipient.
func (b *Bundle) PossibleGivers(q domain.Question, recipientID string) []string {
	return b.resolver.PossibleGivers(q, recipientID)
}

// PossibleGiversGeneral returns the eligible givers without a concrete
// recipient.
func (b *Bundle) PossibleGiversGeneral(q domain.Question) []string {
	return b.resolver.PossibleGiversGeneral(q)
}

// PossibleRecipients returns the identifiers eligible to receive a response
// to the question from the given giver.
func (b *Bundle) PossibleRecipients(q domain.Question, giverID string) []string {
	return b.resolver.PossibleRecipients(q, giverID)
}

// PossibleRecipientsGeneral returns the eligible recipients without a
// concrete giver.
func (b *Bundle) PossibleRecipientsGeneral(q domain.Question) []string {
	return b.resolver.PossibleRecipientsGeneral(q)
}

// ResponseAnswerHTML renders a response's answer for HTML pages.
func (b *Bundle) ResponseAnswerHTML(r domain.Response) string {
	q, _ := b.questions[r.QuestionID]
	return b.formatter.AnswerHTML(r, q, b)
}

// ResponseAnswerCSV renders a response's answer for CSV exports.
func (b *Bundle) ResponseAnswerCSV(r domain.Response) string {
	q, _ := b.questions[r.QuestionID]
	return b.formatter.AnswerCSV(r, q, b)
}

// AnswerText returns the canonical string form of a response's answer. Part
// of the ordering.View contract.
func (b *Bundle) AnswerText(r domain.Response) string {
	q, _ := b.questions[r.QuestionID]
	return b.formatter.AnswerText(r, q, b)
}

// RawName returns the name-table value for an identifier, empty when absent.
// Part of the ordering.View contract; display code wants NameFor instead.
func (b *Bundle) RawName(id string) string { return b.tables.Names[id] }

// NameFor returns the display name for an identifier with graceful
// fallbacks: unknown for missing entries, the nobody text for the nobody
// marker, and the team name for the team marker.
func (b *Bundle) NameFor(id string) string {
	name, ok := b.tables.Names[id]
	switch {
	case !ok, name == domain.MissingMarker:
		return domain.UnknownUserText
	case name == domain.NobodyMarker:
		return domain.NobodyText
	case name == domain.TeamMarker:
		return b.TeamNameFor(id)
	default:
		return name
	}
}

// DisplayName is NameFor under the ordering.View contract.
func (b *Bundle) DisplayName(id string) string { return b.NameFor(id) }

// LastNameFor returns the display last name for an identifier, with the same
// fallbacks as NameFor.
func (b *Bundle) LastNameFor(id string) string {
	name, ok := b.tables.LastNames[id]
	switch {
	case !ok, name == domain.MissingMarker:
		return domain.UnknownUserText
	case name == domain.NobodyMarker:
		return domain.NobodyText
	case name == domain.TeamMarker:
		return b.TeamNameFor(id)
	default:
		return name
	}
}

// TeamNameFor returns the team-table value for an identifier, or the nobody
// text for missing entries and the general sentinel. Part of the
// ordering.View contract.
func (b *Bundle) TeamNameFor(id string) string {
	team, ok := b.tables.TeamNames[id]
	if !ok || id == domain.GeneralRecipient {
		return domain.NobodyText
	}
	return team
}

// TeamName is TeamNameFor under the ordering.View contract, with the nobody
// fallback mapped back to empty so team grouping can fall through to names.
func (b *Bundle) TeamName(id string) string {
	team, ok := b.tables.TeamNames[id]
	if !ok || id == domain.GeneralRecipient {
		return ""
	}
	return team
}

// GiverName returns the display name of a response's giver. Unlike NameFor
// it never resolves the team marker; team givers display their marker-free
// team name already.
func (b *Bundle) GiverName(r domain.Response) string {
	return b.personName(r.Giver)
}

// RecipientName returns the display name of a response's recipient.
func (b *Bundle) RecipientName(r domain.Response) string {
	return b.personName(r.Recipient)
}

func (b *Bundle) personName(id string) string {
	name, ok := b.tables.Names[id]
	switch {
	case !ok, name == domain.MissingMarker:
		return domain.UnknownUserText
	case name == domain.NobodyMarker:
		return domain.NobodyText
	default:
		return name
	}
}

// IsPersonEmail reports whether the identifier is the email of a person in
// the course. Team names may contain '@', so the identifier also must not be
// shadowed by name- or team-table entries marking it as a team.
func (b *Bundle) IsPersonEmail(id string) bool {
	if !strings.Contains(id, "@") {
		return false
	}
	name, hasName := b.tables.Names[id]
	if hasName && (name == id || name == domain.TeamMarker) {
		return false
	}
	if team, hasTeam := b.tables.TeamNames[id]; hasTeam && team == id {
		return false
	}
	return true
}

// DisplayableEmailGiver returns the giver identifier when it is a person's
// email and the giver is visible, and the nobody text otherwise.
func (b *Bundle) DisplayableEmailGiver(r domain.Response) string {
	if b.IsPersonEmail(r.Giver) && b.GiverVisible(r) {
		return r.Giver
	}
	return domain.NobodyText
}

// DisplayableEmailRecipient returns the recipient identifier when it is a
// person's email and the recipient is visible, and the nobody text otherwise.
func (b *Bundle) DisplayableEmailRecipient(r domain.Response) string {
	if b.IsPersonEmail(r.Recipient) && b.RecipientVisible(r) {
		return r.Recipient
	}
	return domain.NobodyText
}
