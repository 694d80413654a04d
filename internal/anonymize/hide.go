package anonymize

import "github.com/ahrav/go-feedback/internal/domain"

// Result is the output of the hide pass: a displayable response set with
// hidden identities replaced by pseudonyms, and the name tables extended with
// the pseudonym entries. Later pipeline stages accept a Result rather than
// raw inputs, which makes "the hide pass ran first" a structural fact.
type Result struct {
	// Responses is the displayable set. Hidden giver/recipient fields hold
	// pseudonym identifiers.
	Responses []domain.Response

	// Tables is a copy of the input tables extended with pseudonym entries.
	Tables domain.NameTables
}

// HideIdentities clones the responses and replaces every giver or recipient
// identity that is not visible per the visibility table (with SELF and NONE
// forced visible) by a stable pseudonym. Each minted pseudonym is registered
// in the name and team tables so all later lookups resolve it.
//
// The input slice and tables are not modified.
func HideIdentities(
	responses []domain.Response,
	questions map[string]domain.Question,
	visibility domain.VisibilityTable,
	tables domain.NameTables,
) Result {
	out := Result{
		Responses: make([]domain.Response, 0, len(responses)),
		Tables:    tables.Clone(),
	}

	for _, r := range responses {
		q, ok := questions[r.QuestionID]
		if !ok {
			// Caller error; carry the response through untouched.
			out.Responses = append(out.Responses, r.Clone())
			continue
		}
		vis := visibility[r.ID]
		c := r.Clone()

		if !domain.ParticipantVisible(q.RecipientType, vis.Recipient) {
			c.Recipient = out.hide(q.RecipientType, r.Recipient, false)
		}
		if !domain.ParticipantVisible(q.GiverType, vis.Giver) {
			c.Giver = out.hide(q.GiverType, r.Giver, true)
		}
		out.Responses = append(out.Responses, c)
	}
	return out
}

// hide mints the pseudonym for one hidden identity and records its name and
// team entries. A TEAMS giver is itself a team, so its pseudonym's team entry
// is the pseudonym name rather than a derived "<name>'s Team".
func (res *Result) hide(t domain.ParticipantType, id string, isGiver bool) string {
	realName := res.Tables.Names[id]
	anonID := Identifier(t, realName)
	anonName := Name(t, realName)

	res.Tables.Names[anonID] = anonName
	res.Tables.LastNames[anonID] = anonName
	if isGiver && t == domain.ParticipantTeams {
		res.Tables.TeamNames[anonID] = anonName
	} else {
		res.Tables.TeamNames[anonID] = anonName + domain.TeamSuffix
	}
	return anonID
}
