package domain

import (
	"cmp"
	"strings"
)

// Question describes one feedback question of a session. The ordinal Number
// defines the total order over questions used by every question-keyed view.
type Question struct {
	ID string `json:"id" validate:"required"`

	// Number is the question's ordinal within the session.
	Number int `json:"number" validate:"min=0"`

	// GiverType and RecipientType restrict who answers and who is answered
	// about.
	GiverType     ParticipantType `json:"giver_type" validate:"required"`
	RecipientType ParticipantType `json:"recipient_type" validate:"required"`

	// Creator identifies the question author; it is the sole eligible giver
	// or recipient when the corresponding type is SELF.
	Creator string `json:"creator,omitempty"`

	// Text is the question prompt, carried for renderers.
	Text string `json:"text,omitempty"`
}

// Compare orders questions by number, then ID for a strict total order.
func (q Question) Compare(other Question) int {
	if c := cmp.Compare(q.Number, other.Number); c != 0 {
		return c
	}
	return strings.Compare(q.ID, other.ID)
}
