package domain

import "time"

// Session is the metadata of one feedback session. The engine treats it as an
// opaque label set; only renderers interpret the timing fields.
type Session struct {
	CourseID string `json:"course_id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Creator  string `json:"creator,omitempty"`

	StartTime time.Time `json:"start_time,omitzero"`
	EndTime   time.Time `json:"end_time,omitzero"`
}

// Visibility is the precomputed per-response visibility pair supplied by the
// caller. The engine never decides visibility; it only applies these flags,
// forced to true for SELF and NONE participant types.
type Visibility struct {
	Giver     bool `json:"giver"`
	Recipient bool `json:"recipient"`
}

// VisibilityTable maps response IDs to their visibility pair. A missing entry
// reads as the zero pair, i.e. both identities hidden.
type VisibilityTable map[string]Visibility

// NameTables are the identifier-keyed display tables shared by the whole
// bundle. The hide pass extends them exactly once with pseudonym entries;
// afterwards they are read-only.
type NameTables struct {
	// Names maps identifier to display name, or to one of the marker
	// sentinels (NobodyMarker, TeamMarker, MissingMarker).
	Names map[string]string `json:"names"`

	// LastNames maps identifier to last name, with the same marker rules.
	LastNames map[string]string `json:"last_names"`

	// TeamNames maps identifier to team name. For member identifiers the
	// team is also keyed under identifier+TeamSuffix in Names.
	TeamNames map[string]string `json:"team_names"`
}

// Clone deep-copies the tables so the hide pass can extend them without
// aliasing the caller's maps. Nil maps become empty maps.
func (t NameTables) Clone() NameTables {
	return NameTables{
		Names:     cloneStringMap(t.Names),
		LastNames: cloneStringMap(t.LastNames),
		TeamNames: cloneStringMap(t.TeamNames),
	}
}
