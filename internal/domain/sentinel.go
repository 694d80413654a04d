package domain

// Sentinel identifiers and display fallbacks. Marker values live in the name
// tables alongside real names; display texts are what renderers ultimately
// show. The two sets must never be confused: markers are compared, texts are
// printed.
const (
	// GeneralRecipient is the reserved identifier standing in for the
	// recipient of a question with participant type NONE.
	GeneralRecipient = "%GENERAL%"

	// NobodyMarker is the name-table value recorded when a response has no
	// specific counterpart. It sorts before ordinary names.
	NobodyMarker = "%NOBODY%"

	// TeamMarker is the name-table value recorded when the counterpart is a
	// team rather than a person. It sorts after ordinary names.
	TeamMarker = "%TEAM%"

	// MissingMarker is the name-table value recorded when the counterpart
	// could not be resolved at table-build time.
	MissingMarker = "%MISSING%"

	// NobodyText is the display fallback for nobody/general participants.
	NobodyText = "-"

	// UnknownUserText is the display fallback for identifiers absent from
	// the name tables.
	UnknownUserText = "Unknown user"

	// TeamSuffix, appended to a member identifier, keys the member's team
	// name in the name tables.
	TeamSuffix = "'s Team"

	// InstructorsTeam is the synthetic team holding all instructors. It is
	// excluded from ordinary team listings but supports direct membership
	// lookups.
	InstructorsTeam = "Instructors"

	// NoSpecificRecipient is the section text reported for participants
	// that have no section membership (instructors, the general recipient).
	NoSpecificRecipient = "No specific recipient"
)
