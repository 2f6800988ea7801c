package domain

import "strings"

// activeEncodings lists every literal the upstream system has historically
// written for an "active" reference row. The set is closed: other spellings
// (for example "ACTIVE") have never been written by the feed and stay
// inactive. Business logic only ever sees the normalized boolean.
var activeEncodings = map[string]struct{}{
	"1":      {},
	"Active": {},
	"active": {},
}

// IsActiveStatus normalizes the status column of a reference table row.
// Accepted encodings: 1, "1", "Active", "active". Anything else, including
// empty, is inactive. The numeric form 1 arrives as its text representation
// since the columns are text-typed.
func IsActiveStatus(raw string) bool {
	_, ok := activeEncodings[strings.TrimSpace(raw)]
	return ok
}

// ActiveStatusLiterals returns the raw encodings matched by IsActiveStatus,
// for building SQL IN predicates.
func ActiveStatusLiterals() []string {
	return []string{"1", "Active", "active"}
}

// IsPartyActive reports whether a party or account status column holds the
// active sentinel.
func IsPartyActive(status string) bool {
	return strings.TrimSpace(status) == StatusActive
}

// FlagIsSet interprets a char(1) boolean column.
func FlagIsSet(flag string) bool {
	return strings.TrimSpace(flag) == FlagSet
}
