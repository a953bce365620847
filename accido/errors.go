package accido

import "fmt"

// InvalidInputError reports malformed principal parts or metadata at entity
// construction. It is local to accido; Lego's line-annotated wrapper is
// what the client ultimately sees (spec §7).
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("InvalidInputError: %s", e.Reason)
}

// NoEndingError signals a lookup miss in a word's paradigm. It is a
// programmer error, never returned over the wire — the HTTP layer maps it
// to 500 (spec §7).
type NoEndingError struct {
	Headword string
	Key      EndingKey
}

func (e *NoEndingError) Error() string {
	return fmt.Sprintf("NoEndingError: %s has no ending for %q", e.Headword, e.Key.Words())
}
