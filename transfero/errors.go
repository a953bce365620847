// Package transfero implements the English-side morphology component: given
// a Latin word's English gloss and the grammatical tags of one of its
// paradigm cells, it enumerates every English surface form a learner might
// legitimately write, and (via the synonym provider) every accepted synonym
// of a gloss.
package transfero

import "fmt"

// InvalidWordError reports that a requested conversion does not apply to the
// given lemma (e.g. asking AdjToAdv to convert an empty string).
type InvalidWordError struct {
	Word   string
	Reason string
}

func (e *InvalidWordError) Error() string {
	return fmt.Sprintf("'%s' %s", e.Word, e.Reason)
}
