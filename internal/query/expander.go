package query

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/GerardoDiaz22/gmail-drive-pipe/internal/spell"
)

// InboxFilter restricts searches to inbox messages that carry attachments.
// It is appended to every generated query.
const InboxFilter = "in:inbox has:attachment"

// Expander turns raw user keywords into a set of search terms tolerant of
// spelling and pluralization variants. The spell checker is injected so the
// expander carries no process-wide state.
type Expander struct {
	checker *spell.Checker
}

// NewExpander creates an Expander backed by the given checker.
func NewExpander(checker *spell.Checker) *Expander {
	return &Expander{checker: checker}
}

// Expand splits raw on whitespace and, for every token, emits the token
// itself, its plural form when distinct, every spell-correction candidate,
// and each candidate's distinct plural. Duplicates are permitted; the result
// only feeds a disjunctive query. Empty input yields an empty slice.
func (e *Expander) Expand(raw string) []string {
	var terms []string
	for _, token := range strings.Fields(raw) {
		// NFC so decomposed terminal input matches dictionary forms
		token = norm.NFC.String(token)

		terms = append(terms, token)

		if plural := spell.Pluralize(token); plural != token {
			terms = append(terms, plural)
		}

		for _, candidate := range e.checker.Candidates(token) {
			terms = append(terms, candidate)
			if plural := spell.Pluralize(candidate); plural != candidate {
				terms = append(terms, plural)
			}
		}
	}
	return terms
}

// Build joins terms disjunctively and appends the fixed inbox filter.
func Build(terms []string) string {
	if len(terms) == 0 {
		return InboxFilter
	}
	return strings.Join(terms, " OR ") + " " + InboxFilter
}
