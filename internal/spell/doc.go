// Package spell provides Spanish spell correction and pluralization for
// search keyword expansion.
//
// The Checker is a frequency-dictionary corrector: a known word is its own
// only candidate; unknown words resolve to accent-folded dictionary matches
// (the dominant Spanish typo is a missing diacritic) plus any dictionary
// word one edit away. The dictionary ships embedded but a Checker can be
// built from any frequency table, so nothing in this package depends on
// process-wide state.
package spell
