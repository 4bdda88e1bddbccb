// Package query builds Gmail search expressions from user keywords.
//
// Keywords are expanded with Spanish plural forms and spell-correction
// candidates, then joined with OR and restricted to inbox messages with
// attachments.
package query
