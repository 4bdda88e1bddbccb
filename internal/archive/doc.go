// Package archive implements the core pipeline that moves Gmail
// attachments into a date-partitioned Google Drive tree.
//
// A run expands the user's keywords into a fuzzy Gmail query, searches the
// inbox, walks the MIME tree of every match, and files each attachment
// under root/year/month derived from the message's internal date (UTC).
// Filenames are decorated with the sender and time of day so re-runs can
// recognize already archived content and skip it.
//
// Failures are scoped to the item they occur on. One bad attachment or
// message never aborts the run; everything that went wrong is reported in
// the Summary.
//
// The pipeline talks to its backends through the MessageStore and Store
// interfaces, implemented by the gmail and drive packages.
package archive
