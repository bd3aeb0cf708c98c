// Package roster holds a campaign's recipient list in memory and moves it
// in and out of flat CSV files.
//
// A recipient has an email, a display name, optional custom values backing
// custom placeholder parameters, and a delivery status that the campaign
// engine advances while sending (pending, sending, sent, failed).
//
//	r, err := roster.ImportCSV(file)
//	// email and name headers are required (any case, any order);
//	// every other column becomes a custom value keyed by its
//	// lowercased header.
//
// Import accepts a charset option for rosters exported by spreadsheet
// tools in legacy encodings:
//
//	r, err := roster.ImportCSV(file, roster.WithCharset("gbk"))
//
// Export writes email, name, and the requested custom columns; delivery
// status is runtime state and is never exported.
//
// A Roster is owned by one campaign and is not safe for concurrent use.
package roster
