// Package core provides the business logic for the sheet leaderboard.
//
// This package turns the text of a published spreadsheet CSV into ranked,
// typed records. It has no UI dependencies: the web server, the leaderctl CLI
// and the tests all drive it the same way.
//
// # Pipeline
//
// A load runs the stages in order and either succeeds completely or leaves the
// previous snapshot in place:
//
//  1. [Source.Fetch] retrieves the raw text ([HTTPSource] or [FileSource])
//  2. [ParseCSV] drops the header line and tokenizes the data lines
//  3. [BuildRecords] maps each row through [Columns] and discards nameless rows
//  4. [NewBoard] sorts by a [SortState], assigns ranks and tiers and computes
//     the remaining pool
//
// # Columns
//
// The sheet is read positionally. [Columns] lists every column with its index,
// fallback literal and coercion, so the expected layout is:
//
//	Name | Wins | Losses | Total Score | Win Rate | Balance
//
// Missing or unparseable numbers become 0. Balance is optional.
//
// # Sorting
//
// [SortState] is an explicit value rather than shared state. Selecting the
// current key again flips the direction; selecting a new key starts
// descending. Ties keep sheet order.
//
// # Error Handling
//
// Load failures are one of [ErrConfigurationMissing], [*FetchError] or
// [ErrEmptyData] (or a transport error). [MapError] turns any of them into a
// single user-facing [UserMessage] with a support code.
package core
