// Package batch runs the summarizer over a list of notes.
//
// For each note the Processor resolves and reads the file, parses its
// metadata block, applies the skip rule for human-written values, splits and
// summarizes the body, and writes the marked abstract back. Every outcome,
// including failures, becomes a core.Result. The Runner walks the list in
// order, reports progress and optionally records the run in a ledger.
package batch
