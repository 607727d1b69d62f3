// Package migrate copies a collection into a new collection on the same
// store: schema first, then every object in pages, preserving object IDs.
//
// The runner moves through explicit phases (connected, source read, schema
// derived, target created, copying, verified, done) so operators can tell
// exactly where a
// failed migration stopped. Verification compares source and target counts
// without failing the run; per-record failures are already accounted for in
// the summary.
package migrate
