// Package store provides SQLite-backed history of generation runs.
//
// Every successful generate command records one run and the artifacts it
// wrote:
//   - Runs: UUIDv7 id, logical seq, project, architecture, model hash
//   - Artifacts: path and content hash per written file
//
// Ordering uses seq (a logical counter assigned on insert), never wall
// time, so listing is stable across machines. Queries order by
// seq ASC, id ASC COLLATE BINARY.
package store
