// Package ir provides the structural export representation shared by every
// model layer of mdgen.
//
// CIM, PIM and PSM types expose ToDict methods that build ir values; those
// values are what templates bind to, what golden snapshots compare, and what
// run hashes are computed over. ir imports nothing internal.
//
// Key design constraints:
//   - NO float types anywhere - abstract types are strings, counts are int64
//   - Null is a value (Null{}), used for absent foreign keys and back-references
//   - All keys use snake_case except where a target framework dictates otherwise
//   - Canonical JSON (RFC 8785) is the only serialization used for hashing
package ir
