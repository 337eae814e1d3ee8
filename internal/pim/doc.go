// Package pim derives the Platform-Independent Model from a conceptual
// model.
//
// The derivation synthesizes a primary key for every entity, copies the
// declared attributes, and resolves every relationship from both ends:
// Resolve decides cardinality, nullability and foreign-key placement from
// the pair of multiplicities, and Transform applies that decision to each
// entity in turn. Nothing here performs I/O or logging; errors abort the
// whole transformation.
package pim
