// Package cim holds the Computation-Independent Model: the entities,
// attributes and relationships a user declares before any platform
// concern is applied.
//
// Values in this package are produced by the compiler package and treated
// as read-only by every transformation downstream. cim imports nothing
// internal.
package cim
