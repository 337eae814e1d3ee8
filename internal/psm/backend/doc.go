// Package backend projects a PIM onto the relational backend: table names,
// column types and bidirectional relationship wiring.
//
// Relationship naming is global. Transform first builds a read-only
// lookup of every relationship's exported name keyed by the ordered
// (entity, target) pair, then builds each entity from that lookup alone,
// so Owner.pets and Pet.owner can name each other as back references
// without the CIM declaring the relationship twice.
package backend
