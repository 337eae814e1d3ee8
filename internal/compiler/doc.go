// Package compiler turns model sources into a cim.Model.
//
// Two source forms are accepted. YAML documents are decoded with
// gopkg.in/yaml.v3; CUE sources are unified with the embedded #Model
// schema first so type and multiplicity mistakes are reported with a
// file position. Validate then checks the structural rules both forms
// share and reports every violation at once.
package compiler
