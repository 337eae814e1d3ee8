// Package harness runs model scenarios against the transformation pipeline.
//
// A scenario embeds a conceptual model, picks an architecture and lists
// assertions about the derived models. Scenarios that expect the pipeline
// to fail name a substring of the error instead.
//
// # Scenario Format
//
//	name: owner_pet
//	description: "Composition puts the foreign key on the child"
//	architecture: monolithic
//	model:
//	  entities:
//	    - name: Owner
//	      attributes: [{name: name, type: String}]
//	    - name: Pet
//	      attributes: [{name: name, type: String}]
//	  relationships:
//	    - {source: Owner, target: Pet, type: composition,
//	       source_multiplicity: "1", target_multiplicity: "0..*"}
//	assertions:
//	  - type: pim_attribute
//	    entity: Pet
//	    name: owner_id
//	    expect: {foreign_key: owners.id, nullable: false}
//	  - type: backend_relationship
//	    entity: Owner
//	    name: pets
//	    expect: {back_populates: owner}
//
// # Assertion Types
//
//   - pim_attribute, pim_relationship: match one PIM attribute or relationship by name
//   - backend_table: check the table an entity maps to
//   - backend_field, backend_relationship: match one backend field or relationship by name
//   - frontend_field: match one component field by name
//   - frontend_relationship: match one component relationship by target
//   - service_count: count the microservices produced
//
// Expect maps are subset matches against the exported dict of the
// matched element.
//
// # Golden Snapshots
//
// RunWithGolden serialises every derived model as canonical JSON and
// compares it with testdata/golden/<name>.golden. Regenerate with:
//
//	go test ./internal/harness -update
package harness
