package compiler

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/roach88/mdgen/internal/cim"
)

// modelDocument mirrors the YAML model. The top-level lists are pointers
// so an absent key can be told apart from an empty list.
type modelDocument struct {
	Entities      *[]cim.Entity           `yaml:"entities"`
	Relationships *[]relationshipDocument `yaml:"relationships"`
}

type relationshipDocument struct {
	Source             string      `yaml:"source"`
	Target             string      `yaml:"target"`
	Type               string      `yaml:"type"`
	SourceMultiplicity scalarToken `yaml:"source_multiplicity"`
	TargetMultiplicity scalarToken `yaml:"target_multiplicity"`
}

// scalarToken accepts any scalar and keeps its source text, so an
// unquoted 1 reads as "1".
type scalarToken string

func (s *scalarToken) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: multiplicity must be a scalar", n.Line)
	}
	*s = scalarToken(n.Value)
	return nil
}

// ParseYAML decodes a YAML model document. Omitted relationship kinds
// default to association and omitted multiplicities to "1".
func ParseYAML(data []byte) (*cim.Model, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &CompileError{Field: "yaml", Message: err.Error()}
	}
	if root.Kind == 0 {
		return nil, &CompileError{Field: "entities", Message: "entities is required"}
	}
	return DecodeYAML(&root)
}

// DecodeYAML decodes an already parsed model node. Scenario files embed
// models this way.
func DecodeYAML(n *yaml.Node) (*cim.Model, error) {
	var doc modelDocument
	if err := n.Decode(&doc); err != nil {
		return nil, &CompileError{Field: "yaml", Message: err.Error()}
	}
	if doc.Entities == nil {
		return nil, &CompileError{Field: "entities", Message: "entities is required"}
	}
	if doc.Relationships == nil {
		return nil, &CompileError{Field: "relationships", Message: "relationships is required"}
	}

	model := &cim.Model{Entities: *doc.Entities}
	for _, r := range *doc.Relationships {
		rel := cim.Relationship{
			Source:             r.Source,
			Target:             r.Target,
			Kind:               cim.RelationshipKind(r.Type),
			SourceMultiplicity: cim.Multiplicity(r.SourceMultiplicity),
			TargetMultiplicity: cim.Multiplicity(r.TargetMultiplicity),
		}
		if rel.Kind == "" {
			rel.Kind = cim.DefaultKind
		}
		if rel.SourceMultiplicity == "" {
			rel.SourceMultiplicity = cim.DefaultMultiplicity
		}
		if rel.TargetMultiplicity == "" {
			rel.TargetMultiplicity = cim.DefaultMultiplicity
		}
		model.Relationships = append(model.Relationships, rel)
	}
	return model, nil
}
