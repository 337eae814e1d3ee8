package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity.
// Version suffix enables future algorithm migration.
const (
	DomainModel    = "mdgen/model/v1"
	DomainArtifact = "mdgen/artifact/v1"
)

// hashWithDomain computes SHA-256 hash with domain separation.
// Format: SHA256(domain + 0x00 + data)
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// ModelHash computes the content hash of an exported model. Two models with
// deep-equal exports hash identically regardless of map iteration order.
func ModelHash(dict Object) (string, error) {
	canonical, err := MarshalCanonical(dict)
	if err != nil {
		return "", fmt.Errorf("ModelHash: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainModel, canonical), nil
}

// ArtifactHash computes the content hash of one emitted file.
// The path is part of the identity so identical bodies at different
// locations stay distinct.
func ArtifactHash(path string, content []byte) string {
	data := make([]byte, 0, len(path)+1+len(content))
	data = append(data, path...)
	data = append(data, 0x00)
	data = append(data, content...)
	return hashWithDomain(DomainArtifact, data)
}
