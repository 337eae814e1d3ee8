package ir

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelHashDeterminism(t *testing.T) {
	a := Object{"entities": Array{Object{"name": String("Owner"), "attributes": Array{}}}}
	b := Object{"entities": Array{Object{"attributes": Array{}, "name": String("Owner")}}}

	h1, err := ModelHash(a)
	require.NoError(t, err)
	h2, err := ModelHash(b)
	require.NoError(t, err)

	assert.Equal(t, h1, h2, "key order must not change the hash")
}

func TestModelHashChangesWithContent(t *testing.T) {
	h1, err := ModelHash(Object{"name": String("Owner")})
	require.NoError(t, err)
	h2, err := ModelHash(Object{"name": String("Pet")})
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestModelHashAcceptsNull(t *testing.T) {
	h, err := ModelHash(Object{"back_populates": Null{}})
	require.NoError(t, err)
	assert.NotEmpty(t, h)
}

func TestArtifactHashIncludesPath(t *testing.T) {
	content := []byte("class Owner(db.Model): pass\n")

	assert.Equal(t, ArtifactHash("app/models/owner.py", content), ArtifactHash("app/models/owner.py", content))
	assert.NotEqual(t, ArtifactHash("app/models/owner.py", content), ArtifactHash("app/models/pet.py", content))
}

func TestDomainSeparationPreventsCrossTypeCollision(t *testing.T) {
	data := []byte("same")
	assert.NotEqual(t, hashWithDomain(DomainModel, data), hashWithDomain(DomainArtifact, data))
}

func TestHashHexEncoding(t *testing.T) {
	h := ArtifactHash("a", nil)
	assert.Len(t, h, 64)
	_, err := hex.DecodeString(h)
	assert.NoError(t, err)
}
