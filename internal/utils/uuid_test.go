package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_GenerateV7(t *testing.T) {
	g := NewUUIDGenerator()

	id, err := uuid.Parse(g.Generate())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.NotEqual(t, g.Generate(), g.Generate())
}

func TestIsUUID(t *testing.T) {
	assert.True(t, IsUUID(NewUUIDGenerator().Generate()))
	assert.False(t, IsUUID("qr-1"))
	assert.False(t, IsUUID(""))
}
