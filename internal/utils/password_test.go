package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, ComparePassword(hash, "secret123"))
	assert.ErrorIs(t, ComparePassword(hash, "wrong"), ErrPasswordMismatch)
}

func TestHashPassword_InvalidCostFallsBack(t *testing.T) {
	hash, err := HashPassword("secret123", 0)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestComparePassword_MalformedHash(t *testing.T) {
	err := ComparePassword("not-a-hash", "secret123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}
