package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher()

	// Test valid strong password
	strongPassword := "StrongPass123"
	hash, err := hasher.Hash(strongPassword)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, strongPassword, hash)

	// Verify the hash can be checked
	assert.NoError(t, hasher.Compare(hash, strongPassword))
}

func TestBcryptHasher_HashWithWeakPassword(t *testing.T) {
	hasher := NewBcryptHasher()

	// Test weak passwords that should fail validation
	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"123", "must be at least 8 characters long"},
		{"", "must be at least 8 characters long"},
		{"SECRETS123", "must contain at least one lowercase letter"},
		{"secrets123", "must contain at least one uppercase letter"},
		{"SecretsABC", "must contain at least one number"},
		{"MyPassword123", "contains forbidden words"},
	}

	for _, tc := range testCases {
		_, err := hasher.Hash(tc.password)
		assert.Error(t, err, "Expected error for weak password: %s", tc.password)
		assert.Contains(t, err.Error(), tc.expectedErr)
	}
}

func TestBcryptHasher_Compare(t *testing.T) {
	hasher := NewBcryptHasher()
	password := "StrongPass123"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.NoError(t, hasher.Compare(hash, password))

	// Test incorrect password
	assert.Error(t, hasher.Compare(hash, "WrongPass123"))

	// Test empty password
	assert.Error(t, hasher.Compare(hash, ""))

	// Test with invalid hash
	assert.Error(t, hasher.Compare("invalid_hash", password))
}

func TestBcryptHasher_UnicodePassword(t *testing.T) {
	hasher := NewBcryptHasher()

	unicodePassword := "Pässphräse123"
	hash, err := hasher.Hash(unicodePassword)
	assert.NoError(t, err)
	assert.NoError(t, hasher.Compare(hash, unicodePassword))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasherWithCost(customCost)

	password := "StrongPass123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Verify the hash uses the correct cost
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)

	assert.NoError(t, hasher.Compare(hash, password))
}

func TestBcryptHasher_WithOutOfRangeCost(t *testing.T) {
	// An out-of-range cost falls back to the bcrypt default.
	hasher := NewBcryptHasherWithCost(99)

	hash, err := hasher.Hash("StrongPass123")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
