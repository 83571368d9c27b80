package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestGenerateNumericOTP(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := GenerateNumericOTP()
		require.NoError(t, err)
		require.Len(t, code, OTPLength)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestHashOTP(t *testing.T) {
	hash, err := HashOTP("123456", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotContains(t, hash, "123456")
	assert.True(t, OTPMatches(hash, "123456"))
	assert.False(t, OTPMatches(hash, "654321"))

	other, err := HashOTP("123456", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
}

func TestAppErrorCode(t *testing.T) {
	err := NotFound("Employee not found")
	assert.Equal(t, CodeNotFound, ErrorCode(err))
	assert.Equal(t, map[string]interface{}{"code": CodeNotFound}, err.Extensions())
	assert.Equal(t, CodeInternal, ErrorCode(assert.AnError))

	wrapped := Internal("Failed to load", assert.AnError)
	assert.ErrorIs(t, wrapped, assert.AnError)
	assert.Equal(t, "Failed to load", wrapped.Error())
}
