package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizledger/biz_ledger_app/internal/utils"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, utils.VerifyPassword(hash, "correct horse battery staple"))
	assert.False(t, utils.VerifyPassword(hash, "correct horse battery"))
	assert.False(t, utils.VerifyPassword("", "correct horse battery staple"))
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	first, err := utils.HashPassword("hunter2")
	require.NoError(t, err)
	second, err := utils.HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
