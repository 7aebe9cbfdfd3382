package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateUserJWT(t *testing.T) {
	key := []byte("secret")

	token, err := GenerateUserJWT(42, true, time.Hour, key)
	require.NoError(t, err)

	claims, err := ValidateUserJWT(token, key)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.ID)
	require.True(t, claims.Admin)

	_, err = ValidateUserJWT(token, []byte("another secret"))
	require.Error(t, err)
}

func TestValidateUserJWT_Expired(t *testing.T) {
	key := []byte("secret")

	token, err := GenerateUserJWT(1, false, -time.Minute, key)
	require.NoError(t, err)

	_, err = ValidateUserJWT(token, key)
	require.ErrorIs(t, err, ErrTokenExpired)
}
