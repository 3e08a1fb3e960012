package cryptox_test

import (
	"encoding/base64"
	"testing"

	"github.com/callbridgehq/callbridge/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)
	require.Len(t, raw, cryptox.TokenSize256)
}

func TestGenerateTokenRejectsBadSize(t *testing.T) {
	_, err := cryptox.GenerateToken(0)
	require.Error(t, err)

	_, err = cryptox.GenerateToken(-1)
	require.Error(t, err)
}

func TestGenerateTokenUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		token := cryptox.MustGenerateToken(cryptox.TokenSize256)
		_, dup := seen[token]
		require.False(t, dup)
		seen[token] = struct{}{}
	}
}

func TestFingerprintDeterministic(t *testing.T) {
	token := cryptox.MustGenerateToken(cryptox.TokenSize256)

	fp1 := cryptox.FingerprintToken(token)
	fp2 := cryptox.FingerprintToken(token)
	require.Equal(t, fp1, fp2)
	require.NotEqual(t, token, fp1)

	other := cryptox.FingerprintToken("different")
	require.NotEqual(t, fp1, other)
}
