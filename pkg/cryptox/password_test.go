package cryptox_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/callbridgehq/callbridge/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	hash, err := cryptox.HashPassword("Sup3rSecret!")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	require.NoError(t, cryptox.VerifyPassword("Sup3rSecret!", hash))
	require.ErrorIs(t, cryptox.VerifyPassword("wrong", hash), cryptox.ErrPasswordMismatch)
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	a, err := cryptox.HashPassword("same-password")
	require.NoError(t, err)
	b, err := cryptox.HashPassword("same-password")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	require.Error(t, cryptox.VerifyPassword("pw", "not-a-phc-string"))
	require.Error(t, cryptox.VerifyPassword("pw", "$bcrypt$v=19$m=1,t=1,p=1$a$b"))
}
