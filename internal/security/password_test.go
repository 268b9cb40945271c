package security_test

import (
	"testing"

	"github.com/bqviet86/cmict-server/internal/security"
	"github.com/stretchr/testify/assert"
)

func TestPasswordHasher_Deterministic(t *testing.T) {
	hasher := security.NewPasswordHasher("pepper")

	first := hasher.Hash("P@ssw0rd!")
	second := hasher.Hash("P@ssw0rd!")

	assert.Equal(t, first, second)
	assert.NotEqual(t, "P@ssw0rd!", first)
	assert.Len(t, first, 64)
}

func TestPasswordHasher_Verify(t *testing.T) {
	hasher := security.NewPasswordHasher("pepper")
	hash := hasher.Hash("P@ssw0rd!")

	assert.True(t, hasher.Verify("P@ssw0rd!", hash))
	assert.False(t, hasher.Verify("p@ssw0rd!", hash))
	assert.False(t, hasher.Verify("", hash))
}

func TestPasswordHasher_SecretChangesDigest(t *testing.T) {
	a := security.NewPasswordHasher("secret-a").Hash("P@ssw0rd!")
	b := security.NewPasswordHasher("secret-b").Hash("P@ssw0rd!")

	assert.NotEqual(t, a, b)
}
