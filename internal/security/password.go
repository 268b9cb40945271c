package security

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
)

const (
	argonTime    = 2
	argonMemory  = 19 * 1024
	argonThreads = 1
	argonKeyLen  = 32
)

// PasswordHasher хэширует пароли argon2id с солью, выведенной из секрета приложения.
// Один и тот же пароль всегда даёт один и тот же хэш
type PasswordHasher struct {
	salt []byte
}

func NewPasswordHasher(secret string) *PasswordHasher {
	sum := sha256.Sum256([]byte(secret))
	return &PasswordHasher{salt: sum[:16]}
}

func (h *PasswordHasher) Hash(password string) string {
	key := argon2.IDKey([]byte(password), h.salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return hex.EncodeToString(key)
}

// Verify : сравнение за постоянное время
func (h *PasswordHasher) Verify(password, hash string) bool {
	return subtle.ConstantTimeCompare([]byte(h.Hash(password)), []byte(hash)) == 1
}
