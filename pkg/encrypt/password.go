package encrypt

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword bcrypt 해시
func HashPassword(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return ""
	}
	return string(hash)
}

// VerifyPassword bcrypt 해시를 검증한다.
// 예전 계정은 MySQL SHA2(pw, 256) 로 만든 16진수 다이제스트라 그것도 받아준다
func VerifyPassword(hashed, password string) bool {
	if hashed == "" {
		return false
	}
	if strings.HasPrefix(hashed, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
	}

	sum := sha256.Sum256([]byte(password))
	digest := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(strings.ToLower(hashed)), []byte(digest)) == 1
}

// NeedsRehash 레거시 다이제스트면 true
func NeedsRehash(hashed string) bool {
	return !strings.HasPrefix(hashed, "$2")
}
