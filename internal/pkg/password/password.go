package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	keyLen       = 64
	saltLen      = 16
	schemePrefix = "scrypt"
)

var ErrInvalidHash = errors.New("密码哈希格式无效")

// Hash 生成 scrypt$<salt>$<digest> 格式的密码哈希
func Hash(plain string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	digest, err := scrypt.Key([]byte(plain), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return "", err
	}
	return schemePrefix + "$" + hex.EncodeToString(salt) + "$" + hex.EncodeToString(digest), nil
}

// Verify 校验明文密码与哈希是否匹配
func Verify(plain, stored string) (bool, error) {
	parts := strings.Split(stored, "$")
	if len(parts) != 3 || parts[0] != schemePrefix {
		return false, ErrInvalidHash
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false, ErrInvalidHash
	}
	want, err := hex.DecodeString(parts[2])
	if err != nil {
		return false, ErrInvalidHash
	}
	got, err := scrypt.Key([]byte(plain), salt, scryptN, scryptR, scryptP, len(want))
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
