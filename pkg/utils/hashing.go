package utils

import (
	"errors"
	"math/rand"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func ComparePasswords(hashedPassword string, plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
}

// GenerateReferralCode returns an uppercase alphanumeric code used to
// attribute signups to a referrer. Uniqueness is enforced by the
// database index; callers retry on collision.
func GenerateReferralCode(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid code length")
	}

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	code := make([]byte, length)
	for i := range code {
		code[i] = alphabet[rand.Intn(len(alphabet))]
	}

	return string(code), nil
}
