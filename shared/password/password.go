package password

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor for new htpasswd entries.
const Cost = bcrypt.DefaultCost

// bcryptPrefixes are the variants htpasswd -B and Go write. Apache writes $2y$.
var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

var (
	ErrInvalidPassword   = errors.New("invalid password")
	ErrEmptyPassword     = errors.New("password cannot be empty")
	ErrUnsupportedHash   = errors.New("unsupported password hash, only bcrypt entries are accepted")
	ErrHashingPassword   = errors.New("error hashing password")
	ErrVerifyingPassword = errors.New("error verifying password")
)

// Hash returns a bcrypt hash of password. bcrypt rejects passwords over 72 bytes.
func Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	return string(bytes), nil
}

// IsBcrypt reports whether hash is an htpasswd entry this package can check.
// MD5 ($apr1$), SHA1 ({SHA}) and crypt entries are not.
func IsBcrypt(hash string) bool {
	for _, prefix := range bcryptPrefixes {
		if strings.HasPrefix(hash, prefix) {
			return true
		}
	}

	return false
}

// Verify checks password against a bcrypt hash.
func Verify(password, hash string) error {
	if password == "" || hash == "" {
		return ErrInvalidPassword
	}

	if !IsBcrypt(hash) {
		return ErrUnsupportedHash
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrInvalidPassword
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrVerifyingPassword, err)
	}

	return nil
}
