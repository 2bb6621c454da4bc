package password

import (
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters. Changing any of these requires bumping SchemeVersion
// so stored hashes can be migrated.
const (
	scryptCost      = 1 << 14
	scryptBlockSize = 8
	scryptParallel  = 5
	keyLength       = 64
	saltLength      = 64
)

// SchemeVersion is stored alongside each credential row.
const SchemeVersion = 1

// Hasher derives and verifies password hashes.
type Hasher struct{}

// New creates a new Hasher instance.
func New() *Hasher {
	return &Hasher{}
}

// Salt returns a fresh random salt.
func (h *Hasher) Salt() ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// Hash derives a key from the password and salt.
func (h *Hasher) Hash(password string, salt []byte) ([]byte, error) {
	return scrypt.Key([]byte(password), salt, scryptCost, scryptBlockSize, scryptParallel, keyLength)
}

// Verify compares a derived hash against a stored one in constant time.
// A short-circuiting comparison would leak the length of the matching
// prefix through timing.
func (h *Hasher) Verify(derived, stored []byte) bool {
	return subtle.ConstantTimeCompare(derived, stored) == 1
}
