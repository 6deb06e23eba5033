package service

import "golang.org/x/crypto/bcrypt"

// Hasher is the one-way salted password hashing primitive. Verification
// uses a constant-time comparison so that timing does not leak which
// part of a credential check failed.
type Hasher interface {
	// Hash derives a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether the plaintext password matches the stored hash.
	Verify(hash, password string) bool
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a bcrypt-backed Hasher with the default cost.
func NewBcryptHasher() Hasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *bcryptHasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
