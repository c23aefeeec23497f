package app

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 12

type passwordHasher struct {
	cost int
}

func newPasswordHasher() passwordHasher {
	return passwordHasher{cost: bcryptCost}
}

func (h passwordHasher) Hash(password string) (string, error) {
	raw, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (h passwordHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
