package encrypter

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var ErrMismatch = errors.New("password does not match")

// Encrypter hashes and checks passwords.
type Encrypter interface {
	HashPassword(password string) (string, error)
	ComparePassword(hash, password string) error
}

type implEncrypter struct {
	cost int
}

// New returns a bcrypt-backed Encrypter. cost <= 0 uses bcrypt.DefaultCost.
func New(cost int) Encrypter {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &implEncrypter{cost: cost}
}

func (e *implEncrypter) HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), e.cost)
	if err != nil {
		return "", fmt.Errorf("encrypter.HashPassword: %w", err)
	}
	return string(b), nil
}

func (e *implEncrypter) ComparePassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
