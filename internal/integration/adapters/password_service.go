package adapters

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/controle-financeiro/backend/internal/application/adapter"
)

// bcryptCost trades hashing time for resistance to offline guessing.
const bcryptCost = 12

// minPasswordLength matches the binding rule on the auth and user DTOs.
const minPasswordLength = 8

type bcryptPasswordService struct{}

// NewPasswordService returns a bcrypt-backed adapter.PasswordService.
func NewPasswordService() adapter.PasswordService {
	return &bcryptPasswordService{}
}

func (s *bcryptPasswordService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (s *bcryptPasswordService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func (s *bcryptPasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}
