package pin

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptVerifier holds only the hash of the configured code.
type BcryptVerifier struct {
	hash []byte
}

var _ Verifier = (*BcryptVerifier)(nil)

func NewBcryptVerifier(code string) (*BcryptVerifier, error) {
	if !validCode(code) {
		return nil, fmt.Errorf("staff pin must be %d digits", Length)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash staff pin: %w", err)
	}
	return &BcryptVerifier{hash: hash}, nil
}

func (v *BcryptVerifier) VerifyPin(_ context.Context, code string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(v.hash, []byte(code))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func validCode(code string) bool {
	if len(code) != Length {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}
