package service

import "errors"

var (
	// ErrDuplicateCredential signals a registration conflict on email or
	// username; handlers surface it as a retry prompt, not a fatal error.
	ErrDuplicateCredential = errors.New("duplicate-credential")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid-credentials")

	// ErrEmptyCart rejects a checkout with no lines.
	ErrEmptyCart = errors.New("empty-cart")
)
