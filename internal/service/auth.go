package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/FernandoRe0309/techstore/internal/model"
)

type AuthService interface {
	Register(username, email, password string) error
	Login(email, password string) (model.User, error)
}

type authService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) AuthService { return &authService{db: db} }

// Register hashes the raw password with bcrypt (DefaultCost; the cost factor
// can be raised over time without touching stored hashes) and inserts the
// user. A taken email or username yields ErrDuplicateCredential.
func (a *authService) Register(username, email, password string) error {
	var existed model.User
	err := a.db.Where("email = ? OR username = ?", email, username).First(&existed).Error
	if err == nil {
		return ErrDuplicateCredential
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u := model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := a.db.Create(&u).Error; err != nil {
		// Backstop for the pre-check race: two concurrent registrations with
		// the same email still violate the unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateCredential
		}
		return err
	}
	return nil
}

// Login verifies the password against the stored bcrypt hash. Unknown email
// and wrong password both return ErrInvalidCredentials.
func (a *authService) Login(email, password string) (model.User, error) {
	var u model.User
	if err := a.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, ErrInvalidCredentials
		}
		return model.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return model.User{}, ErrInvalidCredentials
	}
	return u, nil
}
