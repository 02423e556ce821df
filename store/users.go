package store

import (
	"errors"
	"fmt"
	"strings"

	"inventory-backend/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// NewUser is the input for CreateUser. Password is the plaintext
// submitted by the admin; it is hashed before storage.
type NewUser struct {
	Email    string
	Name     string
	Password string
	Role     string
}

func (s *Store) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser hashes the submitted password and stores the account.
func (s *Store) CreateUser(in NewUser) (*models.User, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.Name = strings.TrimSpace(in.Name)

	if in.Email == "" || in.Name == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email, name and password are required", ErrValidation)
	}
	if !models.ValidRole(in.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, in.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    in.Email,
		Password: string(hash),
		Name:     in.Name,
		Role:     in.Role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email %s already exists", ErrDuplicateKey, in.Email)
		}
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("user created")
	return &user, nil
}

// DeleteUser removes the account unconditionally. The rule that a
// caller may not delete their own account is enforced by the handler.
func (s *Store) DeleteUser(id uint) error {
	res := s.db.Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	s.log.WithField("user_id", id).Info("user deleted")
	return nil
}

// Authenticate verifies email and password and returns the matching
// account with its hash cleared. Unknown email and wrong password both
// return ErrInvalidCredentials so callers cannot probe which accounts
// exist.
func (s *Store) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	user.Password = ""
	return &user, nil
}
