package services

import (
	"errors"
	"time"

	"food-ordering-api/apperrors"
	"food-ordering-api/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles registration and credential verification. Token
// issuance itself lives in the middleware package; this service only
// decides whether a caller may have one.
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

type RegisterInput struct {
	Email    string          `json:"email" binding:"required,email"`
	Name     string          `json:"name" binding:"required"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.UserRole `json:"role" binding:"required"`
}

var validRoles = map[models.UserRole]bool{
	models.RoleAdmin:    true,
	models.RoleManager:  true,
	models.RoleCustomer: true,
}

// Register creates a new user with a hashed password. The clear-text
// password is never stored or logged.
func (s *AuthService) Register(log *logrus.Entry, in RegisterInput) (*models.User, error) {
	if !validRoles[in.Role] {
		return nil, apperrors.New(apperrors.InvalidRole)
	}
	if !userNamePattern.MatchString(in.Name) {
		return nil, apperrors.New(apperrors.InvalidName)
	}

	var existing models.User
	err := s.db.Where("email = ?", in.Email).First(&existing).Error
	if err == nil {
		return nil, apperrors.New(apperrors.DuplicateEmail)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: string(hash),
		Role:         in.Role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.New(apperrors.DuplicateEmail)
		}
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("User registered")
	return &user, nil
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and records the login time. An inactive
// user with a correct password is rejected as inactive, not as a bad
// credential.
func (s *AuthService) Login(log *logrus.Entry, in LoginInput) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", in.Email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.InvalidLoginCredential)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, apperrors.New(apperrors.InvalidLoginCredential)
	}

	if user.Status != models.StatusActive {
		return nil, apperrors.New(apperrors.InactiveUser)
	}

	now := time.Now()
	if err := s.db.Model(&user).Update("last_login", now).Error; err != nil {
		return nil, err
	}
	user.LastLogin = &now

	log.WithField("user_id", user.ID).Info("User logged in")
	return &user, nil
}

// GetUser loads an active user by id.
func (s *AuthService) GetUser(id uint) (*models.User, error) {
	var user models.User
	err := s.db.Where("status = ?", models.StatusActive).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.InactiveUser)
		}
		return nil, err
	}
	return &user, nil
}
