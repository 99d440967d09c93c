// Package services implements the application operations behind the HTTP
// handlers. Every operation that acts on owned data takes the caller
// identity as an explicit argument; nothing in here reads the request
// context.
package services

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/carelink-dev/carelink/db"
	"github.com/carelink-dev/carelink/internal/apperrors"
	"github.com/carelink-dev/carelink/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var passwordMinLength = 8

// SetPasswordPolicy adjusts the minimum password length checked at
// registration. Called once at startup from config.
func SetPasswordPolicy(minLength int) {
	if minLength > 0 {
		passwordMinLength = minLength
	}
}

type RegisterRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Password2 string `json:"password2" binding:"required"`
}

// Register creates a new identity. Validation failures come back field-keyed
// so the response body matches what API clients already parse.
func Register(req RegisterRequest) (*models.User, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.Password != req.Password2 {
		return nil, apperrors.Validation(map[string]string{
			"password": "Password fields didn't match.",
		})
	}

	if msg := checkPasswordStrength(req.Password); msg != "" {
		return nil, apperrors.Validation(map[string]string{"password": msg})
	}

	var existing models.User
	err := db.DB.Where("email = ?", req.Email).First(&existing).Error

	if err == nil {
		return nil, apperrors.Validation(map[string]string{
			"email": "Email already exists.",
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		PasswordHash: string(passwordHash),
	}

	if err := db.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Validation(map[string]string{
				"email": "Email already exists.",
			})
		}
		return nil, err
	}

	return &user, nil
}

// Authenticate checks the credentials and returns the matching identity.
// The error never reveals whether the email or the password was wrong.
func Authenticate(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := db.DB.Where("email = ?", email).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Authentication("Invalid credentials")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.Authentication("Invalid credentials")
	}

	return &user, nil
}

func GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, err
	}
	return &user, nil
}

func checkPasswordStrength(password string) string {
	if len(password) < passwordMinLength {
		return "Password must be at least " + strconv.Itoa(passwordMinLength) + " characters long."
	}

	allDigits := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return "Password cannot be entirely numeric."
	}

	return ""
}
