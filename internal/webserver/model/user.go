package model

import (
	"net/mail"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Roles an account can hold. A role is granted by the invite code redeemed
// at signup and is never accepted verbatim from a request body.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
	RoleOwner = "owner"
)

// ValidRole reports whether role belongs to the closed set of known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleAdmin, RoleOwner:
		return true
	}
	return false
}

type User struct {
	ID        uint `gorm:"primarykey" json:"-"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Uuid      string `gorm:"uniqueIndex; not null"`
	Email     string `gorm:"uniqueIndex; not null"`
	Password  string `json:"-"`
	Role      string `gorm:"not null; default:user"`
}

// Validate checks all user's fields to ensure they are in the required format
func (u User) Validate(minPasswordLength int) map[string]string {
	errs := map[string]string{}

	if _, err := mail.ParseAddress(u.Email); err != nil {
		errs["email"] = "Incorrect email address"
	}

	if len(u.Email) > 100 {
		errs["email"] = "Email cannot be longer than 100 characters"
	}

	if !ValidRole(u.Role) {
		errs["role"] = "Incorrect role"
	}

	if len(u.Password) < minPasswordLength {
		errs["password"] = "Password is too short"
	}

	// bcrypt only hashes the first 72 bytes
	if len(u.Password) > 72 {
		errs["password"] = "Password cannot be longer than 72 characters"
	}

	return errs
}

// CheckPassword compares a plaintext password against the stored hash.
// Accounts without a stored hash reject every password.
func (u User) CheckPassword(password string) bool {
	if u.Password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// HashPassword derives a salted, slow hash suitable for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
